// Command tagscan prints the tag records of a directory's MP3 files as
// tab-separated lines, without starting the TUI.
//
// Usage: tagscan <dir> [sort-column]
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/tagbatch/internal/batch"
	"github.com/llehouerou/tagbatch/internal/config"
	"github.com/llehouerou/tagbatch/internal/logging"
	"github.com/llehouerou/tagbatch/internal/session"
	"github.com/llehouerou/tagbatch/internal/table"
	"github.com/llehouerou/tagbatch/internal/ui/jobbar"
)

const pollInterval = 50 * time.Millisecond

var fieldEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: tagscan <dir> [sort-column]")
		os.Exit(2)
	}
	log := logging.New(os.Stderr, logrus.InfoLevel)

	var sortBy []table.Column
	if len(os.Args) > 2 {
		col, err := table.ParseColumn(os.Args[2])
		if err != nil {
			log.Fatalf("Invalid sort column: %v", err)
		}
		sortBy = append(sortBy, col)
	}

	dir := config.ExpandPath(os.Args[1])
	ctrl := session.NewController(batch.NewRunner(log))

	job, err := ctrl.LoadAsync(dir)
	if err != nil {
		log.Fatalf("Failed to start load: %v", err)
	}

	res := waitLogged(log, job)
	if res.Err != nil {
		log.Fatalf("Failed to load %s: %v", dir, res.Err)
	}

	for _, col := range sortBy {
		if _, _, err := ctrl.Sort(res.Session, col); err != nil {
			log.Fatalf("Failed to sort: %v", err)
		}
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	header := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col.String()
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, rec := range res.Session.Store.Records() {
		fields := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			fields[i] = fieldEscaper.Replace(col.Value(rec))
		}
		fmt.Fprintln(w, strings.Join(fields, "\t"))
	}
}

// waitLogged polls job until it finishes, logging each new progress value.
func waitLogged(log logrus.FieldLogger, job *session.Job) session.Result {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for range ticker.C {
		if p, ok := job.Latest(); ok {
			log.WithField("job", job.ID).Info(jobbar.CountText(p))
		}
		if res, done := job.Result(); done {
			return res
		}
	}
	return job.Wait()
}
