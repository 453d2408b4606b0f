package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/tagbatch/internal/app"
	"github.com/llehouerou/tagbatch/internal/batch"
	"github.com/llehouerou/tagbatch/internal/config"
	"github.com/llehouerou/tagbatch/internal/errmsg"
	"github.com/llehouerou/tagbatch/internal/logging"
	"github.com/llehouerou/tagbatch/internal/session"
	"github.com/llehouerou/tagbatch/internal/state"
)

// resources are closed in reverse order on exit.
type resources struct {
	closers []io.Closer
}

func (r *resources) add(c io.Closer) {
	r.closers = append(r.closers, c)
}

func (r *resources) close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i].Close()
	}
}

func initialModel(res *resources) (app.Model, error) {
	cfg, err := config.Load()
	if err != nil {
		return app.Model{}, fmt.Errorf("load config: %w", err)
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return app.Model{}, fmt.Errorf("log path: %w", err)
	}
	log, logFile, err := logging.Open(logPath, cfg.Level())
	if err != nil {
		return app.Model{}, err
	}
	res.add(logFile)

	// Recent directories are a convenience; run without them if the db is unusable
	var stateMgr state.Interface
	if mgr, err := state.Open(); err != nil {
		log.WithError(err).Warn("state database unavailable, recent directories disabled")
	} else {
		stateMgr = mgr
		res.add(mgr)
	}

	runner := batch.NewRunner(log)
	deps := app.Deps{
		Config:     cfg,
		Controller: session.NewController(runner),
		StateMgr:   stateMgr,
		Log:        log,
	}

	dir := ""
	if len(os.Args) > 1 {
		dir = config.ExpandPath(os.Args[1])
	}
	log.WithFields(logrus.Fields{"dir": dir, "log": logPath}).Info("starting")
	return app.New(deps, dir), nil
}

func main() {
	res := &resources{}

	m, err := initialModel(res)
	if err != nil {
		res.close()
		fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	res.close()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
