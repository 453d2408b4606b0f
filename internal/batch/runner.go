// Package batch runs the load and save passes over a directory's MP3 files.
// Each file is handled on its own: a failure is logged and the pass moves on.
package batch

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/tagbatch/internal/library"
	"github.com/llehouerou/tagbatch/internal/tags"
)

// Codec decodes and encodes the tag fields of a single file.
type Codec interface {
	Decode(path string) (tags.Record, error)
	Encode(path string, r tags.Record) error
}

// ScanFunc lists the MP3 file names of a directory.
type ScanFunc func(dir string) ([]string, error)

// Summary describes a finished save pass.
type Summary struct {
	Total  int
	Failed []string // filenames left unwritten
}

// Runner executes load and save passes.
type Runner struct {
	codec Codec
	scan  ScanFunc
	log   logrus.FieldLogger
}

// Option configures a Runner.
type Option func(*Runner)

// WithCodec replaces the default tags codec.
func WithCodec(c Codec) Option {
	return func(r *Runner) { r.codec = c }
}

// WithScanner replaces the default directory scanner.
func WithScanner(s ScanFunc) Option {
	return func(r *Runner) { r.scan = s }
}

// NewRunner creates a runner logging per-file failures to log.
func NewRunner(log logrus.FieldLogger, opts ...Option) *Runner {
	r := &Runner{
		codec: tags.Codec{},
		scan:  library.Scan,
		log:   log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load scans dir and decodes every MP3 file in scan order.
// Files that fail to decode are logged and left out, so the result may be
// shorter than the progress total. Progress is sent after every file; the
// final value has Status Loaded and Completed == Total. Only a scan failure
// is returned as an error, after which no progress is sent.
func (r *Runner) Load(dir string, progress *Channel) ([]tags.Record, error) {
	names, err := r.scan(dir)
	if err != nil {
		return nil, err
	}

	total := len(names)
	records := make([]tags.Record, 0, total)

	if total == 0 {
		progress.Send(Progress{Completed: 0, Total: 0, Status: Loaded})
		return records, nil
	}

	for i, name := range names {
		rec, err := r.codec.Decode(filepath.Join(dir, name))
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"op":   "load",
				"file": name,
			}).WithError(err).Error("skipping file")
		} else {
			rec.Filename = name
			records = append(records, rec)
		}

		status := Running
		if i+1 == total {
			status = Loaded
		}
		progress.Send(Progress{Completed: i + 1, Total: total, Status: status})
	}

	r.log.WithFields(logrus.Fields{
		"op":      "load",
		"dir":     dir,
		"files":   total,
		"decoded": len(records),
	}).Info("load finished")

	return records, nil
}

// Save encodes records into their files under dir, in the given order.
// Failed files are logged and skipped; there is no retry. After the last
// file a terminal progress with Status Saved is sent, also when records is empty.
func (r *Runner) Save(dir string, records []tags.Record, progress *Channel) Summary {
	total := len(records)
	summary := Summary{Total: total}

	for i, rec := range records {
		if err := r.codec.Encode(filepath.Join(dir, rec.Filename), rec); err != nil {
			r.log.WithFields(logrus.Fields{
				"op":   "save",
				"file": rec.Filename,
			}).WithError(err).Error("tags not written")
			summary.Failed = append(summary.Failed, rec.Filename)
		}
		progress.Send(Progress{Completed: i + 1, Total: total, Status: Running})
	}

	progress.Send(Progress{Completed: total, Total: total, Status: Saved})

	r.log.WithFields(logrus.Fields{
		"op":     "save",
		"dir":    dir,
		"files":  total,
		"failed": len(summary.Failed),
	}).Info("save finished")

	return summary
}
