package session

import (
	"github.com/google/uuid"

	"github.com/llehouerou/tagbatch/internal/batch"
)

// Kind is the type of work a Job performs.
type Kind int

const (
	KindLoad Kind = iota
	KindSave
)

func (k Kind) String() string {
	if k == KindSave {
		return "save"
	}
	return "load"
}

// Result is the outcome of a finished Job.
type Result struct {
	// Session is the freshly loaded session (load jobs only).
	Session *Session
	// Summary describes the written files (save jobs only).
	Summary batch.Summary
	// Err is a directory-level failure, such as an unreadable directory.
	Err error
}

// Job is one background load or save.
// Progress is read with Latest from the control loop; the result becomes
// available once the worker has sent its terminal progress.
type Job struct {
	ID   string
	Kind Kind
	Dir  string

	progress *batch.Channel
	done     chan Result
	result   *Result
}

func newJob(kind Kind, dir string) *Job {
	return &Job{
		ID:       uuid.NewString(),
		Kind:     kind,
		Dir:      dir,
		progress: batch.NewChannel(),
		done:     make(chan Result, 1),
	}
}

// Latest returns the most recent unread progress without blocking.
func (j *Job) Latest() (batch.Progress, bool) {
	return j.progress.TryLatest()
}

// Result returns the job result without blocking.
// ok is false while the job is still running.
func (j *Job) Result() (Result, bool) {
	if j.result != nil {
		return *j.result, true
	}
	select {
	case r := <-j.done:
		j.result = &r
		return r, true
	default:
		return Result{}, false
	}
}

// Wait blocks until the job has finished and returns its result.
func (j *Job) Wait() Result {
	if j.result != nil {
		return *j.result
	}
	r := <-j.done
	j.result = &r
	return r
}
