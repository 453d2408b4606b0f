// Package session ties the scanner, runner and store together behind the
// operations the presentation layer calls: load, save, edit and sort.
//
// A Session is an explicit value handed to every operation. The Controller
// runs at most one background job at a time; a load builds a new Session
// off the control loop and hands it over whole through the job result.
package session

import (
	"sync/atomic"

	"github.com/llehouerou/tagbatch/internal/batch"
	"github.com/llehouerou/tagbatch/internal/table"
)

// Session is one directory being edited.
type Session struct {
	Dir   string
	Store *table.Store
}

// SortResult is the outcome of a synchronous sort.
type SortResult struct {
	Column table.Column
	State  table.SortState

	// PrevColumn and PrevState are the sort in effect before the call.
	PrevColumn table.Column
	PrevState  table.SortState
}

// Controller starts load and save jobs and runs edits and sorts.
type Controller struct {
	runner *batch.Runner
	busy   atomic.Bool
}

// NewController creates a controller using runner for background work.
func NewController(runner *batch.Runner) *Controller {
	return &Controller{runner: runner}
}

// Busy reports whether a job is currently running.
func (c *Controller) Busy() bool {
	return c.busy.Load()
}

// LoadAsync starts scanning and decoding dir in the background.
// The job result carries the new Session, or a *library.ScanError.
func (c *Controller) LoadAsync(dir string) (*Job, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}

	job := newJob(KindLoad, dir)
	go func() {
		records, err := c.runner.Load(dir, job.progress)
		res := Result{Err: err}
		if err == nil {
			res.Session = &Session{Dir: dir, Store: table.New(records)}
		}
		c.busy.Store(false)
		job.done <- res
	}()
	return job, nil
}

// SaveAsync writes the session's records back to their files in the background,
// in the store's current display order.
func (c *Controller) SaveAsync(s *Session) (*Job, error) {
	if s == nil || s.Dir == "" {
		return nil, noDirectory("save")
	}
	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}

	records := s.Store.Records()
	job := newJob(KindSave, s.Dir)
	go func() {
		summary := c.runner.Save(s.Dir, records, job.progress)
		c.busy.Store(false)
		job.done <- Result{Summary: summary}
	}()
	return job, nil
}

// Edit changes one field of the record displayed at row.
func (c *Controller) Edit(s *Session, row int, col table.Column, value string) error {
	if s == nil || s.Dir == "" {
		return noDirectory("edit")
	}
	return s.Store.Edit(row, col, value)
}

// Sort advances col's sort state.
// When the column returns to Unsorted the directory is reloaded from disk,
// discarding unsaved edits: the returned job must be awaited like any load.
// For the other states the store is reordered in place and job is nil.
func (c *Controller) Sort(s *Session, col table.Column) (SortResult, *Job, error) {
	if s == nil || s.Dir == "" {
		return SortResult{}, nil, noDirectory("sort")
	}
	if c.Busy() {
		return SortResult{}, nil, ErrBusy
	}

	prevCol, prevState := s.Store.SortState()
	state, err := s.Store.Sort(col)
	if err != nil {
		return SortResult{}, nil, err
	}
	res := SortResult{Column: col, State: state, PrevColumn: prevCol, PrevState: prevState}
	if state != table.Unsorted {
		return res, nil, nil
	}

	job, err := c.LoadAsync(s.Dir)
	if err != nil {
		s.Store.RestoreSort(prevCol, prevState)
		return res, nil, err
	}
	return res, job, nil
}

// RevertSort puts back the sort state that res replaced. Call it when the
// reload started by Sort fails: the old rows are still displayed in the
// previous order and must keep its header.
func (c *Controller) RevertSort(s *Session, res SortResult) {
	if s == nil {
		return
	}
	s.Store.RestoreSort(res.PrevColumn, res.PrevState)
}
