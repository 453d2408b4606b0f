package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/tagbatch/internal/batch"
	"github.com/llehouerou/tagbatch/internal/config"
	"github.com/llehouerou/tagbatch/internal/errmsg"
	"github.com/llehouerou/tagbatch/internal/library"
	"github.com/llehouerou/tagbatch/internal/session"
	"github.com/llehouerou/tagbatch/internal/table"
	"github.com/llehouerou/tagbatch/internal/ui/celledit"
	"github.com/llehouerou/tagbatch/internal/ui/dirprompt"
	"github.com/llehouerou/tagbatch/internal/ui/jobbar"
)

const (
	msgNoDirectory = "Error: No directory selected"
	msgSaved       = "Tags saved successfully"
)

func (m *Model) openPrompt() tea.Cmd {
	recent := m.recentDirs()
	w, h := m.popupSize()
	m.Popup = PopupPrompt
	return m.Prompt.Start(m.initialDir(recent), recent, w, h)
}

func (m Model) handlePromptResult(res dirprompt.Result) (tea.Model, tea.Cmd) {
	m.Popup = PopupNone
	if res.Canceled {
		return m, nil
	}
	if res.Dir == "" {
		m.setError(msgNoDirectory)
		return m, nil
	}
	cmd := m.startLoad(config.ExpandPath(res.Dir))
	return m, cmd
}

// startLoad begins loading dir and returns the first poll command.
func (m *Model) startLoad(dir string) tea.Cmd {
	job, err := m.Controller.LoadAsync(dir)
	if err != nil {
		m.reportStartError(errmsg.OpLoadTags, err)
		return nil
	}
	return m.track(job, "Loading "+dir)
}

func (m Model) save() (tea.Model, tea.Cmd) {
	job, err := m.Controller.SaveAsync(m.Session)
	if err != nil {
		m.reportStartError(errmsg.OpSaveTags, err)
		return m, nil
	}
	cmd := m.track(job, jobbar.SaveLabel(batch.Progress{Total: m.Session.Store.Len()}))
	return m, cmd
}

func (m Model) sortByIndex(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(table.Columns) {
		return m, nil
	}
	return m.sort(table.Columns[idx])
}

func (m Model) sort(col table.Column) (tea.Model, tea.Cmd) {
	// Keep the cursor on the same record across the reorder
	selected, hasSelection := m.Table.Selected()

	res, job, err := m.Controller.Sort(m.Session, col)
	if err != nil {
		m.reportStartError(errmsg.OpSortTable, err)
		return m, nil
	}

	if job != nil {
		m.Log.WithFields(logrus.Fields{"dir": m.Session.Dir, "column": col.String()}).
			Debug("sort cycle ended, reloading directory")
		m.Table.SetSort(res.Column, res.State)
		m.pendingSort = &res
		cmd := m.track(job, "Reloading "+m.Session.Dir)
		return m, cmd
	}

	m.refreshTable()
	if hasSelection {
		m.Table.SelectRow(m.Session.Store.Find(selected.Filename))
	}
	m.Table.SelectColumn(col)
	return m, nil
}

func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	if m.Session == nil {
		m.setError(msgNoDirectory)
		return m, nil
	}
	if m.Busy() {
		m.setBusy()
		return m, nil
	}

	col := m.Table.Column()
	if !col.Editable() {
		m.setError(errmsg.Format(errmsg.OpEditField, table.ErrReadOnlyColumn))
		return m, nil
	}

	row := m.Table.Cursor()
	rec, err := m.Session.Store.Row(row)
	if err != nil {
		m.setError(errmsg.Format(errmsg.OpEditField, err))
		return m, nil
	}

	w, h := m.popupSize()
	m.Popup = PopupEditor
	cmd := m.Editor.Start(row, col, rec.Filename, col.Value(rec), w, h)
	return m, cmd
}

func (m Model) handleEditResult(res celledit.Result) (tea.Model, tea.Cmd) {
	m.Popup = PopupNone
	if res.Canceled {
		return m, nil
	}
	if m.Busy() {
		m.setBusy()
		return m, nil
	}

	if err := m.Controller.Edit(m.Session, res.Row, res.Column, res.Value); err != nil {
		m.reportStartError(errmsg.OpEditField, err)
		return m, nil
	}
	m.refreshTable()
	return m, nil
}

// track makes job the running job and starts polling it.
func (m *Model) track(job *session.Job, label string) tea.Cmd {
	m.Job = job
	m.JobView = &jobbar.Job{Label: label}
	m.Status = Status{}
	m.resize()

	m.Log.WithFields(logrus.Fields{
		"job":  job.ID,
		"kind": job.Kind.String(),
		"dir":  job.Dir,
	}).Info("job started")

	return PollCmd(m.Config.PollInterval())
}

func (m Model) handlePoll() (tea.Model, tea.Cmd) {
	if m.Job == nil {
		return m, nil
	}

	if p, ok := m.Job.Latest(); ok {
		m.JobView.Progress = p
		if m.Job.Kind == session.KindSave {
			m.JobView.Label = jobbar.SaveLabel(p)
		}
	}

	res, done := m.Job.Result()
	if !done {
		return m, PollCmd(m.Config.PollInterval())
	}

	job := m.Job
	m.Job = nil
	m.JobView = nil
	m.resize()

	if job.Kind == session.KindSave {
		return m.finishSave(job, res)
	}
	return m.finishLoad(job, res)
}

func (m Model) finishLoad(job *session.Job, res session.Result) (tea.Model, tea.Cmd) {
	log := m.Log.WithFields(logrus.Fields{"job": job.ID, "dir": job.Dir})
	pending := m.pendingSort
	m.pendingSort = nil

	if res.Err != nil {
		log.WithError(res.Err).Error("load failed")
		if pending != nil && m.Session != nil {
			// The old rows stay on screen in their sorted order
			m.Controller.RevertSort(m.Session, *pending)
			m.refreshTable()
		}
		var scanErr *library.ScanError
		if errors.As(res.Err, &scanErr) {
			m.setError(errmsg.FormatWith(errmsg.OpOpenDirectory, job.Dir, scanErr.Err))
		} else {
			m.setError(errmsg.Format(errmsg.OpLoadTags, res.Err))
		}
		return m, nil
	}

	m.Session = res.Session
	m.Table.SetRows(m.Session.Store.Records())
	m.Table.SetSort(m.Session.Store.SortState())
	m.Table.SelectRow(0)
	log.WithField("files", m.Session.Store.Len()).Info("load finished")

	if m.StateMgr != nil {
		if err := m.StateMgr.AddRecent(job.Dir, m.Config.RecentDirsLimit()); err != nil {
			log.WithError(err).Warn(errmsg.Format(errmsg.OpRecentSave, err))
		}
	}

	m.setInfo(fmt.Sprintf("Loaded %d files", m.Session.Store.Len()))
	return m, nil
}

func (m Model) finishSave(job *session.Job, res session.Result) (tea.Model, tea.Cmd) {
	log := m.Log.WithFields(logrus.Fields{"job": job.ID, "dir": job.Dir})
	sum := res.Summary
	if len(sum.Failed) > 0 {
		log.WithField("failed", len(sum.Failed)).Warn("save finished with failures")
		m.setError(errmsg.Format(errmsg.OpSaveTags,
			fmt.Errorf("%d of %d files could not be written", len(sum.Failed), sum.Total)))
		return m, nil
	}

	log.WithField("files", sum.Total).Info("save finished")
	return m, m.setSuccess(msgSaved)
}

// refreshTable copies the store's current order into the table view.
func (m *Model) refreshTable() {
	if m.Session == nil {
		m.Table.SetRows(nil)
		return
	}
	m.Table.SetRows(m.Session.Store.Records())
	m.Table.SetSort(m.Session.Store.SortState())
}

func (m *Model) reportStartError(op errmsg.Op, err error) {
	var pre *session.PreconditionError
	switch {
	case errors.As(err, &pre):
		m.setError(msgNoDirectory)
	case errors.Is(err, session.ErrBusy):
		m.setBusy()
	default:
		m.Log.WithError(err).WithField("op", string(op)).Warn("operation rejected")
		m.setError(errmsg.Format(op, err))
	}
}

func (m *Model) setBusy() {
	m.setError("Busy: " + session.ErrBusy.Error())
}

func (m *Model) setError(text string) {
	m.statusSeq++
	m.Status = Status{Text: text, Error: true}
}

func (m *Model) setInfo(text string) {
	m.statusSeq++
	m.Status = Status{Text: text}
}

// setSuccess shows text and returns the command that clears it.
func (m *Model) setSuccess(text string) tea.Cmd {
	m.setInfo(text)
	return StatusClearCmd(m.statusSeq)
}
