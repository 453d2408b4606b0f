// Package app is the terminal front end of the tag editor. It only issues
// session operations and renders their results; all tag I/O happens in
// background jobs polled from the update loop.
package app

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/tagbatch/internal/config"
	"github.com/llehouerou/tagbatch/internal/errmsg"
	"github.com/llehouerou/tagbatch/internal/keymap"
	"github.com/llehouerou/tagbatch/internal/session"
	"github.com/llehouerou/tagbatch/internal/state"
	"github.com/llehouerou/tagbatch/internal/ui/celledit"
	"github.com/llehouerou/tagbatch/internal/ui/dirprompt"
	"github.com/llehouerou/tagbatch/internal/ui/helpbindings"
	"github.com/llehouerou/tagbatch/internal/ui/jobbar"
	"github.com/llehouerou/tagbatch/internal/ui/tagtable"
)

// Model is the root application model.
type Model struct {
	Config     *config.Config
	Controller *session.Controller
	StateMgr   state.Interface
	Log        logrus.FieldLogger

	// Session is nil until a directory has been loaded.
	Session *session.Session
	Table   tagtable.Model

	// Job is the running load or save, nil when idle.
	Job     *session.Job
	JobView *jobbar.Job

	// pendingSort is the sort whose reload is running, undone if it fails.
	pendingSort *session.SortResult

	Popup  PopupKind
	Prompt *dirprompt.Model
	Editor *celledit.Model
	Help   *helpbindings.Model

	Status    Status
	statusSeq int

	keys    *keymap.Resolver
	initCmd tea.Cmd
	Width   int
	Height  int
}

// Deps are the collaborators the model needs.
type Deps struct {
	Config     *config.Config
	Controller *session.Controller
	StateMgr   state.Interface
	Log        logrus.FieldLogger
}

// New creates the model. When dir is non-empty it is loaded right away;
// otherwise the directory prompt opens.
func New(deps Deps, dir string) Model {
	if deps.Config == nil {
		deps.Config = &config.Config{}
	}
	if deps.Log == nil {
		log := logrus.New()
		log.SetOutput(io.Discard)
		deps.Log = log
	}

	prompt := dirprompt.New()
	editor := celledit.New()
	help := helpbindings.New()

	m := Model{
		Config:     deps.Config,
		Controller: deps.Controller,
		StateMgr:   deps.StateMgr,
		Log:        deps.Log,
		Table:      tagtable.New(),
		Prompt:     &prompt,
		Editor:     &editor,
		Help:       &help,
		keys:       keymap.ForContexts("global", "table"),
	}
	m.Table.SetFocused(true)

	if dir != "" {
		m.initCmd = m.startLoad(dir)
	} else {
		m.initCmd = m.openPrompt()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// initialDir is the path offered by the directory prompt: the configured
// default folder, else the most recently opened directory, else the cwd.
func (m Model) initialDir(recent []state.RecentDir) string {
	if m.Config.DefaultFolder != "" {
		return m.Config.DefaultFolder
	}
	if len(recent) > 0 {
		return recent[0].Path
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return ""
}

func (m Model) recentDirs() []state.RecentDir {
	if m.StateMgr == nil {
		return nil
	}
	dirs, err := m.StateMgr.Recent(m.Config.RecentDirsLimit())
	if err != nil {
		m.Log.WithError(err).Warn(errmsg.Format(errmsg.OpRecentLoad, err))
		return nil
	}
	return dirs
}

// Busy reports whether a background job is running.
func (m Model) Busy() bool {
	return m.Job != nil
}
