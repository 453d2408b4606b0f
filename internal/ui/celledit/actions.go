package celledit

import (
	"github.com/llehouerou/tagbatch/internal/table"
	"github.com/llehouerou/tagbatch/internal/ui/action"
)

// Result is the outcome of an edit: the new value for one cell, or a cancel.
type Result struct {
	Row      int
	Column   table.Column
	Value    string
	Canceled bool
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "celledit.result" }

// ActionMsg creates an action.Msg for a celledit action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "celledit", Action: a}
}
