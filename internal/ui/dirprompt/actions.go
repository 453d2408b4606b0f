package dirprompt

import (
	"github.com/llehouerou/tagbatch/internal/ui/action"
)

// Result carries the directory chosen by the user.
// An empty Dir with Canceled false means the user confirmed an empty path.
type Result struct {
	Dir      string
	Canceled bool
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "dirprompt.result" }

// ActionMsg creates an action.Msg for a dirprompt action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "dirprompt", Action: a}
}
