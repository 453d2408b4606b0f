// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"
	ActionOpen Action = "open_directory"

	// Table navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Table commands
	ActionEdit       Action = "edit"        // enter - edit focused cell
	ActionSave       Action = "save"        // ctrl+s
	ActionSortColumn Action = "sort_column" // s - sort focused column
	ActionSort1      Action = "sort_1"      // 1..5 - sort column by position
	ActionSort2      Action = "sort_2"
	ActionSort3      Action = "sort_3"
	ActionSort4      Action = "sort_4"
	ActionSort5      Action = "sort_5"

	// Text input (cell editor, directory prompt)
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
	ActionRecent  Action = "recent_next" // tab - cycle recent directories
)

// SortIndex returns the zero-based column index of a positional sort action.
func SortIndex(a Action) (int, bool) {
	switch a {
	case ActionSort1:
		return 0, true
	case ActionSort2:
		return 1, true
	case ActionSort3:
		return 2, true
	case ActionSort4:
		return 3, true
	case ActionSort5:
		return 4, true
	default:
		return 0, false
	}
}
