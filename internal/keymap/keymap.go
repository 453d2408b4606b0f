package keymap

// Binding maps keys to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "table", "edit", "prompt"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"ctrl+c", "q"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionOpen, []string{"o"}, "Open directory", "global"},

	// Table
	{ActionMoveUp, []string{"k", "up"}, "Move up", "table"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "table"},
	{ActionMoveLeft, []string{"h", "left"}, "Previous column", "table"},
	{ActionMoveRight, []string{"l", "right"}, "Next column", "table"},
	{ActionJumpStart, []string{"g", "home"}, "First row", "table"},
	{ActionJumpEnd, []string{"G", "end"}, "Last row", "table"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "Page up", "table"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "Page down", "table"},
	{ActionEdit, []string{"enter", "e"}, "Edit cell", "table"},
	{ActionSave, []string{"ctrl+s", "w"}, "Save tags", "table"},
	{ActionSortColumn, []string{"s"}, "Sort by column", "table"},
	{ActionSort1, []string{"1"}, "Sort by filename", "table"},
	{ActionSort2, []string{"2"}, "Sort by title", "table"},
	{ActionSort3, []string{"3"}, "Sort by artist", "table"},
	{ActionSort4, []string{"4"}, "Sort by album", "table"},
	{ActionSort5, []string{"5"}, "Sort by lyrics", "table"},

	// Cell editor
	{ActionConfirm, []string{"enter", "ctrl+s"}, "Apply edit (ctrl+s in lyrics)", "edit"},
	{ActionCancel, []string{"esc"}, "Discard edit", "edit"},

	// Directory prompt
	{ActionConfirm, []string{"enter"}, "Load directory", "prompt"},
	{ActionCancel, []string{"esc"}, "Close prompt", "prompt"},
	{ActionRecent, []string{"tab"}, "Next recent directory", "prompt"},
}

// ByContext returns key bindings filtered by context.
func ByContext(contexts ...string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		for _, c := range contexts {
			if kb.Context == c {
				result = append(result, kb)
				break
			}
		}
	}
	return result
}
