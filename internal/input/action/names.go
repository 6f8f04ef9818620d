package action

import "sort"

// nameTable maps keyfile action names to nullary kinds.
// Names are case-sensitive.
var nameTable = map[string]Kind{
	"unselect":              Unselect,
	"scroll_up":             ScrollUp,
	"scroll_down":           ScrollDown,
	"delete":                DeleteSelected,
	"select_up":             SelectUp,
	"select_down":           SelectDown,
	"select_left":           SelectLeft,
	"select_right":          SelectRight,
	"erase":                 EraseChar,
	"create_sibling":        CreateSibling,
	"create_child":          CreateChild,
	"create_free_node":      CreateFreeNode,
	"execute":               ExecSelected,
	"drill_down":            DrillDown,
	"pop_up":                PopUp,
	"jump":                  PrefixJump,
	"toggle_completed":      ToggleCompleted,
	"toggle_hide_completed": ToggleHideCompleted,
	"arrow":                 Arrow,
	"auto_arrange":          AutoArrange,
	"toggle_collapsed":      ToggleCollapsed,
	"quit":                  Quit,
	"save":                  Save,
	"toggle_show_logs":      ToggleShowLogs,
	"enter_command":         EnterCmd,
	"find_task":             FindTask,
	"yank_paste_node":       YankPasteNode,
	"raise_selected":        RaiseSelected,
	"lower_selected":        LowerSelected,
	"search":                Search,
	"undo_delete":           UndoDelete,
	"help":                  Help,
	"select_parent":         SelectParent,
	"select_next_sibling":   SelectNextSibling,
	"select_prev_sibling":   SelectPrevSibling,
}

// kindToName is the inverse of nameTable.
var kindToName = func() map[Kind]string {
	m := make(map[Kind]string, len(nameTable))
	for name, k := range nameTable {
		m[k] = name
	}
	return m
}()

// FromName returns the nullary action for a keyfile name.
// The second result is false for unknown names.
func FromName(name string) (Action, bool) {
	k, ok := nameTable[name]
	if !ok {
		return Action{}, false
	}
	return Of(k), true
}

// Name returns the keyfile name for a nullary kind.
// Payload-carrying kinds have no name.
func Name(k Kind) (string, bool) {
	name, ok := kindToName[k]
	return name, ok
}

// Names returns every keyfile action name in sorted order.
func Names() []string {
	names := make([]string, 0, len(nameTable))
	for name := range nameTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
