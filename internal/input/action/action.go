package action

import "fmt"

// Mode is the editor's interaction state.
type Mode uint8

const (
	// Normal is the command mode; printable keys are mostly commands.
	Normal Mode = iota
	// Insert is the text entry mode.
	Insert
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case Insert:
		return "Insert"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Modes lists every mode in declaration order.
func Modes() []Mode {
	return []Mode{Normal, Insert}
}

// Kind identifies an editor command.
type Kind uint8

const (
	// KindNone is the zero value and never produced by resolution.
	KindNone Kind = iota

	// Payload-carrying kinds
	SwitchMode
	LeftClick
	RightClick
	Release
	Char

	// Selection and navigation
	Unselect
	ScrollUp
	ScrollDown
	SelectUp
	SelectDown
	SelectLeft
	SelectRight
	SelectParent
	SelectNextSibling
	SelectPrevSibling
	PrefixJump
	DrillDown
	PopUp

	// Editing
	EraseChar
	DeleteSelected
	UndoDelete
	YankPasteNode

	// Structure
	CreateSibling
	CreateChild
	CreateFreeNode
	RaiseSelected
	LowerSelected
	Arrow
	AutoArrange
	ToggleCollapsed
	ToggleCompleted
	ToggleHideCompleted

	// Commands
	ExecSelected
	EnterCmd
	FindTask
	Search
	Help
	ToggleShowLogs
	Save
	Quit
)

var kindNames = [...]string{
	KindNone:            "None",
	SwitchMode:          "Mode",
	LeftClick:           "LeftClick",
	RightClick:          "RightClick",
	Release:             "Release",
	Char:                "Char",
	Unselect:            "UnselectRet",
	ScrollUp:            "ScrollUp",
	ScrollDown:          "ScrollDown",
	SelectUp:            "SelectUp",
	SelectDown:          "SelectDown",
	SelectLeft:          "SelectLeft",
	SelectRight:         "SelectRight",
	SelectParent:        "SelectParent",
	SelectNextSibling:   "SelectNextSibling",
	SelectPrevSibling:   "SelectPrevSibling",
	PrefixJump:          "PrefixJump",
	DrillDown:           "DrillDown",
	PopUp:               "PopUp",
	EraseChar:           "EraseChar",
	DeleteSelected:      "DeleteSelected",
	UndoDelete:          "UndoDelete",
	YankPasteNode:       "YankPasteNode",
	CreateSibling:       "CreateSibling",
	CreateChild:         "CreateChild",
	CreateFreeNode:      "CreateFreeNode",
	RaiseSelected:       "RaiseSelected",
	LowerSelected:       "LowerSelected",
	Arrow:               "Arrow",
	AutoArrange:         "AutoArrange",
	ToggleCollapsed:     "ToggleCollapsed",
	ToggleCompleted:     "ToggleCompleted",
	ToggleHideCompleted: "ToggleHideCompleted",
	ExecSelected:        "ExecSelected",
	EnterCmd:            "EnterCmd",
	FindTask:            "FindTask",
	Search:              "Search",
	Help:                "Help",
	ToggleShowLogs:      "ToggleShowLogs",
	Save:                "Save",
	Quit:                "Quit",
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// HasPayload reports whether actions of this kind carry data beyond the kind.
func (k Kind) HasPayload() bool {
	return k >= SwitchMode && k <= Char
}

// Action is a resolved editor command.
// Only the fields relevant to Kind are set; the rest stay zero so that
// equal commands compare equal.
type Action struct {
	Kind Kind

	// Mode is the target mode for SwitchMode and the active mode for Char.
	Mode Mode

	// Rune is the typed character for Char.
	Rune rune

	// X and Y are zero-based coordinates for mouse actions.
	X, Y uint16
}

// Of returns the nullary action of the given kind.
func Of(k Kind) Action {
	return Action{Kind: k}
}

// SwitchTo returns an action that switches the editor into m.
func SwitchTo(m Mode) Action {
	return Action{Kind: SwitchMode, Mode: m}
}

// CharIn returns the literal-character action for r typed in mode m.
func CharIn(m Mode, r rune) Action {
	return Action{Kind: Char, Mode: m, Rune: r}
}

// LeftClickAt returns a left-click action at (x, y).
func LeftClickAt(x, y uint16) Action {
	return Action{Kind: LeftClick, X: x, Y: y}
}

// RightClickAt returns a right-click action at (x, y).
func RightClickAt(x, y uint16) Action {
	return Action{Kind: RightClick, X: x, Y: y}
}

// ReleaseAt returns a mouse release action at (x, y).
func ReleaseAt(x, y uint16) Action {
	return Action{Kind: Release, X: x, Y: y}
}

// IsZero reports whether a is the zero Action.
func (a Action) IsZero() bool {
	return a == Action{}
}

// String returns diagnostic text such as "Quit", "Mode(Insert)" or
// "Char(Normal, 'x')". The format is for humans and is not parsed back.
func (a Action) String() string {
	switch a.Kind {
	case SwitchMode:
		return fmt.Sprintf("Mode(%s)", a.Mode)
	case Char:
		return fmt.Sprintf("Char(%s, %q)", a.Mode, a.Rune)
	case LeftClick, RightClick, Release:
		return fmt.Sprintf("%s(%d, %d)", a.Kind, a.X, a.Y)
	default:
		return a.Kind.String()
	}
}
