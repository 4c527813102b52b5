package overlay

// Result is what a menu input resolved to, besides any selection movement.
type Result int

const (
	ResultNone          Result = iota
	ResultOK                   // Confirm (enter, A/B button, click)
	ResultCancel               // Back (escape, X/A button, right click)
	ResultCloseKeyboard        // On-screen keyboard toggle released
	ResultChangeMounts         // The machine's mounted media changed
	ResultRefreshSystem        // The machine finished rescanning its system images
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultCancel:
		return "cancel"
	case ResultCloseKeyboard:
		return "close_keyboard"
	case ResultChangeMounts:
		return "change_mounts"
	case ResultRefreshSystem:
		return "refresh_system"
	default:
		return "none"
	}
}

// Command is one resolved menu input handed to the screen owning the list.
type Command struct {
	Result  Result
	Kind    ItemKind // Kind of the selected item when Result is ResultOK
	XChange int      // Horizontal step, -1 or 1
	Moved   bool     // The selection moved
}
