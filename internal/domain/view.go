package domain

// View is one of the screens of the recipe book.
type View int

const (
	// ViewList is the initial view; the app always returns here.
	ViewList View = iota
	// ViewAdd shows the draft form.
	ViewAdd
	// ViewDetail shows one selected recipe.
	ViewDetail
)

// String returns a human-readable view name.
func (v View) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewAdd:
		return "add"
	case ViewDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// ViewStatus is a snapshot of the controller for status displays.
type ViewStatus struct {
	View    View
	Title   string // selected recipe or draft title, if any
	Recipes int
}
