package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentListRecipes
	IntentAddRecipe
	IntentSelectRecipe
	IntentSetField    // Field + Payload carry the edit
	IntentAppendField // adds a line to a multi-line field
	IntentPickImage
	IntentClearImage
	IntentShowDraft
	IntentCategories
	IntentSave
	IntentCancel
	IntentBack
	IntentDelete
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentListRecipes:
		return "list_recipes"
	case IntentAddRecipe:
		return "add_recipe"
	case IntentSelectRecipe:
		return "select_recipe"
	case IntentSetField:
		return "set_field"
	case IntentAppendField:
		return "append_field"
	case IntentPickImage:
		return "pick_image"
	case IntentClearImage:
		return "clear_image"
	case IntentShowDraft:
		return "show_draft"
	case IntentCategories:
		return "categories"
	case IntentSave:
		return "save"
	case IntentCancel:
		return "cancel"
	case IntentBack:
		return "back"
	case IntentDelete:
		return "delete"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Field   string // draft field for set/append
	Payload string // optional context, e.g. list position or field value
}
