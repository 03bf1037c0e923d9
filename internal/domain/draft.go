package domain

import (
	"fmt"
	"strings"
)

// Draft field names. They match the JSON keys of Recipe.
const (
	FieldTitle        = "title"
	FieldImage        = "image"
	FieldCategory     = "category"
	FieldServings     = "servings"
	FieldPrepTime     = "prepTime"
	FieldCookTime     = "cookTime"
	FieldDescription  = "description"
	FieldIngredients  = "ingredients"
	FieldInstructions = "instructions"
)

// DraftFields lists the editable fields in form order.
var DraftFields = []string{
	FieldTitle,
	FieldCategory,
	FieldServings,
	FieldPrepTime,
	FieldCookTime,
	FieldDescription,
	FieldIngredients,
	FieldInstructions,
	FieldImage,
}

// fieldAliases maps normalized user spellings to canonical field names.
var fieldAliases = map[string]string{
	"title":        FieldTitle,
	"name":         FieldTitle,
	"image":        FieldImage,
	"photo":        FieldImage,
	"category":     FieldCategory,
	"servings":     FieldServings,
	"serves":       FieldServings,
	"preptime":     FieldPrepTime,
	"prep":         FieldPrepTime,
	"cooktime":     FieldCookTime,
	"cook":         FieldCookTime,
	"description":  FieldDescription,
	"desc":         FieldDescription,
	"ingredients":  FieldIngredients,
	"instructions": FieldInstructions,
	"steps":        FieldInstructions,
}

// CanonicalField resolves a user-typed field name ("prep-time", "Cook",
// "name") to its canonical form.
func CanonicalField(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "", "_", "", " ", "").Replace(n)
	if f, ok := fieldAliases[n]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Draft is a partially filled recipe under construction in the add view.
// The zero value is an empty draft.
type Draft struct {
	Title        string
	Image        string
	Category     string
	Servings     string
	PrepTime     string
	CookTime     string
	Description  string
	Ingredients  string
	Instructions string
}

// SetField replaces one field. Setting the image to "" clears it.
func (d *Draft) SetField(name, value string) error {
	p, err := d.field(name)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// AppendField adds a line to a multi-line field, keeping what is there.
func (d *Draft) AppendField(name, line string) error {
	p, err := d.field(name)
	if err != nil {
		return err
	}
	if *p == "" {
		*p = line
		return nil
	}
	*p += "\n" + line
	return nil
}

// Field returns the current value of a field.
func (d Draft) Field(name string) (string, error) {
	p, err := d.field(name)
	if err != nil {
		return "", err
	}
	return *p, nil
}

func (d *Draft) field(name string) (*string, error) {
	f, err := CanonicalField(name)
	if err != nil {
		return nil, err
	}
	switch f {
	case FieldTitle:
		return &d.Title, nil
	case FieldImage:
		return &d.Image, nil
	case FieldCategory:
		return &d.Category, nil
	case FieldServings:
		return &d.Servings, nil
	case FieldPrepTime:
		return &d.PrepTime, nil
	case FieldCookTime:
		return &d.CookTime, nil
	case FieldDescription:
		return &d.Description, nil
	case FieldIngredients:
		return &d.Ingredients, nil
	default:
		return &d.Instructions, nil
	}
}

// SetImage records a picked photo reference.
func (d *Draft) SetImage(ref string) { d.Image = ref }

// ClearImage drops the photo reference.
func (d *Draft) ClearImage() { d.Image = "" }

// IsEmpty reports whether no field has been set.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// Validate checks the required fields. Whitespace-only values count as
// empty.
func (d Draft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, FieldTitle)
	}
	if strings.TrimSpace(d.Ingredients) == "" {
		missing = append(missing, FieldIngredients)
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// ToRecipe builds the recipe to persist, trimming every field and applying
// defaults. It does not validate; call Validate first.
func (d Draft) ToRecipe(id string) Recipe {
	r := Recipe{
		ID:           id,
		Title:        strings.TrimSpace(d.Title),
		Category:     strings.TrimSpace(d.Category),
		Servings:     strings.TrimSpace(d.Servings),
		PrepTime:     strings.TrimSpace(d.PrepTime),
		CookTime:     strings.TrimSpace(d.CookTime),
		Description:  strings.TrimSpace(d.Description),
		Ingredients:  strings.TrimSpace(d.Ingredients),
		Instructions: strings.TrimSpace(d.Instructions),
	}
	if r.Category == "" {
		r.Category = DefaultCategory
	}
	if img := strings.TrimSpace(d.Image); img != "" {
		r.Image = &img
	}
	return r
}
