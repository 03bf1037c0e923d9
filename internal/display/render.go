package display

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

// PrintRecipeList prints the LIST view.
func (u *UI) PrintRecipeList(recipes []domain.Recipe) {
	if len(recipes) == 0 {
		u.PrintHint("No recipes yet. Type '+' to add one.")
		return
	}
	u.PrintHeading("Your recipes:")
	u.Println("")
	for i, r := range recipes {
		u.PrintBody(listLine(i+1, r))
		if meta := metaLine(r); meta != "" {
			u.PrintHint("      " + meta)
		}
	}
	u.Println("")
	u.PrintChat("Open a recipe by number, or type '+' to add one.")
}

// PrintRecipe prints the DETAIL view.
func (u *UI) PrintRecipe(r domain.Recipe) {
	u.PrintHeading(r.Title)
	if meta := metaLine(r); meta != "" {
		u.PrintHint(meta)
	}
	if r.HasImage() {
		u.PrintHint("Photo: " + r.ImageRef())
	}
	for _, s := range detailSections(r) {
		u.Println("")
		u.PrintHeading(s.heading)
		u.PrintBody(s.body)
	}
	u.Println("")
	u.PrintHint("Type 'back' to return or 'delete' to remove this recipe.")
}

// PrintDraft prints the ADD form with the draft's current values.
func (u *UI) PrintDraft(d domain.Draft) {
	u.PrintHeading("New recipe")
	for _, line := range draftLines(d) {
		u.PrintBody(line)
	}
	u.PrintHint("Required: title, ingredients. Type 'save' when done or 'cancel' to discard.")
}

// PrintCategories prints the suggested category values.
func (u *UI) PrintCategories() {
	u.PrintHint("Suggested categories: " + strings.Join(domain.SuggestedCategories, ", "))
	u.PrintHint("Any other text works too.")
}

type section struct {
	heading string
	body    string
}

func listLine(n int, r domain.Recipe) string {
	return fmt.Sprintf("[%d] %s", n, r.Title)
}

// metaLine summarizes category and timings, skipping empty values.
func metaLine(r domain.Recipe) string {
	var parts []string
	if r.Category != "" {
		parts = append(parts, r.Category)
	}
	if r.Servings != "" {
		parts = append(parts, "serves "+r.Servings)
	}
	if r.PrepTime != "" {
		parts = append(parts, "prep "+r.PrepTime)
	}
	if r.CookTime != "" {
		parts = append(parts, "cook "+r.CookTime)
	}
	return strings.Join(parts, " · ")
}

func detailSections(r domain.Recipe) []section {
	var out []section
	if r.Description != "" {
		out = append(out, section{"Description", r.Description})
	}
	out = append(out, section{"Ingredients", r.Ingredients})
	if r.Instructions != "" {
		out = append(out, section{"Instructions", r.Instructions})
	}
	return out
}

func draftLines(d domain.Draft) []string {
	lines := make([]string, 0, len(domain.DraftFields))
	for _, f := range domain.DraftFields {
		v, _ := d.Field(f)
		if v == "" {
			v = "—"
		}
		if strings.Contains(v, "\n") {
			v = strings.ReplaceAll(v, "\n", " / ")
		}
		lines = append(lines, fmt.Sprintf("%-13s %s", f+":", v))
	}
	return lines
}
