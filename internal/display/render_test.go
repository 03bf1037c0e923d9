package display

import (
	"strings"
	"testing"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

func TestMetaLine(t *testing.T) {
	tests := []struct {
		name string
		r    domain.Recipe
		want string
	}{
		{"category only", domain.Recipe{Category: "General"}, "General"},
		{"all", domain.Recipe{Category: "Dinner", Servings: "4", PrepTime: "10m", CookTime: "1h"}, "Dinner · serves 4 · prep 10m · cook 1h"},
		{"empty", domain.Recipe{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metaLine(tt.r); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDetailSectionsSkipEmpty(t *testing.T) {
	r := domain.Recipe{Title: "Pasta", Ingredients: "eggs, flour"}
	got := detailSections(r)
	if len(got) != 1 || got[0].heading != "Ingredients" {
		t.Fatalf("expected only ingredients, got %+v", got)
	}

	r.Description = "Simple"
	r.Instructions = "Mix"
	got = detailSections(r)
	if len(got) != 3 || got[0].heading != "Description" || got[2].heading != "Instructions" {
		t.Fatalf("unexpected sections %+v", got)
	}
}

func TestDraftLines(t *testing.T) {
	d := domain.Draft{Title: "Pasta", Ingredients: "eggs\nflour"}
	lines := draftLines(d)

	if len(lines) != len(domain.DraftFields) {
		t.Fatalf("expected %d lines, got %d", len(domain.DraftFields), len(lines))
	}
	if !strings.HasPrefix(lines[0], "title:") || !strings.HasSuffix(lines[0], "Pasta") {
		t.Fatalf("unexpected title line %q", lines[0])
	}

	var ingredients string
	for _, l := range lines {
		if strings.HasPrefix(l, "ingredients:") {
			ingredients = l
		}
	}
	if !strings.HasSuffix(ingredients, "eggs / flour") {
		t.Fatalf("expected multi-line value joined, got %q", ingredients)
	}
}

func TestPromptAndHintPerView(t *testing.T) {
	views := []domain.View{domain.ViewList, domain.ViewAdd, domain.ViewDetail}
	seen := map[string]bool{}
	for _, v := range views {
		p := promptFor(v)
		if seen[p] {
			t.Fatalf("prompt %q reused across views", p)
		}
		seen[p] = true
		if hintFor(v) == "" {
			t.Fatalf("missing hint for %s", v)
		}
	}
}

func TestRecipeCount(t *testing.T) {
	if got := recipeCount(1); got != "1 recipe" {
		t.Fatalf("got %q", got)
	}
	if got := recipeCount(3); got != "3 recipes" {
		t.Fatalf("got %q", got)
	}
}

type fixedStatus domain.ViewStatus

func (f fixedStatus) Status() domain.ViewStatus { return domain.ViewStatus(f) }

func TestModelRefreshStatusUpdatesPrompt(t *testing.T) {
	m := model{source: fixedStatus{View: domain.ViewAdd, Title: "Pasta", Recipes: 2}, width: 80}
	m.input.Prompt = promptFor(domain.ViewList)

	m.refreshStatus()

	if m.input.Prompt != "add> " {
		t.Fatalf("expected add prompt, got %q", m.input.Prompt)
	}
	if m.input.Width != 80-len("add> ") {
		t.Fatalf("expected input resized, got %d", m.input.Width)
	}
	bar := m.renderBar()
	for _, want := range []string{"ADD", "Pasta", "2 recipes"} {
		if !strings.Contains(bar, want) {
			t.Fatalf("bar %q missing %q", bar, want)
		}
	}
}
