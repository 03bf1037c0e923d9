package domain

import (
	"errors"
	"testing"
)

func TestCanonicalField(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"title", FieldTitle, false},
		{"Name", FieldTitle, false},
		{"prep-time", FieldPrepTime, false},
		{"prep_time", FieldPrepTime, false},
		{"Cook", FieldCookTime, false},
		{"prepTime", FieldPrepTime, false},
		{"steps", FieldInstructions, false},
		{"photo", FieldImage, false},
		{"calories", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := CanonicalField(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownField) {
					t.Fatalf("expected ErrUnknownField, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDraftSetAndAppend(t *testing.T) {
	var d Draft
	if !d.IsEmpty() {
		t.Fatal("zero draft should be empty")
	}

	if err := d.SetField("title", "Pasta"); err != nil {
		t.Fatalf("set title: %v", err)
	}
	if err := d.AppendField("ingredients", "eggs"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := d.AppendField("ingredients", "flour"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if d.Ingredients != "eggs\nflour" {
		t.Fatalf("expected two ingredient lines, got %q", d.Ingredients)
	}
	if d.IsEmpty() {
		t.Fatal("draft with fields should not be empty")
	}

	if err := d.SetField("calories", "300"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}

	got, err := d.Field("name")
	if err != nil || got != "Pasta" {
		t.Fatalf("expected title Pasta, got %q (%v)", got, err)
	}
}

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name        string
		draft       Draft
		wantMissing []string
	}{
		{"valid", Draft{Title: "Pasta", Ingredients: "eggs, flour"}, nil},
		{"no title", Draft{Ingredients: "eggs"}, []string{FieldTitle}},
		{"no ingredients", Draft{Title: "Pasta"}, []string{FieldIngredients}},
		{"neither", Draft{}, []string{FieldTitle, FieldIngredients}},
		{"whitespace only", Draft{Title: "  ", Ingredients: "\n\t"}, []string{FieldTitle, FieldIngredients}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantMissing == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if len(ve.Missing) != len(tt.wantMissing) {
				t.Fatalf("expected missing %v, got %v", tt.wantMissing, ve.Missing)
			}
			for i := range ve.Missing {
				if ve.Missing[i] != tt.wantMissing[i] {
					t.Fatalf("expected missing %v, got %v", tt.wantMissing, ve.Missing)
				}
			}
		})
	}
}

func TestDraftToRecipeDefaults(t *testing.T) {
	d := Draft{Title: " Pasta ", Ingredients: "eggs, flour"}
	r := d.ToRecipe("abc")

	if r.ID != "abc" {
		t.Fatalf("expected ID abc, got %s", r.ID)
	}
	if r.Title != "Pasta" {
		t.Fatalf("expected trimmed title, got %q", r.Title)
	}
	if r.Category != DefaultCategory {
		t.Fatalf("expected default category, got %q", r.Category)
	}
	if r.Image != nil {
		t.Fatalf("expected no image, got %q", *r.Image)
	}
	if r.Servings != "" || r.PrepTime != "" || r.CookTime != "" {
		t.Fatal("timing fields should default to empty")
	}

	d.SetImage("/tmp/pasta.jpg")
	d.Category = "Dinner"
	r = d.ToRecipe("abc")
	if !r.HasImage() || r.ImageRef() != "/tmp/pasta.jpg" {
		t.Fatalf("expected image reference, got %v", r.Image)
	}
	if r.Category != "Dinner" {
		t.Fatalf("expected category Dinner, got %q", r.Category)
	}

	d.ClearImage()
	if d.ToRecipe("abc").HasImage() {
		t.Fatal("expected image cleared")
	}
}

func TestViewString(t *testing.T) {
	tests := []struct {
		v    View
		want string
	}{
		{ViewList, "list"},
		{ViewAdd, "add"},
		{ViewDetail, "detail"},
		{View(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Fatalf("View(%d).String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}
