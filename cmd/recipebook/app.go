package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/engine"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// screen is the part of display.UI the REPL drives.
type screen interface {
	InputChan() <-chan string
	Println(a ...interface{})
	PrintChat(text string)
	PrintHint(text string)
	PrintHeading(text string)
	PrintRecipeList(recipes []domain.Recipe)
	PrintRecipe(r domain.Recipe)
	PrintDraft(d domain.Draft)
	PrintCategories()
}

type cliApp struct {
	ctl      *engine.Controller
	parser   domain.IntentParser
	notifier domain.Notifier
	log      *logger.Logger
	ui       screen
}

func (a *cliApp) run(ctx context.Context) {
	a.ui.PrintChat("Welcome to your recipe book.")
	a.ui.Println("")
	a.showList()

	uiCh := a.ui.InputChan()

	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		intent, err := a.parser.Parse(ctx, input, a.ctl.View())
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("intent: %s (field=%q payload=%q)", intent.Type, intent.Field, intent.Payload)
		if quit := a.handleIntent(ctx, intent); quit {
			return
		}
	}
}

// handleIntent dispatches one intent. It returns true when the app should
// exit.
func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	switch intent.Type {
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentQuit:
		a.ui.PrintChat("Bye!")
		return true
	case domain.IntentListRecipes:
		a.listRecipes()
	case domain.IntentAddRecipe:
		a.openAdd()
	case domain.IntentSelectRecipe:
		a.selectRecipe(intent.Payload)
	case domain.IntentSetField:
		a.report(ctx, a.ctl.SetField(intent.Field, intent.Payload))
	case domain.IntentAppendField:
		a.report(ctx, a.ctl.AppendField(intent.Field, intent.Payload))
	case domain.IntentPickImage:
		a.pickImage(ctx)
	case domain.IntentClearImage:
		if a.report(ctx, a.ctl.ClearImage()) {
			a.ui.PrintHint("Photo removed.")
		}
	case domain.IntentShowDraft:
		if a.report(ctx, a.requireView(domain.ViewAdd)) {
			a.ui.PrintDraft(a.ctl.Draft())
		}
	case domain.IntentCategories:
		a.ui.PrintCategories()
	case domain.IntentSave:
		a.save(ctx)
	case domain.IntentCancel:
		if a.report(ctx, a.ctl.Cancel()) {
			a.ui.PrintHint("Draft discarded.")
			a.showList()
		}
	case domain.IntentBack:
		if a.report(ctx, a.ctl.Back()) {
			a.showList()
		}
	case domain.IntentDelete:
		a.deleteSelected(ctx)
	case domain.IntentUnknown:
		a.ui.PrintHint(fmt.Sprintf("Didn't catch %q. Type 'help' for commands.", intent.Payload))
	}
	return false
}

// listRecipes shows the list, leaving ADD or DETAIL first.
func (a *cliApp) listRecipes() {
	switch a.ctl.View() {
	case domain.ViewDetail:
		_ = a.ctl.Back()
	case domain.ViewAdd:
		if !a.ctl.Draft().IsEmpty() {
			a.ui.PrintHint("You have an unsaved draft. Type 'save' or 'cancel' first.")
			return
		}
		_ = a.ctl.Cancel()
	}
	a.showList()
}

func (a *cliApp) openAdd() {
	if a.ctl.View() == domain.ViewDetail {
		_ = a.ctl.Back()
	}
	if !a.report(context.Background(), a.ctl.OpenAdd()) {
		return
	}
	a.ui.PrintDraft(a.ctl.Draft())
	a.ui.PrintHint("Fill fields with 'set <field> <value>' or '<field>: <value>'. 'image' adds a photo.")
}

func (a *cliApp) selectRecipe(payload string) {
	n, err := strconv.Atoi(payload)
	if err != nil {
		a.ui.PrintHint(fmt.Sprintf("%q is not a recipe number.", payload))
		return
	}
	if a.ctl.View() == domain.ViewDetail {
		_ = a.ctl.Back()
	}
	if err := a.ctl.SelectIndex(n); err != nil {
		a.report(context.Background(), err)
		return
	}
	a.showSelected()
}

func (a *cliApp) pickImage(ctx context.Context) {
	picked, err := a.ctl.PickImage(ctx)
	if !a.report(ctx, err) {
		return
	}
	if picked {
		a.ui.PrintHint("Photo attached: " + a.ctl.Draft().Image)
	} else {
		a.ui.PrintHint("No photo chosen.")
	}
}

func (a *cliApp) save(ctx context.Context) {
	rec, err := a.ctl.Save(ctx)
	if !a.report(ctx, err) {
		return
	}
	_ = a.notifier.Notify(ctx, fmt.Sprintf("Saved %q.", rec.Title))
	a.showList()
}

func (a *cliApp) deleteSelected(ctx context.Context) {
	sel, _ := a.ctl.Selected()
	deleted, err := a.ctl.Delete(ctx)
	if !a.report(ctx, err) {
		return
	}
	if !deleted {
		a.ui.PrintHint("Kept it.")
		return
	}
	_ = a.notifier.Notify(ctx, fmt.Sprintf("Deleted %q.", sel.Title))
	a.showList()
}

func (a *cliApp) showList() {
	a.ui.PrintRecipeList(a.ctl.Recipes())
}

func (a *cliApp) showSelected() {
	if r, ok := a.ctl.Selected(); ok {
		a.ui.PrintRecipe(r)
	}
}

func (a *cliApp) requireView(v domain.View) error {
	if cur := a.ctl.View(); cur != v {
		return fmt.Errorf("%w: in %s view, need %s", domain.ErrWrongView, cur, v)
	}
	return nil
}

// report shows err to the user and returns true when there was none.
func (a *cliApp) report(ctx context.Context, err error) bool {
	if err == nil {
		return true
	}

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		a.ui.PrintHint(fmt.Sprintf("Can't save yet: %s required.", strings.Join(ve.Missing, " and ")))
	case errors.Is(err, domain.ErrWrongView):
		a.ui.PrintHint(fmt.Sprintf("That doesn't work in the %s view. Type 'help' for commands.", a.ctl.View()))
	case errors.Is(err, domain.ErrUnknownField):
		a.ui.PrintHint(fmt.Sprintf("Unknown field. Fields: %s.", strings.Join(domain.DraftFields, ", ")))
	case errors.Is(err, domain.ErrNotFound):
		a.ui.PrintHint("No such recipe.")
	case isAlert(err):
		a.alert(ctx, fmt.Sprintf("Nothing was changed: %v", err))
	default:
		a.log.Error("unexpected error: %v", err)
		a.alert(ctx, err.Error())
	}
	return false
}

func (a *cliApp) alert(ctx context.Context, message string) {
	_ = a.notifier.NotifyUrgent(ctx, message)
}

func (a *cliApp) showHelp() {
	a.ui.PrintHeading("Commands")
	a.ui.PrintHint("list               show all recipes")
	a.ui.PrintHint("<n> / open <n>     open recipe number n")
	a.ui.PrintHint("+ / add            start a new recipe")
	a.ui.Println("")
	a.ui.PrintHeading("While adding")
	a.ui.PrintHint("set <field> <text>      replace a field (title, category, servings, prep, cook,")
	a.ui.PrintHint("                        description, ingredients, instructions)")
	a.ui.PrintHint("<field>: <text>         same as set")
	a.ui.PrintHint("append <field> <text>   add a line to a field")
	a.ui.PrintHint("image / noimage         attach or remove a photo")
	a.ui.PrintHint("draft / categories      show the form / suggested categories")
	a.ui.PrintHint("save / cancel")
	a.ui.Println("")
	a.ui.PrintHeading("While viewing a recipe")
	a.ui.PrintHint("back / delete")
	a.ui.Println("")
	a.ui.PrintHint("help, quit")
}
