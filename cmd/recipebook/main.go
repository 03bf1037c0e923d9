// Recipe Book is a personal recipe keeper for the terminal.
//
// Usage:
//
//	recipebook [-db path] [-ephemeral] [-verbose] [-quiet] [-log-file path]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/hammamikhairi/recipebook/internal/config"
	"github.com/hammamikhairi/recipebook/internal/conversation"
	"github.com/hammamikhairi/recipebook/internal/display"
	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/engine"
	"github.com/hammamikhairi/recipebook/internal/logger"
	"github.com/hammamikhairi/recipebook/internal/recipe"
	"github.com/hammamikhairi/recipebook/internal/storage"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	// Direct logs to a file by default so the REPL stays clean.
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" && cfg.LogFile != "stderr" {
		dir := filepath.Dir(cfg.LogFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.LogFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}
	stdlog.SetOutput(logOut)

	log := logger.New(logger.ParseLevel(cfg.LogLevel), logOut)
	defer log.Sync()

	// Cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Durable store.
	var kv domain.KVStore
	if cfg.Ephemeral {
		kv = storage.NewMemoryStore(log.Named("store"))
		log.Info("ephemeral mode: recipes are kept in memory only")
	} else {
		bolt, err := storage.OpenBolt(cfg.DBPath, log.Named("store"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer bolt.Close()
		log.Info("recipes stored in %s", bolt.Path())
		kv = bolt
	}

	// Wire dependencies.
	repo := recipe.NewRepository(recipe.NewBlobAdapter(kv, log.Named("blob")), log.Named("repository"))
	loadErr := repo.Initialize(ctx)

	var ctl *engine.Controller
	ui := display.NewUI(statusFunc(func() domain.ViewStatus { return ctl.Status() }))
	prompter := conversation.NewLinePrompter(ui.InputChan(), ui.PrintChatf, log.Named("prompt"))
	ctl = engine.New(repo, prompter, prompter, log.Named("controller"))

	app := &cliApp{
		ctl:      ctl,
		parser:   conversation.NewKeywordParser(log.Named("parser")),
		notifier: conversation.NewCLINotifier(log.Named("notify"), ui.PrintChatf, ui.PrintUrgentf),
		log:      log,
		ui:       ui,
	}

	fmt.Println(display.RenderBanner("Type 'help' for commands, 'quit' to exit."))

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		if loadErr != nil {
			app.alert(ctx, fmt.Sprintf("Could not read your saved recipes (%v). Starting with an empty book.", loadErr))
		}
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal and blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}

// statusFunc adapts a closure to display.StatusSource.
type statusFunc func() domain.ViewStatus

func (f statusFunc) Status() domain.ViewStatus { return f() }

// isAlert reports whether err should be shown as an alert rather than a
// hint.
func isAlert(err error) bool {
	return errors.Is(err, domain.ErrStorageWrite) || errors.Is(err, domain.ErrStorageRead)
}
