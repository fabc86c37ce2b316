package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/hark-lang/hark/internal/config"
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/driver"
	"github.com/hark-lang/hark/internal/prettyprint"
	"github.com/hark-lang/hark/internal/replstore"
)

// runREPL drives an interactive line editor: every accepted line is run
// through driver.GenerateAST independently (no persistent environment
// across lines, matching SPEC_FULL.md §6's "one top-level expression per
// submission" scope).
func runREPL(cfg config.Config) error {
	sessionID := uuid.NewString()
	logger := log.WithField("source", "repl").WithField("session", sessionID)

	historyPath := cfg.HistoryPathOr(config.DefaultHistoryPath())
	var store *replstore.Store
	if historyPath != "" {
		var err error
		store, err = replstore.Open(historyPath)
		if err != nil {
			logger.WithError(err).Warn("history disabled: could not open history store")
		} else {
			defer store.Close()
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt(cfg),
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("starting REPL: %w", err)
	}
	defer rl.Close()

	if store != nil {
		if lines, err := store.Recent(500); err == nil {
			for _, l := range lines {
				rl.SaveHistory(l)
			}
		}
	}

	colour := colourEnabled(cfg)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		if store != nil {
			if err := store.Append(line, time.Now()); err != nil {
				logger.WithError(err).Debug("failed to persist history line")
			}
		}

		result := driver.GenerateAST(line)
		if errs := result.Diagnostics.Errs(); len(errs) > 0 {
			fmt.Print(diagnostics.Render(line, errs, colour))
			continue
		}
		fmt.Printf("%s : %s\n", prettyprint.Pretty(result.Expr), result.Ty)
	}
}

func prompt(cfg config.Config) string {
	if colourEnabled(cfg) {
		return "\x1b[36mhark>\x1b[0m "
	}
	return "hark> "
}

func colourEnabled(cfg config.Config) bool {
	if cfg.Colour != nil {
		return *cfg.Colour
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
