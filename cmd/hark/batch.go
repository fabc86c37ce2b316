package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/hark-lang/hark/internal/config"
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/driver"
	"github.com/hark-lang/hark/internal/prettyprint"
)

// runBatch infers the type of the single expression in path and prints
// it, or its diagnostics, exiting non-zero on failure (SPEC_FULL.md §6).
func runBatch(path string, cfg config.Config, jsonOutput bool) error {
	requestID := uuid.NewString()
	logger := log.WithField("source", path).WithField("request", requestID)

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	result := driver.GenerateAST(string(source))
	errs := result.Diagnostics.Errs()

	if len(errs) == 0 {
		logger.Info("inference succeeded")
		fmt.Printf("%s\n", prettyprint.Debug(result.Expr))
		fmt.Printf("%s : %s\n", prettyprint.Pretty(result.Expr), result.Ty)
		return nil
	}

	logger.WithField("errors", len(errs)).Warn("inference failed")
	if jsonOutput {
		if err := json.NewEncoder(os.Stdout).Encode(errs); err != nil {
			return fmt.Errorf("encoding diagnostics: %w", err)
		}
	} else {
		fmt.Print(diagnostics.Render(string(source), errs, colourEnabled(cfg)))
	}
	os.Exit(1)
	return nil
}
