// Command hark is the front end's CLI: a REPL by default, or `hark run
// <file>` for one-shot batch inference (SPEC_FULL.md §6).
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hark-lang/hark/internal/config"
)

var (
	configPath string
	jsonOutput bool
	log        = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "hark",
	Short: "hark is a type inference playground for a small Hindley-Milner language",
	Long: `hark reads expressions in a small let-polymorphic language and
reports their principal type, or the diagnostics that kept it from
having one. With no subcommand it starts an interactive REPL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return runREPL(cfg)
	},
}

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Infer the type of the expression in <file>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return runBatch(args[0], cfg, jsonOutput)
	},
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "path to config.yaml")
	runCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit diagnostics as JSON instead of human-readable text")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
