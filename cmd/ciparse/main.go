package main

import (
	"fmt"
	"os"

	"ciparse/internal/cli"
	"ciparse/internal/cli/commands"
	"ciparse/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "ciparse",
		Short: "CI test and coverage report normalizer",
		Long: `Normalizes ci_reporter XML test reports and rcov HTML coverage summaries into one report model,
resolving every test fixture to the source file it was run from.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
