// Package main is the entry point for the report-vault-cli application.
// It registers the key, cipher and report sub-commands and executes the command-line interface.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/cmd/report-vault-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "report-vault-cli",
		Short: "Encrypted report vault CLI tool",
		Long: `report-vault-cli manages AES-256-GCM report encryption keys and encrypted reports.
Keys are generated or derived locally and written base64 encoded with owner-only permissions.
The store, retrieve and list commands use the same configuration file as the REST API,
so REPORT_VAULT_* environment variables override file values here as well.`,
		SilenceUsage: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitCipherCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	if err := commands.InitReportCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize report commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
