// Package main is the entry point for the lecture-notes-cli application.
// It initializes the root command and registers the scan, run and pipeline
// step sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "lecture_note_service/cmd/lecture-notes-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "lecture-notes-cli",
		Short: "Lecture note pipeline CLI tool",
		Long: `lecture-notes-cli turns recorded lectures (slide PDFs + STT transcripts)
into organized lecture notes.

Folders under the data directory follow the NN-speaker-topic-YYMMDD convention
and hold the PDF and TXT inputs. The pipeline steps are ingest, match,
summarize, refine, render and publish; "run" walks all of them interactively.

Model-assisted steps require the ANTHROPIC_API_KEY environment variable.
Without it, matching falls back to time-based assignment, summaries degrade to
raw transcript excerpts, and refinement is skipped.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register scan command
	if err := commands.InitScanCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize scan commands: %w", err)
	}

	// Register interactive run command
	if err := commands.InitRunCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize run commands: %w", err)
	}

	// Register individual pipeline step commands
	if err := commands.InitPipelineCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize pipeline commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
