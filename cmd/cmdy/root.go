package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/cmdy/internal/action"
	"github.com/raphi011/cmdy/internal/config"
	"github.com/raphi011/cmdy/internal/log"
	"github.com/raphi011/cmdy/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Selection flags, shared by the root command and the action
	// subcommands
	dirFlags []string
	tagFlags []string
	search   string

	// Shared state injected into commands
	cfg *config.Config
)

// rootCmd represents the base command. Invoked without a subcommand it
// selects a snippet and runs it.
var rootCmd = &cobra.Command{
	Use:   "cmdy",
	Short: "Lists and runs predefined command snippets",
	Long: `cmdy is a launcher for your personal command snippets.

Snippets are defined in TOML files under ~/.config/cmdy/commands (or the
directories you configure), picked through an interactive filter like
fzf, and run, copied, or opened in your editor.`,
	Example: `  cmdy                      # select a snippet and run it
  cmdy -t files             # only snippets tagged "files"
  cmdy -s docker --dry-run  # preview, filter pre-filled with "docker"
  cmdy clip                 # copy the selected command instead
  cmdy edit                 # open the selected snippet's file in $EDITOR`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	Args:                       cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now; attaching the logger earlier would
		// snapshot -v/-q before they take effect.
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
		cmd.SetContext(ctx)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		l := log.FromContext(ctx)

		dryRun, _ := cmd.Flags().GetBool("dry-run")

		reg, err := loadFilteredRegistry(ctx)
		if err != nil {
			return err
		}
		if reportEmpty(ctx, reg) {
			return nil
		}

		snip, err := chooseSnippet(ctx, reg)
		if err != nil {
			return err
		}
		if snip == nil {
			l.Println("No selection made.")
			return nil
		}

		if dryRun {
			action.DryRun(ctx, snip)
			return nil
		}
		return action.Run(ctx, snip, cfg.OverwriteShellCommand)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config; a malformed config file is fatal, an absent one is not
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cmdy: %v\n", err)
		os.Exit(1)
	}
	cfg = &loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code := exitCode(err)
		if code == 1 {
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, "Run 'cmdy -h' for help")
		}
		os.Exit(code)
	}
}

// exitCode maps a command error to the process exit status. A snippet
// that ran and failed keeps the exit code of its shell.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Selection flags, shared with the action subcommands
	rootCmd.PersistentFlags().StringArrayVar(&dirFlags, "dir", nil, "Snippet directory to scan (repeatable, replaces the configured search list)")
	rootCmd.PersistentFlags().StringArrayVarP(&tagFlags, "tag", "t", nil, "Only show snippets carrying this tag (repeatable, all must match)")
	rootCmd.PersistentFlags().StringVarP(&search, "search", "s", "", "Pre-populate the selector's filter query")

	rootCmd.Flags().Bool("dry-run", false, "Print the selected command instead of running it")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newClipCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInitCmd())
}
