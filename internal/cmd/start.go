package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Iron-Ham/studyplan/internal/config"
	"github.com/Iron-Ham/studyplan/internal/selection"
	"github.com/Iron-Ham/studyplan/internal/tui"
)

var startFlags formFlags

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Launch the interactive study planner",
	Long: `Launch the interactive study planner.

The form is pre-filled from the form section of the config file and from
any flags given here. Files passed with --file are selected on launch;
more can be dropped into the terminal once it is running.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	startFlags.register(startCmd)
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := startFlags.apply(cmd, cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	// The TUI needs a real terminal to draw into
	if _, _, err := term.GetSize(int(os.Stdout.Fd())); err != nil {
		return fmt.Errorf("stdout is not a terminal; use 'studyplan generate' for scripted runs")
	}

	loadThemes(cmd)

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if len(startFlags.files) > 0 {
		files, err := selection.Resolve(startFlags.files)
		if err != nil {
			return err
		}
		s.ctrl.SelectFiles(files)
	}

	app := tui.New(tui.Options{
		Context:    cmd.Context(),
		Service:    s.client,
		Controller: s.ctrl,
		Config:     cfg,
		Logger:     s.logger,
	}, true)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
