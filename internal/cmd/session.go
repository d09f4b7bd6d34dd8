package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/studyplan/internal/api"
	"github.com/Iron-Ham/studyplan/internal/calendar"
	"github.com/Iron-Ham/studyplan/internal/config"
	"github.com/Iron-Ham/studyplan/internal/event"
	"github.com/Iron-Ham/studyplan/internal/logging"
	"github.com/Iron-Ham/studyplan/internal/planclient"
	"github.com/Iron-Ham/studyplan/internal/tui/styles"
)

// session bundles what one command run talks to.
type session struct {
	cfg    *config.Config
	logger *logging.Logger
	bus    *event.Bus
	client *api.Client
	ctrl   *planclient.Controller
}

func newSession(cfg *config.Config) (*session, error) {
	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	client, err := api.New(cfg.Server.BaseURL,
		api.WithTimeout(cfg.Server.Timeout),
		api.WithLogger(logger),
	)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("invalid server.base_url: %w", err)
	}

	bus := event.NewBus(logger)
	cal := calendar.New(time.Now(),
		calendar.WithSeed(cfg.Calendar.Seed),
		calendar.WithWeekStart(cfg.Calendar.WeekStartDay()),
	)
	ctrl := planclient.New(planclient.Options{
		Calendar: cal,
		Bus:      bus,
		Logger:   logger,
	})

	logger.Info("session started", "base_url", client.BaseURL())
	return &session{cfg: cfg, logger: logger, bus: bus, client: client, ctrl: ctrl}, nil
}

func (s *session) Close() error {
	s.bus.Clear()
	return s.logger.Close()
}

// form returns the controller form for the configured values.
func (s *session) form() planclient.Form {
	return planclient.Form{
		Days:     strconv.Itoa(s.cfg.Form.Days),
		Hours:    strconv.Itoa(s.cfg.Form.Hours),
		Email:    s.cfg.Form.Email,
		WhatsApp: s.cfg.Form.WhatsApp,
	}
}

func newLogger(lc config.LoggingConfig) (*logging.Logger, error) {
	if !lc.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(config.StateDir(), lc.Level, logging.RotationConfig{
		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		Compress:   lc.Compress,
	})
}

// loadThemes registers the user's custom themes and reports files that
// failed to load.
func loadThemes(cmd *cobra.Command) {
	_, errs := styles.DiscoverCustomThemes(filepath.Join(config.ConfigDir(), styles.ThemesDirName))
	for _, err := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
}

// formFlags are the plan request flags shared by start and generate.
type formFlags struct {
	days     int
	hours    int
	email    string
	whatsapp string
	files    []string
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.days, "days", 0, "number of study days (default from form.days)")
	cmd.Flags().IntVar(&f.hours, "hours", 0, "study hours per day (default from form.hours)")
	cmd.Flags().StringVar(&f.email, "email", "", "address the plan is mailed to")
	cmd.Flags().StringVar(&f.whatsapp, "whatsapp", "", "10-digit WhatsApp number the plan is sent to")
	cmd.Flags().StringArrayVarP(&f.files, "file", "f", nil, "course material to upload (repeatable, globs allowed)")
}

// apply overrides the form section of cfg with the flags that were set and
// revalidates it. The WhatsApp number is left to the controller, which
// reports a bad number in the chat log.
func (f *formFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("days") {
		cfg.Form.Days = f.days
	}
	if flags.Changed("hours") {
		cfg.Form.Hours = f.hours
	}
	if flags.Changed("email") {
		cfg.Form.Email = f.email
	}
	if flags.Changed("whatsapp") {
		cfg.Form.WhatsApp = f.whatsapp
	}
	var errs config.ValidationErrors
	for _, e := range cfg.Validate() {
		if e.Field == "form.whatsapp" {
			continue
		}
		errs = append(errs, e)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
