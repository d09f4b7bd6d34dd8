package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/studyplan/internal/agenda"
	"github.com/Iron-Ham/studyplan/internal/api"
	"github.com/Iron-Ham/studyplan/internal/config"
	"github.com/Iron-Ham/studyplan/internal/errors"
	"github.com/Iron-Ham/studyplan/internal/event"
	"github.com/Iron-Ham/studyplan/internal/planclient"
	"github.com/Iron-Ham/studyplan/internal/selection"
)

var (
	generateFlags    formFlags
	generateDownload bool
	generateExport   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a study plan without the interactive UI",
	Long: `Upload course material, print the generated plan and exit.

The bot messages the interactive UI would show are printed as they are
posted, followed by the day-by-day agenda. The exit status is non-zero
when the request is rejected locally, by the server, or in transit.

Examples:
  studyplan generate -f notes.pdf --whatsapp 9876543210
  studyplan generate -f 'slides/*.pdf' --days 5 --hours 3 --whatsapp 9876543210 --download
  studyplan generate -f notes.pdf --whatsapp 9876543210 --export plan.html`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateFlags.register(generateCmd)
	generateCmd.Flags().BoolVar(&generateDownload, "download", false, "save the plan PDF into download.dir")
	generateCmd.Flags().StringVar(&generateExport, "export", "", "write the agenda to a .md or .html file")
	_ = generateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := checkExportPath(generateExport); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := generateFlags.apply(cmd, cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	files, err := selection.Resolve(generateFlags.files)
	if err != nil {
		return err
	}

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	out := newPrinter(cmd.OutOrStdout())
	s.bus.Subscribe(event.TypeMessagePosted, func(e event.Event) {
		posted, ok := e.(event.MessagePostedEvent)
		if !ok || posted.Transient {
			return
		}
		out.message(posted.Role, posted.Text)
	})

	s.ctrl.SelectFiles(files)
	req, err := s.ctrl.PrepareSubmission(s.form())
	if err != nil {
		return err
	}

	s.ctrl.BeginUpload()
	res, err := s.client.Upload(cmd.Context(), req)
	s.ctrl.FinishUpload(res, err)
	if err != nil {
		return err
	}
	if s.ctrl.Plan() == nil {
		return errors.NewTransportError(api.UploadPath, errors.ErrMalformedResponse)
	}

	a := s.ctrl.Agenda()
	link := ""
	if a.HasDownload() {
		if link, err = s.client.ResolveURL(a.DownloadURL); err != nil {
			link = a.DownloadURL
		}
	}
	out.agenda(a, link)

	if generateExport != "" {
		if err := exportAgenda(a, link, generateExport); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nAgenda exported to: %s\n", generateExport)
	}

	if generateDownload {
		return download(cmd, s)
	}
	return nil
}

func download(cmd *cobra.Command, s *session) error {
	link, err := s.ctrl.DocumentLink()
	if err != nil {
		s.ctrl.PostBot("No study plan document is available to download.")
		return err
	}
	info, err := planclient.SaveDocument(cmd.Context(), s.client, link, s.cfg.Download.ResolveDir())
	s.ctrl.FinishDownload(info, err)
	return err
}

func checkExportPath(path string) error {
	if path == "" {
		return nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".html", ".htm":
		return nil
	}
	return fmt.Errorf("unsupported export format %q: use a .md or .html file", filepath.Ext(path))
}

func exportAgenda(a agenda.Agenda, link, path string) error {
	var content string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		html, err := a.HTML(link)
		if err != nil {
			return fmt.Errorf("rendering agenda: %w", err)
		}
		content = html
	default:
		content = a.Markdown(link)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing to %s: %w", path, err)
	}
	return nil
}
