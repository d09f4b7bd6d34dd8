package cmd

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/studyplan/internal/errors"
	"github.com/Iron-Ham/studyplan/internal/planclient"
	"github.com/Iron-Ham/studyplan/internal/testutil"
)

const planBody = `{
  "study_plan": [
    {"day": "Day 1", "topics": [{"name": "Graph Search", "hours": 1.5}, {"name": "Sorting", "hours": 2}]},
    {"day": "Day 2", "topics": [{"name": "Dynamic Programming", "hours": 3}]}
  ],
  "pdf_url": "/download/plan.pdf"
}`

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

// resetFlags restores every flag of c to its default so commands can be
// executed more than once per process.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

// setupEnvironment isolates config, state and the working directory, and
// points the client at a fake backend.
func setupEnvironment(t *testing.T) *testutil.Backend {
	t.Helper()

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	t.Setenv("NO_COLOR", "1")
	testutil.Chdir(t, t.TempDir())

	backend := testutil.NewBackend(t)
	t.Setenv("STUDYPLAN_SERVER_BASE_URL", backend.URL())

	viper.Reset()
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	t.Cleanup(func() {
		viper.Reset()
		_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
		resetFlags(generateCmd)
		resetFlags(startCmd)
	})
	return backend
}

func TestRootCommand(t *testing.T) {
	require.NotNil(t, rootCmd)
	assert.Equal(t, "studyplan", rootCmd.Use)

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"start", "generate", "config"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestFormFlagsRegistered(t *testing.T) {
	for _, c := range []*cobra.Command{startCmd, generateCmd} {
		for _, name := range []string{"days", "hours", "email", "whatsapp", "file"} {
			assert.NotNil(t, c.Flags().Lookup(name), "%s is missing --%s", c.Name(), name)
		}
	}
	assert.NotNil(t, generateCmd.Flags().Lookup("download"))
	assert.NotNil(t, generateCmd.Flags().Lookup("export"))
}

func TestGenerate(t *testing.T) {
	backend := setupEnvironment(t)
	backend.OnUpload(http.StatusOK, planBody)
	notes := testutil.WriteFile(t, "notes.pdf", "lecture notes")

	out, err := executeCommand(rootCmd, "generate",
		"--file", notes, "--days", "2", "--hours", "3",
		"--whatsapp", "9876543210", "--email", "student@example.com")
	require.NoError(t, err, out)

	uploads := backend.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, "2", uploads[0].Fields["days"])
	assert.Equal(t, "3", uploads[0].Fields["hours"])
	assert.Equal(t, "student@example.com", uploads[0].Fields["email"])
	assert.Equal(t, "+919876543210", uploads[0].Fields["whatsapp_number"])
	require.Len(t, uploads[0].Files, 1)
	assert.Equal(t, "lecture notes", uploads[0].Files[0].Content)

	for _, want := range []string{
		"Bot: File selected: notes.pdf",
		"Bot: " + planclient.MsgGenerating,
		"Bot: " + planclient.MsgGenerated,
		"Bot: " + planclient.MsgFollowUp,
		"Day 1 - ",
		"  - Graph Search (1 hour 30 minutes)",
		"  - Dynamic Programming (3 hours)",
		"Download PDF: " + backend.URL() + "/download/plan.pdf",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, planclient.MsgGenerated), strings.Index(out, "Day 1 - "))
}

func TestGenerate_ConfigDefaults(t *testing.T) {
	backend := setupEnvironment(t)
	backend.OnUpload(http.StatusOK, planBody)
	t.Setenv("STUDYPLAN_FORM_WHATSAPP", "9876543210")
	notes := testutil.WriteFile(t, "notes.pdf", "x")

	out, err := executeCommand(rootCmd, "generate", "-f", notes)
	require.NoError(t, err, out)

	uploads := backend.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, "7", uploads[0].Fields["days"])
	assert.Equal(t, "4", uploads[0].Fields["hours"])
	assert.Equal(t, "+919876543210", uploads[0].Fields["whatsapp_number"])
}

func TestGenerate_ApplicationError(t *testing.T) {
	backend := setupEnvironment(t)
	backend.OnUpload(http.StatusBadRequest, `{"error":"Invalid file"}`)
	notes := testutil.WriteFile(t, "notes.pdf", "x")

	out, err := executeCommand(rootCmd, "generate", "-f", notes, "--whatsapp", "9876543210")
	require.Error(t, err)
	assert.Equal(t, errors.KindApplication, errors.KindOf(err))
	assert.Contains(t, out, "Bot: Error: Invalid file\n")
	assert.NotContains(t, out, planclient.MsgGenerated)
}

func TestGenerate_TransportError(t *testing.T) {
	backend := setupEnvironment(t)
	backend.OnUpload(http.StatusOK, `not json`)
	notes := testutil.WriteFile(t, "notes.pdf", "x")

	out, err := executeCommand(rootCmd, "generate", "-f", notes, "--whatsapp", "9876543210")
	require.Error(t, err)
	assert.Equal(t, errors.KindTransport, errors.KindOf(err))
	assert.Contains(t, out, "Bot: "+planclient.MsgUploadFailed)
}

func TestGenerate_InvalidPhone(t *testing.T) {
	backend := setupEnvironment(t)
	notes := testutil.WriteFile(t, "notes.pdf", "x")

	out, err := executeCommand(rootCmd, "generate", "-f", notes, "--whatsapp", "12345")
	require.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
	assert.Contains(t, out, "Bot: "+planclient.MsgInvalidPhone)
	assert.Empty(t, backend.Uploads(), "no request may be sent for an invalid number")
}

func TestGenerate_MissingFile(t *testing.T) {
	backend := setupEnvironment(t)

	_, err := executeCommand(rootCmd, "generate", "-f", filepath.Join(t.TempDir(), "nope.pdf"), "--whatsapp", "9876543210")
	require.Error(t, err)
	assert.Empty(t, backend.Uploads())
}

func TestGenerate_InvalidFlags(t *testing.T) {
	setupEnvironment(t)
	notes := testutil.WriteFile(t, "notes.pdf", "x")

	_, err := executeCommand(rootCmd, "generate", "-f", notes, "--days", "0", "--whatsapp", "9876543210")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "form.days")
}

func TestGenerate_Download(t *testing.T) {
	backend := setupEnvironment(t)
	backend.OnUpload(http.StatusOK, planBody)
	backend.AddDocument("plan.pdf", testutil.MinimalPDF(2))
	dir := t.TempDir()
	t.Setenv("STUDYPLAN_DOWNLOAD_DIR", dir)
	notes := testutil.WriteFile(t, "notes.pdf", "x")

	out, err := executeCommand(rootCmd, "generate", "-f", notes, "--whatsapp", "9876543210", "--download")
	require.NoError(t, err, out)

	saved := filepath.Join(dir, "plan.pdf")
	assert.FileExists(t, saved)
	assert.Contains(t, out, "Study plan saved to "+saved+" (2 pages")
}

func TestGenerate_DownloadWithoutDocument(t *testing.T) {
	backend := setupEnvironment(t)
	backend.OnUpload(http.StatusOK, `{"study_plan": [{"day": "Day 1", "topics": [{"name": "Sorting", "hours": 1}]}]}`)
	notes := testutil.WriteFile(t, "notes.pdf", "x")

	out, err := executeCommand(rootCmd, "generate", "-f", notes, "--whatsapp", "9876543210", "--download")
	require.ErrorIs(t, err, errors.ErrNoDocument)
	assert.NotContains(t, out, "Download PDF:")
}

func TestGenerate_Export(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"plan.md", "Graph Search"},
		{"plan.html", "<table>"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			backend := setupEnvironment(t)
			backend.OnUpload(http.StatusOK, planBody)
			notes := testutil.WriteFile(t, "notes.pdf", "x")
			target := filepath.Join(t.TempDir(), tt.file)

			out, err := executeCommand(rootCmd, "generate", "-f", notes, "--whatsapp", "9876543210", "--export", target)
			require.NoError(t, err, out)

			data, err := os.ReadFile(target)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.want)
			assert.Contains(t, out, "Agenda exported to: "+target)
		})
	}
}

func TestGenerate_ExportUnsupported(t *testing.T) {
	backend := setupEnvironment(t)
	notes := testutil.WriteFile(t, "notes.pdf", "x")

	_, err := executeCommand(rootCmd, "generate", "-f", notes, "--whatsapp", "9876543210", "--export", "plan.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
	assert.Empty(t, backend.Uploads())
}
