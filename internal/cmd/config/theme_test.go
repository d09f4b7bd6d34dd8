package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/studyplan/internal/tui/styles"
)

// setupConfigHome points the config directory at a temp dir and returns the
// themes directory inside it.
func setupConfigHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	styles.ClearCustomThemes()
	t.Cleanup(styles.ClearCustomThemes)
	return filepath.Join(home, "studyplan", styles.ThemesDirName)
}

// captureOutput redirects the command's stdout and stderr into a buffer.
func captureOutput(t *testing.T, c *cobra.Command) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	c.SetOut(buf)
	c.SetErr(buf)
	t.Cleanup(func() {
		c.SetOut(nil)
		c.SetErr(nil)
	})
	return buf
}

const testThemeYAML = `name: "Test Theme"
author: "Jamie"
version: "1"
colors:
  primary: "#A78BFA"
  secondary: "#10B981"
  warning: "#F59E0B"
  error: "#F87171"
  muted: "#9CA3AF"
  surface: "#1F2937"
  text: "#F9FAFB"
  border: "#6B7280"
`

func writeTheme(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create themes dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test theme: %v", err)
	}
}

func TestRunThemeList(t *testing.T) {
	dir := setupConfigHome(t)
	writeTheme(t, dir, "testtheme.yaml", testThemeYAML)
	writeTheme(t, dir, "broken.yaml", "name: [")

	buf := captureOutput(t, themeListCmd)
	if err := runThemeList(themeListCmd, []string{}); err != nil {
		t.Fatalf("runThemeList() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Built-in themes:", "  - nord", "Custom themes:", "  - testtheme (by Jamie)", "broken.yaml", dir} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunThemeExport(t *testing.T) {
	setupConfigHome(t)
	outputPath := filepath.Join(t.TempDir(), "exported.yaml")

	captureOutput(t, themeExportCmd)
	if err := runThemeExport(themeExportCmd, []string{"dracula", outputPath}); err != nil {
		t.Fatalf("runThemeExport() error = %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if !bytes.Contains(data, []byte("primary:")) {
		t.Error("Output file missing primary color")
	}

	// The exported file is itself a loadable theme
	theme, err := styles.LoadThemeFile(outputPath)
	if err != nil {
		t.Fatalf("exported theme does not load: %v", err)
	}
	if theme.Colors.Primary != string(styles.DraculaPalette().Primary) {
		t.Errorf("primary = %q, want %q", theme.Colors.Primary, styles.DraculaPalette().Primary)
	}
}

func TestRunThemeExportStdout(t *testing.T) {
	setupConfigHome(t)

	buf := captureOutput(t, themeExportCmd)
	if err := runThemeExport(themeExportCmd, []string{"default"}); err != nil {
		t.Fatalf("runThemeExport() error = %v", err)
	}
	if !strings.Contains(buf.String(), "colors:") {
		t.Errorf("stdout export missing colors section:\n%s", buf.String())
	}
}

func TestRunThemeExportInvalidTheme(t *testing.T) {
	setupConfigHome(t)

	err := runThemeExport(themeExportCmd, []string{"nonexistent"})
	if err == nil {
		t.Fatal("Expected error for invalid theme, got nil")
	}
	if !strings.Contains(err.Error(), "unknown theme") {
		t.Errorf("error = %v", err)
	}
}

func TestRunThemeExportBrokenTheme(t *testing.T) {
	dir := setupConfigHome(t)
	writeTheme(t, dir, "broken.yaml", "name: [")

	err := runThemeExport(themeExportCmd, []string{"broken"})
	if err == nil || !strings.Contains(err.Error(), "failed to load") {
		t.Errorf("err = %v, want a load failure", err)
	}
}

func TestRunThemeInfo(t *testing.T) {
	dir := setupConfigHome(t)
	writeTheme(t, dir, "testtheme.yaml", testThemeYAML)

	tests := []struct {
		theme string
		want  []string
	}{
		{"default", []string{"Type: Built-in", "Primary:"}},
		{"testtheme", []string{"Type: Custom", "Author: Jamie", "#A78BFA"}},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			buf := captureOutput(t, themeInfoCmd)
			if err := runThemeInfo(themeInfoCmd, []string{tt.theme}); err != nil {
				t.Fatalf("runThemeInfo() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestRunThemeInfoInvalidTheme(t *testing.T) {
	setupConfigHome(t)

	if err := runThemeInfo(themeInfoCmd, []string{"nonexistent"}); err == nil {
		t.Error("Expected error for invalid theme, got nil")
	}
}

func TestRunThemePath(t *testing.T) {
	dir := setupConfigHome(t)

	buf := captureOutput(t, themePathCmd)
	if err := runThemePath(themePathCmd, []string{}); err != nil {
		t.Fatalf("runThemePath() error = %v", err)
	}
	if !strings.Contains(buf.String(), dir) {
		t.Errorf("output %q missing %q", buf.String(), dir)
	}
	if !strings.Contains(buf.String(), "does not exist yet") {
		t.Error("expected a note about the missing directory")
	}
}

func TestRunThemeCreate(t *testing.T) {
	dir := setupConfigHome(t)

	captureOutput(t, themeCreateCmd)
	if err := runThemeCreate(themeCreateCmd, []string{"newtheme"}); err != nil {
		t.Fatalf("runThemeCreate() error = %v", err)
	}

	themePath := filepath.Join(dir, "newtheme.yaml")
	theme, err := styles.LoadThemeFile(themePath)
	if err != nil {
		t.Fatalf("Created theme is invalid: %v", err)
	}
	if theme.Name != "Newtheme" {
		t.Errorf("Name = %q, want %q", theme.Name, "Newtheme")
	}
}

func TestRunThemeCreateBuiltinName(t *testing.T) {
	setupConfigHome(t)

	if err := runThemeCreate(themeCreateCmd, []string{"default"}); err == nil {
		t.Error("Expected error when creating theme with built-in name")
	}
}

func TestRunThemeCreateInvalidName(t *testing.T) {
	setupConfigHome(t)

	tests := []struct {
		name    string
		errText string
	}{
		{"", "empty"},
		{"my/theme", "invalid characters"},
		{"my\\theme", "invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runThemeCreate(themeCreateCmd, []string{tt.name})
			if err == nil || !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("err = %v, want mention of %q", err, tt.errText)
			}
		})
	}
}

func TestRunThemeCreateAlreadyExists(t *testing.T) {
	setupConfigHome(t)

	captureOutput(t, themeCreateCmd)
	if err := runThemeCreate(themeCreateCmd, []string{"existing"}); err != nil {
		t.Fatalf("First create failed: %v", err)
	}
	if err := runThemeCreate(themeCreateCmd, []string{"existing"}); err == nil {
		t.Error("Expected error when theme already exists")
	}
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "Hello"},
		{"HELLO", "HELLO"},
		{"h", "H"},
		{"", ""},
		{"forest", "Forest"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := capitalizeFirst(tt.input); got != tt.expected {
				t.Errorf("capitalizeFirst(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
