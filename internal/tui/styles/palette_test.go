package styles

import (
	"testing"
)

func TestBuiltinThemes(t *testing.T) {
	for _, name := range BuiltinThemes() {
		if !IsValidTheme(name) {
			t.Errorf("IsValidTheme(%q) = false", name)
		}
		p := GetPalette(ThemeName(name))
		if p == nil || p.Primary == "" || p.Today == "" {
			t.Errorf("GetPalette(%q) returned an incomplete palette", name)
		}
	}
}

func TestGetPalette_UnknownFallsBack(t *testing.T) {
	got := GetPalette("no-such-theme")
	if got.Primary != DefaultPalette().Primary {
		t.Errorf("Primary = %q, want default %q", got.Primary, DefaultPalette().Primary)
	}
	if IsValidTheme("no-such-theme") {
		t.Error("IsValidTheme() = true for unknown theme")
	}
}

func TestApply(t *testing.T) {
	t.Cleanup(func() { Apply(string(ThemeDefault)) })

	th := Apply(string(ThemeDracula))
	if th.Name != ThemeDracula {
		t.Errorf("Name = %q, want %q", th.Name, ThemeDracula)
	}
	if Current() != th {
		t.Error("Current() did not return the applied theme")
	}

	th = Apply("bogus")
	if th.Name != ThemeDefault {
		t.Errorf("Apply(bogus).Name = %q, want default", th.Name)
	}
}
