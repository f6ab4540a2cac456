package styles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

const validTheme = `name: Ocean
author: someone
version: "1"
colors:
  primary: "#0EA5E9"
  secondary: "#22D3EE"
  warning: "#FBBF24"
  error: "#F87171"
  muted: "#94A3B8"
  surface: "#0F172A"
  text: "#F1F5F9"
  border: "#334155"
`

func writeTheme(t *testing.T, dir, file, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, file), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadThemeFile(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "ocean.yaml", validTheme)

	theme, err := LoadThemeFile(filepath.Join(dir, "ocean.yaml"))
	if err != nil {
		t.Fatalf("LoadThemeFile() error = %v", err)
	}
	if theme.Name != "Ocean" || theme.Colors.Primary != "#0EA5E9" {
		t.Errorf("LoadThemeFile() = %+v", theme)
	}
}

func TestThemeFile_Validate(t *testing.T) {
	base := func() ThemeFile {
		var tf ThemeFile
		if err := yaml.Unmarshal([]byte(validTheme), &tf); err != nil {
			t.Fatal(err)
		}
		return tf
	}

	tests := []struct {
		name    string
		modify  func(*ThemeFile)
		wantErr string
	}{
		{"valid", func(*ThemeFile) {}, ""},
		{"short hex", func(tf *ThemeFile) { tf.Colors.Primary = "#FFF" }, ""},
		{"no name", func(tf *ThemeFile) { tf.Name = "" }, "name is required"},
		{"bad version", func(tf *ThemeFile) { tf.Version = "2" }, "unsupported theme version"},
		{"missing color", func(tf *ThemeFile) { tf.Colors.Text = "" }, `"text" is required`},
		{"bad hex", func(tf *ThemeFile) { tf.Colors.Border = "blue" }, `"border": invalid hex`},
		{"bad highlight", func(tf *ThemeFile) { tf.Colors.Highlight = "#12" }, `"highlight": invalid hex`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := base()
			tt.modify(&tf)
			err := tf.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverCustomThemes(t *testing.T) {
	t.Cleanup(ClearCustomThemes)
	dir := t.TempDir()
	writeTheme(t, dir, "ocean.yaml", validTheme)
	writeTheme(t, dir, "dusk.yml", strings.Replace(validTheme, "Ocean", "Dusk", 1))
	writeTheme(t, dir, "nord.yaml", validTheme)
	writeTheme(t, dir, "broken.yaml", "name: [")
	writeTheme(t, dir, "notes.txt", "ignored")
	if err := os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}

	loaded, errs := DiscoverCustomThemes(dir)

	if diff := cmp.Diff([]string{"dusk", "ocean"}, loaded); diff != "" {
		t.Errorf("loaded mismatch (-want +got):\n%s", diff)
	}
	if len(errs) != 2 {
		t.Errorf("len(errs) = %d, want 2 (built-in override, parse error): %v", len(errs), errs)
	}
	if diff := cmp.Diff([]string{"dusk", "ocean"}, CustomThemeNames()); diff != "" {
		t.Errorf("CustomThemeNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverCustomThemes_MissingDir(t *testing.T) {
	loaded, errs := DiscoverCustomThemes(filepath.Join(t.TempDir(), "absent"))
	if loaded != nil || errs != nil {
		t.Errorf("DiscoverCustomThemes() = %v, %v; want nothing", loaded, errs)
	}
}

func TestExportAndSaveTheme(t *testing.T) {
	t.Cleanup(ClearCustomThemes)

	data, err := ExportTheme(ThemeNord)
	if err != nil {
		t.Fatalf("ExportTheme() error = %v", err)
	}
	var tf ThemeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		t.Fatalf("exported YAML does not parse: %v", err)
	}
	if err := tf.Validate(); err != nil {
		t.Errorf("exported theme is invalid: %v", err)
	}

	dir := t.TempDir()
	if err := SaveTheme(dir, "copy", &tf); err != nil {
		t.Fatalf("SaveTheme() error = %v", err)
	}
	loaded, errs := DiscoverCustomThemes(dir)
	if len(errs) != 0 || len(loaded) != 1 {
		t.Fatalf("DiscoverCustomThemes() = %v, %v", loaded, errs)
	}
	if diff := cmp.Diff(NordPalette(), GetPalette("copy")); diff != "" {
		t.Errorf("saved copy palette mismatch (-want +got):\n%s", diff)
	}

	if _, err := ExportTheme("missing"); err == nil {
		t.Error("ExportTheme() of unknown theme should fail")
	}
}
