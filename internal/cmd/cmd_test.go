package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/pokebox/internal/config"
	"github.com/Iron-Ham/pokebox/internal/tui/styles"
)

// setupTestEnv points the config dir at a temp dir and resets viper to
// defaults only.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	viper.Reset()
	config.SetDefaults()
	viper.Set("logging.enabled", false)
	t.Cleanup(viper.Reset)

	styles.ClearCustomThemes()
	t.Cleanup(styles.ClearCustomThemes)
	return dir
}

// run invokes fn as cmd would, capturing output.
func run(t *testing.T, cmd *cobra.Command, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	// cobra's Execute supplies context.Background() when none is set.
	if cmd.Context() == nil {
		cmd.SetContext(context.Background())
	}
	t.Cleanup(func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	})
	err := fn(cmd, args)
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "pokebox" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "pokebox")
	}

	cmdMap := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		cmdMap[c.Name()] = true
	}
	for _, expected := range []string{"list", "config"} {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}

	sub := make(map[string]bool)
	for _, c := range configCmd.Commands() {
		sub[c.Name()] = true
	}
	for _, expected := range []string{"show", "set", "init", "path", "theme"} {
		if !sub[expected] {
			t.Errorf("expected config subcommand %q not found", expected)
		}
	}
}

func TestRunRoot_RequiresTerminal(t *testing.T) {
	setupTestEnv(t)
	orig := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	_, err := run(t, rootCmd, runRoot)
	if err == nil || !strings.Contains(err.Error(), "pokebox list") {
		t.Fatalf("runRoot() error = %v, want a hint to use list", err)
	}
}

func TestRunRoot_InvalidConfig(t *testing.T) {
	setupTestEnv(t)
	viper.Set("tui.columns", 99)

	_, err := run(t, rootCmd, runRoot)
	if err == nil || !strings.Contains(err.Error(), "tui.columns") {
		t.Fatalf("runRoot() error = %v, want tui.columns validation error", err)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		key     string
		raw     string
		want    any
		wantErr bool
	}{
		{"tui.theme", "nord", "nord", false},
		{"tui.columns", "4", 4, false},
		{"tui.columns", "four", nil, true},
		{"tui.mouse", "false", false, false},
		{"tui.mouse", "maybe", nil, true},
		{"box.random_seed", "42", uint64(42), false},
		{"box.random_seed", "-1", nil, true},
		{"no.such.key", "1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.raw, func(t *testing.T) {
			got, err := parseValue(tt.key, tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseValue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseValue() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestRunConfigSet(t *testing.T) {
	setupTestEnv(t)

	out, err := run(t, configSetCmd, runConfigSet, "tui.theme", "dracula")
	if err != nil {
		t.Fatalf("runConfigSet() error = %v", err)
	}
	if !strings.Contains(out, "Set tui.theme = dracula") {
		t.Errorf("output = %q", out)
	}

	data, err := os.ReadFile(config.ConfigFile())
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "dracula") {
		t.Errorf("config file missing new value:\n%s", data)
	}
}

func TestRunConfigSet_RejectsInvalid(t *testing.T) {
	setupTestEnv(t)

	_, err := run(t, configSetCmd, runConfigSet, "box.start", "31")
	if err == nil {
		t.Fatal("runConfigSet() should reject box.start=31")
	}
	if got := viper.GetInt("box.start"); got != 1 {
		t.Errorf("box.start = %d after rejected set, want 1", got)
	}
	if _, err := os.Stat(config.ConfigFile()); !os.IsNotExist(err) {
		t.Error("config file should not be written for an invalid value")
	}
}

func TestRunConfigInit(t *testing.T) {
	setupTestEnv(t)

	if _, err := run(t, configInitCmd, runConfigInit); err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}

	// The written file must load cleanly.
	v := viper.New()
	v.SetConfigFile(config.ConfigFile())
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("reading generated config: %v", err)
	}
	cfg, err := config.LoadFrom(v)
	if err != nil {
		t.Fatalf("generated config does not validate: %v", err)
	}
	if cfg.TUI.Columns != 6 || cfg.Catalog.BaseURL != "https://pokeapi.co/api/v2" {
		t.Errorf("generated config = %+v", cfg)
	}

	if _, err := run(t, configInitCmd, runConfigInit); err == nil {
		t.Error("second runConfigInit() should refuse to overwrite")
	}
}

func TestRunConfigShow(t *testing.T) {
	setupTestEnv(t)
	viper.Set("tui.theme", "nord")

	out, err := run(t, configShowCmd, runConfigShow)
	if err != nil {
		t.Fatalf("runConfigShow() error = %v", err)
	}
	for _, want := range []string{"catalog:", "  base_url: https://pokeapi.co/api/v2", "tui:", "  theme: nord"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

const testTheme = `name: "Test Theme"
author: "tester"
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

func TestRunThemeList(t *testing.T) {
	setupTestEnv(t)
	if err := os.MkdirAll(config.ThemesDir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(config.ThemesDir(), "testtheme.yaml"), []byte(testTheme), 0o644); err != nil {
		t.Fatalf("Failed to write test theme: %v", err)
	}
	if err := os.WriteFile(filepath.Join(config.ThemesDir(), "broken.yaml"), []byte("colors: {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, themeListCmd, runThemeList)
	if err != nil {
		t.Fatalf("runThemeList() error = %v", err)
	}
	for _, want := range []string{"dracula", "testtheme (by tester)", "broken.yaml"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunThemeExport(t *testing.T) {
	setupTestEnv(t)

	t.Run("to file", func(t *testing.T) {
		outputPath := filepath.Join(t.TempDir(), "exported.yaml")
		if _, err := run(t, themeExportCmd, runThemeExport, "nord", outputPath); err != nil {
			t.Fatalf("runThemeExport() error = %v", err)
		}
		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("output file not created: %v", err)
		}
		if !strings.Contains(string(data), "primary:") {
			t.Errorf("exported theme missing colors:\n%s", data)
		}
	})

	t.Run("unknown theme", func(t *testing.T) {
		_, err := run(t, themeExportCmd, runThemeExport, "nonexistent")
		if err == nil || !strings.Contains(err.Error(), "unknown theme") {
			t.Errorf("runThemeExport() error = %v, want unknown theme", err)
		}
	})
}

func TestRunThemeCreate(t *testing.T) {
	setupTestEnv(t)

	if _, err := run(t, themeCreateCmd, runThemeCreate, "sunset"); err != nil {
		t.Fatalf("runThemeCreate() error = %v", err)
	}
	theme, err := styles.LoadThemeFile(filepath.Join(config.ThemesDir(), "sunset.yaml"))
	if err != nil {
		t.Fatalf("created theme does not load: %v", err)
	}
	if theme.Name != "Sunset" {
		t.Errorf("Name = %q, want %q", theme.Name, "Sunset")
	}

	tests := []struct {
		name string
		arg  string
	}{
		{"exists", "sunset"},
		{"builtin", "dracula"},
		{"bad characters", "../evil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, themeCreateCmd, runThemeCreate, tt.arg); err == nil {
				t.Errorf("runThemeCreate(%q) should fail", tt.arg)
			}
		})
	}
}

func TestRunList(t *testing.T) {
	setupTestEnv(t)

	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/pokemon":
			if got := r.URL.Query().Get("offset"); got != "30" {
				t.Errorf("offset = %q, want 30", got)
			}
			fmt.Fprintf(w, `{"count": 2, "results": [
				{"name": "raichu", "url": "%[1]s/api/v2/pokemon/26/"},
				{"name": "sandshrew", "url": "%[1]s/api/v2/pokemon/27/"}]}`, ts.URL)
		case "/api/v2/pokemon/26/":
			fmt.Fprint(w, `{"id": 26, "name": "raichu", "types": [{"type": {"name": "electric"}}], "height": 8, "weight": 300}`)
		case "/api/v2/pokemon/27/":
			fmt.Fprint(w, `{"id": 27, "name": "sandshrew", "types": [{"type": {"name": "ground"}}], "height": 6, "weight": 120}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(ts.Close)

	viper.Set("catalog.base_url", ts.URL+"/api/v2")
	viper.Set("box.random_seed", uint64(7))

	out, err := run(t, listCmd, runList, "2")
	if err != nil {
		t.Fatalf("runList() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if lines[0] != "Box 2" {
		t.Errorf("lines[0] = %q, want %q", lines[0], "Box 2")
	}
	if !strings.HasPrefix(lines[3], "#26") || !strings.Contains(lines[3], "Raichu") || !strings.Contains(lines[3], "electric") {
		t.Errorf("row 1 = %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "#27") || !strings.Contains(lines[4], "Sandshrew") {
		t.Errorf("row 2 = %q", lines[4])
	}
}

func TestRunList_Errors(t *testing.T) {
	setupTestEnv(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(ts.Close)
	viper.Set("catalog.base_url", ts.URL)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"box out of range", []string{"31"}, "box must be"},
		{"not a number", []string{"x"}, "box must be"},
		{"catalog down", []string{"1"}, "loading box 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, listCmd, runList, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("runList(%v) error = %v, want %q", tt.args, err, tt.want)
			}
		})
	}
}

func TestUsageHint(t *testing.T) {
	setupTestEnv(t)

	_, err := run(t, listCmd, runList, "31")
	if hint := usageHint(err); !strings.Contains(hint, "--help") {
		t.Errorf("usageHint(bad box) = %q, want a pointer to --help", hint)
	}
	if hint := usageHint(fmt.Errorf("loading box 1: %w", os.ErrDeadlineExceeded)); hint != "" {
		t.Errorf("usageHint(network) = %q, want empty", hint)
	}
	if hint := usageHint(nil); hint != "" {
		t.Errorf("usageHint(nil) = %q, want empty", hint)
	}
}

func TestListHelp_MentionsSeed(t *testing.T) {
	if !strings.Contains(listCmd.Long, "box.random_seed") {
		t.Errorf("list help does not mention box.random_seed:\n%s", listCmd.Long)
	}
}
