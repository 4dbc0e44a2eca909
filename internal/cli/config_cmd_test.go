package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/corvusworks/seedscan/internal/config"
)

func isolateConfigHome(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, ".config"))
	return tmp
}

func TestConfigInitCreatesConfigFile(t *testing.T) {
	tmp := isolateConfigHome(t)

	if err := configInitCmd.RunE(configInitCmd, []string{}); err != nil {
		t.Fatalf("configInitCmd.RunE returned error: %v", err)
	}

	path := filepath.Join(tmp, ".config", "seedscan", "config.toml")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read created config: %v", err)
	}
	if !strings.Contains(string(content), "# seedscan configuration") {
		t.Fatalf("expected default config header in file, got:\n%s", string(content))
	}

	// The created file is all comments, so it parses to an empty config.
	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if cfg.CatalogDir != "" || cfg.Verbosity != 0 {
		t.Fatalf("expected empty defaults, got %+v", cfg)
	}
}

func TestConfigInitKeepsExistingFile(t *testing.T) {
	tmp := isolateConfigHome(t)

	dir := filepath.Join(tmp, ".config", "seedscan")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	existing := "verbosity = 2\n"
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if err := configInitCmd.RunE(configInitCmd, []string{}); err != nil {
		t.Fatalf("configInitCmd.RunE returned error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if string(content) != existing {
		t.Fatalf("expected existing config untouched, got:\n%s", content)
	}
}
