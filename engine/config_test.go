package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spaghettifunk/anima-gl/engine/core"
)

func TestParseApplicationConfig(t *testing.T) {
	cfg, err := ParseApplicationConfig([]byte(`
name = "demo"
start_width = 640
start_height = 480
log_level = "Warn"
hot_reload = true
`))
	if err != nil {
		t.Fatalf("ParseApplicationConfig: %v", err)
	}
	if cfg.Name != "demo" || cfg.StartWidth != 640 || cfg.StartHeight != 480 {
		t.Errorf("window = %q %dx%d, want demo 640x480", cfg.Name, cfg.StartWidth, cfg.StartHeight)
	}
	if cfg.LogLevel != core.LogLevelWarn {
		t.Errorf("log level = %s, want warn", cfg.LogLevel)
	}
	if !cfg.HotReload {
		t.Error("hot_reload not applied")
	}
	// keys absent from the file keep their default
	def := DefaultApplicationConfig()
	if cfg.StartPosX != def.StartPosX || cfg.ShaderDir != def.ShaderDir || cfg.VSync != def.VSync {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestParseApplicationConfigErrors(t *testing.T) {
	cases := map[string]string{
		"bad level":  `log_level = "loud"`,
		"zero width": `start_width = 0`,
		"syntax":     "name = \n",
		"wrong type": `vsync = "yes"`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseApplicationConfig([]byte(doc)); err == nil {
				t.Errorf("ParseApplicationConfig(%q) succeeded", doc)
			}
		})
	}
}

func TestParseApplicationConfigReportsPosition(t *testing.T) {
	_, err := ParseApplicationConfig([]byte("name = \"a\"\nstart_width = = 3\n"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name line 2", err)
	}
}

func TestLoadApplicationConfigOrDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadApplicationConfigOrDefault(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if *cfg != *DefaultApplicationConfig() {
		t.Errorf("missing file gave %+v, want defaults", cfg)
	}

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`shader_dir = "shaders"`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadApplicationConfigOrDefault(path)
	if err != nil {
		t.Fatalf("LoadApplicationConfigOrDefault: %v", err)
	}
	if cfg.ShaderDir != "shaders" {
		t.Errorf("shader dir = %q", cfg.ShaderDir)
	}

	if err := os.WriteFile(path, []byte(`start_height = 0`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadApplicationConfigOrDefault(path); err == nil {
		t.Error("invalid file fell back to defaults")
	}
}
