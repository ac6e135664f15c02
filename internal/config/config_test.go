package config

import (
	"os"
	"path/filepath"
	"testing"

	propbin "github.com/reoring/propbin"
)

// isolate runs the test in an empty working directory with HOME pointing
// at another empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}
	if cfg.Decode.MaxDepth != propbin.DefaultMaxDepth {
		t.Errorf("expected default max depth %d, got %d", propbin.DefaultMaxDepth, cfg.Decode.MaxDepth)
	}
	if cfg.Decode.MaxBytes != 0 || cfg.Output.Pretty {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Workers < 1 {
		t.Errorf("expected at least one worker, got %d", cfg.Workers)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Log.Level)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	content := `
decode:
  max_depth: 64
  max_bytes: 1048576
  collect_unknown: true
output:
  pretty: true
workers: 3
log:
  level: debug
`
	if err := os.WriteFile(filepath.Join(dir, "propbin.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}
	if cfg.Decode.MaxDepth != 64 || cfg.Decode.MaxBytes != 1048576 || !cfg.Decode.CollectUnknown {
		t.Errorf("decode section = %+v", cfg.Decode)
	}
	if !cfg.Output.Pretty || cfg.Workers != 3 || cfg.Log.Level != "debug" {
		t.Errorf("config = %+v", cfg)
	}

	opt := cfg.DecodeOpt(nil)
	if opt.EffectiveMaxDepth() != 64 || opt.MaxBytes != 1048576 || !opt.CollectUnknown {
		t.Errorf("DecodeOpt = %+v", opt)
	}
	if !cfg.JSONOpt().Pretty {
		t.Errorf("JSONOpt should be pretty")
	}
}

func TestLoad_HomeConfigDir(t *testing.T) {
	isolate(t)
	home, _ := os.UserHomeDir()
	dir := filepath.Join(home, ".config", "propbin")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "propbin.yaml"), []byte("workers: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers != 7 {
		t.Errorf("expected workers from home config, got %d", cfg.Workers)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "propbin.yaml"), []byte("decode:\n  max_depth: 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PROPBIN_DECODE_MAX_DEPTH", "12")
	t.Setenv("PROPBIN_OUTPUT_PRETTY", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Decode.MaxDepth != 12 || !cfg.Output.Pretty {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("workers: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers != 2 {
		t.Errorf("workers = %d", cfg.Workers)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("expected error for a missing explicit config file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero depth":     "decode:\n  max_depth: 0\n",
		"negative bytes": "decode:\n  max_bytes: -1\n",
		"no workers":     "workers: 0\n",
		"bad level":      "log:\n  level: loud\n",
		"bad yaml":       "decode: [\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			if err := os.WriteFile(filepath.Join(dir, "propbin.yaml"), []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(""); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestLogger(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: "warn"}}
	log, err := cfg.Logger(false)
	if err != nil {
		t.Fatal(err)
	}
	if log.Core().Enabled(-1) {
		t.Errorf("debug should be disabled at warn level")
	}
	dev, err := cfg.Logger(true)
	if err != nil {
		t.Fatal(err)
	}
	if !dev.Core().Enabled(-1) {
		t.Errorf("development logger should enable debug")
	}
}
