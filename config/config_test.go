package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	// WHAT: Default returns the documented generator defaults.
	// WHY: Flags and YAML both layer on top of these.
	cfg := Default()
	if cfg.Steps != 60 || cfg.FrameDuration != 0.08 {
		t.Errorf("timing defaults: steps=%d duration=%v", cfg.Steps, cfg.FrameDuration)
	}
	if cfg.Cell != 10 || cfg.Gap != 2 {
		t.Errorf("geometry defaults: cell=%d gap=%d", cfg.Cell, cfg.Gap)
	}
	if cfg.AliveColor != "#2ea043" || cfg.DeadColor != "#ebedf0" {
		t.Errorf("color defaults: %s / %s", cfg.AliveColor, cfg.DeadColor)
	}
	if cfg.Out != "assets/life.svg" {
		t.Errorf("out default: %s", cfg.Out)
	}
	if cfg.Username != "" {
		t.Error("username has no default")
	}
}

func TestLoadFile(t *testing.T) {
	// WHAT: YAML values are read and unset fields get defaults.
	// WHY: Partial config files are the normal case.
	path := filepath.Join(t.TempDir(), "lifegrid.yaml")
	yaml := "username: octocat\nsteps: 90\nalive_color: \"#00ff00\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Username != "octocat" || cfg.Steps != 90 || cfg.AliveColor != "#00ff00" {
		t.Errorf("explicit values lost: %+v", cfg)
	}
	if cfg.Cell != 10 || cfg.Out != "assets/life.svg" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	// WHAT: Malformed YAML and missing files surface errors.
	// WHY: A silent fallback to defaults would hide operator mistakes.
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("steps: [not a number"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("malformed yaml should fail")
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
