package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Dir != "." || cfg.Format != "yaml" || cfg.Lang != "en" || len(cfg.Collections) != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "dir: resources\nformat: json\nlang: ja\ncollections: [monster, item]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Dir != "resources" || cfg.Format != "json" || cfg.Lang != "ja" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if len(cfg.Collections) != 2 || cfg.Collections[1] != "item" {
		t.Fatalf("unexpected collections %v", cfg.Collections)
	}
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "yang.yaml"), []byte("dir: tables\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Dir != "tables" {
		t.Fatalf("expected dir from yang.yaml, got %q", cfg.Dir)
	}
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("YANG_LANG", "ja")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Lang != "ja" {
		t.Fatalf("expected env override, got %q", cfg.Lang)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("format: toml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
	if _, err := Load(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Fatalf("expected error for an explicit missing file")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
