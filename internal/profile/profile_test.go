package profile

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Run("unknown mode falls back to demo", func(t *testing.T) {
		p := &Profile{Mode: "staging", Driver: "sqlite", Data: t.TempDir()}
		if err := p.Validate(); err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if p.Mode != "demo" {
			t.Errorf("mode = %q, want demo", p.Mode)
		}
	})

	t.Run("unsupported driver", func(t *testing.T) {
		p := &Profile{Mode: "dev", Driver: "mysql", Data: t.TempDir()}
		if err := p.Validate(); err == nil {
			t.Error("expected error for unsupported driver")
		}
	})

	t.Run("sqlite gets a default dsn", func(t *testing.T) {
		dir := t.TempDir()
		p := &Profile{Mode: "dev", Driver: "sqlite", Data: dir}
		if err := p.Validate(); err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		want := filepath.Join(dir, "greensense_dev.db")
		if p.DSN != want {
			t.Errorf("dsn = %q, want %q", p.DSN, want)
		}
	})

	t.Run("postgres requires dsn", func(t *testing.T) {
		p := &Profile{Mode: "dev", Driver: "postgres", Data: t.TempDir()}
		if err := p.Validate(); err == nil {
			t.Error("expected error when postgres dsn is missing")
		}
	})

	t.Run("missing data dir", func(t *testing.T) {
		p := &Profile{Mode: "dev", Driver: "sqlite", Data: filepath.Join(t.TempDir(), "does-not-exist")}
		if err := p.Validate(); err == nil {
			t.Error("expected error for missing data dir")
		}
	})

	t.Run("trailing separators trimmed", func(t *testing.T) {
		dir := t.TempDir()
		p := &Profile{Mode: "dev", Driver: "sqlite", Data: dir + "/"}
		if err := p.Validate(); err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if strings.HasSuffix(p.Data, "/") {
			t.Errorf("data = %q, trailing separator not trimmed", p.Data)
		}
	})
}

func TestIsDev(t *testing.T) {
	if !(&Profile{Mode: "dev"}).IsDev() {
		t.Error("dev mode should be dev")
	}
	if !(&Profile{Mode: "demo"}).IsDev() {
		t.Error("demo mode should be dev")
	}
	if (&Profile{Mode: "prod"}).IsDev() {
		t.Error("prod mode should not be dev")
	}
}
