package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Storage.DBPath == "" {
		t.Error("default db path is empty")
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("default provider = %q, want openai", cfg.LLM.Provider)
	}
	if cfg.UI.Color != "auto" {
		t.Errorf("default color = %q, want auto", cfg.UI.Color)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("provider = %q, want default", cfg.LLM.Provider)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[storage]
db_path = "/tmp/ritmo-test.db"

[llm]
provider = "ollama"
model = "llama3"
base_url = "http://localhost:11434"

[ui]
color = "never"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Storage.DBPath != "/tmp/ritmo-test.db" {
		t.Errorf("DBPath = %q", cfg.Storage.DBPath)
	}
	if cfg.LLM.Provider != "ollama" || cfg.LLM.Model != "llama3" {
		t.Errorf("LLM = %+v", cfg.LLM)
	}
	if cfg.UI.Color != "never" {
		t.Errorf("Color = %q", cfg.UI.Color)
	}
}

func TestLoadFromRejectsBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("LoadFrom accepted malformed TOML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RITMO_LLM_PROVIDER", "lmstudio")
	t.Setenv("RITMO_DB_PATH", "/tmp/env-override.db")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.LLM.Provider != "lmstudio" {
		t.Errorf("provider = %q, want lmstudio", cfg.LLM.Provider)
	}
	if cfg.Storage.DBPath != "/tmp/env-override.db" {
		t.Errorf("DBPath = %q", cfg.Storage.DBPath)
	}
}

func TestValidateRejectsBadColor(t *testing.T) {
	cfg := Default()
	cfg.UI.Color = "rainbow"
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate accepted bad color mode")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := Default()
	cfg.LLM.Model = "gpt-4o"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got.LLM.Model != "gpt-4o" {
		t.Errorf("Model = %q after round trip", got.LLM.Model)
	}
}
