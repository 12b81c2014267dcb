package main

import (
	"os"
	"path/filepath"
	"testing"

	"capbrowse/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.ScenarioSamples)

	out, _, err := runCLI(t, []string{"config", "validate", "--check-source"}, env.configPath, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Loaded 2 records")
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "", "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", ""); err == nil {
		t.Fatalf("expected error when config exists without --overwrite")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, "", ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigValidateRejectsBadFile(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.ScenarioSamples)
	if err := os.WriteFile(env.configPath, []byte("[browse]\npage_size = -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := runCLI(t, []string{"config", "validate"}, env.configPath, ""); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("CAPBROWSE_SOURCE", "")
	if err := os.Unsetenv("CAPBROWSE_SOURCE"); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("CAPBROWSE_SOURCE=https://cdn.example/samples.json\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
	if got := os.Getenv("CAPBROWSE_SOURCE"); got != "https://cdn.example/samples.json" {
		t.Fatalf("unexpected CAPBROWSE_SOURCE %q", got)
	}
	if err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}
}
