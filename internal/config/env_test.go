package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFile(t *testing.T) {
	const key = "LOAN_ESTIMATOR_TEST_DOTENV_ADDRESS"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=127.0.0.1:5200\n"), 0600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	if got := os.Getenv(key); got != "127.0.0.1:5200" {
		t.Fatalf("expected env value from file, got %q", got)
	}
}

func TestLoadEnvFileKeepsExistingValues(t *testing.T) {
	const key = "LOAN_ESTIMATOR_TEST_DOTENV_EXISTING"
	t.Setenv(key, "from-environment")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	if got := os.Getenv(key); got != "from-environment" {
		t.Fatalf("expected existing env value to win, got %q", got)
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
	if err := LoadEnvFile(""); err != nil {
		t.Fatalf("expected empty path to be ignored, got %v", err)
	}
}

func TestLoadEnvFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("BROKEN=\"unterminated\n"), 0600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	if err := LoadEnvFile(path); err == nil {
		t.Fatal("expected error for malformed env file")
	}
}
