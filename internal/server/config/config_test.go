package config

import (
	"os"
	"testing"
)

func TestLoadDefaultsAndEnv(t *testing.T) {
	// defaults
	os.Unsetenv("TASKMASTER_HTTP_ADDR")
	os.Unsetenv("TASKMASTER_STORE_DSN")
	os.Unsetenv("TASKMASTER_SECRET")
	os.Unsetenv("TASKMASTER_AUTH_USER")
	cfg := Load()
	if cfg.HTTPAddr == "" || cfg.StoreDSN == "" || cfg.Secret == "" || cfg.AuthSubject == "" || cfg.KeyName == "" {
		t.Fatalf("empty config fields: %+v", cfg)
	}

	// env override
	os.Setenv("TASKMASTER_HTTP_ADDR", ":9999")
	os.Setenv("TASKMASTER_STORE_DSN", "file::memory:")
	os.Setenv("TASKMASTER_SECRET", "secret")
	os.Setenv("TASKMASTER_AUTH_USER", "tester")
	defer func() {
		os.Unsetenv("TASKMASTER_HTTP_ADDR")
		os.Unsetenv("TASKMASTER_STORE_DSN")
		os.Unsetenv("TASKMASTER_SECRET")
		os.Unsetenv("TASKMASTER_AUTH_USER")
	}()
	cfg = Load()
	if cfg.HTTPAddr != ":9999" || cfg.StoreDSN != "file::memory:" || cfg.Secret != "secret" || cfg.AuthSubject != "tester" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}
