package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestResolvePort(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  uint16
	}{
		{"unset uses default", "", false, 3000},
		{"empty uses default", "", true, 3000},
		{"custom port", "8080", true, 8080},
		{"lowest port", "1", true, 1},
		{"highest port", "65535", true, 65535},
		{"surrounding whitespace", " 9090 ", true, 9090},
		{"leading zeros", "0080", true, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{}
			if tt.set {
				env[PortEnv] = tt.value
			}
			got, err := ResolvePort(envMap(env))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestResolvePortRejectsInvalid(t *testing.T) {
	for _, value := range []string{"abc", "0", "65536", "-1", "+80", "0x50", "80.0", "80 81", "99999999999"} {
		t.Run(value, func(t *testing.T) {
			_, err := ResolvePort(envMap(map[string]string{PortEnv: value}))
			if !errors.Is(err, ErrBadPort) {
				t.Fatalf("expected ErrBadPort for %q, got %v", value, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load(envMap(map[string]string{PortEnv: "8080"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if got := cfg.Addr(); got != "127.0.0.1:8080" {
		t.Fatalf("expected 127.0.0.1:8080, got %s", got)
	}
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load(envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.Addr(); got != "127.0.0.1:3000" {
		t.Fatalf("expected 127.0.0.1:3000, got %s", got)
	}
}

func TestLoadBadPort(t *testing.T) {
	cfg, err := Load(envMap(map[string]string{PortEnv: "abc"}))
	if !errors.Is(err, ErrBadPort) {
		t.Fatalf("expected ErrBadPort, got %v", err)
	}
	if cfg != (BindConfig{}) {
		t.Fatalf("expected zero config on error, got %+v", cfg)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PORT=4321\nHELLO_DOTENV_ONLY=yes\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("HELLO_DOTENV_ONLY", "")
	_ = os.Unsetenv("HELLO_DOTENV_ONLY")
	t.Setenv(PortEnv, "5000")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("HELLO_DOTENV_ONLY"); got != "yes" {
		t.Fatalf("expected dotenv value to be loaded, got %q", got)
	}
	if got := os.Getenv(PortEnv); got != "5000" {
		t.Fatalf("expected existing PORT to win, got %q", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}

func TestLoadDotEnvMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT='unterminated\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	if err := LoadDotEnv(path); err == nil {
		t.Fatal("expected parse error for malformed file")
	}
}
