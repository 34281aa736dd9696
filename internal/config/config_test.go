package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/edgard/loggen/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != config.DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, config.DefaultLogLevel)
	}
	if cfg.Log.JSON != config.DefaultLogJSON {
		t.Errorf("Log.JSON = %v, want %v", cfg.Log.JSON, config.DefaultLogJSON)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantLevel string
		wantJSON  bool
		wantErr   bool
	}{
		{
			name:      "Full override",
			content:   "log:\n  level: debug\n  json: true\n",
			wantLevel: "debug",
			wantJSON:  true,
		},
		{
			name:      "Partial override keeps defaults",
			content:   "log:\n  json: true\n",
			wantLevel: "info",
			wantJSON:  true,
		},
		{
			name:      "Empty file",
			content:   "",
			wantLevel: "info",
		},
		{
			name:    "Invalid level",
			content: "log:\n  level: verbose\n",
			wantErr: true,
		},
		{
			name:    "Malformed YAML",
			content: "log: [level\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Load(writeConfig(t, tt.content))
			if tt.wantErr {
				if !errors.Is(err, config.ErrConfiguration) {
					t.Fatalf("Load() error = %v, want ErrConfiguration", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Log.Level != tt.wantLevel {
				t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, tt.wantLevel)
			}
			if cfg.Log.JSON != tt.wantJSON {
				t.Errorf("Log.JSON = %v, want %v", cfg.Log.JSON, tt.wantJSON)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, config.ErrConfiguration) {
		t.Errorf("Load() error = %v, want ErrConfiguration", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Log: config.LogConfig{Level: ""}}
	if err := cfg.Validate(); !errors.Is(err, config.ErrConfiguration) {
		t.Errorf("Validate() error = %v, want ErrConfiguration", err)
	}
}
