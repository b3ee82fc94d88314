package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	config, err := NewConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if config.HTTPListen != ":8080" {
		t.Errorf("HTTPListen = %q", config.HTTPListen)
	}
	if config.DatabaseDriver != DriverSQLite || config.DatabaseDSN != "inquiries.db" {
		t.Errorf("database = %s %s", config.DatabaseDriver, config.DatabaseDSN)
	}
	if !config.AutoMigrate || !config.LogToDB {
		t.Errorf("AutoMigrate = %v, LogToDB = %v", config.AutoMigrate, config.LogToDB)
	}
	if config.PasswordMode != PasswordModePlain || config.AdminDefaultPassword != "admin123" {
		t.Errorf("password = %s %s", config.PasswordMode, config.AdminDefaultPassword)
	}
	if config.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %s", config.ShutdownTimeout)
	}
}

func TestNewConfigFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "HTTP_LISTEN=127.0.0.1:9000\nPASSWORD_MODE=bcrypt\nREAD_TIMEOUT=3s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	// godotenv does not override variables that are already set
	t.Setenv("HTTP_LISTEN", "")
	os.Unsetenv("HTTP_LISTEN")
	t.Setenv("PASSWORD_MODE", "")
	os.Unsetenv("PASSWORD_MODE")
	t.Setenv("READ_TIMEOUT", "")
	os.Unsetenv("READ_TIMEOUT")

	config, err := NewConfig(path)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if config.HTTPListen != "127.0.0.1:9000" {
		t.Errorf("HTTPListen = %q", config.HTTPListen)
	}
	if config.PasswordMode != PasswordModeBcrypt {
		t.Errorf("PasswordMode = %q", config.PasswordMode)
	}
	if config.ReadTimeout != 3*time.Second {
		t.Errorf("ReadTimeout = %s", config.ReadTimeout)
	}
}

func TestNewConfigRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"driver", "DATABASE_DRIVER", "mysql"},
		{"password mode", "PASSWORD_MODE", "md5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			if _, err := NewConfig(filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}
