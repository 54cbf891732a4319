package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Fatalf("read timeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.KV.Backend != KVBackendMemory {
		t.Fatalf("backend = %q", cfg.KV.Backend)
	}
	if cfg.Admin.Secret == "" {
		t.Fatal("expected a default admin secret")
	}
	if cfg.Checkout.WhatsAppNumber != "201124162523" {
		t.Fatalf("whatsapp number = %q", cfg.Checkout.WhatsAppNumber)
	}
	if cfg.Locale.DefaultLanguage != "ar" {
		t.Fatalf("default language = %q", cfg.Locale.DefaultLanguage)
	}
}

func TestLoadEnvMapOverrides(t *testing.T) {
	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(""), WithEnvMap(map[string]string{
		"BAZARNA_SERVER_PORT":              "9090",
		"BAZARNA_SERVER_READ_TIMEOUT":      "5s",
		"BAZARNA_KV_BACKEND":               "Redis",
		"BAZARNA_KV_REDIS_ADDR":            "redis.internal:6380",
		"BAZARNA_KV_REDIS_DB":              "3",
		"BAZARNA_CHECKOUT_WHATSAPP_NUMBER": "201000000000",
		"BAZARNA_LOCALE_DEFAULT_LANGUAGE":  "EN",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Fatalf("read timeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.KV.Backend != KVBackendRedis {
		t.Fatalf("backend = %q", cfg.KV.Backend)
	}
	if cfg.KV.Redis.Addr != "redis.internal:6380" || cfg.KV.Redis.DB != 3 {
		t.Fatalf("redis = %+v", cfg.KV.Redis)
	}
	if cfg.Checkout.WhatsAppNumber != "201000000000" {
		t.Fatalf("whatsapp number = %q", cfg.Checkout.WhatsAppNumber)
	}
	if cfg.Locale.DefaultLanguage != "en" {
		t.Fatalf("default language = %q", cfg.Locale.DefaultLanguage)
	}
}

func TestLoadDotEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "# local overrides\nexport BAZARNA_SERVER_PORT=7000\nBAZARNA_KV_KEY_PREFIX=\"shoptest\"\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "7000" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
	if cfg.KV.KeyPrefix != "shoptest" {
		t.Fatalf("key prefix = %q", cfg.KV.KeyPrefix)
	}

	// Explicit map wins over the dotenv file.
	cfg, err = Load(WithoutSystemEnv(), WithEnvFile(envPath), WithEnvMap(map[string]string{
		"BAZARNA_SERVER_PORT": "7001",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "7001" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{
			name:  "unknown backend",
			env:   map[string]string{"BAZARNA_KV_BACKEND": "sqlite"},
			field: "KV.Backend",
		},
		{
			name: "file backend without path",
			env: map[string]string{
				"BAZARNA_KV_BACKEND":   "file",
				"BAZARNA_KV_FILE_PATH": " ",
			},
			field: "KV.FilePath",
		},
		{
			name:  "non-numeric whatsapp number",
			env:   map[string]string{"BAZARNA_CHECKOUT_WHATSAPP_NUMBER": "+20 112"},
			field: "Checkout.WhatsAppNumber",
		},
		{
			name:  "unsupported language",
			env:   map[string]string{"BAZARNA_LOCALE_DEFAULT_LANGUAGE": "fr"},
			field: "Locale.DefaultLanguage",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(WithoutSystemEnv(), WithEnvFile(""), WithEnvMap(tc.env))
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			found := false
			for _, field := range validationErr.Fields() {
				if field == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("fields = %v, want %s", validationErr.Fields(), tc.field)
			}
		})
	}
}
