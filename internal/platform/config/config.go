package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile        = ".env"
	defaultPort           = "8080"
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultIdleTimeout    = 120 * time.Second
	defaultKVBackend      = KVBackendMemory
	defaultKVFilePath     = "data/bazarna.json"
	defaultKVKeyPrefix    = "bazarna"
	defaultRedisAddr      = "localhost:6379"
	defaultAdminSecret    = "bazarna5532.glitch"
	defaultWhatsAppNumber = "201124162523"
	defaultLanguage       = "ar"
)

// KV backend identifiers accepted by BAZARNA_KV_BACKEND.
const (
	KVBackendMemory = "memory"
	KVBackendFile   = "file"
	KVBackendRedis  = "redis"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server   ServerConfig
	KV       KVConfig
	Admin    AdminConfig
	Checkout CheckoutConfig
	Locale   LocaleConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// KVConfig selects and configures the persistence backend.
type KVConfig struct {
	Backend   string
	FilePath  string
	KeyPrefix string
	Redis     RedisConfig
}

// RedisConfig carries connection parameters for the redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AdminConfig holds the shared secret gating catalog mutations.
type AdminConfig struct {
	Secret string
}

// CheckoutConfig holds the merchant contact used for order handoff.
type CheckoutConfig struct {
	WhatsAppNumber string
}

// LocaleConfig sets the storefront locale defaults.
type LocaleConfig struct {
	DefaultLanguage string
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.Getenv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the application configuration by combining defaults, .env
// overrides, and environment variables (dotenv < OS env < explicit env map).
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}

	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         stringWithDefault(lookup, "BAZARNA_SERVER_PORT", defaultPort),
			ReadTimeout:  durationWithDefault(lookup, "BAZARNA_SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationWithDefault(lookup, "BAZARNA_SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationWithDefault(lookup, "BAZARNA_SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		KV: KVConfig{
			Backend:   strings.ToLower(stringWithDefault(lookup, "BAZARNA_KV_BACKEND", defaultKVBackend)),
			FilePath:  stringWithDefault(lookup, "BAZARNA_KV_FILE_PATH", defaultKVFilePath),
			KeyPrefix: stringWithDefault(lookup, "BAZARNA_KV_KEY_PREFIX", defaultKVKeyPrefix),
			Redis: RedisConfig{
				Addr:     stringWithDefault(lookup, "BAZARNA_KV_REDIS_ADDR", defaultRedisAddr),
				Password: stringWithDefault(lookup, "BAZARNA_KV_REDIS_PASSWORD", ""),
				DB:       intWithDefault(lookup, "BAZARNA_KV_REDIS_DB", 0),
			},
		},
		Admin: AdminConfig{
			Secret: stringWithDefault(lookup, "BAZARNA_ADMIN_SECRET", defaultAdminSecret),
		},
		Checkout: CheckoutConfig{
			WhatsAppNumber: stringWithDefault(lookup, "BAZARNA_CHECKOUT_WHATSAPP_NUMBER", defaultWhatsAppNumber),
		},
		Locale: LocaleConfig{
			DefaultLanguage: strings.ToLower(stringWithDefault(lookup, "BAZARNA_LOCALE_DEFAULT_LANGUAGE", defaultLanguage)),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validateConfig(cfg Config) error {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "Server.Port")
	}

	switch cfg.KV.Backend {
	case KVBackendMemory:
	case KVBackendFile:
		if strings.TrimSpace(cfg.KV.FilePath) == "" {
			missing = append(missing, "KV.FilePath")
		}
	case KVBackendRedis:
		if strings.TrimSpace(cfg.KV.Redis.Addr) == "" {
			missing = append(missing, "KV.Redis.Addr")
		}
	default:
		missing = append(missing, "KV.Backend")
	}

	if strings.TrimSpace(cfg.Admin.Secret) == "" {
		missing = append(missing, "Admin.Secret")
	}
	if !isPhoneNumber(cfg.Checkout.WhatsAppNumber) {
		missing = append(missing, "Checkout.WhatsAppNumber")
	}
	if cfg.Locale.DefaultLanguage != "ar" && cfg.Locale.DefaultLanguage != "en" {
		missing = append(missing, "Locale.DefaultLanguage")
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

// isPhoneNumber accepts the digits-only international format wa.me expects.
func isPhoneNumber(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}
		value = strings.Trim(value, "\"'")
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
