package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. PASSPORT_SERVER_PORT.
const EnvPrefix = "PASSPORT"

// keys lists every configuration key so each can be bound to its
// environment variable even when it has no default.
var keys = []string{
	"server.port",
	"server.log_level",
	"server.allowed_origins",
	"server.max_body_bytes",
	"llm.backend",
	"llm.gemini_api_key",
	"llm.project_id",
	"llm.location",
	"llm.text_model",
	"llm.image_model",
	"llm.text_timeout_seconds",
	"llm.image_timeout_seconds",
	"image.portraits",
	"storage.backend",
	"storage.folder",
	"storage.local_dir",
	"storage.public_path",
	"storage.s3_bucket",
	"storage.s3_region",
	"storage.cloudinary_url",
	"storage.upload_timeout_seconds",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.max_body_bytes", 10<<20)

	v.SetDefault("llm.backend", BackendGemini)
	v.SetDefault("llm.location", "us-central1")
	v.SetDefault("llm.text_model", "gemini-2.0-flash")
	v.SetDefault("llm.image_model", "imagen-3.0-generate-002")
	v.SetDefault("llm.text_timeout_seconds", 45)
	v.SetDefault("llm.image_timeout_seconds", 90)

	v.SetDefault("image.portraits", false)

	v.SetDefault("storage.backend", StorageLocal)
	v.SetDefault("storage.folder", "intergalactic-passports")
	v.SetDefault("storage.local_dir", "public/generated")
	v.SetDefault("storage.public_path", "/generated")
	v.SetDefault("storage.s3_region", "us-east-1")
	v.SetDefault("storage.upload_timeout_seconds", 30)
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return load(viper.New())
}

// LoadFile behaves like Load but reads the given config file, which must exist.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
