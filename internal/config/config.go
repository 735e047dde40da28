package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Image   ImageConfig   `mapstructure:"image"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port           int      `mapstructure:"port"            validate:"required,gt=0,lt=65536"`
	LogLevel       string   `mapstructure:"log_level"       validate:"required,oneof=debug info warn error"`
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`
	MaxBodyBytes   int64    `mapstructure:"max_body_bytes"  validate:"gt=0"`
}

// LLM provider backends.
const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"
)

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// Backend selects the Gemini API (API key) or Vertex AI (project + location).
	Backend      string `mapstructure:"backend"        validate:"required,oneof=gemini vertex"`
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required_if=Backend gemini"`
	ProjectID    string `mapstructure:"project_id"     validate:"required_if=Backend vertex"`
	Location     string `mapstructure:"location"       validate:"required_if=Backend vertex"`

	TextModel  string `mapstructure:"text_model"  validate:"required"`
	ImageModel string `mapstructure:"image_model" validate:"required"`

	TextTimeoutSeconds  int `mapstructure:"text_timeout_seconds"  validate:"gt=0"`
	ImageTimeoutSeconds int `mapstructure:"image_timeout_seconds" validate:"gt=0"`
}

// TextTimeout is the bound on a single text-generation call.
func (c LLMConfig) TextTimeout() time.Duration {
	return time.Duration(c.TextTimeoutSeconds) * time.Second
}

// ImageTimeout is the bound on a single image-generation call.
func (c LLMConfig) ImageTimeout() time.Duration {
	return time.Duration(c.ImageTimeoutSeconds) * time.Second
}

// ImageConfig controls the portrait pipeline.
type ImageConfig struct {
	// Portraits enables generating and hosting a portrait for every passport.
	Portraits bool `mapstructure:"portraits"`
}

// Image store backends.
const (
	StorageLocal      = "local"
	StorageS3         = "s3"
	StorageCloudinary = "cloudinary"
)

// StorageConfig selects and configures the image store.
type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=local s3 cloudinary"`
	Folder  string `mapstructure:"folder"  validate:"required"`

	LocalDir   string `mapstructure:"local_dir"   validate:"required_if=Backend local"`
	PublicPath string `mapstructure:"public_path" validate:"required_if=Backend local"`

	S3Bucket string `mapstructure:"s3_bucket" validate:"required_if=Backend s3"`
	S3Region string `mapstructure:"s3_region" validate:"required_if=Backend s3"`

	// CloudinaryURL has the form cloudinary://<api_key>:<api_secret>@<cloud_name>.
	CloudinaryURL string `mapstructure:"cloudinary_url" validate:"required_if=Backend cloudinary"`

	UploadTimeoutSeconds int `mapstructure:"upload_timeout_seconds" validate:"gt=0"`
}

// UploadTimeout is the bound on a single image upload.
func (c StorageConfig) UploadTimeout() time.Duration {
	return time.Duration(c.UploadTimeoutSeconds) * time.Second
}
