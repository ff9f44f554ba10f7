package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type StorageBackend string

const (
	StorageCloudinary StorageBackend = "cloudinary"
	StorageSupabase   StorageBackend = "supabase"
	StorageLocal      StorageBackend = "local"
	// StorageDisabled is picked on serverless platforms without a cloud
	// backend: their filesystem is read-only or thrown away between requests.
	StorageDisabled StorageBackend = "disabled"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	AppEnv      string `env:"APP_ENV" envDefault:"production"`
	DBUrl       string `env:"DATABASE_URL"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	AdminUser     string `env:"ADMIN_USER" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASS"`
	SessionSecret string `env:"SECRET_KEY"`

	SMTPServer   string `env:"SMTP_SERVER" envDefault:"smtp.gmail.com"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	EmailTo      string `env:"EMAIL_TO"`

	CloudinaryURL      string `env:"CLOUDINARY_URL"`
	SupabaseURL        string `env:"SUPABASE_URL"`
	SupabaseBucket     string `env:"SUPABASE_BUCKET"`
	SupabaseServiceKey string `env:"SUPABASE_SERVICE_KEY"`
	CloudFolderPrefix  string `env:"CLOUD_FOLDER_PREFIX" envDefault:"sportclub"`
	StaticDir          string `env:"STATIC_DIR" envDefault:"static"`

	WhatsAppPhone string `env:"SITE_WA_PHONE"`
	WhatsAppText  string `env:"SITE_WA_TEXT" envDefault:"Здравствуйте! Хочу записаться"`

	VercelMarker    string `env:"VERCEL"`
	NowRegionMarker string `env:"NOW_REGION"`
	LambdaMarker    string `env:"AWS_LAMBDA_FUNCTION_NAME"`

	Serverless bool           `env:"-"`
	Storage    StorageBackend `env:"-"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) resolve() error {
	c.AppEnv = normalizeEnv(c.AppEnv)
	c.DBUrl = NormalizeDatabaseURL(c.DBUrl)
	c.Serverless = c.VercelMarker != "" || c.NowRegionMarker != "" || c.LambdaMarker != ""
	c.Storage = selectStorage(c)

	if c.SessionSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return fmt.Errorf("generate session secret: %w", err)
		}
		c.SessionSecret = secret
	}
	return nil
}

func selectStorage(c *Config) StorageBackend {
	switch {
	case c.CloudinaryURL != "":
		return StorageCloudinary
	case c.SupabaseURL != "" && c.SupabaseBucket != "" && c.SupabaseServiceKey != "":
		return StorageSupabase
	case c.Serverless:
		return StorageDisabled
	default:
		return StorageLocal
	}
}

// NormalizeDatabaseURL rewrites the postgres:// scheme some hosts hand out to
// postgresql://.
func NormalizeDatabaseURL(value string) string {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(value, "postgres://")
	}
	return value
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// AdminEnabled reports whether admin credentials can ever match. Without a
// password every admin request is denied.
func (c *Config) AdminEnabled() bool {
	return c != nil && c.AdminPassword != ""
}

func (c *Config) MailConfigured() bool {
	return c != nil &&
		c.SMTPServer != "" &&
		c.SMTPPort > 0 &&
		c.SMTPUsername != "" &&
		c.SMTPPassword != "" &&
		c.EmailTo != ""
}
