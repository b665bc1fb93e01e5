package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	AppEnv string
	Port   string

	DBDriver  string
	MongoURI  string
	MongoDB   string
	DBTimeout time.Duration

	JWTSecret    string
	SessionTTL   time.Duration
	CookieSecure bool
	BcryptCost   int

	CORSOrigins  string
	PublicDir    string
	MediaBaseURL string
	GridFSBucket string
	MaxUploadMB  int

	LogLevel  string
	LogFormat string

	SiteDefaults SiteDefaults
}

// SiteDefaults are the values used for the settings document when nothing
// has been saved yet, and for every field left empty on update.
type SiteDefaults struct {
	SiteTitle    string `toml:"site_title"`
	ContactEmail string `toml:"contact_email"`
	Theme        string `toml:"theme"`
	PrimaryColor string `toml:"primary_color"`
	MusicSlots   int    `toml:"music_slots"`
}

func DefaultSiteDefaults() SiteDefaults {
	return SiteDefaults{
		SiteTitle:    "My Event Site",
		ContactEmail: "admin@example.com",
		Theme:        "Light",
		PrimaryColor: "#3B82F6",
		MusicSlots:   3,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// LoadConfig reads .env (optional) and the process environment.
func LoadConfig() (Config, error) {
	// .env is optional when variables come from the environment (Docker, CI)
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:       getEnv("APP_ENV", "production"),
		Port:         getEnv("PORT", "3000"),
		DBDriver:     strings.ToLower(getEnv("DB_DRIVER", DriverMongo)),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "djsite"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		CORSOrigins:  getEnv("CORS_ORIGINS", "*"),
		PublicDir:    getEnv("PUBLIC_DIR", "./public"),
		MediaBaseURL: getEnv("MEDIA_BASE_URL", "/media/"),
		GridFSBucket: getEnv("GRIDFS_BUCKET", "images"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "console"),
	}

	var err error
	if cfg.DBTimeout, err = time.ParseDuration(getEnv("DB_TIMEOUT", "10s")); err != nil {
		return cfg, fmt.Errorf("config: DB_TIMEOUT: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "24h")); err != nil {
		return cfg, fmt.Errorf("config: SESSION_TTL: %w", err)
	}
	if cfg.CookieSecure, err = strconv.ParseBool(getEnv("COOKIE_SECURE", "false")); err != nil {
		return cfg, fmt.Errorf("config: COOKIE_SECURE: %w", err)
	}
	if cfg.BcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", "12")); err != nil {
		return cfg, fmt.Errorf("config: BCRYPT_COST: %w", err)
	}
	if cfg.MaxUploadMB, err = strconv.Atoi(getEnv("MAX_UPLOAD_MB", "10")); err != nil {
		return cfg, fmt.Errorf("config: MAX_UPLOAD_MB: %w", err)
	}

	cfg.SiteDefaults = DefaultSiteDefaults()
	if path := os.Getenv("SITE_DEFAULTS_FILE"); path != "" {
		if cfg.SiteDefaults, err = LoadSiteDefaults(path, cfg.SiteDefaults); err != nil {
			return cfg, err
		}
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadSiteDefaults overlays the TOML file at path on base. Keys missing from
// the file keep the base value.
func LoadSiteDefaults(path string, base SiteDefaults) (SiteDefaults, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: read site defaults %q: %w", path, err)
	}
	out := base
	if err := toml.Unmarshal(raw, &out); err != nil {
		return base, fmt.Errorf("config: parse site defaults %q: %w", path, err)
	}
	if out.MusicSlots <= 0 {
		out.MusicSlots = base.MusicSlots
	}
	return out, nil
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverMongo:
		if strings.TrimSpace(c.MongoURI) == "" {
			return errors.New("config: MONGO_URI is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: DB_DRIVER must be %q or %q, got %q", DriverMongo, DriverMemory, c.DBDriver)
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		if !c.IsDevelopment() {
			return errors.New("config: JWT_SECRET is required")
		}
		c.JWTSecret = "development-only-secret"
	}
	if c.SessionTTL <= 0 {
		return errors.New("config: SESSION_TTL must be positive")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("config: BCRYPT_COST out of range: %d", c.BcryptCost)
	}
	if c.MaxUploadMB <= 0 {
		return errors.New("config: MAX_UPLOAD_MB must be positive")
	}
	if !strings.HasSuffix(c.MediaBaseURL, "/") {
		c.MediaBaseURL += "/"
	}
	return nil
}
