package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendMemory  = "memory"
	BackendRedis   = "redis"
	BackendMongo   = "mongo"
	AuthFirebase   = "firebase"
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Storage backends: "memory", "redis" (ledger, sessions) or "mongo" (tasks).
	LedgerBackend  string `mapstructure:"LEDGER_BACKEND"`
	TaskBackend    string `mapstructure:"TASK_BACKEND"`
	SessionBackend string `mapstructure:"SESSION_BACKEND"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisLedgerDB  int    `mapstructure:"REDIS_LEDGER_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`

	// Identity and session tokens.
	JWTSecret               string `mapstructure:"JWT_SECRET"`
	TokenTTLHours           int    `mapstructure:"TOKEN_TTL_HOURS"`
	AuthProvider            string `mapstructure:"AUTH_PROVIDER"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseAPIKey          string `mapstructure:"FIREBASE_API_KEY"`
	RequireAuth             bool   `mapstructure:"REQUIRE_AUTH"`

	// Booking and task rules.
	StrictTaskTransitions bool   `mapstructure:"STRICT_TASK_TRANSITIONS"`
	BlockBookedDays       bool   `mapstructure:"BLOCK_BOOKED_DAYS"`
	UnavailableWeekday    string `mapstructure:"UNAVAILABLE_WEEKDAY"`
	SeedSampleData        bool   `mapstructure:"SEED_SAMPLE_DATA"`

	// Appointment reminders.
	RemindersEnabled    bool `mapstructure:"REMINDERS_ENABLED"`
	ReminderLeadMinutes int  `mapstructure:"REMINDER_LEAD_MINUTES"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("LEDGER_BACKEND", BackendMemory)
	v.SetDefault("TASK_BACKEND", BackendMemory)
	v.SetDefault("SESSION_BACKEND", BackendMemory)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_LEDGER_DB", 0)
	v.SetDefault("REDIS_SESSION_DB", 1)
	v.SetDefault("REDIS_QUEUE_DB", 2)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "jalusi")
	v.SetDefault("SESSION_TTL_MINUTES", 10)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL_HOURS", 24)
	v.SetDefault("AUTH_PROVIDER", BackendMemory)
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	v.SetDefault("FIREBASE_API_KEY", "")
	v.SetDefault("REQUIRE_AUTH", false)
	v.SetDefault("STRICT_TASK_TRANSITIONS", false)
	v.SetDefault("BLOCK_BOOKED_DAYS", false)
	v.SetDefault("UNAVAILABLE_WEEKDAY", "sunday")
	v.SetDefault("SEED_SAMPLE_DATA", true)
	v.SetDefault("REMINDERS_ENABLED", false)
	v.SetDefault("REMINDER_LEAD_MINUTES", 60)
}

// LoadConfig reads a local .env (if any), then config.yaml from "." or
// "./config", then the environment, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.LedgerBackend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("LEDGER_BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, c.LedgerBackend)
	}
	switch c.SessionBackend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("SESSION_BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, c.SessionBackend)
	}
	switch c.TaskBackend {
	case BackendMemory, BackendMongo:
	default:
		return fmt.Errorf("TASK_BACKEND must be %q or %q, got %q", BackendMemory, BackendMongo, c.TaskBackend)
	}
	switch c.AuthProvider {
	case BackendMemory:
	case AuthFirebase:
		if c.FirebaseAPIKey == "" {
			return fmt.Errorf("FIREBASE_API_KEY is required when AUTH_PROVIDER is %q", AuthFirebase)
		}
	default:
		return fmt.Errorf("AUTH_PROVIDER must be %q or %q, got %q", BackendMemory, AuthFirebase, c.AuthProvider)
	}
	if c.IsProduction() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	if _, err := c.ClosedWeekday(); err != nil {
		return err
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// ClosedWeekday parses UNAVAILABLE_WEEKDAY ("sunday", "Mon", ...).
func (c *Config) ClosedWeekday() (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(c.UnavailableWeekday))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("UNAVAILABLE_WEEKDAY %q is not a weekday name", c.UnavailableWeekday)
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

func (c *Config) ReminderLead() time.Duration {
	return time.Duration(c.ReminderLeadMinutes) * time.Minute
}

// NeedsRedis reports whether any component talks to Redis.
func (c *Config) NeedsRedis() bool {
	return c.LedgerBackend == BackendRedis || c.SessionBackend == BackendRedis || c.RemindersEnabled
}
