package environments

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Meta     MetaConfig
	CRM      CRMConfig
	WhatsApp WhatsAppConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// MetaConfig configures the Meta Conversions API sink.
type MetaConfig struct {
	PixelID       string
	AccessToken   string
	APIVersion    string
	TestEventCode string
	Timeout       time.Duration
}

// CRMConfig configures the generic CRM webhook sink.
type CRMConfig struct {
	WebhookURL string
	AuthKey    string
	Timeout    time.Duration
}

type WhatsAppConfig struct {
	// BusinessNumber is the clinic's WhatsApp number in E.164 form,
	// used for the visitor-side booking deep link.
	BusinessNumber string
}

type AuthConfig struct {
	AdminAPIKey string
}

func Load() *Config {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: GetEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     GetEnv("DB_HOST", "localhost"),
			Port:     GetEnv("DB_PORT", "3306"),
			User:     GetEnv("DB_USER", "clinic"),
			Password: GetEnv("DB_PASSWORD", "clinic123"),
			DBName:   GetEnv("DB_NAME", "clinic_leads"),
		},
		Redis: RedisConfig{
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetEnvAsInt("REDIS_DB", 0),
		},
		Meta: MetaConfig{
			PixelID:       GetEnv("META_PIXEL_ID", ""),
			AccessToken:   GetEnv("META_ACCESS_TOKEN", ""),
			APIVersion:    GetEnv("META_API_VERSION", "v18.0"),
			TestEventCode: GetEnv("META_TEST_EVENT_CODE", ""),
			Timeout:       time.Duration(GetEnvAsInt("META_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		CRM: CRMConfig{
			WebhookURL: GetEnv("CRM_WEBHOOK_URL", ""),
			AuthKey:    GetEnv("CRM_WEBHOOK_AUTH_KEY", ""),
			Timeout:    time.Duration(GetEnvAsInt("CRM_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		WhatsApp: WhatsAppConfig{
			BusinessNumber: GetEnv("WHATSAPP_BUSINESS_NUMBER", "+96566774402"),
		},
		Auth: AuthConfig{
			AdminAPIKey: GetEnv("ADMIN_API_KEY", ""),
		},
	}
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
