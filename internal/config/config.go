package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Gemini   GeminiConfig
	Sources  SourcesConfig
	Pipeline PipelineConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	URL     string // empty disables the event publisher
	Channel string
}

type GeminiConfig struct {
	APIKey string
	// Models are tried in order; the first one that answers wins.
	Models []string
}

type SourcesConfig struct {
	AdzunaAppID      string
	AdzunaAppKey     string
	USAJobsAPIKey    string
	USAJobsUserAgent string
}

type PipelineConfig struct {
	SearchPath    string // YAML search criteria file
	ProfilePath   string // JSON candidate profile file
	Concurrency   int    // bounded pool for source adapters
	IntervalHours int    // scheduler cadence; 0 disables periodic runs
}

type StorageConfig struct {
	OutputPath string // generated resume artifacts
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "resumegenie"),
		},
		Redis: RedisConfig{
			URL:     getEnv("REDIS_URL", ""),
			Channel: getEnv("REDIS_EVENT_CHANNEL", "resumegenie.ingested"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Models: getEnvAsList("RESUME_MODELS", []string{
				"gemini-2.5-flash",
				"gemini-2.0-flash",
				"gemini-1.5-flash",
			}),
		},
		Sources: SourcesConfig{
			AdzunaAppID:      getEnv("ADZUNA_APP_ID", ""),
			AdzunaAppKey:     getEnv("ADZUNA_APP_KEY", ""),
			USAJobsAPIKey:    getEnv("USAJOBS_API_KEY", ""),
			USAJobsUserAgent: getEnv("USAJOBS_USER_AGENT", ""),
		},
		Pipeline: PipelineConfig{
			SearchPath:    getEnv("SEARCH_CONFIG_PATH", "search.yaml"),
			ProfilePath:   getEnv("PROFILE_PATH", "master_profile.json"),
			Concurrency:   getEnvAsInt("SOURCE_CONCURRENCY", 3),
			IntervalHours: getEnvAsInt("INGEST_INTERVAL_HOURS", 0),
		},
		Storage: StorageConfig{
			OutputPath: getEnv("OUTPUT_PATH", "./output"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
