package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverCSV      = "csv"
	StorageDriverPostgres = "postgres"

	SessionDriverMemory = "memory"
	SessionDriverRedis  = "redis"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Session  SessionConfig
	Redis    RedisConfig
	Fetch    FetchConfig
	Writer   WriterConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	Level  string
	Format string
}

type AuthConfig struct {
	Username string
	Password string
}

type StorageConfig struct {
	Driver            string
	DataPath          string
	RegistrationsFile string
	FeedbackFile      string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type SessionConfig struct {
	Driver string
	TTL    time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type FetchConfig struct {
	Enabled  bool
	Timeout  time.Duration
	MaxBytes int64
}

type WriterConfig struct {
	QueueSize int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Auth: AuthConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "secret"),
		},
		Storage: StorageConfig{
			Driver:            getEnv("STORAGE_DRIVER", StorageDriverCSV),
			DataPath:          getEnv("DATA_PATH", "./data"),
			RegistrationsFile: getEnv("REGISTRATIONS_FILE", "user_data.csv"),
			FeedbackFile:      getEnv("FEEDBACK_FILE", "job_posting_feedback.csv"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "job_posting_classifier"),
		},
		Session: SessionConfig{
			Driver: getEnv("SESSION_DRIVER", SessionDriverMemory),
			TTL:    getEnvAsDuration("SESSION_TTL", "24h"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Fetch: FetchConfig{
			Enabled:  getEnvAsBool("FETCH_ENABLED", false),
			Timeout:  getEnvAsDuration("FETCH_TIMEOUT", "15s"),
			MaxBytes: getEnvAsInt64("FETCH_MAX_BYTES", 5242880),
		},
		Writer: WriterConfig{
			QueueSize: getEnvAsInt("WRITER_QUEUE_SIZE", 100),
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

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
