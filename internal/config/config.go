package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Analysis AnalysisConfig
	Backup   BackupConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey           string
	Model            string
	Timeout          time.Duration
	RetryMaxAttempts int
}

type AnalysisConfig struct {
	PromptCharLimit int
	TargetRole      string
	MaxFileSize     int64
	StrictRecords   bool
}

type BackupConfig struct {
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	LocalDir    string
	Concurrency int
	QueueSize   int
	Timeout     time.Duration
}

// Enabled reports whether any backup target is configured. An unconfigured
// backup store is not an error; the pipeline simply skips the upload.
func (b BackupConfig) Enabled() bool {
	return b.S3Bucket != "" || b.LocalDir != ""
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
		Gemini: GeminiConfig{
			APIKey:           getEnv("GEMINI_API_KEY", ""),
			Model:            getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout:          getEnvAsDuration("GEMINI_TIMEOUT", "90s"),
			RetryMaxAttempts: getEnvAsInt("RETRY_MAX_ATTEMPTS", 1),
		},
		Analysis: AnalysisConfig{
			PromptCharLimit: getEnvAsInt("PROMPT_CHAR_LIMIT", 15000),
			TargetRole:      getEnv("TARGET_ROLE", "Senior Software Engineer"),
			MaxFileSize:     getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			StrictRecords:   getEnvAsBool("STRICT_RECORDS", false),
		},
		Backup: BackupConfig{
			S3Bucket:    getEnv("BACKUP_S3_BUCKET", ""),
			S3Region:    getEnv("BACKUP_S3_REGION", "us-east-1"),
			S3Endpoint:  getEnv("BACKUP_S3_ENDPOINT", ""),
			S3AccessKey: getEnv("BACKUP_S3_ACCESS_KEY", ""),
			S3SecretKey: getEnv("BACKUP_S3_SECRET_KEY", ""),
			LocalDir:    getEnv("BACKUP_DIR", ""),
			Concurrency: getEnvAsInt("BACKUP_CONCURRENCY", 2),
			QueueSize:   getEnvAsInt("BACKUP_QUEUE_SIZE", 100),
			Timeout:     getEnvAsDuration("BACKUP_TIMEOUT", "30s"),
		},
	}
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
