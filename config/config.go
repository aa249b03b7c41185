package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Payment  PaymentConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port    string
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type PaymentConfig struct {
	SecretKey string
}

type StorageConfig struct {
	ArtifactPrefix string
	SigningSecret  string
	URLExpiry      time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Payment:  GetPaymentConfig(),
		Storage:  GetStorageConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server: ServerConfig{
			Port:    "8080",
			BaseURL: "http://localhost:8080",
		},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Payment: PaymentConfig{
			SecretKey: "sk_test_secret",
		},
		Storage: StorageConfig{
			ArtifactPrefix: "tickets",
			SigningSecret:  "test-signing-secret",
			URLExpiry:      time.Hour,
		},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnv("SERVER_PORT", "8080"),
		BaseURL: getEnv("SERVER_BASE_URL", "http://localhost:8080"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetPaymentConfig() PaymentConfig {
	return PaymentConfig{
		SecretKey: getEnv("PAYMENT_SECRET_KEY", "sk_test_secret"),
	}
}

func GetStorageConfig() StorageConfig {
	expirySeconds, err := strconv.Atoi(getEnv("ARTIFACT_URL_EXPIRY_SECONDS", "3600"))
	if err != nil {
		panic(err)
	}

	return StorageConfig{
		ArtifactPrefix: getEnv("ARTIFACT_PREFIX", "tickets"),
		SigningSecret:  getEnv("ARTIFACT_SIGNING_SECRET", "dev-signing-secret"),
		URLExpiry:      time.Duration(expirySeconds) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
