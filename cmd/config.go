package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the service needs at startup. Values come from
// the environment with sensible defaults for local development; a .env file
// is loaded first when present.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers          []string
	KafkaOrderEventsTopic string

	JWTSecret string
	JWTTTL    time.Duration

	SystemActorID         string
	MaxPendingAge         time.Duration
	ActivityRetentionDays int
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() Config {
	viper.AutomaticEnv()

	viper.SetDefault("HTTP_PORT", "8080")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "shopadmin")
	viper.SetDefault("DB_SSLMODE", "disable")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("KAFKA_BROKERS", []string{"localhost:9092"})
	viper.SetDefault("KAFKA_ORDER_EVENTS_TOPIC", "shopadmin.order-events")

	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("JWT_TTL", 12*time.Hour)

	viper.SetDefault("SYSTEM_ACTOR_ID", "00000000-0000-0000-0000-000000000001")
	viper.SetDefault("MAX_PENDING_AGE", 48*time.Hour)
	viper.SetDefault("ACTIVITY_RETENTION_DAYS", 90)

	return Config{
		HTTPPort: viper.GetString("HTTP_PORT"),

		DBHost:     viper.GetString("DB_HOST"),
		DBPort:     viper.GetString("DB_PORT"),
		DBUser:     viper.GetString("DB_USER"),
		DBPassword: viper.GetString("DB_PASSWORD"),
		DBName:     viper.GetString("DB_NAME"),
		DBSslMode:  viper.GetString("DB_SSLMODE"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),
		RedisDB:       viper.GetInt("REDIS_DB"),

		KafkaBrokers:          viper.GetStringSlice("KAFKA_BROKERS"),
		KafkaOrderEventsTopic: viper.GetString("KAFKA_ORDER_EVENTS_TOPIC"),

		JWTSecret: viper.GetString("JWT_SECRET"),
		JWTTTL:    viper.GetDuration("JWT_TTL"),

		SystemActorID:         viper.GetString("SYSTEM_ACTOR_ID"),
		MaxPendingAge:         viper.GetDuration("MAX_PENDING_AGE"),
		ActivityRetentionDays: viper.GetInt("ACTIVITY_RETENTION_DAYS"),
	}
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
