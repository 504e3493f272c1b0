package bootstrap

import (
	"time"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/database"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/env"
)

const (
	defaultHttpPort   = ":8080"
	defaultCacheTTL   = time.Minute
	defaultKafkaTopic = "purchases.events"
	defaultLogLevel   = "info"
)

type PurchasesConfig struct {
	DbSettings   database.PostgresSettings
	HttpPort     string
	RedisAddr    string
	CacheTTL     time.Duration
	KafkaBrokers []string
	KafkaTopic   string
	LogLevel     string
}

func DefaultConfig() PurchasesConfig {
	return PurchasesConfig{
		DbSettings: database.PostgresSettings{
			User:       "postgres",
			Password:   "postgres",
			Host:       "localhost",
			Port:       "5432",
			DBName:     "purchases",
			SSlEnabled: false,
		},
		HttpPort:   defaultHttpPort,
		CacheTTL:   defaultCacheTTL,
		KafkaTopic: defaultKafkaTopic,
		LogLevel:   defaultLogLevel,
	}
}

// LoadConfig starts from the defaults and applies every variable present in the environment.
func LoadConfig() PurchasesConfig {
	cfg := DefaultConfig()

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)

	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetBoolFromEnv(env.EnvDatabaseSSL, &cfg.DbSettings.SSlEnabled)

	env.TrySetFromEnv(env.EnvRedisAddr, &cfg.RedisAddr)
	env.TrySetDurationFromEnv(env.EnvCacheTTL, &cfg.CacheTTL)

	env.TrySetListFromEnv(env.EnvKafkaBrokers, &cfg.KafkaBrokers)
	env.TrySetFromEnv(env.EnvKafkaTopic, &cfg.KafkaTopic)

	env.TrySetFromEnv(env.EnvLogLevel, &cfg.LogLevel)

	return cfg
}
