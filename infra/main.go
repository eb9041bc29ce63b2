package infra

import (
	"github.com/delcom/angkasa-api/config"
)

type Infra struct {
	Postgres *PostgresClient
	Logger   *LoggerClient
	Storage  *UploadService
}

var infraInstance *Infra

func InitInfra(cfg *config.Config) *Infra {
	if infraInstance != nil {
		return infraInstance
	}

	postgres := InitPostgresClient(cfg.EnvConfig)
	if postgres == nil {
		panic("Failed to initialize Postgres service")
	}

	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	storage := InitUploadService(cfg.EnvConfig)
	if storage == nil {
		panic("Failed to initialize Upload service")
	}

	infraInstance = &Infra{
		Postgres: postgres,
		Logger:   logger,
		Storage:  storage,
	}

	return infraInstance
}
