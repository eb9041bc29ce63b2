package infra

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/delcom/angkasa-api/config"
	"github.com/delcom/angkasa-api/entity"
)

type PostgresClient struct {
	DB *gorm.DB
}

func InitPostgresClient(cfg *config.EnvConfig) *PostgresClient {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Postgres.Host,
		cfg.Postgres.Username,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Failed to connect to Postgres: %v", err)
		return nil
	}

	if err := db.AutoMigrate(&entity.CelestialBody{}); err != nil {
		log.Printf("Failed to migrate celestial_bodies: %v", err)
		return nil
	}

	return &PostgresClient{DB: db}
}
