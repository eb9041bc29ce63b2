package repository

import (
	"github.com/delcom/angkasa-api/infra"
)

type Repository struct {
	CelestialBodyRepo *CelestialBodyRepository
}

func InitRepository(infra *infra.Infra) *Repository {
	return &Repository{
		CelestialBodyRepo: NewCelestialBodyRepository(infra.Postgres.DB),
	}
}
