package entity

import (
	"time"

	"github.com/google/uuid"
)

// CelestialBody maps the celestial_bodies table. Column names follow the
// original data source (Indonesian), JSON names follow the public API.
type CelestialBody struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Nama         string    `json:"nama" gorm:"type:varchar(100);not null;uniqueIndex"`
	PathGambar   string    `json:"pathGambar" gorm:"type:varchar(255);not null"`
	Deskripsi    string    `json:"deskripsi" gorm:"type:text;not null"`
	Manfaat      string    `json:"manfaat" gorm:"type:text;not null"`
	FaktaMenarik string    `json:"faktaMenarik" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"not null"`
}

func (CelestialBody) TableName() string {
	return "celestial_bodies"
}
