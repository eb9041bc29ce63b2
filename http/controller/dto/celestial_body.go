package dto

import (
	"github.com/delcom/angkasa-api/entity"
)

// CelestialBodyRequestDTO holds the multipart form fields of a create or
// update request. PathGambar is filled after the uploaded file is written to
// disk.
type CelestialBodyRequestDTO struct {
	Nama         string `form:"nama"`
	Deskripsi    string `form:"deskripsi"`
	Manfaat      string `form:"manfaat"`
	FaktaMenarik string `form:"faktaMenarik"`
	PathGambar   string `form:"-"`
}

func (r *CelestialBodyRequestDTO) ToFieldMap() map[string]string {
	return map[string]string{
		"nama":         r.Nama,
		"deskripsi":    r.Deskripsi,
		"manfaat":      r.Manfaat,
		"faktaMenarik": r.FaktaMenarik,
		"pathGambar":   r.PathGambar,
	}
}

func (r *CelestialBodyRequestDTO) ToEntity() *entity.CelestialBody {
	return &entity.CelestialBody{
		Nama:         r.Nama,
		PathGambar:   r.PathGambar,
		Deskripsi:    r.Deskripsi,
		Manfaat:      r.Manfaat,
		FaktaMenarik: r.FaktaMenarik,
	}
}
