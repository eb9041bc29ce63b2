package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/delcom/angkasa-api/entity"
)

// ErrDuplicateName reports a unique-index violation on nama. The handlers
// pre-check with GetByName for the 409 path; this is the storage-level
// backstop for concurrent writers.
var ErrDuplicateName = errors.New("celestial body name already exists")

const searchLimit = 20

type CelestialBodyRepository struct {
	db *gorm.DB
}

func NewCelestialBodyRepository(db *gorm.DB) *CelestialBodyRepository {
	return &CelestialBodyRepository{db: db}
}

// Search returns at most 20 records. A blank search lists the newest records
// by creation time; otherwise names are matched case-insensitively and
// ordered ascending.
func (r *CelestialBodyRepository) Search(ctx context.Context, search string) ([]entity.CelestialBody, error) {
	bodies := make([]entity.CelestialBody, 0)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&entity.CelestialBody{})
		if strings.TrimSpace(search) == "" {
			q = q.Order("created_at DESC")
		} else {
			keyword := "%" + strings.ToLower(search) + "%"
			q = q.Where("LOWER(nama) LIKE ?", keyword).Order("nama ASC")
		}
		return q.Limit(searchLimit).Find(&bodies).Error
	})
	if err != nil {
		return nil, err
	}
	return bodies, nil
}

// GetByID returns (nil, nil) for a malformed or unknown id.
func (r *CelestialBodyRepository) GetByID(ctx context.Context, id string) (*entity.CelestialBody, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	var body entity.CelestialBody
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("id = ?", uid).First(&body).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &body, nil
}

// GetByName is an exact-match lookup used for uniqueness checks.
func (r *CelestialBodyRepository) GetByName(ctx context.Context, name string) (*entity.CelestialBody, error) {
	var body entity.CelestialBody
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("nama = ?", name).First(&body).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &body, nil
}

// Add assigns the id and both timestamps, inserts the row and returns the
// generated id.
func (r *CelestialBodyRepository) Add(ctx context.Context, body *entity.CelestialBody) (string, error) {
	body.ID = uuid.New()
	now := time.Now().UTC()
	body.CreatedAt = now
	body.UpdatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(body).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", ErrDuplicateName
	}
	if err != nil {
		return "", err
	}
	return body.ID.String(), nil
}

// Update overwrites the text fields, image path and updated_at of the row
// matching id. It reports whether exactly one row was updated; a malformed id
// matches nothing.
func (r *CelestialBodyRepository) Update(ctx context.Context, id string, body *entity.CelestialBody) (bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	var affected int64
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.CelestialBody{}).Where("id = ?", uid).Updates(map[string]interface{}{
			"nama":          body.Nama,
			"path_gambar":   body.PathGambar,
			"deskripsi":     body.Deskripsi,
			"manfaat":       body.Manfaat,
			"fakta_menarik": body.FaktaMenarik,
			"updated_at":    time.Now().UTC(),
		})
		affected = res.RowsAffected
		return res.Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, ErrDuplicateName
	}
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// Remove deletes the row matching id and reports whether exactly one row was
// removed.
func (r *CelestialBodyRepository) Remove(ctx context.Context, id string) (bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	var affected int64
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", uid).Delete(&entity.CelestialBody{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
