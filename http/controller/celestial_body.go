package controller

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/delcom/angkasa-api/http/controller/dto"
	"github.com/delcom/angkasa-api/repository"
	"github.com/delcom/angkasa-api/utils"
)

// maxMultipartBytes caps the whole multipart payload.
const maxMultipartBytes = 5 << 20

// GetAllCelestialBodies lists records, optionally filtered by the search
// query parameter.
func (ctrl *Controller) GetAllCelestialBodies(c *gin.Context) {
	ctx := c.Request.Context()

	bodies, err := ctrl.Repository.CelestialBodyRepo.Search(ctx, c.Query("search"))
	if err != nil {
		c.Error(err)
		return
	}

	utils.JSON200(c, "Berhasil mengambil daftar benda langit", gin.H{
		"celestialBodies": bodies,
	})
}

func (ctrl *Controller) GetCelestialBodyByID(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.Error(utils.BadRequest("ID benda langit tidak boleh kosong!"))
		return
	}

	body, err := ctrl.Repository.CelestialBodyRepo.GetByID(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	if body == nil {
		c.Error(utils.NotFound("Data benda langit tidak tersedia!"))
		return
	}

	utils.JSON200(c, "Berhasil mengambil data benda langit", gin.H{
		"celestialBody": body,
	})
}

func (ctrl *Controller) CreateCelestialBody(c *gin.Context) {
	ctx := c.Request.Context()

	req, _, err := ctrl.parseCelestialBodyRequest(c)
	if err != nil {
		c.Error(err)
		return
	}

	// Every failure from here until the insert succeeds must reclaim the
	// freshly written file.
	if err := ctrl.validateCelestialBodyRequest(req); err != nil {
		ctrl.discardUpload(ctx, req.PathGambar)
		c.Error(err)
		return
	}

	exist, err := ctrl.Repository.CelestialBodyRepo.GetByName(ctx, req.Nama)
	if err != nil {
		ctrl.discardUpload(ctx, req.PathGambar)
		c.Error(err)
		return
	}
	if exist != nil {
		ctrl.discardUpload(ctx, req.PathGambar)
		c.Error(utils.Conflict("Benda langit dengan nama ini sudah terdaftar!"))
		return
	}

	id, err := ctrl.Repository.CelestialBodyRepo.Add(ctx, req.ToEntity())
	if err != nil {
		ctrl.discardUpload(ctx, req.PathGambar)
		if errors.Is(err, repository.ErrDuplicateName) {
			c.Error(utils.Conflict("Benda langit dengan nama ini sudah terdaftar!"))
			return
		}
		c.Error(err)
		return
	}

	utils.JSON200(c, "Berhasil menambahkan data benda langit", gin.H{
		"celestialBodyId": id,
	})
}

func (ctrl *Controller) UpdateCelestialBody(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.Error(utils.BadRequest("ID benda langit tidak boleh kosong!"))
		return
	}

	old, err := ctrl.Repository.CelestialBodyRepo.GetByID(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	if old == nil {
		c.Error(utils.NotFound("Data benda langit tidak tersedia!"))
		return
	}

	req, uploadedNew, err := ctrl.parseCelestialBodyRequest(c)
	if err != nil {
		c.Error(err)
		return
	}

	// No new upload keeps the existing image.
	if req.PathGambar == "" {
		req.PathGambar = old.PathGambar
	}

	if err := ctrl.validateCelestialBodyRequest(req); err != nil {
		if uploadedNew {
			ctrl.discardUpload(ctx, req.PathGambar)
		}
		c.Error(err)
		return
	}

	if req.Nama != old.Nama {
		exist, err := ctrl.Repository.CelestialBodyRepo.GetByName(ctx, req.Nama)
		if err != nil {
			if uploadedNew {
				ctrl.discardUpload(ctx, req.PathGambar)
			}
			c.Error(err)
			return
		}
		if exist != nil {
			if uploadedNew {
				ctrl.discardUpload(ctx, req.PathGambar)
			}
			c.Error(utils.Conflict("Benda langit dengan nama ini sudah terdaftar!"))
			return
		}
	}

	ok, err := ctrl.Repository.CelestialBodyRepo.Update(ctx, id, req.ToEntity())
	if err != nil {
		if uploadedNew {
			ctrl.discardUpload(ctx, req.PathGambar)
		}
		if errors.Is(err, repository.ErrDuplicateName) {
			c.Error(utils.Conflict("Benda langit dengan nama ini sudah terdaftar!"))
			return
		}
		c.Error(err)
		return
	}
	if !ok {
		if uploadedNew {
			ctrl.discardUpload(ctx, req.PathGambar)
		}
		c.Error(utils.BadRequest("Gagal memperbarui data benda langit!"))
		return
	}

	// The row now references the new file; the superseded one can go.
	if req.PathGambar != old.PathGambar {
		if err := ctrl.Infra.Storage.Delete(old.PathGambar); err != nil {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[CelestialBody] Failed to remove replaced image %s: %v", old.PathGambar, err)
		}
	}

	utils.JSON200(c, "Berhasil mengubah data benda langit", nil)
}

func (ctrl *Controller) DeleteCelestialBody(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.Error(utils.BadRequest("ID benda langit tidak boleh kosong!"))
		return
	}

	old, err := ctrl.Repository.CelestialBodyRepo.GetByID(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	if old == nil {
		c.Error(utils.NotFound("Data benda langit tidak tersedia!"))
		return
	}

	ok, err := ctrl.Repository.CelestialBodyRepo.Remove(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	if !ok {
		c.Error(utils.BadRequest("Gagal menghapus data benda langit!"))
		return
	}

	// The row is gone, reclaim its image file.
	if err := ctrl.Infra.Storage.Delete(old.PathGambar); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[CelestialBody] Failed to remove image %s of deleted record %s: %v", old.PathGambar, id, err)
	}

	utils.JSON200(c, "Berhasil menghapus data benda langit", nil)
}

// GetCelestialBodyImage streams the raw image bytes. Failures answer with a
// bare status code, there is no JSON envelope on this endpoint.
func (ctrl *Controller) GetCelestialBodyImage(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	body, err := ctrl.Repository.CelestialBodyRepo.GetByID(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	if body == nil {
		c.Status(http.StatusNotFound)
		return
	}

	if !ctrl.Infra.Storage.Exists(body.PathGambar) {
		c.Status(http.StatusNotFound)
		return
	}

	c.File(filepath.FromSlash(body.PathGambar))
}

// parseCelestialBodyRequest reads the multipart form. When a file part is
// present it is written to disk immediately; the second result reports
// whether that happened.
func (ctrl *Controller) parseCelestialBodyRequest(c *gin.Context) (*dto.CelestialBodyRequestDTO, bool, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxMultipartBytes)

	form, err := c.MultipartForm()
	if err != nil {
		return nil, false, utils.BadRequest("Data formulir tidak valid!")
	}

	value := func(name string) string {
		if vs := form.Value[name]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	req := &dto.CelestialBodyRequestDTO{
		Nama:         strings.TrimSpace(value("nama")),
		Deskripsi:    value("deskripsi"),
		Manfaat:      value("manfaat"),
		FaktaMenarik: value("faktaMenarik"),
	}

	var fileHeader *multipart.FileHeader
	for _, headers := range form.File {
		if len(headers) > 0 {
			fileHeader = headers[0]
			break
		}
	}
	if fileHeader == nil {
		return req, false, nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, false, err
	}
	defer src.Close()

	relPath, err := ctrl.Infra.Storage.SaveCelestialBodyImage(src, fileHeader.Filename)
	if err != nil {
		return nil, false, err
	}
	req.PathGambar = relPath

	return req, true, nil
}

func (ctrl *Controller) validateCelestialBodyRequest(req *dto.CelestialBodyRequestDTO) error {
	v := utils.NewValidator(req.ToFieldMap())
	v.Required("nama", "Nama tidak boleh kosong")
	v.Required("deskripsi", "Deskripsi tidak boleh kosong")
	v.Required("manfaat", "Manfaat tidak boleh kosong")
	v.Required("faktaMenarik", "Fakta Menarik tidak boleh kosong")
	v.Required("pathGambar", "Gambar tidak boleh kosong")
	if err := v.Validate(); err != nil {
		return err
	}

	if !ctrl.Infra.Storage.Exists(req.PathGambar) {
		return utils.BadRequest("Gambar benda langit gagal diupload!")
	}
	return nil
}

// discardUpload removes a file that never made it onto a committed row.
// Best effort, the primary error already owns the response.
func (ctrl *Controller) discardUpload(ctx context.Context, relPath string) {
	if relPath == "" {
		return
	}
	if err := ctrl.Infra.Storage.Delete(relPath); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[CelestialBody] Failed to remove orphaned upload %s: %v", relPath, err)
	}
}
