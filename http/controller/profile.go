package controller

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/delcom/angkasa-api/utils"
)

func (ctrl *Controller) Root(c *gin.Context) {
	c.String(http.StatusOK, "API Angkasa & Tata Surya telah berjalan. Dibuat oleh "+ctrl.Config.EnvConfig.Profile.Nama+".")
}

func (ctrl *Controller) GetProfile(c *gin.Context) {
	profile := ctrl.Config.EnvConfig.Profile
	utils.JSON200(c, "Berhasil mengambil data profil", gin.H{
		"profile": gin.H{
			"nama":   profile.Nama,
			"email":  profile.Email,
			"github": profile.Github,
		},
	})
}

func (ctrl *Controller) GetProfilePhoto(c *gin.Context) {
	photoPath := ctrl.Config.EnvConfig.Profile.PhotoPath
	if !ctrl.Infra.Storage.Exists(photoPath) {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(filepath.FromSlash(photoPath))
}
