package utils_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delcom/angkasa-api/utils"
)

func TestValidatorPasses(t *testing.T) {
	v := utils.NewValidator(map[string]string{
		"nama":      "Mars",
		"deskripsi": "Planet merah",
	})
	v.Required("nama", "Nama tidak boleh kosong")
	v.Required("deskripsi", "Deskripsi tidak boleh kosong")

	assert.NoError(t, v.Validate())
}

func TestValidatorCollectsAllViolations(t *testing.T) {
	v := utils.NewValidator(map[string]string{
		"nama":      "",
		"deskripsi": "   ",
		"manfaat":   "ada",
	})
	v.Required("nama", "Nama tidak boleh kosong")
	v.Required("deskripsi", "Deskripsi tidak boleh kosong")
	v.Required("manfaat", "Manfaat tidak boleh kosong")
	v.Required("pathGambar", "Gambar tidak boleh kosong")

	err := v.Validate()
	require.Error(t, err)

	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, "Data yang dikirimkan tidak valid!", appErr.Message)

	fields, ok := appErr.Data.(map[string][]string)
	require.True(t, ok)
	assert.Equal(t, []string{"Nama tidak boleh kosong"}, fields["nama"])
	assert.Equal(t, []string{"Deskripsi tidak boleh kosong"}, fields["deskripsi"], "blank counts as empty")
	assert.Equal(t, []string{"Gambar tidak boleh kosong"}, fields["pathGambar"], "absent counts as empty")
	assert.NotContains(t, fields, "manfaat")
}

func TestAppErrorConstructors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, utils.BadRequest("x").Code)
	assert.Equal(t, http.StatusNotFound, utils.NotFound("x").Code)
	assert.Equal(t, http.StatusConflict, utils.Conflict("x").Code)
	assert.Equal(t, "x", utils.BadRequest("x").Error())
}
