package handlers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/handlers"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/models"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/services"
	"gorm.io/gorm"
)

func uploadMaterial(t *testing.T, r *gin.Engine, path, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("material", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newMaterialRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	t.Setenv("AWS_REGION", "")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	t.Setenv("BASE_URL", "http://localhost:8080")
	require.NoError(t, services.InitStorage())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chapters/:id/material", handlers.UploadChapterMaterial(db))
	return r
}

func TestUploadChapterMaterial(t *testing.T) {
	db := newTestDB(t)
	chapter := models.Chapter{SubjectID: 1, Name: "प्रकाश"}
	require.NoError(t, db.Create(&chapter).Error)

	r := newMaterialRouter(t, db)
	path := fmt.Sprintf("/chapters/%d/material", chapter.ID)

	w := uploadMaterial(t, r, path, "notes.pdf", []byte("%PDF-1.4 notes"))
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "/uploads/materials/")

	var saved models.Chapter
	require.NoError(t, db.First(&saved, "id = ?", chapter.ID).Error)
	assert.Contains(t, saved.MaterialURL, "/uploads/materials/")

	// A second upload replaces the stored URL.
	first := saved.MaterialURL
	w = uploadMaterial(t, r, path, "revised.pdf", []byte("%PDF-1.4 revised"))
	require.Equal(t, 200, w.Code)
	require.NoError(t, db.First(&saved, "id = ?", chapter.ID).Error)
	assert.NotEqual(t, first, saved.MaterialURL)
}

func TestUploadChapterMaterial_RejectsNonPDF(t *testing.T) {
	db := newTestDB(t)
	chapter := models.Chapter{SubjectID: 1, Name: "प्रकाश"}
	require.NoError(t, db.Create(&chapter).Error)

	r := newMaterialRouter(t, db)
	w := uploadMaterial(t, r, fmt.Sprintf("/chapters/%d/material", chapter.ID), "notes.txt", []byte("plain text"))
	assert.Equal(t, 400, w.Code)
}

func TestUploadChapterMaterial_UnknownChapter(t *testing.T) {
	r := newMaterialRouter(t, newTestDB(t))

	w := uploadMaterial(t, r, "/chapters/9999/material", "notes.pdf", []byte("%PDF-1.4"))
	assert.Equal(t, 404, w.Code)
}

func TestUploadChapterMaterial_MissingFile(t *testing.T) {
	db := newTestDB(t)
	chapter := models.Chapter{SubjectID: 1, Name: "प्रकाश"}
	require.NoError(t, db.Create(&chapter).Error)

	r := newMaterialRouter(t, db)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/chapters/%d/material", chapter.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
}
