package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/filestorage"
)

type fakeStorage struct {
	savedFilename string
	deleteErr     error
	deleted       string
}

func (f *fakeStorage) SaveFile(fileHeader *multipart.FileHeader) (string, string, error) {
	f.savedFilename = fileHeader.Filename
	return "abc123.jpg", "/uploads/abc123.jpg", nil
}

func (f *fakeStorage) DeleteFile(filename string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = filename
	return nil
}

func uploadRouter(storage *fakeStorage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewUploadController(storage, zerolog.Nop())
	router := gin.New()
	router.POST("/api/upload", ctrl.Upload)
	router.DELETE("/api/upload/:filename", ctrl.Delete)
	return router
}

func multipartBody(t *testing.T, filename, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUpload(t *testing.T) {
	storage := &fakeStorage{}
	body, contentType := multipartBody(t, "photo.jpg", "image bytes", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	uploadRouter(storage).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"message": "File uploaded successfully",
		"media_url": "/uploads/abc123.jpg",
		"filename": "abc123.jpg",
		"media_type": "image"
	}`, w.Body.String())
	assert.Equal(t, "photo.jpg", storage.savedFilename)
}

func TestUploadVideoMediaType(t *testing.T) {
	storage := &fakeStorage{}
	body, contentType := multipartBody(t, "clip.mp4", "video bytes", map[string]string{"media_type": "video"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	uploadRouter(storage).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"media_type":"video"`)
}

func TestUploadMissingFile(t *testing.T) {
	storage := &fakeStorage{}
	body, contentType := multipartBody(t, "", "", map[string]string{"media_type": "image"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	uploadRouter(storage).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, storage.savedFilename)
}

func TestUploadEmptyFile(t *testing.T) {
	storage := &fakeStorage{}
	body, contentType := multipartBody(t, "photo.jpg", "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	uploadRouter(storage).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadFileTooLarge(t *testing.T) {
	storage := &fakeStorage{}
	body, contentType := multipartBody(t, "huge.jpg", strings.Repeat("x", filestorage.MaxFileSize+1), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	uploadRouter(storage).ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.JSONEq(t, `{"error": "file too large"}`, w.Body.String())
	assert.Empty(t, storage.savedFilename)
}

func TestUploadDisallowedExtension(t *testing.T) {
	storage := &fakeStorage{}
	body, contentType := multipartBody(t, "evil.exe", "MZ", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	uploadRouter(storage).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, storage.savedFilename)
}

func TestUploadVideoAsImageRejected(t *testing.T) {
	storage := &fakeStorage{}
	body, contentType := multipartBody(t, "clip.mp4", "video bytes", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	uploadRouter(storage).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUpload(t *testing.T) {
	storage := &fakeStorage{}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/upload/abc123.jpg", nil)
	uploadRouter(storage).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc123.jpg", storage.deleted)
}

func TestDeleteUploadNotFound(t *testing.T) {
	storage := &fakeStorage{deleteErr: apperrors.ErrResourceNotFound}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/upload/missing.jpg", nil)
	uploadRouter(storage).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
