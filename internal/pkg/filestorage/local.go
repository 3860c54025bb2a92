package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/logger"
)

// LocalStorage saves media files to a flat directory on the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // The URL prefix used to access the stored files
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the required directory path on the server.
// baseURL is prepended to returned file URLs (e.g. "/uploads").
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveFile stores an uploaded file under a random unique name, keeping the
// original extension, and returns the stored filename and its URL.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, string, error) {
	if fileHeader == nil {
		return "", "", apperrors.ErrFileMissing
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Random token plus the original extension, to prevent collisions
	uniqueFilename := strings.ReplaceAll(uuid.New().String(), "-", "")
	if ext := FileExtension(fileHeader.Filename); ext != "" {
		uniqueFilename += "." + ext
	}

	dstPath := filepath.Join(ls.basePath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		// Attempt to remove the partially created file
		_ = os.Remove(dstPath)
		return "", "", fmt.Errorf("failed to save file content: %w", err)
	}

	url := ls.baseURL + "/" + uniqueFilename
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Str("url", url).Msg("File saved successfully")
	return uniqueFilename, url, nil
}

// DeleteFile removes a stored file by its unique filename.
func (ls *LocalStorage) DeleteFile(filename string) error {
	// Strip any path components so callers cannot reach outside basePath
	filename = filepath.Base(filename)
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		return apperrors.ErrResourceNotFound
	}

	physicalPath := filepath.Join(ls.basePath, filename)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return apperrors.ErrResourceNotFound
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}
