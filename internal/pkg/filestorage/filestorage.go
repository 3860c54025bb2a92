package filestorage

import (
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxFileSize is the upload size cap in bytes.
const MaxFileSize = 20 * 1024 * 1024 // 20MB

// MediaType identifies the class of an uploaded file.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// allowedExtensions maps each media type to its permitted file extensions.
var allowedExtensions = map[MediaType]map[string]bool{
	MediaTypeImage: {"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true},
	MediaTypeVideo: {"mp4": true, "mov": true, "avi": true, "mkv": true, "webm": true},
}

// FileExtension returns the lowercased extension of a filename without the dot,
// or an empty string when the filename has none.
func FileExtension(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// AllowedFile reports whether the filename's extension is permitted for the
// given media type.
func AllowedFile(filename string, mediaType MediaType) bool {
	exts, ok := allowedExtensions[mediaType]
	if !ok {
		return false
	}
	return exts[FileExtension(filename)]
}

// Storage defines the interface for media file storage operations.
type Storage interface {
	// SaveFile stores an uploaded file and returns the stored filename and its URL.
	SaveFile(fileHeader *multipart.FileHeader) (filename, url string, err error)

	// DeleteFile removes a stored file by its unique filename.
	// Returns apperrors.ErrResourceNotFound when no such file exists.
	DeleteFile(filename string) error
}
