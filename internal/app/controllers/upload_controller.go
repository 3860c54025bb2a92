package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/filestorage"
)

// UploadController handles media uploads
type UploadController struct {
	storage filestorage.Storage
	logger  zerolog.Logger
}

// NewUploadController creates a new UploadController
func NewUploadController(storage filestorage.Storage, logger zerolog.Logger) *UploadController {
	return &UploadController{
		storage: storage,
		logger:  logger,
	}
}

// Upload handles POST /api/upload
func (c *UploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrFileMissing)
		return
	}
	if fileHeader.Filename == "" {
		middleware.HandleAPIError(ctx, apperrors.ErrFileMissing)
		return
	}
	if fileHeader.Size == 0 {
		middleware.HandleAPIError(ctx, apperrors.ErrFileEmpty)
		return
	}
	if fileHeader.Size > filestorage.MaxFileSize {
		middleware.HandleAPIError(ctx, apperrors.ErrFileTooLarge)
		return
	}

	mediaType := filestorage.MediaType(ctx.DefaultPostForm("media_type", string(filestorage.MediaTypeImage)))
	if !filestorage.AllowedFile(fileHeader.Filename, mediaType) {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidFileType)
		return
	}

	filename, url, err := c.storage.SaveFile(fileHeader)
	if err != nil {
		c.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to store upload")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("filename", filename).Str("media_type", string(mediaType)).Msg("File uploaded")

	ctx.JSON(http.StatusOK, dto.UploadResponse{
		Message:   "File uploaded successfully",
		MediaURL:  url,
		Filename:  filename,
		MediaType: string(mediaType),
	})
}

// Delete handles DELETE /api/upload/:filename
func (c *UploadController) Delete(ctx *gin.Context) {
	filename := ctx.Param("filename")

	if err := c.storage.DeleteFile(filename); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "File deleted successfully"})
}
