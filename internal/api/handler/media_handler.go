package handler

import (
	"circle/internal/pkg/minio"
	"circle/internal/pkg/response"
	"circle/internal/pkg/util"
	"circle/internal/service"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// Upload stores a media file and returns its public URL. The content
// type comes from sniffing the bytes, never from the client.
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.SniffContentType(reader)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	isImage := strings.HasPrefix(contentType, "image/")
	isVideo := strings.HasPrefix(contentType, "video/")
	if !isImage && !isVideo {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	ext := path.Ext(file.Filename)
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "media upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	response.Success(c, map[string]interface{}{
		"url":      minio.GetPublicURL(fileKey),
		"key":      fileKey,
		"mime":     contentType,
		"size":     file.Size,
		"original": file.Filename,
	})
}

// PresignUpload hands the client a short-lived direct-to-storage PUT URL,
// used for clip videos that are too large to proxy through the API.
func (s *MediaHandler) PresignUpload(c *gin.Context) {
	filename := c.Query("filename")
	if filename == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	ext := path.Ext(filename)
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	uploadURL, err := minio.PresignUpload(c.Request.Context(), objectName)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "presign failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	response.Success(c, map[string]interface{}{
		"upload_url": uploadURL,
		"key":        objectName,
		"public_url": minio.GetPublicURL(objectName),
	})
}
