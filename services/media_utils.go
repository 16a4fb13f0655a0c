package services

import (
	"path/filepath"
	"strings"

	"github.com/mdhaziqomar/memories/config"
	"github.com/mdhaziqomar/memories/models"
)

// Declared MIME types accepted for upload, mapped against the configured
// extension allowlist.
var allowedMimeTypes = map[string]string{
	"image/jpeg":      "jpeg",
	"image/jpg":       "jpg",
	"image/png":       "png",
	"image/gif":       "gif",
	"video/mp4":       "mp4",
	"video/quicktime": "mov",
	"video/x-msvideo": "avi",
	"video/webm":      "webm",
}

func normalizeExtension(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

func isExtensionAllowed(filename string) bool {
	ext := normalizeExtension(filename)
	if ext == "" {
		return false
	}
	for _, allowed := range config.AppConfig.Storage.AllowedExtensions {
		if strings.ToLower(strings.TrimSpace(allowed)) == ext {
			return true
		}
	}
	return false
}

func isMimeTypeAllowed(mimeType string) bool {
	token, ok := allowedMimeTypes[strings.ToLower(strings.TrimSpace(mimeType))]
	if !ok {
		return false
	}
	for _, allowed := range config.AppConfig.Storage.AllowedExtensions {
		if strings.EqualFold(strings.TrimSpace(allowed), token) {
			return true
		}
	}
	return false
}

func fileTypeFromMime(mimeType string) string {
	if strings.HasPrefix(strings.ToLower(mimeType), "image") {
		return models.FileTypeImage
	}
	return models.FileTypeVideo
}
