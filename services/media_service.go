package services

import (
	"context"
	"errors"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mdhaziqomar/memories/config"
	"github.com/mdhaziqomar/memories/logger"
	"github.com/mdhaziqomar/memories/models"
	"github.com/mdhaziqomar/memories/repositories"
	"github.com/mdhaziqomar/memories/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadInput struct {
	EventID   uint
	TakenDate *time.Time
}

type UploadOutput struct {
	ID       uint   `json:"id"`
	Filename string `json:"filename"`
	FileType string `json:"file_type"`
}

type ListMediaInput struct {
	Filter repositories.MediaFilter
	Page   int
	Limit  int
}

type MediaListOutput struct {
	Media      []repositories.MediaListRow `json:"media"`
	Pagination utils.PaginationData        `json:"pagination"`
}

type MediaDetailOutput struct {
	repositories.MediaListRow
	LikeCount int64             `json:"like_count"`
	Tags      []models.MediaTag `json:"tags"`
}

type MediaAccessOutput struct {
	Media        models.Media
	AbsPath      string
	ContentType  string
	DownloadName string
}

type MediaService interface {
	Upload(ctx context.Context, userID uint, file multipart.File, header *multipart.FileHeader, in UploadInput) (UploadOutput, error)
	List(ctx context.Context, in ListMediaInput) (MediaListOutput, error)
	GetDetail(ctx context.Context, mediaID uint) (MediaDetailOutput, error)
	GetFileInfo(ctx context.Context, mediaID uint) (MediaAccessOutput, error)
	GetThumbnailInfo(ctx context.Context, mediaID uint) (MediaAccessOutput, error)
}

type mediaService struct {
	media       repositories.MediaRepository
	events      repositories.EventRepository
	likes       repositories.LikeRepository
	tags        repositories.TagRepository
	thumbnailer Thumbnailer
}

func NewMediaService(
	media repositories.MediaRepository,
	events repositories.EventRepository,
	likes repositories.LikeRepository,
	tags repositories.TagRepository,
	thumbnailer Thumbnailer,
) MediaService {
	return &mediaService{
		media:       media,
		events:      events,
		likes:       likes,
		tags:        tags,
		thumbnailer: thumbnailer,
	}
}

// Upload runs the ingestion pipeline: validate, store raw bytes, optionally
// derive a thumbnail, insert metadata. Validation completes before any storage
// write; every failure after the raw write triggers compensating cleanup.
func (s *mediaService) Upload(ctx context.Context, userID uint, file multipart.File, header *multipart.FileHeader, in UploadInput) (UploadOutput, error) {
	if header.Size > config.AppConfig.Storage.MaxFileSize {
		return UploadOutput{}, newAppError(http.StatusBadRequest, "file size exceeds limit", nil)
	}
	mimeType := header.Header.Get("Content-Type")
	if !isExtensionAllowed(header.Filename) || !isMimeTypeAllowed(mimeType) {
		return UploadOutput{}, newAppError(http.StatusBadRequest, "only images and videos are allowed", nil)
	}

	if _, err := s.events.GetActiveByID(ctx, nil, in.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UploadOutput{}, newAppError(http.StatusNotFound, "event not found", nil)
		}
		return UploadOutput{}, newAppError(http.StatusInternalServerError, "check event failed", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	storedName := uuid.New().String() + ext
	relPath := filepath.Join("uploads", storedName)
	absPath := filepath.Join(config.AppConfig.Storage.BasePath, relPath)
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return UploadOutput{}, newAppError(http.StatusInternalServerError, "create upload dir failed", err)
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return UploadOutput{}, newAppError(http.StatusInternalServerError, "create file failed", err)
	}
	written, err := io.Copy(dst, file)
	if err != nil {
		dst.Close()
		_ = os.Remove(absPath)
		return UploadOutput{}, newAppError(http.StatusInternalServerError, "save file failed", err)
	}
	_ = dst.Close()

	fileType := fileTypeFromMime(mimeType)

	var thumbnailPath string
	var width, height int
	if fileType == models.FileTypeImage {
		if w, h, dimErr := s.thumbnailer.Dimensions(absPath); dimErr == nil {
			width, height = w, h
		} else {
			logger.Warnf("read image dimensions for %s failed: %v", storedName, dimErr)
		}
		result := s.makeThumbnail(absPath, storedName)
		if result.Generated {
			thumbnailPath = result.Path
		} else {
			// Thumbnail failures never block ingestion of the primary asset.
			logger.Warnf("thumbnail generation for %s failed: %v", storedName, result.Err)
		}
	}

	now := time.Now()
	uploadDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	media := models.Media{
		Filename:      storedName,
		OriginalName:  header.Filename,
		FilePath:      relPath,
		ThumbnailPath: thumbnailPath,
		FileType:      fileType,
		MimeType:      mimeType,
		FileSize:      written,
		Width:         width,
		Height:        height,
		EventID:       in.EventID,
		UploadedBy:    userID,
		UploadDate:    uploadDate,
		Year:          uploadDate.Year(),
		Month:         int(uploadDate.Month()),
		TakenDate:     in.TakenDate,
		IsApproved:    true,
	}
	if err := s.media.Create(ctx, nil, &media); err != nil {
		_ = os.Remove(absPath)
		if thumbnailPath != "" {
			_ = os.Remove(filepath.Join(config.AppConfig.Storage.BasePath, thumbnailPath))
		}
		return UploadOutput{}, newAppError(http.StatusInternalServerError, "save media record failed", err)
	}

	return UploadOutput{ID: media.ID, Filename: media.Filename, FileType: media.FileType}, nil
}

func (s *mediaService) makeThumbnail(srcAbsPath string, storedName string) ThumbnailResult {
	thumbName := config.AppConfig.Thumbnail.Prefix + storedName
	relPath := filepath.Join("uploads", thumbName)
	absPath := filepath.Join(config.AppConfig.Storage.BasePath, relPath)
	if err := s.thumbnailer.Create(srcAbsPath, absPath); err != nil {
		return ThumbnailResult{Err: err}
	}
	return ThumbnailResult{Generated: true, Path: relPath}
}

func (s *mediaService) List(ctx context.Context, in ListMediaInput) (MediaListOutput, error) {
	page := in.Page
	limit := in.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > config.AppConfig.Pagination.MaxPageSize {
		limit = config.AppConfig.Pagination.DefaultPageSize
	}

	total, err := s.media.CountApproved(ctx, nil, in.Filter)
	if err != nil {
		return MediaListOutput{}, newAppError(http.StatusInternalServerError, "count media failed", err)
	}

	rows, err := s.media.ListApproved(ctx, nil, repositories.ListMediaInput{
		Filter: in.Filter,
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return MediaListOutput{}, newAppError(http.StatusInternalServerError, "list media failed", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	if totalPages == 0 {
		totalPages = 1
	}

	return MediaListOutput{
		Media: rows,
		Pagination: utils.PaginationData{
			Page:       page,
			PageSize:   limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

func (s *mediaService) GetDetail(ctx context.Context, mediaID uint) (MediaDetailOutput, error) {
	row, err := s.media.GetApprovedDetail(ctx, nil, mediaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MediaDetailOutput{}, newAppError(http.StatusNotFound, "media not found", nil)
		}
		return MediaDetailOutput{}, newAppError(http.StatusInternalServerError, "get media failed", err)
	}

	// Best effort; concurrent views may race but the count never decreases.
	if err := s.media.IncrementViewCount(ctx, nil, mediaID); err != nil {
		logger.Warnf("increment view count for media %d failed: %v", mediaID, err)
	} else {
		row.ViewCount++
	}

	likeCount, err := s.likes.CountByMedia(ctx, nil, mediaID)
	if err != nil {
		return MediaDetailOutput{}, newAppError(http.StatusInternalServerError, "count likes failed", err)
	}
	tags, err := s.tags.ListByMedia(ctx, nil, mediaID)
	if err != nil {
		return MediaDetailOutput{}, newAppError(http.StatusInternalServerError, "list tags failed", err)
	}

	return MediaDetailOutput{MediaListRow: row, LikeCount: likeCount, Tags: tags}, nil
}

func (s *mediaService) getAccessInfo(ctx context.Context, mediaID uint, thumbnail bool) (MediaAccessOutput, error) {
	media, err := s.media.GetApprovedByID(ctx, nil, mediaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MediaAccessOutput{}, newAppError(http.StatusNotFound, "media not found", nil)
		}
		return MediaAccessOutput{}, newAppError(http.StatusInternalServerError, "get media failed", err)
	}

	relPath := media.FilePath
	contentType := media.MimeType
	if thumbnail {
		if media.ThumbnailPath == "" {
			return MediaAccessOutput{}, newAppError(http.StatusNotFound, "thumbnail not found", nil)
		}
		relPath = media.ThumbnailPath
		contentType = "image/jpeg"
	}

	absPath := filepath.Join(config.AppConfig.Storage.BasePath, relPath)
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return MediaAccessOutput{}, newAppError(http.StatusNotFound, "file missing from storage", nil)
	}

	return MediaAccessOutput{
		Media:        media,
		AbsPath:      absPath,
		ContentType:  contentType,
		DownloadName: media.OriginalName,
	}, nil
}

func (s *mediaService) GetFileInfo(ctx context.Context, mediaID uint) (MediaAccessOutput, error) {
	return s.getAccessInfo(ctx, mediaID, false)
}

func (s *mediaService) GetThumbnailInfo(ctx context.Context, mediaID uint) (MediaAccessOutput, error) {
	return s.getAccessInfo(ctx, mediaID, true)
}
