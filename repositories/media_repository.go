package repositories

import (
	"context"

	"github.com/mdhaziqomar/memories/models"

	"gorm.io/gorm"
)

type GormMediaRepository struct {
	db *gorm.DB
}

func NewGormMediaRepository(db *gorm.DB) *GormMediaRepository {
	return &GormMediaRepository{db: db}
}

func (r *GormMediaRepository) applyFilter(db *gorm.DB, filter MediaFilter) *gorm.DB {
	db = db.Where("media.is_approved = ?", true)
	if filter.EventID > 0 {
		db = db.Where("media.event_id = ?", filter.EventID)
	}
	if filter.Year > 0 {
		db = db.Where("media.year = ?", filter.Year)
	}
	if filter.Month > 0 {
		db = db.Where("media.month = ?", filter.Month)
	}
	if filter.FileType != "" {
		db = db.Where("media.file_type = ?", filter.FileType)
	}
	return db
}

func (r *GormMediaRepository) Create(_ context.Context, tx *gorm.DB, media *models.Media) error {
	return useTx(r.db, tx).Create(media).Error
}

func (r *GormMediaRepository) GetApprovedByID(_ context.Context, tx *gorm.DB, mediaID uint) (models.Media, error) {
	var media models.Media
	err := useTx(r.db, tx).Where("id = ? AND is_approved = ?", mediaID, true).First(&media).Error
	return media, err
}

func (r *GormMediaRepository) GetApprovedDetail(_ context.Context, tx *gorm.DB, mediaID uint) (MediaListRow, error) {
	var row MediaListRow
	err := useTx(r.db, tx).Model(&models.Media{}).
		Select("media.*, events.name AS event_name, users.full_name AS uploaded_by_name").
		Joins("LEFT JOIN events ON events.id = media.event_id").
		Joins("LEFT JOIN users ON users.id = media.uploaded_by").
		Where("media.id = ? AND media.is_approved = ?", mediaID, true).
		First(&row).Error
	return row, err
}

func (r *GormMediaRepository) CountApproved(_ context.Context, tx *gorm.DB, filter MediaFilter) (int64, error) {
	var total int64
	err := r.applyFilter(useTx(r.db, tx).Model(&models.Media{}), filter).Count(&total).Error
	return total, err
}

func (r *GormMediaRepository) ListApproved(_ context.Context, tx *gorm.DB, in ListMediaInput) ([]MediaListRow, error) {
	var rows []MediaListRow
	query := useTx(r.db, tx).Model(&models.Media{}).
		Select("media.*, events.name AS event_name, users.full_name AS uploaded_by_name").
		Joins("LEFT JOIN events ON events.id = media.event_id").
		Joins("LEFT JOIN users ON users.id = media.uploaded_by")
	query = r.applyFilter(query, in.Filter)
	err := query.
		Order("media.upload_date DESC, media.id DESC").
		Offset(in.Offset).
		Limit(in.Limit).
		Find(&rows).Error
	return rows, err
}

func (r *GormMediaRepository) IncrementViewCount(_ context.Context, tx *gorm.DB, mediaID uint) error {
	return useTx(r.db, tx).Model(&models.Media{}).
		Where("id = ?", mediaID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
