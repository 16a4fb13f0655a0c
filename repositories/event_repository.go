package repositories

import (
	"context"

	"github.com/mdhaziqomar/memories/models"

	"gorm.io/gorm"
)

type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) Create(_ context.Context, tx *gorm.DB, event *models.Event) error {
	return useTx(r.db, tx).Create(event).Error
}

func (r *GormEventRepository) GetActiveByID(_ context.Context, tx *gorm.DB, eventID uint) (models.Event, error) {
	var event models.Event
	err := useTx(r.db, tx).Where("id = ? AND is_active = ?", eventID, true).First(&event).Error
	return event, err
}

func (r *GormEventRepository) detailQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Event{}).
		Select("events.*, users.full_name AS created_by_name, " +
			"(SELECT COUNT(*) FROM media WHERE media.event_id = events.id AND media.is_approved = 1) AS media_count").
		Joins("LEFT JOIN users ON users.id = events.created_by").
		Where("events.is_active = ?", true)
}

func (r *GormEventRepository) GetActiveDetail(_ context.Context, tx *gorm.DB, eventID uint) (EventListRow, error) {
	var row EventListRow
	err := r.detailQuery(useTx(r.db, tx)).Where("events.id = ?", eventID).First(&row).Error
	return row, err
}

func (r *GormEventRepository) ListActive(_ context.Context, tx *gorm.DB) ([]EventListRow, error) {
	var rows []EventListRow
	err := r.detailQuery(useTx(r.db, tx)).Order("events.event_date DESC").Find(&rows).Error
	return rows, err
}

// UpdateByID applies a sparse update descriptor; absent fields are untouched.
func (r *GormEventRepository) UpdateByID(_ context.Context, tx *gorm.DB, eventID uint, updates map[string]interface{}) (bool, error) {
	res := useTx(r.db, tx).Model(&models.Event{}).
		Where("id = ? AND is_active = ?", eventID, true).
		Updates(updates)
	return res.RowsAffected > 0, res.Error
}

func (r *GormEventRepository) DeactivateByID(_ context.Context, tx *gorm.DB, eventID uint) (bool, error) {
	res := useTx(r.db, tx).Model(&models.Event{}).
		Where("id = ? AND is_active = ?", eventID, true).
		UpdateColumn("is_active", false)
	return res.RowsAffected > 0, res.Error
}
