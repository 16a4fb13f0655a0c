package repositories

import (
	"context"

	"github.com/mdhaziqomar/memories/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormLikeRepository struct {
	db *gorm.DB
}

func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

func (r *GormLikeRepository) DeleteByKey(_ context.Context, tx *gorm.DB, mediaID uint, userID uint) (bool, error) {
	res := useTx(r.db, tx).Where("media_id = ? AND user_id = ?", mediaID, userID).Delete(&models.MediaLike{})
	return res.RowsAffected > 0, res.Error
}

// InsertIfAbsent relies on the unique (media_id, user_id) index; a concurrent
// insert of the same pair leaves exactly one row and reports inserted=false.
func (r *GormLikeRepository) InsertIfAbsent(_ context.Context, tx *gorm.DB, like *models.MediaLike) (bool, error) {
	res := useTx(r.db, tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "media_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(like)
	return res.RowsAffected > 0, res.Error
}

func (r *GormLikeRepository) CountByMedia(_ context.Context, tx *gorm.DB, mediaID uint) (int64, error) {
	var count int64
	err := useTx(r.db, tx).Model(&models.MediaLike{}).Where("media_id = ?", mediaID).Count(&count).Error
	return count, err
}

type GormTagRepository struct {
	db *gorm.DB
}

func NewGormTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// Upsert is a single insert-or-update statement keyed by the natural
// (media_id, tagged_user_id) pair; last writer wins on tagger and position.
func (r *GormTagRepository) Upsert(_ context.Context, tx *gorm.DB, tag *models.MediaTag) error {
	return useTx(r.db, tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "media_id"}, {Name: "tagged_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tagged_by", "position_x", "position_y", "updated_at"}),
	}).Create(tag).Error
}

func (r *GormTagRepository) ListByMedia(_ context.Context, tx *gorm.DB, mediaID uint) ([]models.MediaTag, error) {
	var tags []models.MediaTag
	err := useTx(r.db, tx).Where("media_id = ?", mediaID).Order("created_at ASC").Find(&tags).Error
	return tags, err
}
