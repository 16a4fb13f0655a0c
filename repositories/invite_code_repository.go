package repositories

import (
	"context"
	"time"

	"github.com/mdhaziqomar/memories/models"

	"gorm.io/gorm"
)

type GormInviteCodeRepository struct {
	db *gorm.DB
}

func NewGormInviteCodeRepository(db *gorm.DB) *GormInviteCodeRepository {
	return &GormInviteCodeRepository{db: db}
}

func (r *GormInviteCodeRepository) Create(_ context.Context, tx *gorm.DB, code *models.InviteCode) error {
	return useTx(r.db, tx).Create(code).Error
}

func (r *GormInviteCodeRepository) GetValidByCode(_ context.Context, tx *gorm.DB, code string, now time.Time) (models.InviteCode, error) {
	var invite models.InviteCode
	err := useTx(r.db, tx).
		Where("code = ? AND is_used = ? AND expires_at > ?", code, false, now).
		First(&invite).Error
	return invite, err
}

func (r *GormInviteCodeRepository) MarkUsed(_ context.Context, tx *gorm.DB, codeID uint, userID uint, now time.Time) error {
	return useTx(r.db, tx).Model(&models.InviteCode{}).
		Where("id = ?", codeID).
		Updates(map[string]interface{}{
			"is_used": true,
			"used_by": userID,
			"used_at": now,
		}).Error
}
