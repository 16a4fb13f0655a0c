package repositories

import (
	"context"

	"github.com/mdhaziqomar/memories/models"

	"gorm.io/gorm"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(_ context.Context, tx *gorm.DB, user *models.User) error {
	return useTx(r.db, tx).Create(user).Error
}

func (r *GormUserRepository) GetByID(_ context.Context, tx *gorm.DB, userID uint) (models.User, error) {
	var user models.User
	err := useTx(r.db, tx).First(&user, userID).Error
	return user, err
}

func (r *GormUserRepository) GetByEmail(_ context.Context, tx *gorm.DB, email string) (models.User, error) {
	var user models.User
	err := useTx(r.db, tx).Where("email = ?", email).First(&user).Error
	return user, err
}

func (r *GormUserRepository) GetActiveByID(_ context.Context, tx *gorm.DB, userID uint) (models.User, error) {
	var user models.User
	err := useTx(r.db, tx).Where("id = ? AND is_active = ?", userID, true).First(&user).Error
	return user, err
}

func (r *GormUserRepository) CountByEmailOrUsername(_ context.Context, tx *gorm.DB, email string, username string) (int64, error) {
	var count int64
	err := useTx(r.db, tx).Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count, err
}

func (r *GormUserRepository) ListAll(_ context.Context, tx *gorm.DB) ([]UserListRow, error) {
	var rows []UserListRow
	err := useTx(r.db, tx).Model(&models.User{}).
		Select("users.*, (SELECT COUNT(*) FROM media WHERE media.uploaded_by = users.id) AS media_count").
		Order("users.created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *GormUserRepository) ListActive(_ context.Context, tx *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := useTx(r.db, tx).Where("is_active = ?", true).Order("full_name ASC").Find(&users).Error
	return users, err
}

// ToggleActive flips is_active in a single statement; reports whether a row matched.
func (r *GormUserRepository) ToggleActive(_ context.Context, tx *gorm.DB, userID uint) (bool, error) {
	res := useTx(r.db, tx).Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("is_active", gorm.Expr("NOT is_active"))
	return res.RowsAffected > 0, res.Error
}
