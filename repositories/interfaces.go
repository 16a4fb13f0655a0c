package repositories

import (
	"context"
	"time"

	"github.com/mdhaziqomar/memories/models"

	"gorm.io/gorm"
)

type TxManager interface {
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByID(ctx context.Context, tx *gorm.DB, userID uint) (models.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (models.User, error)
	GetActiveByID(ctx context.Context, tx *gorm.DB, userID uint) (models.User, error)
	CountByEmailOrUsername(ctx context.Context, tx *gorm.DB, email string, username string) (int64, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]UserListRow, error)
	ListActive(ctx context.Context, tx *gorm.DB) ([]models.User, error)
	ToggleActive(ctx context.Context, tx *gorm.DB, userID uint) (bool, error)
}

type EventRepository interface {
	Create(ctx context.Context, tx *gorm.DB, event *models.Event) error
	GetActiveByID(ctx context.Context, tx *gorm.DB, eventID uint) (models.Event, error)
	GetActiveDetail(ctx context.Context, tx *gorm.DB, eventID uint) (EventListRow, error)
	ListActive(ctx context.Context, tx *gorm.DB) ([]EventListRow, error)
	UpdateByID(ctx context.Context, tx *gorm.DB, eventID uint, updates map[string]interface{}) (bool, error)
	DeactivateByID(ctx context.Context, tx *gorm.DB, eventID uint) (bool, error)
}

type InviteCodeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, code *models.InviteCode) error
	GetValidByCode(ctx context.Context, tx *gorm.DB, code string, now time.Time) (models.InviteCode, error)
	MarkUsed(ctx context.Context, tx *gorm.DB, codeID uint, userID uint, now time.Time) error
}

// MediaFilter predicates are optional and conjunctive; zero values mean "no filter".
type MediaFilter struct {
	EventID  uint
	Year     int
	Month    int
	FileType string
}

type ListMediaInput struct {
	Filter MediaFilter
	Offset int
	Limit  int
}

type MediaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, media *models.Media) error
	GetApprovedByID(ctx context.Context, tx *gorm.DB, mediaID uint) (models.Media, error)
	GetApprovedDetail(ctx context.Context, tx *gorm.DB, mediaID uint) (MediaListRow, error)
	CountApproved(ctx context.Context, tx *gorm.DB, filter MediaFilter) (int64, error)
	ListApproved(ctx context.Context, tx *gorm.DB, in ListMediaInput) ([]MediaListRow, error)
	IncrementViewCount(ctx context.Context, tx *gorm.DB, mediaID uint) error
}

// LikeRepository exposes conditional single-statement primitives; the unique
// (media_id, user_id) index serializes concurrent toggles, not the caller.
type LikeRepository interface {
	DeleteByKey(ctx context.Context, tx *gorm.DB, mediaID uint, userID uint) (bool, error)
	InsertIfAbsent(ctx context.Context, tx *gorm.DB, like *models.MediaLike) (bool, error)
	CountByMedia(ctx context.Context, tx *gorm.DB, mediaID uint) (int64, error)
}

type TagRepository interface {
	Upsert(ctx context.Context, tx *gorm.DB, tag *models.MediaTag) error
	ListByMedia(ctx context.Context, tx *gorm.DB, mediaID uint) ([]models.MediaTag, error)
}

// Read-only projections for denormalized display fields.
type MediaListRow struct {
	models.Media
	EventName      string `json:"event_name"`
	UploadedByName string `json:"uploaded_by_name"`
}

type EventListRow struct {
	models.Event
	CreatedByName string `json:"created_by_name"`
	MediaCount    int64  `json:"media_count"`
}

type UserListRow struct {
	models.User
	MediaCount int64 `json:"media_count"`
}

type Container struct {
	TxManager   TxManager
	Users       UserRepository
	Events      EventRepository
	InviteCodes InviteCodeRepository
	Media       MediaRepository
	Likes       LikeRepository
	Tags        TagRepository
}
