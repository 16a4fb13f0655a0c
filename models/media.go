package models

import "time"

const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
)

type Media struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Filename      string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"filename"`
	OriginalName  string     `gorm:"type:varchar(255);not null" json:"original_name"`
	FilePath      string     `gorm:"type:varchar(1000);not null" json:"file_path"`
	ThumbnailPath string     `gorm:"type:varchar(1000)" json:"thumbnail_path"`
	FileType      string     `gorm:"type:varchar(10);not null;index" json:"file_type"`
	MimeType      string     `gorm:"type:varchar(100)" json:"mime_type"`
	FileSize      int64      `gorm:"not null" json:"file_size"`
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	EventID       uint       `gorm:"not null;index" json:"event_id"`
	UploadedBy    uint       `gorm:"not null;index" json:"uploaded_by"`
	UploadDate    time.Time  `gorm:"type:date;index" json:"upload_date"`
	Year          int        `gorm:"index" json:"year"`
	Month         int        `gorm:"index" json:"month"`
	TakenDate     *time.Time `gorm:"type:date" json:"taken_date,omitempty"`
	IsApproved    bool       `gorm:"default:true;index" json:"is_approved"`
	ViewCount     int64      `gorm:"default:0" json:"view_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Media) TableName() string {
	return "media"
}

// MediaLike rows exist iff the user has liked the media item. The composite
// unique index is what makes the like toggle safe under concurrent requests.
type MediaLike struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MediaID   uint      `gorm:"not null;uniqueIndex:idx_media_like_key" json:"media_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_media_like_key" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (MediaLike) TableName() string {
	return "media_likes"
}

// MediaTag is upserted by (media_id, tagged_user_id); later tags overwrite the
// tagger and position. Position coordinates are percentages in [0,100].
type MediaTag struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MediaID      uint      `gorm:"not null;uniqueIndex:idx_media_tag_key" json:"media_id"`
	TaggedUserID uint      `gorm:"not null;uniqueIndex:idx_media_tag_key" json:"tagged_user_id"`
	TaggedBy     uint      `gorm:"not null" json:"tagged_by"`
	PositionX    *float64  `json:"position_x,omitempty"`
	PositionY    *float64  `json:"position_y,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (MediaTag) TableName() string {
	return "media_tags"
}
