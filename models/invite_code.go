package models

import "time"

type InviteCode struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string     `gorm:"type:varchar(32);uniqueIndex;not null" json:"code"`
	CreatedBy uint       `gorm:"not null;index" json:"created_by"`
	IsUsed    bool       `gorm:"default:false;index" json:"is_used"`
	UsedBy    *uint      `json:"used_by,omitempty"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	ExpiresAt time.Time  `gorm:"index" json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}
