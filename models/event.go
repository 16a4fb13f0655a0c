package models

import "time"

type Event struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:varchar(1000)" json:"description"`
	EventDate   time.Time `gorm:"type:date;index" json:"event_date"`
	CreatedBy   uint      `gorm:"not null;index" json:"created_by"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
