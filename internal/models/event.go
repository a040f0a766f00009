package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Date        time.Time      `gorm:"not null" json:"date"`
	Time        string         `gorm:"type:varchar(50)" json:"time"`
	Location    string         `gorm:"type:varchar(255)" json:"location"`
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"`
	IsPublic    bool           `gorm:"not null;default:true" json:"is_public"`
	CreatedByID string         `gorm:"type:varchar(36);not null" json:"created_by_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}
