package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsCategory string

const (
	CategoryNBA       NewsCategory = "nba"
	CategoryIBL       NewsCategory = "ibl"
	CategoryFIBA      NewsCategory = "fiba"
	CategoryTransfer  NewsCategory = "transfer"
	CategoryHighlight NewsCategory = "highlight"
	CategoryAnalysis  NewsCategory = "analysis"
)

// NewsCategories lists every accepted category value.
var NewsCategories = []NewsCategory{
	CategoryNBA,
	CategoryIBL,
	CategoryFIBA,
	CategoryTransfer,
	CategoryHighlight,
	CategoryAnalysis,
}

func (c NewsCategory) Valid() bool {
	for _, known := range NewsCategories {
		if c == known {
			return true
		}
	}
	return false
}

type News struct {
	ID          string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Category    NewsCategory   `gorm:"type:varchar(50);not null;index" json:"category"`
	Thumbnail   string         `gorm:"type:varchar(500)" json:"thumbnail"`
	AuthorID    *string        `gorm:"type:varchar(36)" json:"author_id"`
	PublishedAt time.Time      `gorm:"autoCreateTime" json:"published_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
