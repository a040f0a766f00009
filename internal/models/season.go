package models

import "time"

// Season groups matches into a competition year, e.g. "2025/26".
type Season struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"name"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Matches []Match `gorm:"foreignKey:SeasonID" json:"-"`
}
