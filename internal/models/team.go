package models

import (
	"time"

	"gorm.io/gorm"
)

type Region string

const (
	RegionUS Region = "us"
	RegionEU Region = "eu"
	RegionAS Region = "as"
	RegionAF Region = "af"
	RegionSA Region = "sa"
	RegionOC Region = "oc"
)

func (r Region) Valid() bool {
	switch r {
	case RegionUS, RegionEU, RegionAS, RegionAF, RegionSA, RegionOC:
		return true
	}
	return false
}

type Team struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Logo        string         `gorm:"type:varchar(500)" json:"logo"`
	Region      Region         `gorm:"type:varchar(2);not null;default:'us'" json:"region"`
	Founded     time.Time      `gorm:"not null" json:"founded"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
