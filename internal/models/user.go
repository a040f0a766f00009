package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID             string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Username       string         `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	PasswordHash   string         `gorm:"type:varchar(255);not null" json:"-"`
	Role           Role           `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive       bool           `gorm:"not null;default:true" json:"is_active"`
	Bio            string         `gorm:"type:text" json:"bio,omitempty"`
	ProfilePicture string         `gorm:"type:varchar(500)" json:"profile_picture,omitempty"`
	LastLogin      *time.Time     `json:"last_login,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Events []Event `gorm:"foreignKey:CreatedByID" json:"-"`
	News   []News  `gorm:"foreignKey:AuthorID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
