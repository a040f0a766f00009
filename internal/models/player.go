package models

import (
	"time"

	"gorm.io/gorm"
)

type Position string

const (
	PositionPG Position = "PG"
	PositionSG Position = "SG"
	PositionSF Position = "SF"
	PositionPF Position = "PF"
	PositionC  Position = "C"
)

func (p Position) Valid() bool {
	switch p {
	case PositionPG, PositionSG, PositionSF, PositionPF, PositionC:
		return true
	}
	return false
}

type Player struct {
	ID              uint64         `gorm:"primarykey" json:"id"`
	FullName        string         `gorm:"type:varchar(120);not null;uniqueIndex:idx_players_team_name" json:"full_name"`
	Team            string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_players_team_name;index" json:"team"`
	JerseyNumber    *int           `json:"jersey_number"`
	Position        Position       `gorm:"type:varchar(2);not null;default:'SG'" json:"position"`
	PointsPerGame   float64        `json:"points_per_game"`
	AssistsPerGame  float64        `json:"assists_per_game"`
	ReboundsPerGame float64        `json:"rebounds_per_game"`
	IsActive        bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	BoxScores []PlayerBoxScore `gorm:"foreignKey:PlayerID" json:"-"`
}
