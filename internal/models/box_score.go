package models

import (
	"time"

	"gorm.io/gorm"
)

// PlayerBoxScore is a single player's stat line for one match.
type PlayerBoxScore struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	MatchID  uint64 `gorm:"not null;uniqueIndex:idx_box_scores_match_player;index" json:"match_id"`
	PlayerID uint64 `gorm:"not null;uniqueIndex:idx_box_scores_match_player;index" json:"player_id"`
	Team     string `gorm:"type:varchar(100);not null" json:"team"`

	IsStarter bool    `gorm:"not null;default:false" json:"is_starter"`
	Minutes   float64 `gorm:"not null;default:0" json:"minutes"`

	Points    int `gorm:"not null;default:0" json:"pts"`
	Rebounds  int `gorm:"not null;default:0" json:"reb"`
	Assists   int `gorm:"not null;default:0" json:"ast"`
	Steals    int `gorm:"not null;default:0" json:"stl"`
	Blocks    int `gorm:"not null;default:0" json:"blk"`
	Turnovers int `gorm:"not null;default:0" json:"tov"`
	Fouls     int `gorm:"not null;default:0" json:"pf"`

	FGMade  int `gorm:"not null;default:0" json:"fg_made"`
	FGAtt   int `gorm:"not null;default:0" json:"fg_att"`
	TPMade  int `gorm:"not null;default:0" json:"tp_made"`
	TPAtt   int `gorm:"not null;default:0" json:"tp_att"`
	FTMade  int `gorm:"not null;default:0" json:"ft_made"`
	FTAtt   int `gorm:"not null;default:0" json:"ft_att"`

	PlusMinus int `gorm:"not null;default:0" json:"plus_minus"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Match  Match  `gorm:"foreignKey:MatchID" json:"-"`
	Player Player `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
}

func pct(made, att int) float64 {
	if att <= 0 {
		return 0.0
	}
	return float64(made) / float64(att) * 100
}

// FGPct returns the field goal percentage, 0 when no attempts were taken.
func (b *PlayerBoxScore) FGPct() float64 { return pct(b.FGMade, b.FGAtt) }

// TPPct returns the three point percentage, 0 when no attempts were taken.
func (b *PlayerBoxScore) TPPct() float64 { return pct(b.TPMade, b.TPAtt) }

// FTPct returns the free throw percentage, 0 when no attempts were taken.
func (b *PlayerBoxScore) FTPct() float64 { return pct(b.FTMade, b.FTAtt) }
