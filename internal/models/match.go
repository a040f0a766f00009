package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchLive      MatchStatus = "live"
	MatchFinished  MatchStatus = "finished"
	MatchCanceled  MatchStatus = "canceled"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchScheduled, MatchLive, MatchFinished, MatchCanceled:
		return true
	}
	return false
}

type Match struct {
	ID       uint64  `gorm:"primarykey" json:"id"`
	UUID     string  `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`
	SeasonID *uint64 `gorm:"index" json:"season_id"`
	HomeTeam string  `gorm:"type:varchar(100);not null;index:idx_matches_teams" json:"home_team"`
	AwayTeam string  `gorm:"type:varchar(100);not null;index:idx_matches_teams" json:"away_team"`
	TipoffAt time.Time   `gorm:"not null;index" json:"tipoff_at"`
	Venue    string      `gorm:"type:varchar(120);index" json:"venue"`
	ImageURL string      `gorm:"type:varchar(500)" json:"image_url"`
	Status   MatchStatus `gorm:"type:varchar(10);not null;default:'scheduled';index:idx_matches_status_tipoff" json:"status"`

	// Totals, derived from the period scores below.
	HomeScore int `gorm:"not null;default:0" json:"home_score"`
	AwayScore int `gorm:"not null;default:0" json:"away_score"`

	// Per-quarter scores; nil means the period has not been played.
	Q1Home *int `json:"q1_home"`
	Q1Away *int `json:"q1_away"`
	Q2Home *int `json:"q2_home"`
	Q2Away *int `json:"q2_away"`
	Q3Home *int `json:"q3_home"`
	Q3Away *int `json:"q3_away"`
	Q4Home *int `json:"q4_home"`
	Q4Away *int `json:"q4_away"`

	// Up to three overtime periods.
	OT1Home *int `json:"ot1_home"`
	OT1Away *int `json:"ot1_away"`
	OT2Home *int `json:"ot2_home"`
	OT2Away *int `json:"ot2_away"`
	OT3Home *int `json:"ot3_home"`
	OT3Away *int `json:"ot3_away"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Season    *Season          `gorm:"foreignKey:SeasonID;constraint:OnDelete:SET NULL" json:"season,omitempty"`
	BoxScores []PlayerBoxScore `gorm:"foreignKey:MatchID" json:"box_scores,omitempty"`
}

func (m *Match) BeforeCreate(tx *gorm.DB) error {
	if m.UUID == "" {
		m.UUID = uuid.NewString()
	}
	return nil
}

// HomePeriods returns the home side's period scores in play order.
func (m *Match) HomePeriods() []*int {
	return []*int{m.Q1Home, m.Q2Home, m.Q3Home, m.Q4Home, m.OT1Home, m.OT2Home, m.OT3Home}
}

// AwayPeriods returns the away side's period scores in play order.
func (m *Match) AwayPeriods() []*int {
	return []*int{m.Q1Away, m.Q2Away, m.Q3Away, m.Q4Away, m.OT1Away, m.OT2Away, m.OT3Away}
}

// RecalcTotals recomputes HomeScore and AwayScore from the period scores.
// Unplayed (nil) periods count as zero.
func (m *Match) RecalcTotals() {
	sum := func(parts []*int) int {
		total := 0
		for _, p := range parts {
			if p != nil {
				total += *p
			}
		}
		return total
	}
	m.HomeScore = sum(m.HomePeriods())
	m.AwayScore = sum(m.AwayPeriods())
}

// WentToOT reports whether any overtime period has a recorded score.
func (m *Match) WentToOT() bool {
	for _, p := range []*int{m.OT1Home, m.OT1Away, m.OT2Home, m.OT2Away, m.OT3Home, m.OT3Away} {
		if p != nil {
			return true
		}
	}
	return false
}
