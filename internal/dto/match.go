package dto

import (
	"time"

	"github.com/dribbl-id/dribbl-api/internal/models"
)

// SeasonDTO represents a season in API responses
type SeasonDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// PeriodScoresDTO groups one side's period scores
type PeriodScoresDTO struct {
	Q1  *int `json:"q1"`
	Q2  *int `json:"q2"`
	Q3  *int `json:"q3"`
	Q4  *int `json:"q4"`
	OT1 *int `json:"ot1"`
	OT2 *int `json:"ot2"`
	OT3 *int `json:"ot3"`
}

// MatchDTO represents a match in API responses
type MatchDTO struct {
	ID        uint64             `json:"id"`
	UUID      string             `json:"uuid"`
	Season    *SeasonDTO         `json:"season,omitempty"`
	HomeTeam  string             `json:"home_team"`
	AwayTeam  string             `json:"away_team"`
	TipoffAt  time.Time          `json:"tipoff_at"`
	Venue     string             `json:"venue"`
	ImageURL  string             `json:"image_url"`
	Status    models.MatchStatus `json:"status"`
	HomeScore int                `json:"home_score"`
	AwayScore int                `json:"away_score"`
	Home      PeriodScoresDTO    `json:"home_periods"`
	Away      PeriodScoresDTO    `json:"away_periods"`
	WentToOT  bool               `json:"went_to_ot"`
}

// MatchListResponse represents a paginated list of matches
type MatchListResponse struct {
	Matches    []MatchDTO `json:"matches"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalCount int64      `json:"total_count"`
}

// BoxScoreDTO represents one player's stat line in API responses
type BoxScoreDTO struct {
	PlayerID   uint64  `json:"player_id"`
	PlayerName string  `json:"player_name,omitempty"`
	Team       string  `json:"team"`
	IsStarter  bool    `json:"is_starter"`
	Minutes    float64 `json:"minutes"`
	Points     int     `json:"pts"`
	Rebounds   int     `json:"reb"`
	Assists    int     `json:"ast"`
	Steals     int     `json:"stl"`
	Blocks     int     `json:"blk"`
	Turnovers  int     `json:"tov"`
	Fouls      int     `json:"pf"`
	FGMade     int     `json:"fg_made"`
	FGAtt      int     `json:"fg_att"`
	FGPct      float64 `json:"fg_pct"`
	TPMade     int     `json:"tp_made"`
	TPAtt      int     `json:"tp_att"`
	TPPct      float64 `json:"tp_pct"`
	FTMade     int     `json:"ft_made"`
	FTAtt      int     `json:"ft_att"`
	FTPct      float64 `json:"ft_pct"`
	PlusMinus  int     `json:"plus_minus"`
}

// ToSeasonDTO converts a Season model to SeasonDTO
func ToSeasonDTO(season models.Season) SeasonDTO {
	return SeasonDTO{
		ID:        season.ID,
		Name:      season.Name,
		StartDate: season.StartDate.Format("2006-01-02"),
		EndDate:   season.EndDate.Format("2006-01-02"),
	}
}

// ToMatchDTO converts a Match model to MatchDTO
func ToMatchDTO(match models.Match) MatchDTO {
	dto := MatchDTO{
		ID:        match.ID,
		UUID:      match.UUID,
		HomeTeam:  match.HomeTeam,
		AwayTeam:  match.AwayTeam,
		TipoffAt:  match.TipoffAt,
		Venue:     match.Venue,
		ImageURL:  match.ImageURL,
		Status:    match.Status,
		HomeScore: match.HomeScore,
		AwayScore: match.AwayScore,
		Home: PeriodScoresDTO{
			Q1: match.Q1Home, Q2: match.Q2Home, Q3: match.Q3Home, Q4: match.Q4Home,
			OT1: match.OT1Home, OT2: match.OT2Home, OT3: match.OT3Home,
		},
		Away: PeriodScoresDTO{
			Q1: match.Q1Away, Q2: match.Q2Away, Q3: match.Q3Away, Q4: match.Q4Away,
			OT1: match.OT1Away, OT2: match.OT2Away, OT3: match.OT3Away,
		},
		WentToOT: match.WentToOT(),
	}

	// Include season if preloaded
	if match.Season != nil {
		season := ToSeasonDTO(*match.Season)
		dto.Season = &season
	}

	return dto
}

// ToMatchListResponse converts a slice of matches to MatchListResponse
func ToMatchListResponse(matches []models.Match, page, pageSize int, totalCount int64) MatchListResponse {
	items := make([]MatchDTO, len(matches))
	for i, match := range matches {
		items[i] = ToMatchDTO(match)
	}
	return MatchListResponse{
		Matches:    items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
}

// ToBoxScoreDTO converts a PlayerBoxScore model to BoxScoreDTO
func ToBoxScoreDTO(score models.PlayerBoxScore) BoxScoreDTO {
	dto := BoxScoreDTO{
		PlayerID:  score.PlayerID,
		Team:      score.Team,
		IsStarter: score.IsStarter,
		Minutes:   score.Minutes,
		Points:    score.Points,
		Rebounds:  score.Rebounds,
		Assists:   score.Assists,
		Steals:    score.Steals,
		Blocks:    score.Blocks,
		Turnovers: score.Turnovers,
		Fouls:     score.Fouls,
		FGMade:    score.FGMade,
		FGAtt:     score.FGAtt,
		FGPct:     score.FGPct(),
		TPMade:    score.TPMade,
		TPAtt:     score.TPAtt,
		TPPct:     score.TPPct(),
		FTMade:    score.FTMade,
		FTAtt:     score.FTAtt,
		FTPct:     score.FTPct(),
		PlusMinus: score.PlusMinus,
	}

	// Include player name if preloaded
	if score.Player.ID != 0 {
		dto.PlayerName = score.Player.FullName
	}

	return dto
}

// ToBoxScoreDTOs converts a slice of stat lines
func ToBoxScoreDTOs(scores []models.PlayerBoxScore) []BoxScoreDTO {
	dtos := make([]BoxScoreDTO, len(scores))
	for i, score := range scores {
		dtos[i] = ToBoxScoreDTO(score)
	}
	return dtos
}
