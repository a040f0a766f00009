package repository

import (
	"errors"

	"github.com/dribbl-id/dribbl-api/internal/database"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"gorm.io/gorm"
)

// GormMatchRepository is a GORM implementation of MatchRepository
type GormMatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new MatchRepository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &GormMatchRepository{db: db}
}

func (r *GormMatchRepository) Create(match *models.Match) error {
	return r.db.Create(match).Error
}

func (r *GormMatchRepository) FindByID(id uint64) (*models.Match, error) {
	var match models.Match
	if err := r.db.Preload("Season").First(&match, id).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *GormMatchRepository) FindByUUID(uuid string) (*models.Match, error) {
	var match models.Match
	if err := r.db.Preload("Season").Where("uuid = ?", uuid).First(&match).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *GormMatchRepository) List(filter MatchFilter) ([]models.Match, int64, error) {
	query := r.db.Model(&models.Match{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("home_team LIKE ? OR away_team LIKE ? OR venue LIKE ?", pattern, pattern, pattern)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Upcoming {
		query = query.Order("tipoff_at")
	} else {
		query = query.Order("tipoff_at DESC")
	}

	if filter.Page.Limit > 0 {
		query = query.Scopes(database.Paginate(filter.Page))
	}

	var matches []models.Match
	if err := query.Preload("Season").Find(&matches).Error; err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *GormMatchRepository) Update(match *models.Match) error {
	return r.db.Save(match).Error
}

func (r *GormMatchRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).Delete(&models.PlayerBoxScore{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Match{}, id).Error
	})
}

// UpsertBoxScore creates or updates the stat line for (match, player).
func (r *GormMatchRepository) UpsertBoxScore(score *models.PlayerBoxScore) error {
	var existing models.PlayerBoxScore
	err := r.db.Where("match_id = ? AND player_id = ?", score.MatchID, score.PlayerID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(score).Error
		}
		return err
	}
	score.ID = existing.ID
	score.CreatedAt = existing.CreatedAt
	return r.db.Save(score).Error
}

func (r *GormMatchRepository) ListBoxScores(matchID uint64) ([]models.PlayerBoxScore, error) {
	var scores []models.PlayerBoxScore
	err := r.db.
		Preload("Player").
		Where("match_id = ?", matchID).
		Order("is_starter DESC, minutes DESC").
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}
