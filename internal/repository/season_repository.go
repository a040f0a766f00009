package repository

import (
	"github.com/dribbl-id/dribbl-api/internal/models"
	"gorm.io/gorm"
)

// GormSeasonRepository is a GORM implementation of SeasonRepository
type GormSeasonRepository struct {
	db *gorm.DB
}

// NewSeasonRepository creates a new SeasonRepository
func NewSeasonRepository(db *gorm.DB) SeasonRepository {
	return &GormSeasonRepository{db: db}
}

func (r *GormSeasonRepository) Create(season *models.Season) error {
	return r.db.Create(season).Error
}

func (r *GormSeasonRepository) FindByID(id uint64) (*models.Season, error) {
	var season models.Season
	if err := r.db.First(&season, id).Error; err != nil {
		return nil, err
	}
	return &season, nil
}

func (r *GormSeasonRepository) List() ([]models.Season, error) {
	var seasons []models.Season
	if err := r.db.Order("start_date DESC").Find(&seasons).Error; err != nil {
		return nil, err
	}
	return seasons, nil
}

func (r *GormSeasonRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Matches keep existing without a season.
		if err := tx.Model(&models.Match{}).Where("season_id = ?", id).Update("season_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Season{}, id).Error
	})
}
