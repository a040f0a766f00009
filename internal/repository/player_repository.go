package repository

import (
	"github.com/dribbl-id/dribbl-api/internal/models"
	"gorm.io/gorm"
)

// GormPlayerRepository is a GORM implementation of PlayerRepository
type GormPlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &GormPlayerRepository{db: db}
}

func (r *GormPlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

func (r *GormPlayerRepository) FindByID(id uint64) (*models.Player, error) {
	var player models.Player
	if err := r.db.First(&player, id).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *GormPlayerRepository) List(team string) ([]models.Player, error) {
	query := r.db.Order("team, full_name")
	if team != "" {
		query = query.Where("team = ?", team)
	}

	var players []models.Player
	if err := query.Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *GormPlayerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

func (r *GormPlayerRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Player{}, id).Error
}
