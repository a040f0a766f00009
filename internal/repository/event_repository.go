package repository

import (
	"github.com/dribbl-id/dribbl-api/internal/models"
	"gorm.io/gorm"
)

// GormEventRepository is a GORM implementation of EventRepository
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *GormEventRepository) FindByID(id uint64) (*models.Event, error) {
	var event models.Event
	if err := r.db.Preload("CreatedBy").First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *GormEventRepository) List(publicOnly bool) ([]models.Event, error) {
	query := r.db.Order("date")
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}

	var events []models.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *GormEventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *GormEventRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Event{}, id).Error
}
