package repository

import (
	"github.com/dribbl-id/dribbl-api/internal/database"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"gorm.io/gorm"
)

// GormNewsRepository is a GORM implementation of NewsRepository
type GormNewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &GormNewsRepository{db: db}
}

func (r *GormNewsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

func (r *GormNewsRepository) FindByID(id string) (*models.News, error) {
	var news models.News
	if err := r.db.Preload("Author").First(&news, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *GormNewsRepository) List(filter NewsFilter) ([]models.News, int64, error) {
	query := r.db.Model(&models.News{})

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case "oldest":
		query = query.Order("published_at")
	case "title_asc":
		query = query.Order("title")
	case "title_desc":
		query = query.Order("title DESC")
	default: // newest
		query = query.Order("published_at DESC")
	}

	if filter.Page.Limit > 0 {
		query = query.Scopes(database.Paginate(filter.Page))
	}

	var articles []models.News
	if err := query.Preload("Author").Find(&articles).Error; err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *GormNewsRepository) Update(news *models.News) error {
	return r.db.Save(news).Error
}

func (r *GormNewsRepository) Delete(id string) error {
	return r.db.Delete(&models.News{}, "id = ?", id).Error
}
