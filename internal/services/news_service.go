package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/dribbl-id/dribbl-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNewsNotFound    = errors.New("news not found")
	ErrInvalidCategory = errors.New("invalid news category")
	ErrContentRequired = errors.New("content is required")
)

// NewsService handles news article business logic.
type NewsService struct {
	newsRepo repository.NewsRepository
}

// NewNewsService creates a new NewsService.
func NewNewsService(newsRepo repository.NewsRepository) *NewsService {
	return &NewsService{
		newsRepo: newsRepo,
	}
}

// NewsInput carries the writable article fields.
type NewsInput struct {
	Title     string
	Content   string
	Category  models.NewsCategory
	Thumbnail string
}

func (in NewsInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(in.Content) == "" {
		return ErrContentRequired
	}
	if !in.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// List returns articles matching the filter and the total match count.
func (s *NewsService) List(filter repository.NewsFilter) ([]models.News, int64, error) {
	if filter.Category != nil && !filter.Category.Valid() {
		return nil, 0, ErrInvalidCategory
	}
	return s.newsRepo.List(filter)
}

// Get retrieves a single article.
func (s *NewsService) Get(id string) (*models.News, error) {
	news, err := s.newsRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to find news: %w", err)
	}
	return news, nil
}

// Create stores a new article attributed to the acting user.
func (s *NewsService) Create(input NewsInput, authorID string) (*models.News, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	news := &models.News{
		Title:     strings.TrimSpace(input.Title),
		Content:   strings.TrimSpace(input.Content),
		Category:  input.Category,
		Thumbnail: input.Thumbnail,
	}
	if authorID != "" {
		news.AuthorID = &authorID
	}

	if err := s.newsRepo.Create(news); err != nil {
		return nil, fmt.Errorf("failed to create news: %w", err)
	}
	return news, nil
}

// Update overwrites the writable fields of an existing article.
func (s *NewsService) Update(id string, input NewsInput) (*models.News, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	news, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	news.Title = strings.TrimSpace(input.Title)
	news.Content = strings.TrimSpace(input.Content)
	news.Category = input.Category
	news.Thumbnail = input.Thumbnail

	if err := s.newsRepo.Update(news); err != nil {
		return nil, fmt.Errorf("failed to update news: %w", err)
	}
	return news, nil
}

// Delete removes an article.
func (s *NewsService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.newsRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete news: %w", err)
	}
	return nil
}
