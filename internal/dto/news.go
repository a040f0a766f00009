package dto

import (
	"encoding/xml"
	"time"

	"github.com/dribbl-id/dribbl-api/internal/models"
)

// NewsDTO represents a news article in API responses
type NewsDTO struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Content     string              `json:"content"`
	Category    models.NewsCategory `json:"category"`
	Thumbnail   string              `json:"thumbnail"`
	AuthorID    *string             `json:"author_id"`
	Author      *UserDTO            `json:"author,omitempty"`
	PublishedAt time.Time           `json:"published_at"`
}

// NewsListResponse represents a paginated list of articles
type NewsListResponse struct {
	News       []NewsDTO `json:"news"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalCount int64     `json:"total_count"`
	TotalPages int       `json:"total_pages"`
}

// NewsXML is the XML rendering of an article, mirroring the JSON field set.
type NewsXML struct {
	XMLName     xml.Name            `xml:"news"`
	ID          string              `xml:"id"`
	Title       string              `xml:"title"`
	Content     string              `xml:"content"`
	Category    models.NewsCategory `xml:"category"`
	Thumbnail   string              `xml:"thumbnail,omitempty"`
	PublishedAt time.Time           `xml:"published_at"`
}

// NewsFeedXML wraps a list of articles for the XML feed endpoint.
type NewsFeedXML struct {
	XMLName xml.Name  `xml:"news_feed"`
	Items   []NewsXML `xml:"news"`
}

// ToNewsDTO converts a News model to NewsDTO
func ToNewsDTO(news models.News) NewsDTO {
	dto := NewsDTO{
		ID:          news.ID,
		Title:       news.Title,
		Content:     news.Content,
		Category:    news.Category,
		Thumbnail:   news.Thumbnail,
		AuthorID:    news.AuthorID,
		PublishedAt: news.PublishedAt,
	}

	// Include author if preloaded
	if news.Author != nil {
		author := ToUserDTO(*news.Author)
		dto.Author = &author
	}

	return dto
}

// ToNewsListResponse converts a slice of articles to NewsListResponse
func ToNewsListResponse(articles []models.News, page, pageSize int, totalCount int64) NewsListResponse {
	items := make([]NewsDTO, len(articles))
	for i, news := range articles {
		items[i] = ToNewsDTO(news)
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = int(totalCount) / pageSize
		if int(totalCount)%pageSize > 0 {
			totalPages++
		}
	}

	return NewsListResponse{
		News:       items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// ToNewsXML converts a News model to its XML rendering
func ToNewsXML(news models.News) NewsXML {
	return NewsXML{
		ID:          news.ID,
		Title:       news.Title,
		Content:     news.Content,
		Category:    news.Category,
		Thumbnail:   news.Thumbnail,
		PublishedAt: news.PublishedAt,
	}
}

// ToNewsFeedXML converts a slice of articles to the XML feed shape
func ToNewsFeedXML(articles []models.News) NewsFeedXML {
	items := make([]NewsXML, len(articles))
	for i, news := range articles {
		items[i] = ToNewsXML(news)
	}
	return NewsFeedXML{Items: items}
}
