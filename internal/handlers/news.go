package handlers

import (
	"errors"
	"net/http"

	"github.com/dribbl-id/dribbl-api/internal/dto"
	apierrors "github.com/dribbl-id/dribbl-api/internal/errors"
	"github.com/dribbl-id/dribbl-api/internal/logger"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/dribbl-id/dribbl-api/internal/repository"
	"github.com/dribbl-id/dribbl-api/internal/services"
	"github.com/dribbl-id/dribbl-api/internal/session"
	"github.com/dribbl-id/dribbl-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// NewsHandler coordinates news HTTP handlers.
type NewsHandler struct {
	newsService *services.NewsService
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService *services.NewsService) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
	}
}

func newsFilterFromQuery(c *gin.Context) repository.NewsFilter {
	filter := repository.NewsFilter{
		Search: c.Query("search"),
		Sort:   c.DefaultQuery("sort", "newest"),
		Page:   utils.GetPaginationParams(c),
	}
	if category := c.Query("category"); category != "" {
		cat := models.NewsCategory(category)
		filter.Category = &cat
	}
	return filter
}

// ListNews returns articles filtered by category and search query, sorted
// and paginated.
func (h *NewsHandler) ListNews(c *gin.Context) {
	filter := newsFilterFromQuery(c)

	articles, total, err := h.newsService.List(filter)
	if err != nil {
		respondNewsError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNewsListResponse(articles, filter.Page.Page, filter.Page.Limit, total))
}

// GetNews returns a single article.
func (h *NewsHandler) GetNews(c *gin.Context) {
	news, err := h.newsService.Get(c.Param("id"))
	if err != nil {
		respondNewsError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNewsDTO(*news))
}

// ListNewsXML renders the article list as XML.
func (h *NewsHandler) ListNewsXML(c *gin.Context) {
	articles, _, err := h.newsService.List(repository.NewsFilter{Sort: "newest"})
	if err != nil {
		respondNewsError(c, err)
		return
	}

	c.XML(http.StatusOK, dto.ToNewsFeedXML(articles))
}

// GetNewsXML renders a single article as XML.
func (h *NewsHandler) GetNewsXML(c *gin.Context) {
	news, err := h.newsService.Get(c.Param("id"))
	if err != nil {
		respondNewsError(c, err)
		return
	}

	c.XML(http.StatusOK, dto.ToNewsXML(*news))
}

// newsRequest is the JSON body for create and update.
type newsRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Category  string `json:"category" binding:"required"`
	Thumbnail string `json:"thumbnail"`
}

func (r newsRequest) toInput() services.NewsInput {
	return services.NewsInput{
		Title:     r.Title,
		Content:   r.Content,
		Category:  models.NewsCategory(r.Category),
		Thumbnail: r.Thumbnail,
	}
}

// CreateNews stores a new article attributed to the acting admin.
func (h *NewsHandler) CreateNews(c *gin.Context) {
	identity, ok := session.CurrentIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req newsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	news, err := h.newsService.Create(req.toInput(), identity.UserID)
	if err != nil {
		respondNewsError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNewsDTO(*news))
}

// UpdateNews overwrites an existing article.
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	var req newsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	news, err := h.newsService.Update(c.Param("id"), req.toInput())
	if err != nil {
		respondNewsError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNewsDTO(*news))
}

// DeleteNews removes an article.
func (h *NewsHandler) DeleteNews(c *gin.Context) {
	if err := h.newsService.Delete(c.Param("id")); err != nil {
		respondNewsError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "News deleted successfully"})
}

func respondNewsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNewsNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrContentRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		logger.Errorf("news handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
