package api

import (
	"net/http"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminHandler handles the admin dashboard
type AdminHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// dashboardComment is a root comment with the title of the article it
// belongs to, for the moderation list.
type dashboardComment struct {
	Comment      *models.Comment `json:"comment"`
	ArticleTitle string          `json:"article_title"`
	ArticleSlug  string          `json:"article_slug"`
}

// Dashboard handles GET /v1/admin/dashboard. Gated by requireAdmin.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	articles, err := h.services.Article.List(ctx, "")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	categoryCounts := make(map[string]int)
	for _, a := range articles {
		categoryCounts[a.Category]++
	}

	var moderation []dashboardComment
	for _, a := range articles {
		roots, err := h.services.Comment.Thread(ctx, a.ID)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		for _, root := range roots {
			moderation = append(moderation, dashboardComment{
				Comment:      root,
				ArticleTitle: a.Title,
				ArticleSlug:  a.Slug,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":      articles,
		"article_count": len(articles),
		"categories":    categoryCounts,
		"comments":      moderation,
		"comment_count": len(moderation),
	})
}
