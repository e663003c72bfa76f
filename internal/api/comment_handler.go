package api

import (
	"net/http"
	"strconv"

	"github.com/blog-platform-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment thread endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

type commentRequest struct {
	Content string `json:"content"`
}

// ListComments handles GET /v1/articles/:slug/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID, ok := h.resolveArticle(c)
	if !ok {
		return
	}

	roots, err := h.services.Comment.Thread(c.Request.Context(), articleID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": roots, "count": len(roots)})
}

// CreateComment handles POST /v1/articles/:slug/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	articleID, ok := h.resolveArticle(c)
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.services.Comment.AddComment(c.Request.Context(), articleID, req.Content)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// CreateReply handles POST /v1/articles/:slug/comments/:id/replies
func (h *CommentHandler) CreateReply(c *gin.Context) {
	articleID, ok := h.resolveArticle(c)
	if !ok {
		return
	}

	parentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reply, err := h.services.Comment.AddReply(c.Request.Context(), articleID, parentID, req.Content)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, reply)
}

// resolveArticle turns the :slug path segment into an article id,
// answering 404 itself on a miss.
func (h *CommentHandler) resolveArticle(c *gin.Context) (int, bool) {
	view, err := h.services.Article.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return 0, false
	}
	return view.Article.ID, true
}
