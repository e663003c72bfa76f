package service

import (
	"context"

	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/blog-platform-api/internal/session"
	"github.com/rs/zerolog"
)

// Feed is the home view: the featured article, the most recent articles,
// and a limited slice of each highlighted category.
type Feed struct {
	Featured *models.Article             `json:"featured,omitempty"`
	Recent   []models.Article            `json:"recent"`
	Groups   map[string][]models.Article `json:"groups"`
}

// ArticleView is a single article with its related-articles strip.
type ArticleView struct {
	Article models.Article   `json:"article"`
	Related []models.Article `json:"related"`
}

// ArticleService defines the interface for catalog reads and the demo
// authoring flow
type ArticleService interface {
	Feed(ctx context.Context) (*Feed, error)
	List(ctx context.Context, category string) ([]models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*ArticleView, error)
	Search(ctx context.Context, query, category string) ([]models.Article, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, draft *models.ArticleDraft) (*models.Article, error)
	Update(ctx context.Context, id int, draft *models.ArticleDraft) (*models.Article, error)
	Delete(ctx context.Context, id int) error
}

// CommentService defines the interface for comment thread operations
type CommentService interface {
	Thread(ctx context.Context, articleID int) ([]*models.Comment, error)
	AddComment(ctx context.Context, articleID int, content string) (*models.Comment, error)
	AddReply(ctx context.Context, articleID, parentID int, content string) (*models.Comment, error)
}

// AuthService defines the interface for session operations
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser() (*models.User, bool)
	IsAuthenticated() bool
	IsAdmin() bool
}

// Services holds all service interfaces
type Services struct {
	Article ArticleService
	Comment CommentService
	Auth    AuthService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, sessions *session.Store, cfg *config.Config, log zerolog.Logger) *Services {
	authSvc := newAuthService(sessions, log)

	return &Services{
		Article: newArticleService(repos.Article, authSvc, cfg, log),
		Comment: newCommentService(repos, authSvc, log),
		Auth:    authSvc,
	}
}
