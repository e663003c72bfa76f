package repository

import (
	"context"

	"github.com/blog-platform-api/internal/models"
)

// ArticleRepository defines the interface for article data operations.
// The shipped implementation is an in-memory seeded store; a real backend
// can be substituted without touching the catalog or service layers.
type ArticleRepository interface {
	All(ctx context.Context) ([]models.Article, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ForArticle(ctx context.Context, articleID int) ([]*models.Comment, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
	Comment CommentRepository
}

// New creates all repositories over the seed dataset
func New() *Repositories {
	return &Repositories{
		Article: NewArticleRepo(),
		Comment: NewCommentRepo(),
	}
}
