package repository

import (
	"context"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/seed"
)

// commentRepo serves the seed comment forest. Comments created during a
// session live in the thread engines, not here; this repository only hands
// out the initial forest for an article.
type commentRepo struct{}

// NewCommentRepo creates a comment repository over the seed dataset.
func NewCommentRepo() CommentRepository {
	return &commentRepo{}
}

// ForArticle returns the nested seed comments belonging to one article.
func (r *commentRepo) ForArticle(ctx context.Context, articleID int) ([]*models.Comment, error) {
	return seed.CommentsFor(articleID), nil
}

// Count returns the number of seed root comments across all articles.
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	return len(seed.Comments()), nil
}
