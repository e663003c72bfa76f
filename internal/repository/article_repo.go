package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/seed"
)

// articleRepo is the in-memory implementation of ArticleRepository. It is
// seeded at construction and lives for the process; created and edited
// articles are not persisted anywhere.
type articleRepo struct {
	mu       sync.RWMutex
	articles []models.Article
	nextID   int
}

// NewArticleRepo creates an article repository seeded with the static
// dataset.
func NewArticleRepo() ArticleRepository {
	articles := seed.Articles()
	nextID := 1
	for _, a := range articles {
		if a.ID >= nextID {
			nextID = a.ID + 1
		}
	}
	return &articleRepo{articles: articles, nextID: nextID}
}

// All returns a copy of the collection in stored order.
func (r *articleRepo) All(ctx context.Context) ([]models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Article, len(r.articles))
	copy(out, r.articles)
	return out, nil
}

// GetByID retrieves an article by id. A miss returns nil, nil.
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.articles {
		if r.articles[i].ID == id {
			a := r.articles[i]
			return &a, nil
		}
	}
	return nil, nil
}

// GetBySlug retrieves an article by slug. A miss returns nil, nil.
func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.articles {
		if r.articles[i].Slug == slug {
			a := r.articles[i]
			return &a, nil
		}
	}
	return nil, nil
}

// SlugExists checks if an article with the given slug exists
func (r *articleRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	a, err := r.GetBySlug(ctx, slug)
	return a != nil, err
}

// Create appends a new article, assigning the next id.
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	article.ID = r.nextID
	r.nextID++
	r.articles = append(r.articles, *article)
	return nil
}

// Update replaces the stored article with the same id.
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.articles {
		if r.articles[i].ID == article.ID {
			r.articles[i] = *article
			return nil
		}
	}
	return fmt.Errorf("article %d does not exist", article.ID)
}

// Delete removes the article with the given id, preserving order.
func (r *articleRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.articles {
		if r.articles[i].ID == id {
			r.articles = append(r.articles[:i], r.articles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("article %d does not exist", id)
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.articles), nil
}
