package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blog-platform-api/internal/catalog"
	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/blog-platform-api/internal/validation"
	"github.com/rs/zerolog"
)

// highlightCategories are the sections rendered on the home feed.
var highlightCategories = []string{"Technology", "Lifestyle", "Health"}

// defaultCoverImage is used when a draft omits a cover image.
const defaultCoverImage = "https://images.pexels.com/photos/3698534/pexels-photo-3698534.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"

// readingWordsPerMinute drives the estimated read time on created and
// edited articles.
const readingWordsPerMinute = 200

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles repository.ArticleRepository
	auth     AuthService
	cfg      *config.CatalogConfig
	log      zerolog.Logger
}

// newArticleService creates the article service
func newArticleService(articles repository.ArticleRepository, auth AuthService, cfg *config.Config, log zerolog.Logger) *articleService {
	return &articleService{
		articles: articles,
		auth:     auth,
		cfg:      &cfg.Catalog,
		log:      log.With().Str("component", "article_service").Logger(),
	}
}

// Feed assembles the home view: the featured article, the newest articles
// excluding it, and the highlighted category groups.
func (s *articleService) Feed(ctx context.Context) (*Feed, error) {
	all, err := s.articles.All(ctx)
	if err != nil {
		return nil, err
	}

	feed := &Feed{
		Groups: catalog.GroupByCategory(all, highlightCategories, s.cfg.PerGroupLimit),
	}

	featured, hasFeatured := catalog.Featured(all)
	if hasFeatured {
		feed.Featured = &featured
	}

	recent := make([]models.Article, 0, s.cfg.RecentLimit)
	for _, a := range catalog.SortByRecency(all) {
		if hasFeatured && a.ID == featured.ID {
			continue
		}
		recent = append(recent, a)
		if len(recent) == s.cfg.RecentLimit {
			break
		}
	}
	feed.Recent = recent

	return feed, nil
}

// List returns articles newest-first, optionally restricted to a category.
func (s *articleService) List(ctx context.Context, category string) ([]models.Article, error) {
	all, err := s.articles.All(ctx)
	if err != nil {
		return nil, err
	}
	if category != "" {
		all = catalog.FilterByCategory(all, category)
	}
	return catalog.SortByRecency(all), nil
}

// GetBySlug returns one article with its related strip, or ErrNotFound.
func (s *articleService) GetBySlug(ctx context.Context, slug string) (*ArticleView, error) {
	all, err := s.articles.All(ctx)
	if err != nil {
		return nil, err
	}

	article, ok := catalog.FindBySlug(all, slug)
	if !ok {
		return nil, ErrNotFound
	}

	return &ArticleView{
		Article: article,
		Related: catalog.RelatedTo(article, all, s.cfg.RelatedLimit),
	}, nil
}

// Search runs the free-text/category search over the collection.
func (s *articleService) Search(ctx context.Context, query, category string) ([]models.Article, error) {
	all, err := s.articles.All(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Search(all, query, category), nil
}

// Categories returns the distinct categories in first-seen order.
func (s *articleService) Categories(ctx context.Context) ([]string, error) {
	all, err := s.articles.All(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Categories(all), nil
}

// Create validates the draft and adds a new article authored by the
// current user. The slug is derived from the title exactly once, here.
func (s *articleService) Create(ctx context.Context, draft *models.ArticleDraft) (*models.Article, error) {
	user, ok := s.auth.CurrentUser()
	if !ok {
		return nil, ErrUnauthorized
	}

	if errs := validation.ValidateArticleDraft(draft); len(errs) > 0 {
		return nil, &ValidationFailure{Errors: errs}
	}

	slug, err := s.uniqueSlug(ctx, Slugify(draft.Title))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	article := &models.Article{
		Slug:       slug,
		Title:      draft.Title,
		Content:    draft.Content,
		Excerpt:    draft.Excerpt,
		CoverImage: draft.CoverImage,
		Category:   draft.Category,
		Tags:       trimTags(draft.Tags),
		Author:     models.Author{ID: user.ID, Name: user.Name},
		CreatedAt:  now,
		UpdatedAt:  now,
		ReadTime:   EstimateReadTime(draft.Content),
	}
	if article.CoverImage == "" {
		article.CoverImage = defaultCoverImage
	}

	if err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}

	s.log.Info().Int("id", article.ID).Str("slug", article.Slug).Msg("Article created")
	return article, nil
}

// Update validates the draft and replaces the editable fields of an
// existing article. The slug is never recomputed.
func (s *articleService) Update(ctx context.Context, id int, draft *models.ArticleDraft) (*models.Article, error) {
	if _, ok := s.auth.CurrentUser(); !ok {
		return nil, ErrUnauthorized
	}

	if errs := validation.ValidateArticleDraft(draft); len(errs) > 0 {
		return nil, &ValidationFailure{Errors: errs}
	}

	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	article.Title = draft.Title
	article.Content = draft.Content
	article.Excerpt = draft.Excerpt
	article.Category = draft.Category
	article.Tags = trimTags(draft.Tags)
	if draft.CoverImage != "" {
		article.CoverImage = draft.CoverImage
	}
	article.ReadTime = EstimateReadTime(draft.Content)
	article.UpdatedAt = time.Now().UTC()

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, err
	}

	s.log.Info().Int("id", article.ID).Msg("Article updated")
	return article, nil
}

// Delete removes an article by id.
func (s *articleService) Delete(ctx context.Context, id int) error {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrNotFound
	}

	if err := s.articles.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int("id", id).Msg("Article deleted")
	return nil
}

// uniqueSlug suffixes the base slug with a counter until it is unused.
func (s *articleService) uniqueSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		exists, err := s.articles.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// Slugify lowers a title into a URL-safe hyphen-separated slug.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphens
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// EstimateReadTime returns the reading time in whole minutes, at least 1.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + readingWordsPerMinute - 1) / readingWordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func trimTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
