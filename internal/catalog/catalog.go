// Package catalog answers read-only questions against an already-loaded
// article collection. Every function is pure: inputs are never mutated and
// results are deterministic, so callers may share a collection freely.
package catalog

import (
	"sort"
	"strings"

	"github.com/blog-platform-api/internal/models"
)

// DefaultRelatedLimit caps the related-articles strip on an article page.
const DefaultRelatedLimit = 3

// DefaultGroupLimit caps each category section on the home feed.
const DefaultGroupLimit = 4

// FindBySlug returns the article with the given slug. The match is exact
// and case-sensitive; slug uniqueness is a data invariant, not enforced
// here.
func FindBySlug(articles []models.Article, slug string) (models.Article, bool) {
	for _, a := range articles {
		if a.Slug == slug {
			return a, true
		}
	}
	return models.Article{}, false
}

// FindByID returns the article with the given id.
func FindByID(articles []models.Article, id int) (models.Article, bool) {
	for _, a := range articles {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

// FilterByCategory returns articles whose category equals the given one,
// ignoring case. Source order is preserved.
func FilterByCategory(articles []models.Article, category string) []models.Article {
	var out []models.Article
	for _, a := range articles {
		if strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return out
}

// RelatedTo returns up to limit articles sharing the given article's
// category, excluding the article itself, in source order. There is no
// relevance ranking.
func RelatedTo(article models.Article, articles []models.Article, limit int) []models.Article {
	var out []models.Article
	for _, a := range articles {
		if a.ID == article.ID {
			continue
		}
		if !strings.EqualFold(a.Category, article.Category) {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Search returns articles matching the query as a case-insensitive
// substring of the title, content, excerpt, or any tag. A non-empty
// category further restricts results to that category (case-insensitive).
// A blank query with no category returns the full collection unchanged.
// Pure substring containment: no tokenization, stemming, or ranking.
func Search(articles []models.Article, query, category string) []models.Article {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if query != "" && !matchesQuery(a, query) {
			continue
		}
		if category != "" && !strings.EqualFold(a.Category, category) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesQuery(a models.Article, query string) bool {
	if strings.Contains(strings.ToLower(a.Title), query) ||
		strings.Contains(strings.ToLower(a.Content), query) ||
		strings.Contains(strings.ToLower(a.Excerpt), query) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// SortByRecency returns a copy of the collection ordered newest-first by
// creation timestamp. The sort is stable for equal timestamps.
func SortByRecency(articles []models.Article) []models.Article {
	out := make([]models.Article, len(articles))
	copy(out, articles)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// GroupByCategory returns, for each requested category, the first
// perCategoryLimit matching articles in source order. Categories with no
// matches map to an empty slice.
func GroupByCategory(articles []models.Article, categories []string, perCategoryLimit int) map[string][]models.Article {
	out := make(map[string][]models.Article, len(categories))
	for _, category := range categories {
		matched := FilterByCategory(articles, category)
		if len(matched) > perCategoryLimit {
			matched = matched[:perCategoryLimit]
		}
		if matched == nil {
			matched = []models.Article{}
		}
		out[category] = matched
	}
	return out
}

// Categories returns the distinct categories present in the collection, in
// first-seen order.
func Categories(articles []models.Article) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range articles {
		if !seen[a.Category] {
			seen[a.Category] = true
			out = append(out, a.Category)
		}
	}
	return out
}

// Featured returns the first article flagged as featured. At most one
// article should carry the flag, but that is a data convention the model
// does not enforce; first wins.
func Featured(articles []models.Article) (models.Article, bool) {
	for _, a := range articles {
		if a.Featured {
			return a, true
		}
	}
	return models.Article{}, false
}
