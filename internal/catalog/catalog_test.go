package catalog_test

import (
	"testing"

	"github.com/blog-platform-api/internal/catalog"
	"github.com/blog-platform-api/internal/seed"
)

func TestSearch_EmptyQueryReturnsFullCollection(t *testing.T) {
	articles := seed.Articles()

	results := catalog.Search(articles, "", "")
	if len(results) != len(articles) {
		t.Fatalf("Expected %d articles, got %d", len(articles), len(results))
	}
	for i := range results {
		if results[i].ID != articles[i].ID {
			t.Errorf("Order not preserved at index %d: got id %d, want %d", i, results[i].ID, articles[i].ID)
		}
	}
}

func TestSearch_SubstringMatch(t *testing.T) {
	articles := seed.Articles()

	results := catalog.Search(articles, "mindfulness", "")
	if len(results) != 1 {
		t.Fatalf("Expected exactly 1 result for 'mindfulness', got %d", len(results))
	}
	if results[0].Slug != "mindfulness-meditation-beginners-guide" {
		t.Errorf("Unexpected slug: %s", results[0].Slug)
	}

	// Tag-only match, case-insensitive
	results = catalog.Search(articles, "BLOCKCHAIN", "")
	if len(results) != 1 {
		t.Fatalf("Expected exactly 1 result for 'BLOCKCHAIN', got %d", len(results))
	}
	if results[0].ID != 6 {
		t.Errorf("Expected article 6, got %d", results[0].ID)
	}
}

func TestSearch_CategoryRestriction(t *testing.T) {
	articles := seed.Articles()

	results := catalog.Search(articles, "", "technology")
	if len(results) != 2 {
		t.Fatalf("Expected 2 Technology articles, got %d", len(results))
	}

	// Query and category combined
	results = catalog.Search(articles, "voting", "Technology")
	if len(results) != 1 || results[0].ID != 6 {
		t.Fatalf("Expected only article 6, got %d results", len(results))
	}

	// Query matching outside the category is excluded
	results = catalog.Search(articles, "meditation", "Technology")
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestFilterByCategory_CaseInsensitive(t *testing.T) {
	articles := seed.Articles()

	lower := catalog.FilterByCategory(articles, "technology")
	upper := catalog.FilterByCategory(articles, "Technology")

	if len(lower) != len(upper) {
		t.Fatalf("Case-sensitive mismatch: %d vs %d", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i].ID != upper[i].ID {
			t.Errorf("Result sets differ at index %d", i)
		}
	}
}

func TestFindBySlug(t *testing.T) {
	articles := seed.Articles()

	article, ok := catalog.FindBySlug(articles, "mindfulness-meditation-beginners-guide")
	if !ok {
		t.Fatal("Expected to find the article")
	}
	if article.ID != 3 {
		t.Errorf("Expected article 3, got %d", article.ID)
	}

	if _, ok := catalog.FindBySlug(articles, "no-such-slug"); ok {
		t.Error("Expected absent result for unknown slug")
	}

	// Slug matching is case-sensitive
	if _, ok := catalog.FindBySlug(articles, "Mindfulness-Meditation-Beginners-Guide"); ok {
		t.Error("Slug match should be case-sensitive")
	}
}

func TestFindByID(t *testing.T) {
	articles := seed.Articles()

	article, ok := catalog.FindByID(articles, 4)
	if !ok || article.Slug != "remote-work-productivity-balance" {
		t.Fatalf("Unexpected result: ok=%v", ok)
	}
	if _, ok := catalog.FindByID(articles, 999); ok {
		t.Error("Expected absent result for unknown id")
	}
}

func TestRelatedTo(t *testing.T) {
	articles := seed.Articles()
	article, _ := catalog.FindByID(articles, 1)

	related := catalog.RelatedTo(article, articles, catalog.DefaultRelatedLimit)
	if len(related) != 1 {
		t.Fatalf("Expected 1 related article, got %d", len(related))
	}
	if related[0].ID != 6 {
		t.Errorf("Expected article 6, got %d", related[0].ID)
	}
	for _, r := range related {
		if r.ID == article.ID {
			t.Error("Related articles must exclude the article itself")
		}
	}
}

func TestSortByRecency(t *testing.T) {
	articles := seed.Articles()

	sorted := catalog.SortByRecency(articles)
	if len(sorted) != len(articles) {
		t.Fatalf("Length changed: %d", len(sorted))
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].CreatedAt.After(sorted[i-1].CreatedAt) {
			t.Errorf("Not descending at index %d", i)
		}
	}
	if sorted[0].ID != 1 {
		t.Errorf("Expected newest article first, got id %d", sorted[0].ID)
	}

	// Input order untouched
	if articles[0].ID != 1 || articles[5].ID != 6 {
		t.Error("Input collection was mutated")
	}
}

func TestGroupByCategory(t *testing.T) {
	articles := seed.Articles()

	groups := catalog.GroupByCategory(articles, []string{"Technology", "Health", "Sports"}, catalog.DefaultGroupLimit)
	if len(groups["Technology"]) != 2 {
		t.Errorf("Expected 2 Technology articles, got %d", len(groups["Technology"]))
	}
	if len(groups["Health"]) != 1 {
		t.Errorf("Expected 1 Health article, got %d", len(groups["Health"]))
	}
	if len(groups["Sports"]) != 0 {
		t.Errorf("Expected empty group for unknown category, got %d", len(groups["Sports"]))
	}

	// Limit applies
	limited := catalog.GroupByCategory(articles, []string{"Technology"}, 1)
	if len(limited["Technology"]) != 1 {
		t.Errorf("Expected limit of 1, got %d", len(limited["Technology"]))
	}
}

func TestCategories(t *testing.T) {
	articles := seed.Articles()

	categories := catalog.Categories(articles)
	want := []string{"Technology", "Lifestyle", "Health", "Business", "Culture"}
	if len(categories) != len(want) {
		t.Fatalf("Expected %d categories, got %d", len(want), len(categories))
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Errorf("Expected %s at index %d, got %s", want[i], i, categories[i])
		}
	}
}

func TestFeatured(t *testing.T) {
	articles := seed.Articles()

	featured, ok := catalog.Featured(articles)
	if !ok {
		t.Fatal("Expected a featured article")
	}
	if featured.ID != 1 {
		t.Errorf("Expected article 1, got %d", featured.ID)
	}

	if _, ok := catalog.Featured(nil); ok {
		t.Error("Expected no featured article in empty collection")
	}
}
