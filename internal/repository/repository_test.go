package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
)

func TestArticleRepo_Seeded(t *testing.T) {
	repos := repository.New()
	ctx := context.Background()

	count, err := repos.Article.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 6 {
		t.Errorf("Expected 6 seed articles, got %d", count)
	}

	article, err := repos.Article.GetBySlug(ctx, "future-of-artificial-intelligence-2025")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if article == nil || article.ID != 1 {
		t.Fatalf("Unexpected article: %+v", article)
	}
	if !article.Featured {
		t.Error("Seed article 1 must be featured")
	}

	missing, err := repos.Article.GetBySlug(ctx, "nope")
	if err != nil || missing != nil {
		t.Errorf("Miss must return nil, nil; got %+v, %v", missing, err)
	}
}

func TestArticleRepo_CreateAssignsID(t *testing.T) {
	repos := repository.New()
	ctx := context.Background()

	article := &models.Article{
		Slug:      "brand-new",
		Title:     "Brand New",
		Category:  "Technology",
		CreatedAt: time.Now(),
	}
	if err := repos.Article.Create(ctx, article); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if article.ID != 7 {
		t.Errorf("Expected id 7 after the seed, got %d", article.ID)
	}

	got, _ := repos.Article.GetByID(ctx, article.ID)
	if got == nil || got.Slug != "brand-new" {
		t.Errorf("Created article not retrievable: %+v", got)
	}
}

func TestArticleRepo_UpdateAndDelete(t *testing.T) {
	repos := repository.New()
	ctx := context.Background()

	article, _ := repos.Article.GetByID(ctx, 2)
	article.Title = "Edited Title"
	if err := repos.Article.Update(ctx, article); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := repos.Article.GetByID(ctx, 2)
	if got.Title != "Edited Title" {
		t.Errorf("Update not applied: %s", got.Title)
	}

	if err := repos.Article.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	gone, _ := repos.Article.GetByID(ctx, 2)
	if gone != nil {
		t.Error("Deleted article still retrievable")
	}

	if err := repos.Article.Delete(ctx, 2); err == nil {
		t.Error("Deleting a missing article must fail")
	}
}

func TestArticleRepo_AllReturnsCopy(t *testing.T) {
	repos := repository.New()
	ctx := context.Background()

	all, _ := repos.Article.All(ctx)
	all[0].Title = "mutated"

	fresh, _ := repos.Article.All(ctx)
	if fresh[0].Title == "mutated" {
		t.Error("All must return a copy of the collection")
	}
}

func TestCommentRepo_ForArticle(t *testing.T) {
	repos := repository.New()
	ctx := context.Background()

	roots, err := repos.Comment.ForArticle(ctx, 1)
	if err != nil {
		t.Fatalf("ForArticle failed: %v", err)
	}
	if len(roots) != 2 {
		t.Errorf("Expected 2 seed roots for article 1, got %d", len(roots))
	}

	none, err := repos.Comment.ForArticle(ctx, 6)
	if err != nil || len(none) != 0 {
		t.Errorf("Expected no comments for article 6, got %d", len(none))
	}
}
