package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/blog-platform-api/internal/comments"
	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/localstore"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/blog-platform-api/internal/service"
	"github.com/blog-platform-api/internal/session"
	"github.com/rs/zerolog"
)

func testConfig() *config.Config {
	return &config.Config{
		Catalog: config.CatalogConfig{
			RecentLimit:   6,
			RelatedLimit:  3,
			PerGroupLimit: 4,
		},
	}
}

func newTestServices(t *testing.T) *service.Services {
	t.Helper()

	kv, err := localstore.New(&config.SessionConfig{InMemoryStore: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	sessions, err := session.New(kv, session.MockAuthenticator{}, 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to create session store: %v", err)
	}

	return service.NewServices(repository.New(), sessions, testConfig(), zerolog.Nop())
}

func loginAdmin(t *testing.T, services *service.Services) *models.User {
	t.Helper()
	user, err := services.Auth.Login(context.Background(), "admin@example.com", "password")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	return user
}

func TestCommentService_AddCommentRequiresAuth(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()

	before, _ := services.Comment.Thread(ctx, 1)

	_, err := services.Comment.AddComment(ctx, 1, "Anonymous comment")
	if !errors.Is(err, service.ErrUnauthorized) {
		t.Fatalf("Expected ErrUnauthorized, got %v", err)
	}

	after, _ := services.Comment.Thread(ctx, 1)
	if len(after) != len(before) {
		t.Error("Unauthenticated add must leave the thread unchanged")
	}
}

func TestCommentService_AddComment(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()
	user := loginAdmin(t, services)

	comment, err := services.Comment.AddComment(ctx, 1, "A thoughtful take")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if comment.Author != user.Name {
		t.Errorf("Comment author %q, want %q", comment.Author, user.Name)
	}
	if comment.ArticleID != 1 {
		t.Errorf("Comment bound to article %d", comment.ArticleID)
	}

	roots, _ := services.Comment.Thread(ctx, 1)
	if roots[0].ID != comment.ID {
		t.Error("New root comment must render first")
	}
}

func TestCommentService_AddReplyRequiresAuth(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()

	_, err := services.Comment.AddReply(ctx, 1, 1, "Anonymous reply")
	if !errors.Is(err, service.ErrUnauthorized) {
		t.Fatalf("Expected ErrUnauthorized, got %v", err)
	}
}

func TestCommentService_AddReplyMissingParent(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()
	loginAdmin(t, services)

	_, err := services.Comment.AddReply(ctx, 1, 999, "Orphan reply")
	if !errors.Is(err, comments.ErrParentNotFound) {
		t.Fatalf("Expected ErrParentNotFound, got %v", err)
	}
}

func TestCommentService_UnknownArticle(t *testing.T) {
	services := newTestServices(t)

	_, err := services.Comment.Thread(context.Background(), 999)
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestArticleService_CreateRequiresAuth(t *testing.T) {
	services := newTestServices(t)

	_, err := services.Article.Create(context.Background(), &models.ArticleDraft{
		Title:    "Title",
		Content:  "Content",
		Excerpt:  "Excerpt",
		Category: "Technology",
	})
	if !errors.Is(err, service.ErrUnauthorized) {
		t.Fatalf("Expected ErrUnauthorized, got %v", err)
	}
}

func TestArticleService_Create(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()
	user := loginAdmin(t, services)

	article, err := services.Article.Create(ctx, &models.ArticleDraft{
		Title:    "Go Generics: A Field Report!",
		Content:  "Some body text about generics in practice.",
		Excerpt:  "Generics in practice.",
		Category: "Technology",
		Tags:     []string{"go", " generics "},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if article.Slug != "go-generics-a-field-report" {
		t.Errorf("Unexpected slug %q", article.Slug)
	}
	if article.ID != 7 {
		t.Errorf("Expected id 7, got %d", article.ID)
	}
	if article.ReadTime < 1 {
		t.Error("Read time must be at least 1 minute")
	}
	if article.Author.ID != user.ID || article.Author.Name != user.Name {
		t.Errorf("Article not attributed to the current user: %+v", article.Author)
	}
	if article.Tags[1] != "generics" {
		t.Errorf("Tags must be trimmed: %q", article.Tags[1])
	}
	if article.CoverImage == "" {
		t.Error("Missing cover image must fall back to the default")
	}

	// Retrievable through the catalog
	view, err := services.Article.GetBySlug(ctx, article.Slug)
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if view.Article.ID != article.ID {
		t.Error("Created article not served by the catalog")
	}
}

func TestArticleService_CreateUniqueSlug(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()
	loginAdmin(t, services)

	draft := &models.ArticleDraft{
		Title:    "Same Title",
		Content:  "Body",
		Excerpt:  "Excerpt",
		Category: "Culture",
	}

	first, err := services.Article.Create(ctx, draft)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := services.Article.Create(ctx, draft)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if first.Slug != "same-title" {
		t.Errorf("Unexpected first slug %q", first.Slug)
	}
	if second.Slug != "same-title-2" {
		t.Errorf("Expected suffixed slug, got %q", second.Slug)
	}
}

func TestArticleService_CreateValidation(t *testing.T) {
	services := newTestServices(t)
	loginAdmin(t, services)

	_, err := services.Article.Create(context.Background(), &models.ArticleDraft{
		Title:    "",
		Content:  "Body",
		Excerpt:  "Excerpt",
		Category: "Sports",
	})
	vf, ok := service.AsValidationFailure(err)
	if !ok {
		t.Fatalf("Expected ValidationFailure, got %v", err)
	}
	if len(vf.Errors) != 2 {
		t.Errorf("Expected 2 field errors (title, category), got %d: %+v", len(vf.Errors), vf.Errors)
	}
}

func TestArticleService_UpdateKeepsSlug(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()
	loginAdmin(t, services)

	before, _ := services.Article.GetBySlug(ctx, "blockchain-beyond-cryptocurrency")

	updated, err := services.Article.Update(ctx, before.Article.ID, &models.ArticleDraft{
		Title:    "A Completely New Title",
		Content:  before.Article.Content,
		Excerpt:  before.Article.Excerpt,
		Category: before.Article.Category,
		Tags:     before.Article.Tags,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Slug != "blockchain-beyond-cryptocurrency" {
		t.Errorf("Slug must never be recomputed, got %q", updated.Slug)
	}
	if updated.Title != "A Completely New Title" {
		t.Error("Title not updated")
	}
	if !updated.UpdatedAt.After(before.Article.UpdatedAt) {
		t.Error("UpdatedAt must be bumped")
	}
	if !updated.CreatedAt.Equal(before.Article.CreatedAt) {
		t.Error("CreatedAt must not change")
	}
}

func TestArticleService_UpdateMissing(t *testing.T) {
	services := newTestServices(t)
	loginAdmin(t, services)

	_, err := services.Article.Update(context.Background(), 999, &models.ArticleDraft{
		Title:    "T",
		Content:  "C",
		Excerpt:  "E",
		Category: "Health",
	})
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestArticleService_Feed(t *testing.T) {
	services := newTestServices(t)

	feed, err := services.Article.Feed(context.Background())
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}

	if feed.Featured == nil || feed.Featured.ID != 1 {
		t.Fatalf("Expected article 1 featured, got %+v", feed.Featured)
	}
	for _, a := range feed.Recent {
		if a.ID == feed.Featured.ID {
			t.Error("Recent list must exclude the featured article")
		}
	}
	if len(feed.Recent) != 5 {
		t.Errorf("Expected 5 recent articles, got %d", len(feed.Recent))
	}
	if len(feed.Groups) != 3 {
		t.Errorf("Expected 3 highlighted groups, got %d", len(feed.Groups))
	}
}

func TestArticleService_Search(t *testing.T) {
	services := newTestServices(t)

	results, err := services.Article.Search(context.Background(), "mindfulness", "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].Slug != "mindfulness-meditation-beginners-guide" {
		t.Fatalf("Unexpected results: %+v", results)
	}
}

func TestArticleService_GetBySlugMiss(t *testing.T) {
	services := newTestServices(t)

	_, err := services.Article.GetBySlug(context.Background(), "missing")
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"  Spaces   Everywhere  ", "spaces-everywhere"},
		{"Go 1.21: What's New?", "go-1-21-what-s-new"},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tc := range cases {
		if got := service.Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEstimateReadTime(t *testing.T) {
	if got := service.EstimateReadTime("short"); got != 1 {
		t.Errorf("Expected minimum of 1 minute, got %d", got)
	}

	long := ""
	for i := 0; i < 450; i++ {
		long += "word "
	}
	if got := service.EstimateReadTime(long); got != 3 {
		t.Errorf("Expected 3 minutes for 450 words, got %d", got)
	}
}
