package mocks

import (
	"context"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	User          *models.User
	LoginErr      error
	RegisterErr   error
	LogoutErr     error
	LoginCalls    int
	RegisterCalls int
	LogoutCalls   int
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	m.LoginCalls++
	if m.LoginErr != nil {
		return nil, m.LoginErr
	}
	return m.User, nil
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	m.RegisterCalls++
	if m.RegisterErr != nil {
		return nil, m.RegisterErr
	}
	user := &models.User{ID: 99, Name: name, Email: email}
	m.User = user
	return user, nil
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	m.LogoutCalls++
	if m.LogoutErr != nil {
		return m.LogoutErr
	}
	m.User = nil
	return nil
}

func (m *MockAuthService) CurrentUser() (*models.User, bool) {
	if m.User == nil {
		return nil, false
	}
	return m.User, true
}

func (m *MockAuthService) IsAuthenticated() bool {
	return m.User != nil
}

func (m *MockAuthService) IsAdmin() bool {
	return m.User != nil && m.User.IsAdmin
}

// MockArticleService is a mock implementation of service.ArticleService
type MockArticleService struct {
	FeedResult    *service.Feed
	Articles      []models.Article
	View          *service.ArticleView
	CategoryNames []string
	Created       *models.Article
	Err           error
	DeleteCalls   int
}

func (m *MockArticleService) Feed(ctx context.Context) (*service.Feed, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.FeedResult, nil
}

func (m *MockArticleService) List(ctx context.Context, category string) ([]models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Articles, nil
}

func (m *MockArticleService) GetBySlug(ctx context.Context, slug string) (*service.ArticleView, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.View == nil {
		return nil, service.ErrNotFound
	}
	return m.View, nil
}

func (m *MockArticleService) Search(ctx context.Context, query, category string) ([]models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Articles, nil
}

func (m *MockArticleService) Categories(ctx context.Context) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.CategoryNames, nil
}

func (m *MockArticleService) Create(ctx context.Context, draft *models.ArticleDraft) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Created, nil
}

func (m *MockArticleService) Update(ctx context.Context, id int, draft *models.ArticleDraft) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Created, nil
}

func (m *MockArticleService) Delete(ctx context.Context, id int) error {
	m.DeleteCalls++
	return m.Err
}

// MockCommentService is a mock implementation of service.CommentService
type MockCommentService struct {
	Roots   []*models.Comment
	Added   *models.Comment
	Err     error
	AddArgs []string
}

func (m *MockCommentService) Thread(ctx context.Context, articleID int) ([]*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Roots, nil
}

func (m *MockCommentService) AddComment(ctx context.Context, articleID int, content string) (*models.Comment, error) {
	m.AddArgs = append(m.AddArgs, content)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Added, nil
}

func (m *MockCommentService) AddReply(ctx context.Context, articleID, parentID int, content string) (*models.Comment, error) {
	m.AddArgs = append(m.AddArgs, content)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Added, nil
}
