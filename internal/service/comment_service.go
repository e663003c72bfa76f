package service

import (
	"context"
	"sync"

	"github.com/blog-platform-api/internal/comments"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService. It
// keeps one thread engine per article, built lazily from the seed forest;
// comments added during the process lifetime live only in those engines.
type commentService struct {
	mu       sync.Mutex
	threads  map[int]*comments.Thread
	articles repository.ArticleRepository
	comments repository.CommentRepository
	auth     AuthService
	log      zerolog.Logger
}

// newCommentService creates the comment service
func newCommentService(repos *repository.Repositories, auth AuthService, log zerolog.Logger) *commentService {
	return &commentService{
		threads:  make(map[int]*comments.Thread),
		articles: repos.Article,
		comments: repos.Comment,
		auth:     auth,
		log:      log.With().Str("component", "comment_service").Logger(),
	}
}

// Thread returns the root comments of an article, each with its full
// reply subtree. ErrNotFound when the article does not exist.
func (s *commentService) Thread(ctx context.Context, articleID int) ([]*models.Comment, error) {
	thread, err := s.thread(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return thread.Roots(), nil
}

// AddComment posts a new root comment as the current user. Without an
// authenticated session nothing is mutated.
func (s *commentService) AddComment(ctx context.Context, articleID int, content string) (*models.Comment, error) {
	user, ok := s.auth.CurrentUser()
	if !ok {
		return nil, ErrUnauthorized
	}

	thread, err := s.thread(ctx, articleID)
	if err != nil {
		return nil, err
	}

	comment, err := thread.AddRoot(content, user.Name)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("article_id", articleID).Int("comment_id", comment.ID).Msg("Comment added")
	return comment, nil
}

// AddReply posts a reply under an existing comment at any depth. Without
// an authenticated session, or when the parent id is not in the thread,
// nothing is mutated.
func (s *commentService) AddReply(ctx context.Context, articleID, parentID int, content string) (*models.Comment, error) {
	user, ok := s.auth.CurrentUser()
	if !ok {
		return nil, ErrUnauthorized
	}

	thread, err := s.thread(ctx, articleID)
	if err != nil {
		return nil, err
	}

	reply, err := thread.AddReply(parentID, content, user.Name)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("article_id", articleID).
		Int("parent_id", parentID).
		Int("comment_id", reply.ID).
		Msg("Reply added")
	return reply, nil
}

// thread returns the engine for an article, building it on first use.
func (s *commentService) thread(ctx context.Context, articleID int) (*comments.Thread, error) {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.threads[articleID]; ok {
		return t, nil
	}

	seeded, err := s.comments.ForArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	t := comments.NewThread(articleID, seeded)
	s.threads[articleID] = t
	return t, nil
}
