package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

// CommentService implements comment CRUD. Updates are owner-only; deletes
// also allow the admin override.
type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, logger: logger}
}

// ListByPost returns top-level comments newest first, each carrying its
// direct replies. Deeper nesting is not supported.
func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return s.comments.FindByPost(ctx, postID)
}

func (s *CommentService) Create(ctx context.Context, identity domain.Identity, input ports.CreateCommentInput) (*domain.Comment, error) {
	if _, err := s.posts.FindByID(ctx, input.PostID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		Content:   input.Content,
		AuthorID:  identity.UserID,
		PostID:    input.PostID,
		ParentID:  input.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.comments.Create(ctx, comment)
}

func (s *CommentService) Update(ctx context.Context, identity domain.Identity, id, content string) (*domain.Comment, error) {
	existing, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutate(identity, existing.AuthorID, false) {
		return nil, domain.ErrForbidden
	}
	return s.comments.UpdateContent(ctx, id, content)
}

func (s *CommentService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	existing, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanMutate(identity, existing.AuthorID, true) {
		return domain.ErrForbidden
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("comment_id", id).Str("deleted_by", identity.UserID).Msg("comment deleted")
	return nil
}
