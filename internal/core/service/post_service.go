package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

// PostService implements post CRUD with ownership checks and lazy tag
// resolution.
type PostService struct {
	posts  ports.PostRepository
	tags   ports.TagRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, tags ports.TagRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, tags: tags, logger: logger}
}

func (s *PostService) ListPublished(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.FindPublished(ctx)
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) Create(ctx context.Context, identity domain.Identity, input ports.CreatePostInput) (*domain.Post, error) {
	tagIDs, err := s.resolveTags(ctx, input.TagNames)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:      input.Title,
		Content:    input.Content,
		AuthorID:   identity.UserID,
		CategoryID: input.CategoryID,
		TagIDs:     tagIDs,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author_id", identity.UserID).Msg("post created")
	return created, nil
}

// Update replaces the post's tag associations with the resolved set; the
// existing associations are dropped wholesale, not diffed.
func (s *PostService) Update(ctx context.Context, identity domain.Identity, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	existing, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutate(identity, existing.AuthorID, true) {
		return nil, domain.ErrForbidden
	}

	tagIDs, err := s.resolveTags(ctx, input.TagNames)
	if err != nil {
		return nil, err
	}

	return s.posts.Update(ctx, id, ports.PostUpdate{
		Title:      input.Title,
		Content:    input.Content,
		Published:  input.Published,
		CategoryID: input.CategoryID,
		TagIDs:     tagIDs,
	})
}

func (s *PostService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	existing, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanMutate(identity, existing.AuthorID, true) {
		return domain.ErrForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", id).Str("deleted_by", identity.UserID).Msg("post deleted")
	return nil
}

// resolveTags maps tag names to ids, inserting missing tags on the way
// (get-or-create by unique name). Duplicate names collapse to one id.
func (s *PostService) resolveTags(ctx context.Context, names []string) ([]string, error) {
	ids := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		tag, err := s.tags.GetOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, tag.ID)
	}
	return ids, nil
}
