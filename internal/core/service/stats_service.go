package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

const recentItems = 5

// StatsService assembles the admin dashboard snapshot: four entity counts and
// two recent-N lists, read in parallel with no cross-read consistency.
// Snapshots are cached for a short TTL; cache failures fall back to direct
// reads.
type StatsService struct {
	users      ports.UserRepository
	posts      ports.PostRepository
	comments   ports.CommentRepository
	categories ports.CategoryRepository
	cache      ports.StatsCache
	logger     zerolog.Logger
}

func NewStatsService(
	users ports.UserRepository,
	posts ports.PostRepository,
	comments ports.CommentRepository,
	categories ports.CategoryRepository,
	cache ports.StatsCache,
	logger zerolog.Logger,
) *StatsService {
	return &StatsService{
		users:      users,
		posts:      posts,
		comments:   comments,
		categories: categories,
		cache:      cache,
		logger:     logger,
	}
}

func (s *StatsService) Snapshot(ctx context.Context) (*ports.StatsSnapshot, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	var snapshot ports.StatsSnapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snapshot.Counts.Users, err = s.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		snapshot.Counts.Posts, err = s.posts.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		snapshot.Counts.Comments, err = s.comments.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		snapshot.Counts.Categories, err = s.categories.Count(gctx)
		return err
	})
	g.Go(func() error {
		users, err := s.users.FindRecent(gctx, recentItems)
		if err != nil {
			return err
		}
		snapshot.RecentUsers = recentUsers(users)
		return nil
	})
	g.Go(func() error {
		posts, err := s.posts.FindRecent(gctx, recentItems)
		if err != nil {
			return err
		}
		snapshot.RecentPosts = recentPosts(posts)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, &snapshot); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}

	return &snapshot, nil
}

func recentUsers(users []*domain.User) []ports.RecentUser {
	out := make([]ports.RecentUser, 0, len(users))
	for _, u := range users {
		out = append(out, ports.RecentUser{
			ID:        u.ID,
			Email:     u.Email,
			Name:      u.Name,
			CreatedAt: u.CreatedAt,
		})
	}
	return out
}

func recentPosts(posts []*domain.Post) []ports.RecentPost {
	out := make([]ports.RecentPost, 0, len(posts))
	for _, p := range posts {
		item := ports.RecentPost{
			ID:        p.ID,
			Title:     p.Title,
			Published: p.Published,
			CreatedAt: p.CreatedAt,
		}
		if p.Author != nil {
			item.Author = p.Author.Name
		}
		out = append(out, item)
	}
	return out
}
