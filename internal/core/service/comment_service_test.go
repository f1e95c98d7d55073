package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

func newCommentFixture(t *testing.T) (*CommentService, *memCommentRepo, *domain.Post) {
	t.Helper()
	comments := newMemCommentRepo()
	posts := newMemPostRepo()
	post, err := posts.Create(context.Background(), &domain.Post{Title: "t", Content: "c", AuthorID: "user-1"})
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return NewCommentService(comments, posts, zerolog.Nop()), comments, post
}

func TestCommentService_Create_RequiresExistingPost(t *testing.T) {
	svc, _, post := newCommentFixture(t)

	comment, err := svc.Create(context.Background(), asOwner, ports.CreateCommentInput{Content: "hi", PostID: post.ID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if comment.AuthorID != asOwner.UserID {
		t.Fatalf("expected author %s, got %s", asOwner.UserID, comment.AuthorID)
	}

	if _, err := svc.Create(context.Background(), asOwner, ports.CreateCommentInput{Content: "hi", PostID: "post-missing"}); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentService_Replies(t *testing.T) {
	svc, _, post := newCommentFixture(t)

	parent, _ := svc.Create(context.Background(), asOwner, ports.CreateCommentInput{Content: "parent", PostID: post.ID})
	_, err := svc.Create(context.Background(), asOther, ports.CreateCommentInput{Content: "reply", PostID: post.ID, ParentID: parent.ID})
	if err != nil {
		t.Fatalf("reply failed: %v", err)
	}

	listed, err := svc.ListByPost(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("replies must not appear top-level, got %d entries", len(listed))
	}
	if len(listed[0].Replies) != 1 || listed[0].Replies[0].Content != "reply" {
		t.Fatalf("expected the reply under its parent, got %+v", listed[0].Replies)
	}
}

func TestCommentService_Update_OwnerOnly(t *testing.T) {
	svc, _, post := newCommentFixture(t)
	comment, _ := svc.Create(context.Background(), asOwner, ports.CreateCommentInput{Content: "orig", PostID: post.ID})

	// Even an admin cannot edit someone else's words.
	if _, err := svc.Update(context.Background(), asAdmin, comment.ID, "edited"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("admin edit must be forbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), asOwner, comment.ID, "edited")
	if err != nil {
		t.Fatalf("owner edit failed: %v", err)
	}
	if updated.Content != "edited" {
		t.Fatalf("content not updated: %s", updated.Content)
	}
}

func TestCommentService_Delete_OwnerOrAdmin(t *testing.T) {
	svc, comments, post := newCommentFixture(t)

	first, _ := svc.Create(context.Background(), asOwner, ports.CreateCommentInput{Content: "a", PostID: post.ID})
	second, _ := svc.Create(context.Background(), asOwner, ports.CreateCommentInput{Content: "b", PostID: post.ID})

	if err := svc.Delete(context.Background(), asOther, first.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("stranger delete must be forbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), asOwner, first.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), asAdmin, second.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if n, _ := comments.Count(context.Background()); n != 0 {
		t.Fatalf("expected no comments left, got %d", n)
	}
}
