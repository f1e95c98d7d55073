package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devnews/devnews-api/internal/core/domain"
)

const collectionComments = "comments"

type CommentRepository struct {
	comments *mongo.Collection
	users    *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		comments: db.Collection(collectionComments),
		users:    db.Collection(collectionUsers),
	}
}

type commentDoc struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Content   string              `bson:"content"`
	AuthorID  primitive.ObjectID  `bson:"author_id"`
	PostID    primitive.ObjectID  `bson:"post_id"`
	ParentID  *primitive.ObjectID `bson:"parent_id,omitempty"`
	CreatedAt time.Time           `bson:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at"`
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	authorID, err := primitive.ObjectIDFromHex(comment.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}
	postID, err := primitive.ObjectIDFromHex(comment.PostID)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	doc := commentDoc{
		Content:   comment.Content,
		AuthorID:  authorID,
		PostID:    postID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if comment.ParentID != "" {
		parentID, err := primitive.ObjectIDFromHex(comment.ParentID)
		if err != nil {
			return nil, domain.ErrCommentNotFound
		}
		doc.ParentID = &parentID
	}

	res, err := r.comments.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, id.Hex())
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	var doc commentDoc
	if err := r.comments.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}

	comments, err := r.withAuthors(ctx, []commentDoc{doc})
	if err != nil {
		return nil, err
	}
	return comments[0], nil
}

// FindByPost loads every comment on the post in one query, resolves the
// authors, and assembles top-level comments (newest first) with their direct
// replies nested beneath them (oldest first).
func (r *CommentRepository) FindByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.comments.Find(ctx, bson.M{"post_id": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	var docs []commentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	all, err := r.withAuthors(ctx, docs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Comment, len(all))
	var topLevel []*domain.Comment
	for _, c := range all {
		if c.ParentID == "" {
			byID[c.ID] = c
			topLevel = append(topLevel, c)
		}
	}
	// Attach replies to their parents; walk backwards so replies end up oldest
	// first (the query sorts newest first).
	for i := len(all) - 1; i >= 0; i-- {
		c := all[i]
		if c.ParentID == "" {
			continue
		}
		if parent, ok := byID[c.ParentID]; ok {
			parent.Replies = append(parent.Replies, c)
		}
	}
	return topLevel, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	res, err := r.comments.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"content":    content,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCommentNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	res, err := r.comments.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}

	// Replies of a deleted comment would never be listed again; drop them too.
	if _, err := r.comments.DeleteMany(ctx, bson.M{"parent_id": oid}); err != nil {
		return fmt.Errorf("delete comment replies: %w", err)
	}
	return nil
}

func (r *CommentRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.comments.CountDocuments(ctx, bson.M{})
}

func (r *CommentRepository) withAuthors(ctx context.Context, docs []commentDoc) ([]*domain.Comment, error) {
	authorIDs := make([]primitive.ObjectID, 0, len(docs))
	seen := map[primitive.ObjectID]struct{}{}
	for _, d := range docs {
		if _, ok := seen[d.AuthorID]; !ok {
			seen[d.AuthorID] = struct{}{}
			authorIDs = append(authorIDs, d.AuthorID)
		}
	}

	authors := make(map[primitive.ObjectID]*domain.UserSummary, len(authorIDs))
	if len(authorIDs) > 0 {
		opts := options.Find().SetProjection(bson.M{"name": 1})
		cur, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": authorIDs}}, opts)
		if err != nil {
			return nil, fmt.Errorf("load comment authors: %w", err)
		}
		defer cur.Close(ctx)

		var userDocs []userDoc
		if err := cur.All(ctx, &userDocs); err != nil {
			return nil, fmt.Errorf("decode comment authors: %w", err)
		}
		for _, d := range userDocs {
			authors[d.ID] = &domain.UserSummary{ID: d.ID.Hex(), Name: d.Name}
		}
	}

	comments := make([]*domain.Comment, 0, len(docs))
	for _, d := range docs {
		c := &domain.Comment{
			ID:        d.ID.Hex(),
			Content:   d.Content,
			AuthorID:  d.AuthorID.Hex(),
			PostID:    d.PostID.Hex(),
			Author:    authors[d.AuthorID],
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		}
		if d.ParentID != nil {
			c.ParentID = d.ParentID.Hex()
		}
		comments = append(comments, c)
	}
	return comments, nil
}
