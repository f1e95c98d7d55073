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
	"github.com/devnews/devnews-api/internal/core/ports"
)

const (
	collectionPosts = "posts"
	collectionTags  = "tags"
)

// PostRepository persists posts and resolves their author, category and tag
// references on reads, mirroring what a relational join would return.
type PostRepository struct {
	posts      *mongo.Collection
	users      *mongo.Collection
	tags       *mongo.Collection
	categories *mongo.Collection
	comments   *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		posts:      db.Collection(collectionPosts),
		users:      db.Collection(collectionUsers),
		tags:       db.Collection(collectionTags),
		categories: db.Collection(collectionCategories),
		comments:   db.Collection(collectionComments),
	}
}

type postDoc struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Title      string               `bson:"title"`
	Content    string               `bson:"content"`
	Published  bool                 `bson:"published"`
	AuthorID   primitive.ObjectID   `bson:"author_id"`
	CategoryID primitive.ObjectID   `bson:"category_id,omitempty"`
	TagIDs     []primitive.ObjectID `bson:"tag_ids,omitempty"`
	CreatedAt  time.Time            `bson:"created_at"`
	UpdatedAt  time.Time            `bson:"updated_at"`
}

type tagDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toPostDoc(post)
	if err != nil {
		return nil, err
	}

	res, err := r.posts.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, id.Hex())
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var doc postDoc
	if err := r.posts.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	posts, err := r.resolve(ctx, []postDoc{doc})
	if err != nil {
		return nil, err
	}
	return posts[0], nil
}

func (r *PostRepository) FindPublished(ctx context.Context) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.posts.Find(ctx, bson.M{"published": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	defer cur.Close(ctx)

	var docs []postDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return r.resolve(ctx, docs)
}

// Update overwrites the mutable fields. The tag_ids array is always replaced
// wholesale with the supplied set.
func (r *PostRepository) Update(ctx context.Context, id string, update ports.PostUpdate) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	tagIDs, err := toObjectIDs(update.TagIDs)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"title":      update.Title,
		"content":    update.Content,
		"tag_ids":    tagIDs,
		"updated_at": time.Now().UTC(),
	}
	if update.Published != nil {
		set["published"] = *update.Published
	}
	if update.CategoryID != "" {
		catID, err := primitive.ObjectIDFromHex(update.CategoryID)
		if err != nil {
			return nil, domain.ErrCategoryNotFound
		}
		set["category_id"] = catID
	}

	res, err := r.posts.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPostNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	res, err := r.posts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}

	// Orphaned comments are unreachable through the API; drop them with the post.
	if _, err := r.comments.DeleteMany(ctx, bson.M{"post_id": oid}); err != nil {
		return fmt.Errorf("delete post comments: %w", err)
	}
	return nil
}

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.posts.CountDocuments(ctx, bson.M{})
}

func (r *PostRepository) FindRecent(ctx context.Context, n int) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(n))

	cur, err := r.posts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}
	defer cur.Close(ctx)

	var docs []postDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return r.resolve(ctx, docs)
}

// resolve fetches the authors, categories and tags referenced by a batch of
// post documents with one $in query per collection, then assembles the domain
// views.
func (r *PostRepository) resolve(ctx context.Context, docs []postDoc) ([]*domain.Post, error) {
	authorIDs := make([]primitive.ObjectID, 0, len(docs))
	categoryIDs := make([]primitive.ObjectID, 0, len(docs))
	tagIDs := make([]primitive.ObjectID, 0)
	seenAuthors := map[primitive.ObjectID]struct{}{}
	seenCategories := map[primitive.ObjectID]struct{}{}
	seenTags := map[primitive.ObjectID]struct{}{}

	for _, d := range docs {
		if _, ok := seenAuthors[d.AuthorID]; !ok {
			seenAuthors[d.AuthorID] = struct{}{}
			authorIDs = append(authorIDs, d.AuthorID)
		}
		if !d.CategoryID.IsZero() {
			if _, ok := seenCategories[d.CategoryID]; !ok {
				seenCategories[d.CategoryID] = struct{}{}
				categoryIDs = append(categoryIDs, d.CategoryID)
			}
		}
		for _, t := range d.TagIDs {
			if _, ok := seenTags[t]; !ok {
				seenTags[t] = struct{}{}
				tagIDs = append(tagIDs, t)
			}
		}
	}

	authors, err := r.loadAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	categories, err := r.loadCategories(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	tags, err := r.loadTags(ctx, tagIDs)
	if err != nil {
		return nil, err
	}

	posts := make([]*domain.Post, 0, len(docs))
	for _, d := range docs {
		post := &domain.Post{
			ID:        d.ID.Hex(),
			Title:     d.Title,
			Content:   d.Content,
			Published: d.Published,
			AuthorID:  d.AuthorID.Hex(),
			Author:    authors[d.AuthorID],
			Tags:      make([]domain.Tag, 0, len(d.TagIDs)),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		}
		if !d.CategoryID.IsZero() {
			post.CategoryID = d.CategoryID.Hex()
			post.Category = categories[d.CategoryID]
		}
		for _, t := range d.TagIDs {
			post.TagIDs = append(post.TagIDs, t.Hex())
			if tag, ok := tags[t]; ok {
				post.Tags = append(post.Tags, tag)
			}
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *PostRepository) loadAuthors(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*domain.UserSummary, error) {
	out := make(map[primitive.ObjectID]*domain.UserSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	opts := options.Find().SetProjection(bson.M{"name": 1, "email": 1})
	cur, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}
	for _, d := range docs {
		out[d.ID] = &domain.UserSummary{ID: d.ID.Hex(), Name: d.Name, Email: d.Email}
	}
	return out, nil
}

func (r *PostRepository) loadCategories(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*domain.Category, error) {
	out := make(map[primitive.ObjectID]*domain.Category, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.categories.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	defer cur.Close(ctx)

	var docs []categoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	for _, d := range docs {
		out[d.ID] = d.toDomain()
	}
	return out, nil
}

func (r *PostRepository) loadTags(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.Tag, error) {
	out := make(map[primitive.ObjectID]domain.Tag, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.tags.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	defer cur.Close(ctx)

	var docs []tagDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	for _, d := range docs {
		out[d.ID] = domain.Tag{ID: d.ID.Hex(), Name: d.Name}
	}
	return out, nil
}

func toPostDoc(post *domain.Post) (postDoc, error) {
	authorID, err := primitive.ObjectIDFromHex(post.AuthorID)
	if err != nil {
		return postDoc{}, fmt.Errorf("invalid author id: %w", err)
	}

	doc := postDoc{
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		AuthorID:  authorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}

	if post.CategoryID != "" {
		catID, err := primitive.ObjectIDFromHex(post.CategoryID)
		if err != nil {
			return postDoc{}, domain.ErrCategoryNotFound
		}
		doc.CategoryID = catID
	}

	doc.TagIDs, err = toObjectIDs(post.TagIDs)
	if err != nil {
		return postDoc{}, err
	}
	return doc, nil
}

func toObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("invalid object id %q: %w", id, err)
		}
		out = append(out, oid)
	}
	return out, nil
}
