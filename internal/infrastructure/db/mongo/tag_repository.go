package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devnews/devnews-api/internal/core/domain"
)

type TagRepository struct {
	tags *mongo.Collection
}

func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{tags: db.Collection(collectionTags)}
}

// GetOrCreate upserts a tag by its unique name and returns the stored record.
// Existing tags are reused, never duplicated.
func (r *TagRepository) GetOrCreate(ctx context.Context, name string) (*domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc tagDoc
	err := r.tags.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$setOnInsert": bson.M{"name": name}},
		opts,
	).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("get-or-create tag %q: %w", name, err)
	}

	return &domain.Tag{ID: doc.ID.Hex(), Name: doc.Name}, nil
}
