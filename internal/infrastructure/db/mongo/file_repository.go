package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devnews/devnews-api/internal/core/domain"
)

const collectionFiles = "files"

type FileRepository struct {
	files *mongo.Collection
}

func NewFileRepository(db *mongo.Database) *FileRepository {
	return &FileRepository{files: db.Collection(collectionFiles)}
}

type fileDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Filename     string             `bson:"filename"`
	OriginalName string             `bson:"original_name"`
	MimeType     string             `bson:"mime_type"`
	Size         int64              `bson:"size"`
	Path         string             `bson:"path"`
	UserID       primitive.ObjectID `bson:"user_id"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d fileDoc) toDomain() *domain.File {
	return &domain.File{
		ID:           d.ID.Hex(),
		Filename:     d.Filename,
		OriginalName: d.OriginalName,
		MimeType:     d.MimeType,
		Size:         d.Size,
		Path:         d.Path,
		UserID:       d.UserID.Hex(),
		CreatedAt:    d.CreatedAt,
	}
}

func (r *FileRepository) Create(ctx context.Context, file *domain.File) (*domain.File, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(file.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	doc := fileDoc{
		Filename:     file.Filename,
		OriginalName: file.OriginalName,
		MimeType:     file.MimeType,
		Size:         file.Size,
		Path:         file.Path,
		UserID:       userID,
		CreatedAt:    file.CreatedAt,
	}

	res, err := r.files.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert file: %w", err)
	}

	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *FileRepository) FindByID(ctx context.Context, id string) (*domain.File, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFileNotFound
	}

	var doc fileDoc
	if err := r.files.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *FileRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrFileNotFound
	}

	res, err := r.files.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}
