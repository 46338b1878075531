package mongodb

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bukness/bukness-api/internal/domain"
	"github.com/bukness/bukness-api/internal/store"
)

// MongoBookStore implements the store.BookStore interface using a MongoDB
// collection as the storage backend.
type MongoBookStore struct {
	col    *mongo.Collection
	logger *slog.Logger
}

// NewMongoBookStore creates a new MongoDB implementation of the BookStore
// interface. If logger is nil, a default logger will be used.
func NewMongoBookStore(db *mongo.Database, log *slog.Logger) *MongoBookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &MongoBookStore{
		col:    db.Collection(booksCollection),
		logger: log.With(slog.String("component", "book_store")),
	}
}

// Ensure MongoBookStore implements store.BookStore interface
var _ store.BookStore = (*MongoBookStore)(nil)

// List implements store.BookStore.List.
func (s *MongoBookStore) List(ctx context.Context) ([]domain.Book, error) {
	return s.find(ctx, bson.M{})
}

// FindByTitle implements store.BookStore.FindByTitle. The match is exact,
// mirroring the catalog's lookup contract; no match is an empty slice.
func (s *MongoBookStore) FindByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	return s.find(ctx, bson.M{"Title": title})
}

func (s *MongoBookStore) find(ctx context.Context, filter bson.M) ([]domain.Book, error) {
	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	books := []domain.Book{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}
