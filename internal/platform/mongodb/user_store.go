package mongodb

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bukness/bukness-api/internal/domain"
	"github.com/bukness/bukness-api/internal/platform/logger"
	"github.com/bukness/bukness-api/internal/store"
)

// MongoUserStore implements the store.UserStore interface using a MongoDB
// collection as the storage backend.
type MongoUserStore struct {
	col    *mongo.Collection
	logger *slog.Logger
}

// NewMongoUserStore creates a new MongoDB implementation of the UserStore
// interface. If logger is nil, a default logger will be used.
func NewMongoUserStore(db *mongo.Database, log *slog.Logger) *MongoUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &MongoUserStore{
		col:    db.Collection(usersCollection),
		logger: log.With(slog.String("component", "user_store")),
	}
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// Create implements store.UserStore.Create.
// The unique indexes on Name and Email make the database reject duplicate
// identities, which is reported as store.ErrNameOrEmailExists.
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	if _, err := s.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Warn("duplicate identity during user creation",
				slog.String("name", user.Name))
			return store.ErrNameOrEmailExists
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("name", user.Name))
		return err
	}

	log.Info("user created", slog.String("user_id", user.ID.Hex()))
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *MongoUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByName implements store.UserStore.GetByName.
func (s *MongoUserStore) GetByName(ctx context.Context, name string) (*domain.User, error) {
	var user domain.User
	err := s.col.FindOne(ctx, bson.M{"Name": name}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List implements store.UserStore.List.
func (s *MongoUserStore) List(ctx context.Context) ([]domain.User, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	users := []domain.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Update implements store.UserStore.Update. Only the identity fields are
// overwritten; favourites are managed by AddFavourite/RemoveFavourite.
func (s *MongoUserStore) Update(ctx context.Context, name string, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	update := bson.M{"$set": bson.M{
		"Name":     user.Name,
		"Password": user.HashedPassword,
		"Email":    user.Email,
		"Birthday": user.Birthday,
	}}

	updated, err := s.findOneAndUpdate(ctx, bson.M{"Name": name}, update)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Error("failed to update user",
				slog.String("error", err.Error()),
				slog.String("name", name))
		}
		return nil, err
	}

	log.Info("user updated", slog.String("user_id", updated.ID.Hex()))
	return updated, nil
}

// Delete implements store.UserStore.Delete.
func (s *MongoUserStore) Delete(ctx context.Context, name string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	res, err := s.col.DeleteOne(ctx, bson.M{"Name": name})
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrUserNotFound
	}

	log.Info("user deleted", slog.String("name", name))
	return nil
}

// AddFavourite implements store.UserStore.AddFavourite using $addToSet so a
// book already in the list is not duplicated.
func (s *MongoUserStore) AddFavourite(ctx context.Context, name string, bookID primitive.ObjectID) (*domain.User, error) {
	return s.findOneAndUpdate(ctx,
		bson.M{"Name": name},
		bson.M{"$addToSet": bson.M{"FavouriteBooks": bookID}},
	)
}

// RemoveFavourite implements store.UserStore.RemoveFavourite using $pull;
// pulling an absent ID leaves the list unchanged.
func (s *MongoUserStore) RemoveFavourite(ctx context.Context, name string, bookID primitive.ObjectID) (*domain.User, error) {
	return s.findOneAndUpdate(ctx,
		bson.M{"Name": name},
		bson.M{"$pull": bson.M{"FavouriteBooks": bookID}},
	)
}

// findOneAndUpdate applies the update and returns the post-update document,
// mapping a missing match to store.ErrUserNotFound.
func (s *MongoUserStore) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*domain.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user domain.User
	err := s.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
