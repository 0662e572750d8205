package favoriteRepo

import (
	"context"
	"fmt"
	"time"

	"locallink/database"
	"locallink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FavoriteRepository defines data access for the (user, service) wishlist
// join records.
type FavoriteRepository interface {
	// Insert adds a favorite. A duplicate-key violation on the unique
	// (user, service) index is reported via IsDuplicate.
	Insert(fav *models.Favorite) error
	DeleteByUserService(userID, serviceID string) (bool, error)
	Exists(userID, serviceID string) (bool, error)
	ListByUser(userID string) ([]models.Favorite, error)
}

// IsDuplicate reports whether err is a unique index violation.
func IsDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// MongoFavoriteRepo implements FavoriteRepository using MongoDB.
type MongoFavoriteRepo struct {
	coll *mongo.Collection
}

// NewMongoFavoriteRepo creates a new instance of FavoriteRepository using MongoDB.
func NewMongoFavoriteRepo() FavoriteRepository {
	coll := database.Collection("favorites")
	repo := &MongoFavoriteRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create favorite indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFavoriteRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// The toggle's concurrency guard: double inserts collapse into a
		// duplicate-key error instead of two records.
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "serviceId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert adds a favorite document.
func (r *MongoFavoriteRepo) Insert(fav *models.Favorite) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fav.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, fav); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return err
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// DeleteByUserService removes the favorite for the pair, reporting whether
// one existed.
func (r *MongoFavoriteRepo) DeleteByUserService(userID, serviceID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID, "serviceId": serviceID})
	if err != nil {
		return false, fmt.Errorf("failed to delete favorite: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// Exists reports whether the pair is favorited.
func (r *MongoFavoriteRepo) Exists(userID, serviceID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"userId": userID, "serviceId": serviceID})
	if err != nil {
		return false, fmt.Errorf("failed to check favorite existence: %w", err)
	}
	return count > 0, nil
}

// ListByUser retrieves a user's favorites, newest first.
func (r *MongoFavoriteRepo) ListByUser(userID string) ([]models.Favorite, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var favorites []models.Favorite
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return favorites, nil
}
