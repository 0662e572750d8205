package userRepo

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

// UserRepository defines data access for user accounts and their provider
// profiles. Account creation and credentials live in the auth service; this
// side reads identity and maintains the verification flag and the profile's
// denormalized service list.
type UserRepository interface {
	GetByID(id string) (*models.User, error)
	GetAll() ([]models.User, error)
	CountByRole(role string) (int64, error)
	SetVerified(userID string, verified bool) error

	GetProfileByUserID(userID string) (*models.Profile, error)
	AddServiceToProfile(userID, serviceID string) error
	RemoveServiceFromProfile(userID, serviceID string) error
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	users    *mongo.Collection
	profiles *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	repo := &MongoUserRepo{
		users:    database.Collection("users"),
		profiles: database.Collection("profiles"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	userIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}
	if _, err := r.users.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	profileIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.profiles.Indexes().CreateMany(ctx, profileIndexes); err != nil {
		return fmt.Errorf("failed to create profile indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a user by its unique ID. Returns nil without error if
// no such user exists.
func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.users.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

// GetAll retrieves all users.
func (r *MongoUserRepo) GetAll() ([]models.User, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// CountByRole counts users carrying a role.
func (r *MongoUserRepo) CountByRole(role string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.users.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, fmt.Errorf("failed to count users with role %s: %w", role, err)
	}
	return count, nil
}

// SetVerified writes the verification flag on the user and mirrors it onto
// the profile. A missing profile is fine; seekers have none.
func (r *MongoUserRepo) SetVerified(userID string, verified bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isVerified": verified, "updatedAt": time.Now()}}
	result, err := r.users.UpdateOne(ctx, bson.M{"id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to update verification for user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", userID)
	}

	if _, err := r.profiles.UpdateOne(ctx, bson.M{"userId": userID}, update); err != nil {
		return fmt.Errorf("failed to mirror verification onto profile for user %s: %w", userID, err)
	}
	return nil
}

// GetProfileByUserID retrieves a provider profile by its owner. Returns nil
// without error if no profile exists.
func (r *MongoUserRepo) GetProfileByUserID(userID string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.Profile
	if err := r.profiles.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// AddServiceToProfile appends a service id to the profile's denormalized
// list, skipping duplicates.
func (r *MongoUserRepo) AddServiceToProfile(userID, serviceID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"services": serviceID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.profiles.UpdateOne(ctx, bson.M{"userId": userID}, update); err != nil {
		return fmt.Errorf("failed to attach service %s to profile of user %s: %w", serviceID, userID, err)
	}
	return nil
}

// RemoveServiceFromProfile pulls a service id from the profile's list.
func (r *MongoUserRepo) RemoveServiceFromProfile(userID, serviceID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"services": serviceID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.profiles.UpdateOne(ctx, bson.M{"userId": userID}, update); err != nil {
		return fmt.Errorf("failed to detach service %s from profile of user %s: %w", serviceID, userID, err)
	}
	return nil
}
