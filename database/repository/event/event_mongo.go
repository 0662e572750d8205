package eventRepo

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

// EventRepository defines data access for promotional events.
type EventRepository interface {
	Create(ev *models.Event) error
	Update(id string, fields bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.Event, error)
	GetAll() ([]models.Event, error)

	// GetActive returns events with isActive set whose date window contains
	// the given instant. "Active" is computed here, never stored.
	GetActive(now time.Time) ([]models.Event, error)
}

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo creates a new instance of EventRepository using MongoDB.
func NewMongoEventRepo() EventRepository {
	coll := database.Collection("events")
	repo := &MongoEventRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create event indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEventRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "startDate", Value: 1}, {Key: "endDate", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new event document.
func (r *MongoEventRepo) Create(ev *models.Event) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	ev.CreatedAt = now
	ev.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, ev)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// Update applies a partial $set update to an event document.
func (r *MongoEventRepo) Update(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update event with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("event with id %s not found", id)
	}
	return nil
}

// Delete removes an event document by its ID.
func (r *MongoEventRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete event with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("event with id %s not found", id)
	}
	return nil
}

// GetByID retrieves an event by its unique ID. Returns nil without error if
// no such event exists.
func (r *MongoEventRepo) GetByID(id string) (*models.Event, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var ev models.Event
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ev); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch event with id %s: %w", id, err)
	}
	return &ev, nil
}

// GetAll retrieves all events, newest first.
func (r *MongoEventRepo) GetAll() ([]models.Event, error) {
	return r.find(bson.M{})
}

// GetActive retrieves the events currently running.
func (r *MongoEventRepo) GetActive(now time.Time) ([]models.Event, error) {
	return r.find(bson.M{
		"isActive":  true,
		"startDate": bson.M{"$lte": now},
		"endDate":   bson.M{"$gte": now},
	})
}

func (r *MongoEventRepo) find(filter bson.M) ([]models.Event, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}
