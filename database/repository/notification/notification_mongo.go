package notificationRepo

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

// NotificationRepository defines data access for the persisted notification
// inbox. Mutations are scoped to the recipient so users can only touch their
// own entries.
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByRecipient(recipientID string, limit int64) ([]models.Notification, error)
	CountUnread(recipientID string) (int64, error)
	MarkRead(id, recipientID string) (bool, error)
	MarkAllRead(recipientID string) error
	Delete(id, recipientID string) (bool, error)
}

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a new instance of NotificationRepository using MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	coll := database.Collection("notifications")
	repo := &MongoNotificationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create notification indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNotificationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "recipientId", Value: 1}, {Key: "isRead", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new notification document.
func (r *MongoNotificationRepo) Create(n *models.Notification) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByRecipient retrieves a recipient's notifications, newest first.
func (r *MongoNotificationRepo) ListByRecipient(recipientID string, limit int64) ([]models.Notification, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{"recipientId": recipientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for %s: %w", recipientID, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

// CountUnread counts a recipient's unread notifications.
func (r *MongoNotificationRepo) CountUnread(recipientID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"recipientId": recipientID, "isRead": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead flags one of the recipient's notifications as read, reporting
// whether it existed.
func (r *MongoNotificationRepo) MarkRead(id, recipientID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "recipientId": recipientID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return false, fmt.Errorf("failed to mark notification %s read: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// MarkAllRead flags every unread notification of the recipient as read.
func (r *MongoNotificationRepo) MarkAllRead(recipientID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"recipientId": recipientID, "isRead": false}
	if _, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"isRead": true}}); err != nil {
		return fmt.Errorf("failed to mark notifications read for %s: %w", recipientID, err)
	}
	return nil
}

// Delete removes one of the recipient's notifications, reporting whether it
// existed.
func (r *MongoNotificationRepo) Delete(id, recipientID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "recipientId": recipientID})
	if err != nil {
		return false, fmt.Errorf("failed to delete notification %s: %w", id, err)
	}
	return result.DeletedCount > 0, nil
}
