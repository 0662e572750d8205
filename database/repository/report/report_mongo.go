package reportRepo

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

// ReportRepository defines data access for user reports.
type ReportRepository interface {
	Create(rep *models.Report) error
	GetByID(id string) (*models.Report, error)
	ListByReporter(reporterID string) ([]models.Report, error)
	ListByStatus(status string) ([]models.Report, error)
	ExistsForReporterService(reporterID, serviceID string) (bool, error)
	Resolve(id, adminResponse string) (bool, error)
	CountByStatus(status string) (int64, error)
}

// MongoReportRepo implements ReportRepository using MongoDB.
type MongoReportRepo struct {
	coll *mongo.Collection
}

// NewMongoReportRepo creates a new instance of ReportRepository using MongoDB.
func NewMongoReportRepo() ReportRepository {
	coll := database.Collection("reports")
	repo := &MongoReportRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create report indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReportRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reporterId", Value: 1}, {Key: "reportedServiceId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new report document.
func (r *MongoReportRepo) Create(rep *models.Report) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	rep.CreatedAt = now
	rep.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, rep); err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID retrieves a report by its unique ID. Returns nil without error if
// no such report exists.
func (r *MongoReportRepo) GetByID(id string) (*models.Report, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rep models.Report
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rep); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch report with id %s: %w", id, err)
	}
	return &rep, nil
}

// ListByReporter retrieves all reports filed by a user, newest first.
func (r *MongoReportRepo) ListByReporter(reporterID string) ([]models.Report, error) {
	return r.find(bson.M{"reporterId": reporterID})
}

// ListByStatus retrieves all reports in a status, or all reports when the
// status is empty.
func (r *MongoReportRepo) ListByStatus(status string) ([]models.Report, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.find(filter)
}

func (r *MongoReportRepo) find(filter bson.M) ([]models.Report, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}
	return reports, nil
}

// ExistsForReporterService reports whether the reporter already filed a
// report against the service.
func (r *MongoReportRepo) ExistsForReporterService(reporterID, serviceID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{
		"reporterId":        reporterID,
		"reportedServiceId": serviceID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check report existence: %w", err)
	}
	return count > 0, nil
}

// Resolve transitions a pending report to resolved with the admin's
// response, reporting whether the report was still pending.
func (r *MongoReportRepo) Resolve(id, adminResponse string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.ReportPendingReview}
	update := bson.M{"$set": bson.M{
		"status":        models.ReportResolved,
		"adminResponse": adminResponse,
		"updatedAt":     time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to resolve report %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// CountByStatus counts reports in a given status.
func (r *MongoReportRepo) CountByStatus(status string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}
