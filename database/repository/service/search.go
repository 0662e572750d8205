package serviceRepo

import (
	"fmt"
	"strconv"
	"time"

	"locallink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// earthRadiusKm converts a radius in kilometers into the radians that
// $centerSphere expects.
const earthRadiusKm = 6378.1

// BuildSearchFilter composes the Mongo filter document for a search. All
// clauses are AND-combined and inactive services are always excluded.
//
// The geo constraint uses $geoWithin/$centerSphere rather than $nearSphere:
// Mongo rejects $near alongside $text in one query and inside count queries,
// while $geoWithin is valid in both, and distance is only a filter here (sort
// order is governed by relevance/rating/newest, never proximity).
func BuildSearchFilter(c models.SearchCriteria) bson.M {
	filter := bson.M{"isActive": true}

	if c.HasGeo() {
		if radiusKm, err := strconv.ParseFloat(c.Radius, 64); err == nil && radiusKm > 0 {
			filter["location.coordinates"] = bson.M{
				"$geoWithin": bson.M{
					"$centerSphere": bson.A{
						bson.A{*c.Lng, *c.Lat},
						radiusKm / earthRadiusKm,
					},
				},
			}
		}
	}

	if c.Keyword != "" {
		filter["$text"] = bson.M{"$search": c.Keyword, "$caseSensitive": false}
	}

	if c.Country != "" {
		filter["location.country"] = bson.M{"$regex": c.Country, "$options": "i"}
	}
	if c.City != "" {
		filter["location.city"] = bson.M{"$regex": c.City, "$options": "i"}
	}
	if c.Area != "" {
		filter["location.area"] = bson.M{"$regex": c.Area, "$options": "i"}
	}

	if c.Category != "" {
		filter["categoryId"] = c.Category
	}
	if c.MinRating > 0 {
		filter["averageRating"] = bson.M{"$gte": c.MinRating}
	}

	return filter
}

// BuildSearchSort resolves the sort document for the criteria. Relevance
// ordering only applies when a keyword is present; everything else falls
// back to the rating order.
func BuildSearchSort(c models.SearchCriteria) bson.D {
	switch {
	case c.Keyword != "" && c.Sort == models.SortRelevance:
		return bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}
	case c.Sort == models.SortNewest:
		return bson.D{{Key: "createdAt", Value: -1}}
	default:
		return bson.D{
			{Key: "averageRating", Value: -1},
			{Key: "totalReviews", Value: -1},
		}
	}
}

// Search runs the filter with pagination and sort applied, returning one page
// of raw services. Discount annotation happens in the catalog service.
func (r *MongoServiceRepo) Search(c models.SearchCriteria) ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	skip := int64((c.Page - 1) * c.Limit)
	opts := options.Find().
		SetSort(BuildSearchSort(c)).
		SetSkip(skip).
		SetLimit(int64(c.Limit))

	if c.Keyword != "" && c.Sort == models.SortRelevance {
		opts.SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}})
	}

	cursor, err := r.coll.Find(ctx, BuildSearchFilter(c), opts)
	if err != nil {
		return nil, fmt.Errorf("service search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return services, nil
}

// CountMatching counts the full result set for a criteria, independent of
// pagination.
func (r *MongoServiceRepo) CountMatching(c models.SearchCriteria) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, BuildSearchFilter(c))
	if err != nil {
		return 0, fmt.Errorf("service search count failed: %w", err)
	}
	return count, nil
}
