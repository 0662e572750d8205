package serviceRepo

import (
	"locallink/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ServiceRepository defines data access for service listings, including the
// search engine queries and the location index projections.
type ServiceRepository interface {
	Create(svc *models.Service) error
	Update(id string, fields bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.Service, error)
	GetByProvider(providerID string) ([]models.Service, error)

	Search(criteria models.SearchCriteria) ([]models.Service, error)
	CountMatching(criteria models.SearchCriteria) (int64, error)

	UpdateRating(id string, averageRating float64, totalReviews int) error
	IDsByProvider(providerID string) ([]string, error)
	CountByCategory(categoryID string) (int64, error)
	CountAll(activeOnly bool) (int64, error)

	DistinctCountries() ([]string, error)
	DistinctCities(country string) ([]string, error)
	DistinctAreas(country, city string) ([]string, error)
}
