package reviewRepo

import "locallink/models"

// ReviewRepository defines data access for reviews, including the
// aggregation backing the rating rollup.
type ReviewRepository interface {
	Create(rev *models.Review) error
	Update(id string, rating int, comment string) error
	Delete(id string) error
	GetByID(id string) (*models.Review, error)
	ListByService(serviceID string) ([]models.Review, error)

	ExistsForUserService(userID, serviceID string) (bool, error)
	RatingSummary(serviceID string) (average float64, total int, err error)
	CountByUser(userID string) (int64, error)
	CountByServiceIDs(serviceIDs []string) (int64, error)
}
