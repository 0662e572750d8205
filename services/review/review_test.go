package review

import (
	"context"
	"errors"
	"testing"

	"locallink/models"
	"locallink/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeReviewRepo struct {
	reviews map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func (r *fakeReviewRepo) Create(rev *models.Review) error {
	copy := *rev
	r.reviews[rev.ID] = &copy
	return nil
}

func (r *fakeReviewRepo) Update(id string, rating int, comment string) error {
	if rev, ok := r.reviews[id]; ok {
		rev.Rating = rating
		rev.Comment = comment
	}
	return nil
}

func (r *fakeReviewRepo) Delete(id string) error {
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) GetByID(id string) (*models.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	copy := *rev
	return &copy, nil
}

func (r *fakeReviewRepo) ListByService(serviceID string) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.ServiceID == serviceID {
			out = append(out, *rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ExistsForUserService(userID, serviceID string) (bool, error) {
	for _, rev := range r.reviews {
		if rev.UserID == userID && rev.ServiceID == serviceID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReviewRepo) RatingSummary(serviceID string) (float64, int, error) {
	var sum, total int
	for _, rev := range r.reviews {
		if rev.ServiceID == serviceID && rev.IsApproved {
			sum += rev.Rating
			total++
		}
	}
	if total == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(total), total, nil
}

func (r *fakeReviewRepo) CountByUser(userID string) (int64, error) { return 0, nil }
func (r *fakeReviewRepo) CountByServiceIDs([]string) (int64, error) {
	return 0, nil
}

type fakeBookingRepo struct {
	completed map[[2]string]bool
}

func (r *fakeBookingRepo) HasCompleted(userID, serviceID string) (bool, error) {
	return r.completed[[2]string{userID, serviceID}], nil
}

func (r *fakeBookingRepo) Create(*models.Booking) error                       { return nil }
func (r *fakeBookingRepo) GetByID(string) (*models.Booking, error)            { return nil, nil }
func (r *fakeBookingRepo) ListByUser(string) ([]models.Booking, error)        { return nil, nil }
func (r *fakeBookingRepo) ListByProvider(string) ([]models.Booking, error)    { return nil, nil }
func (r *fakeBookingRepo) UpdateStatusIf(string, string, string) (bool, error) { return false, nil }
func (r *fakeBookingRepo) CountByUser(string) (int64, error)                  { return 0, nil }
func (r *fakeBookingRepo) CountCompletedByProvider(string) (int64, error)     { return 0, nil }
func (r *fakeBookingRepo) CountByStatus(string) (int64, error)                { return 0, nil }

type ratingWrite struct {
	average float64
	total   int
}

type fakeServiceRepo struct {
	services map[string]*models.Service
	ratings  map[string]ratingWrite
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	copy := *svc
	return &copy, nil
}

func (r *fakeServiceRepo) UpdateRating(id string, averageRating float64, totalReviews int) error {
	r.ratings[id] = ratingWrite{average: averageRating, total: totalReviews}
	return nil
}

func (r *fakeServiceRepo) Create(*models.Service) error                       { return nil }
func (r *fakeServiceRepo) Update(string, bson.M) error                        { return nil }
func (r *fakeServiceRepo) Delete(string) error                                { return nil }
func (r *fakeServiceRepo) GetByProvider(string) ([]models.Service, error)     { return nil, nil }
func (r *fakeServiceRepo) Search(models.SearchCriteria) ([]models.Service, error) {
	return nil, nil
}
func (r *fakeServiceRepo) CountMatching(models.SearchCriteria) (int64, error) { return 0, nil }
func (r *fakeServiceRepo) IDsByProvider(string) ([]string, error)             { return nil, nil }
func (r *fakeServiceRepo) CountByCategory(string) (int64, error)              { return 0, nil }
func (r *fakeServiceRepo) CountAll(bool) (int64, error)                       { return 0, nil }
func (r *fakeServiceRepo) DistinctCountries() ([]string, error)               { return nil, nil }
func (r *fakeServiceRepo) DistinctCities(string) ([]string, error)            { return nil, nil }
func (r *fakeServiceRepo) DistinctAreas(string, string) ([]string, error)     { return nil, nil }

type fakeVerifier struct {
	recomputed []string
}

func (v *fakeVerifier) Recompute(ctx context.Context, userID string) error {
	v.recomputed = append(v.recomputed, userID)
	return nil
}

func newTestService() (*DefaultReviewService, *fakeReviewRepo, *fakeBookingRepo, *fakeServiceRepo, *fakeVerifier) {
	reviews := newFakeReviewRepo()
	bookings := &fakeBookingRepo{completed: make(map[[2]string]bool)}
	services := &fakeServiceRepo{
		services: map[string]*models.Service{
			"svc-1": {ID: "svc-1", ProviderID: "prov-1", IsActive: true},
		},
		ratings: make(map[string]ratingWrite),
	}
	verifier := &fakeVerifier{}
	svc := &DefaultReviewService{
		Reviews:  reviews,
		Bookings: bookings,
		Services: services,
		Verifier: verifier,
	}
	return svc, reviews, bookings, services, verifier
}

var author = models.Principal{ID: "user-1", Role: models.RoleSeeker}

func TestCreateReviewRequiresCompletedBooking(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), author, "svc-1", ReviewInput{Rating: 5})
	var derr *utils.DomainError
	if !errors.As(err, &derr) || derr.Code != utils.CodeForbidden {
		t.Fatalf("expected forbidden without a completed booking, got %v", err)
	}
}

func TestCreateReviewThenDuplicateConflicts(t *testing.T) {
	svc, _, bookings, services, verifier := newTestService()
	ctx := context.Background()
	bookings.completed[[2]string{author.ID, "svc-1"}] = true

	rev, err := svc.Create(ctx, author, "svc-1", ReviewInput{Rating: 4, Comment: "solid work"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !rev.IsApproved {
		t.Error("new review not approved")
	}

	if got := services.ratings["svc-1"]; got.average != 4 || got.total != 1 {
		t.Errorf("rating rollup = %+v, want avg 4 total 1", got)
	}
	if len(verifier.recomputed) != 2 {
		t.Errorf("recomputed %v, want author and provider", verifier.recomputed)
	}

	_, err = svc.Create(ctx, author, "svc-1", ReviewInput{Rating: 5})
	var derr *utils.DomainError
	if !errors.As(err, &derr) || derr.Code != utils.CodeConflict {
		t.Fatalf("expected conflict on second review, got %v", err)
	}
}

func TestCreateReviewValidatesRating(t *testing.T) {
	svc, _, bookings, _, _ := newTestService()
	bookings.completed[[2]string{author.ID, "svc-1"}] = true

	for _, rating := range []int{0, -1, 6} {
		if _, err := svc.Create(context.Background(), author, "svc-1", ReviewInput{Rating: rating}); err == nil {
			t.Errorf("rating %d accepted", rating)
		}
	}
}

func TestRatingRollupAveragesApprovedReviews(t *testing.T) {
	svc, reviews, bookings, services, _ := newTestService()
	ctx := context.Background()

	authors := []models.Principal{
		{ID: "user-1", Role: models.RoleSeeker},
		{ID: "user-2", Role: models.RoleSeeker},
		{ID: "user-3", Role: models.RoleSeeker},
	}
	for i, p := range authors {
		bookings.completed[[2]string{p.ID, "svc-1"}] = true
		if _, err := svc.Create(ctx, p, "svc-1", ReviewInput{Rating: []int{5, 4, 4}[i]}); err != nil {
			t.Fatalf("Create for %s: %v", p.ID, err)
		}
	}

	// (5+4+4)/3 = 4.333... rounds to 4.3.
	if got := services.ratings["svc-1"]; got.average != 4.3 || got.total != 3 {
		t.Errorf("rating rollup = %+v, want avg 4.3 total 3", got)
	}

	// Deleting every review resets the denormalized rating to zero.
	for id := range reviews.reviews {
		rev, _ := reviews.GetByID(id)
		owner := models.Principal{ID: rev.UserID, Role: models.RoleSeeker}
		if err := svc.Delete(ctx, owner, id); err != nil {
			t.Fatalf("Delete: %v", err)
		}
	}
	if got := services.ratings["svc-1"]; got.average != 0 || got.total != 0 {
		t.Errorf("rating after deleting all reviews = %+v, want zeros", got)
	}
}

func TestUpdateAndDeleteRequireOwnership(t *testing.T) {
	svc, _, bookings, _, _ := newTestService()
	ctx := context.Background()
	bookings.completed[[2]string{author.ID, "svc-1"}] = true

	rev, err := svc.Create(ctx, author, "svc-1", ReviewInput{Rating: 3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	stranger := models.Principal{ID: "user-9", Role: models.RoleSeeker}
	if _, err := svc.Update(ctx, stranger, rev.ID, ReviewInput{Rating: 1}); err == nil {
		t.Error("stranger updated a review")
	}
	if err := svc.Delete(ctx, stranger, rev.ID); err == nil {
		t.Error("stranger deleted a review")
	}

	admin := models.Principal{ID: "admin-1", Role: models.RoleAdmin}
	if _, err := svc.Update(ctx, admin, rev.ID, ReviewInput{Rating: 2}); err != nil {
		t.Errorf("admin update rejected: %v", err)
	}
	if err := svc.Delete(ctx, admin, rev.ID); err != nil {
		t.Errorf("admin delete rejected: %v", err)
	}
}

func TestCanReview(t *testing.T) {
	svc, _, bookings, _, _ := newTestService()
	ctx := context.Background()

	ok, err := svc.CanReview(ctx, author, "svc-1")
	if err != nil || ok {
		t.Errorf("CanReview without completed booking = %v, %v; want false", ok, err)
	}

	bookings.completed[[2]string{author.ID, "svc-1"}] = true
	ok, err = svc.CanReview(ctx, author, "svc-1")
	if err != nil || !ok {
		t.Errorf("CanReview with completed booking = %v, %v; want true", ok, err)
	}

	if _, err := svc.Create(ctx, author, "svc-1", ReviewInput{Rating: 5}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	ok, err = svc.CanReview(ctx, author, "svc-1")
	if err != nil || ok {
		t.Errorf("CanReview after reviewing = %v, %v; want false", ok, err)
	}
}

func TestRound1(t *testing.T) {
	cases := map[float64]float64{
		4.3333333: 4.3,
		4.36:      4.4,
		4.96:      5.0,
		0:         0,
	}
	for in, want := range cases {
		if got := Round1(in); got != want {
			t.Errorf("Round1(%v) = %v, want %v", in, got, want)
		}
	}
}
