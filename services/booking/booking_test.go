package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"locallink/models"
	"locallink/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking

	// afterGet runs after GetByID returns, simulating a concurrent writer
	// between the read and the conditional status update.
	afterGet func()
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	copy := *b
	r.bookings[b.ID] = &copy
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	copy := *b
	if r.afterGet != nil {
		r.afterGet()
	}
	return &copy, nil
}

func (r *fakeBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByProvider(providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatusIf(id, expected, next string) (bool, error) {
	b, ok := r.bookings[id]
	if !ok || b.Status != expected {
		return false, nil
	}
	b.Status = next
	return true, nil
}

func (r *fakeBookingRepo) CountByUser(userID string) (int64, error) { return 0, nil }
func (r *fakeBookingRepo) CountCompletedByProvider(providerID string) (int64, error) {
	return 0, nil
}
func (r *fakeBookingRepo) HasCompleted(userID, serviceID string) (bool, error) { return false, nil }
func (r *fakeBookingRepo) CountByStatus(status string) (int64, error)          { return 0, nil }

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	copy := *svc
	return &copy, nil
}

func (r *fakeServiceRepo) Create(svc *models.Service) error              { return nil }
func (r *fakeServiceRepo) Update(id string, fields bson.M) error         { return nil }
func (r *fakeServiceRepo) Delete(id string) error                        { return nil }
func (r *fakeServiceRepo) GetByProvider(string) ([]models.Service, error) { return nil, nil }
func (r *fakeServiceRepo) Search(models.SearchCriteria) ([]models.Service, error) {
	return nil, nil
}
func (r *fakeServiceRepo) CountMatching(models.SearchCriteria) (int64, error) { return 0, nil }
func (r *fakeServiceRepo) UpdateRating(string, float64, int) error            { return nil }
func (r *fakeServiceRepo) IDsByProvider(string) ([]string, error)             { return nil, nil }
func (r *fakeServiceRepo) CountByCategory(string) (int64, error)              { return 0, nil }
func (r *fakeServiceRepo) CountAll(bool) (int64, error)                       { return 0, nil }
func (r *fakeServiceRepo) DistinctCountries() ([]string, error)               { return nil, nil }
func (r *fakeServiceRepo) DistinctCities(string) ([]string, error)            { return nil, nil }
func (r *fakeServiceRepo) DistinctAreas(string, string) ([]string, error)     { return nil, nil }

type fakeNotifier struct {
	emitted []models.Notification
	fail    bool
}

func (n *fakeNotifier) Emit(ctx context.Context, notif models.Notification) error {
	if n.fail {
		return errors.New("notifier down")
	}
	n.emitted = append(n.emitted, notif)
	return nil
}

func (n *fakeNotifier) List(context.Context, models.Principal, int64) ([]models.Notification, error) {
	return nil, nil
}
func (n *fakeNotifier) UnreadCount(context.Context, models.Principal) (int64, error) { return 0, nil }
func (n *fakeNotifier) MarkRead(context.Context, models.Principal, string) error     { return nil }
func (n *fakeNotifier) MarkAllRead(context.Context, models.Principal) error          { return nil }
func (n *fakeNotifier) Delete(context.Context, models.Principal, string) error       { return nil }

type fakeVerifier struct {
	recomputed []string
}

func (v *fakeVerifier) Recompute(ctx context.Context, userID string) error {
	v.recomputed = append(v.recomputed, userID)
	return nil
}

type fakeScheduler struct {
	scheduled []models.Booking
}

func (s *fakeScheduler) Schedule(ctx context.Context, b models.Booking) error {
	s.scheduled = append(s.scheduled, b)
	return nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeNotifier, *fakeVerifier, *fakeScheduler) {
	bookings := newFakeBookingRepo()
	services := &fakeServiceRepo{services: map[string]*models.Service{
		"svc-1": {ID: "svc-1", Title: "Pipe repair", ProviderID: "prov-1", IsActive: true},
		"svc-2": {ID: "svc-2", Title: "Dormant", ProviderID: "prov-1", IsActive: false},
	}}
	notifier := &fakeNotifier{}
	verifier := &fakeVerifier{}
	scheduler := &fakeScheduler{}
	svc := &DefaultBookingService{
		Bookings:  bookings,
		Services:  services,
		Notifier:  notifier,
		Verifier:  verifier,
		Reminders: scheduler,
	}
	return svc, bookings, notifier, verifier, scheduler
}

var (
	seeker   = models.Principal{ID: "user-1", Role: models.RoleSeeker}
	provider = models.Principal{ID: "prov-1", Role: models.RoleProvider}
	admin    = models.Principal{ID: "admin-1", Role: models.RoleAdmin}
)

func futureInput(serviceID string) BookingInput {
	return BookingInput{ServiceID: serviceID, ScheduledDate: time.Now().Add(48 * time.Hour)}
}

func TestCreateBooking(t *testing.T) {
	svc, _, notifier, _, _ := newTestService()

	b, err := svc.Create(context.Background(), seeker, futureInput("svc-1"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.Status != models.BookingPending {
		t.Errorf("status = %q, want pending", b.Status)
	}
	if b.ProviderID != "prov-1" {
		t.Errorf("providerId = %q, want copied from service", b.ProviderID)
	}
	if b.UserID != seeker.ID {
		t.Errorf("userId = %q, want caller", b.UserID)
	}
	if len(notifier.emitted) != 1 {
		t.Fatalf("emitted %d notifications, want 1", len(notifier.emitted))
	}
	n := notifier.emitted[0]
	if n.RecipientID != "prov-1" || n.Type != models.NotificationBookingCreated {
		t.Errorf("notification = %+v, want booking_created to provider", n)
	}
}

func TestCreateBookingRejectsNonSeekers(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	for _, p := range []models.Principal{provider, admin} {
		if _, err := svc.Create(context.Background(), p, futureInput("svc-1")); err == nil {
			t.Errorf("role %s created a booking", p.Role)
		}
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	past := BookingInput{ServiceID: "svc-1", ScheduledDate: time.Now().Add(-time.Hour)}
	if _, err := svc.Create(ctx, seeker, past); err == nil {
		t.Error("past scheduled date accepted")
	}
	if _, err := svc.Create(ctx, seeker, futureInput("svc-2")); err == nil {
		t.Error("inactive service accepted a booking")
	}
	if _, err := svc.Create(ctx, seeker, futureInput("missing")); err == nil {
		t.Error("missing service accepted a booking")
	}
}

func TestCreateBookingSurvivesNotifierFailure(t *testing.T) {
	svc, _, notifier, _, _ := newTestService()
	notifier.fail = true

	if _, err := svc.Create(context.Background(), seeker, futureInput("svc-1")); err != nil {
		t.Fatalf("notifier failure propagated to caller: %v", err)
	}
}

func TestUpdateStatusLifecycle(t *testing.T) {
	svc, _, notifier, verifier, scheduler := newTestService()
	ctx := context.Background()

	b, err := svc.Create(ctx, seeker, futureInput("svc-1"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	confirmed, err := svc.UpdateStatus(ctx, provider, b.ID, models.BookingConfirmed)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != models.BookingConfirmed {
		t.Errorf("status = %q, want confirmed", confirmed.Status)
	}
	if len(scheduler.scheduled) != 1 {
		t.Errorf("scheduled %d reminders, want 1 on confirmation", len(scheduler.scheduled))
	}

	completed, err := svc.UpdateStatus(ctx, provider, b.ID, models.BookingCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != models.BookingCompleted {
		t.Errorf("status = %q, want completed", completed.Status)
	}
	if len(verifier.recomputed) != 2 {
		t.Fatalf("recomputed %v, want both parties on completion", verifier.recomputed)
	}

	// Seeker notifications for both transitions plus the create notification.
	if len(notifier.emitted) != 3 {
		t.Errorf("emitted %d notifications, want 3", len(notifier.emitted))
	}
}

func TestUpdateStatusRejectsInvalidTransitions(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	b, _ := svc.Create(ctx, seeker, futureInput("svc-1"))

	if _, err := svc.UpdateStatus(ctx, provider, b.ID, models.BookingCompleted); err == nil {
		t.Error("pending -> completed accepted")
	}
	if _, err := svc.UpdateStatus(ctx, provider, b.ID, "rejected"); err == nil {
		t.Error("unknown status accepted")
	}

	if _, err := svc.UpdateStatus(ctx, provider, b.ID, models.BookingCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, provider, b.ID, models.BookingConfirmed); err == nil {
		t.Error("transition out of cancelled accepted")
	}
}

func TestUpdateStatusAuthorization(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	b, _ := svc.Create(ctx, seeker, futureInput("svc-1"))

	if _, err := svc.UpdateStatus(ctx, seeker, b.ID, models.BookingConfirmed); err == nil {
		t.Error("seeker transitioned a booking")
	}
	stranger := models.Principal{ID: "prov-9", Role: models.RoleProvider}
	if _, err := svc.UpdateStatus(ctx, stranger, b.ID, models.BookingConfirmed); err == nil {
		t.Error("unrelated provider transitioned a booking")
	}
	if _, err := svc.UpdateStatus(ctx, admin, b.ID, models.BookingConfirmed); err != nil {
		t.Errorf("admin transition rejected: %v", err)
	}
}

func TestUpdateStatusConcurrentChangeConflicts(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()
	ctx := context.Background()

	b, _ := svc.Create(ctx, seeker, futureInput("svc-1"))

	// Another writer cancels the booking between the read and the
	// conditional write, so the expected-status precondition fails.
	bookings.afterGet = func() {
		bookings.bookings[b.ID].Status = models.BookingCancelled
	}

	_, err := svc.UpdateStatus(ctx, provider, b.ID, models.BookingConfirmed)
	var derr *utils.DomainError
	if !errors.As(err, &derr) || derr.Code != utils.CodeConflict {
		t.Fatalf("expected a conflict error, got %v", err)
	}
}

func TestGetBookingVisibility(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	b, _ := svc.Create(ctx, seeker, futureInput("svc-1"))

	for _, p := range []models.Principal{seeker, provider, admin} {
		if _, err := svc.GetBooking(ctx, p, b.ID); err != nil {
			t.Errorf("%s denied access to own booking: %v", p.Role, err)
		}
	}
	stranger := models.Principal{ID: "user-9", Role: models.RoleSeeker}
	if _, err := svc.GetBooking(ctx, stranger, b.ID); err == nil {
		t.Error("stranger allowed to read a booking")
	}
}
