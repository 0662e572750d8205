package admin

import (
	"context"
	"time"

	bookingRepo "locallink/database/repository/booking"
	categoryRepo "locallink/database/repository/category"
	eventRepo "locallink/database/repository/event"
	reportRepo "locallink/database/repository/report"
	serviceRepo "locallink/database/repository/service"
	userRepo "locallink/database/repository/user"
	"locallink/models"
	"locallink/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// DashboardStats is the admin overview of platform activity.
type DashboardStats struct {
	TotalSeekers     int64            `json:"totalSeekers"`
	TotalProviders   int64            `json:"totalProviders"`
	TotalServices    int64            `json:"totalServices"`
	ActiveServices   int64            `json:"activeServices"`
	BookingsByStatus map[string]int64 `json:"bookingsByStatus"`
	PendingReports   int64            `json:"pendingReports"`
}

// CategoryInput carries admin-editable category fields.
type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    *bool  `json:"isActive"`
}

// EventInput carries admin-editable event fields.
type EventInput struct {
	Title          string    `json:"title" binding:"required"`
	Description    string    `json:"description"`
	Category       string    `json:"category" binding:"required"`
	Discount       string    `json:"discount" binding:"required"`
	StartDate      time.Time `json:"startDate" binding:"required"`
	EndDate        time.Time `json:"endDate" binding:"required"`
	TargetAudience string    `json:"targetAudience"`
	IsActive       *bool     `json:"isActive"`
	Color          string    `json:"color"`
}

// AdminService backs the admin subtree: dashboard stats plus category and
// event management. Report moderation lives in the report service.
type AdminService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, input CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, input EventInput) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, input EventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Users      userRepo.UserRepository
	Services   serviceRepo.ServiceRepository
	Bookings   bookingRepo.BookingRepository
	Reports    reportRepo.ReportRepository
	Categories categoryRepo.CategoryRepository
	Events     eventRepo.EventRepository
}

// Stats assembles the dashboard counters.
func (s *DefaultAdminService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{BookingsByStatus: make(map[string]int64)}

	var err error
	if stats.TotalSeekers, err = s.Users.CountByRole(models.RoleSeeker); err != nil {
		return nil, err
	}
	if stats.TotalProviders, err = s.Users.CountByRole(models.RoleProvider); err != nil {
		return nil, err
	}
	if stats.TotalServices, err = s.Services.CountAll(false); err != nil {
		return nil, err
	}
	if stats.ActiveServices, err = s.Services.CountAll(true); err != nil {
		return nil, err
	}
	for _, status := range []string{
		models.BookingPending, models.BookingConfirmed,
		models.BookingCompleted, models.BookingCancelled,
	} {
		count, err := s.Bookings.CountByStatus(status)
		if err != nil {
			return nil, err
		}
		stats.BookingsByStatus[status] = count
	}
	if stats.PendingReports, err = s.Reports.CountByStatus(models.ReportPendingReview); err != nil {
		return nil, err
	}
	return stats, nil
}

// ListUsers returns every user account.
func (s *DefaultAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Users.GetAll()
}

// ListCategories returns all categories including inactive ones.
func (s *DefaultAdminService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Categories.GetAll(false)
}

// CreateCategory adds a category.
func (s *DefaultAdminService) CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error) {
	if input.Name == "" {
		return nil, utils.NewValidationError("category name is required")
	}
	cat := &models.Category{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		IsActive:    true,
	}
	if input.IsActive != nil {
		cat.IsActive = *input.IsActive
	}
	if err := s.Categories.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// UpdateCategory edits a category.
func (s *DefaultAdminService) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*models.Category, error) {
	cat, err := s.Categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, utils.NewNotFoundError("category not found")
	}

	fields := bson.M{
		"name":        input.Name,
		"description": input.Description,
		"icon":        input.Icon,
	}
	if input.IsActive != nil {
		fields["isActive"] = *input.IsActive
	}
	if err := s.Categories.Update(id, fields); err != nil {
		return nil, err
	}
	return s.Categories.GetByID(id)
}

// DeleteCategory removes a category, blocked while services reference it.
func (s *DefaultAdminService) DeleteCategory(ctx context.Context, id string) error {
	cat, err := s.Categories.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil {
		return utils.NewNotFoundError("category not found")
	}

	count, err := s.Services.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.NewConflictError("category is referenced by existing services")
	}
	return s.Categories.Delete(id)
}

// ListEvents returns all events.
func (s *DefaultAdminService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.Events.GetAll()
}

// CreateEvent adds a promotional event.
func (s *DefaultAdminService) CreateEvent(ctx context.Context, input EventInput) (*models.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	ev := &models.Event{
		ID:             uuid.New().String(),
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		Discount:       input.Discount,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		TargetAudience: input.TargetAudience,
		IsActive:       true,
		Color:          input.Color,
	}
	if ev.TargetAudience == "" {
		ev.TargetAudience = models.AudienceAll
	}
	if input.IsActive != nil {
		ev.IsActive = *input.IsActive
	}
	if err := s.Events.Create(ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// UpdateEvent edits an event.
func (s *DefaultAdminService) UpdateEvent(ctx context.Context, id string, input EventInput) (*models.Event, error) {
	ev, err := s.Events.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, utils.NewNotFoundError("event not found")
	}
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	fields := bson.M{
		"title":          input.Title,
		"description":    input.Description,
		"category":       input.Category,
		"discount":       input.Discount,
		"startDate":      input.StartDate,
		"endDate":        input.EndDate,
		"targetAudience": input.TargetAudience,
		"color":          input.Color,
	}
	if input.IsActive != nil {
		fields["isActive"] = *input.IsActive
	}
	if err := s.Events.Update(id, fields); err != nil {
		return nil, err
	}
	return s.Events.GetByID(id)
}

// DeleteEvent removes an event.
func (s *DefaultAdminService) DeleteEvent(ctx context.Context, id string) error {
	ev, err := s.Events.GetByID(id)
	if err != nil {
		return err
	}
	if ev == nil {
		return utils.NewNotFoundError("event not found")
	}
	return s.Events.Delete(id)
}

func validateEventInput(input EventInput) error {
	if !input.EndDate.After(input.StartDate) {
		return utils.NewValidationError("event end date must be after its start date")
	}
	switch input.TargetAudience {
	case "", models.AudienceAll, models.AudienceSeeker, models.AudienceProvider:
	default:
		return utils.NewValidationError("invalid target audience")
	}
	return nil
}
