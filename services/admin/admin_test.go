package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"locallink/models"
	"locallink/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeCategoryRepo struct {
	categories map[string]*models.Category
}

func (r *fakeCategoryRepo) Create(cat *models.Category) error {
	copy := *cat
	r.categories[cat.ID] = &copy
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*models.Category, error) {
	cat, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	copy := *cat
	return &copy, nil
}

func (r *fakeCategoryRepo) GetAll(activeOnly bool) ([]models.Category, error) {
	var out []models.Category
	for _, cat := range r.categories {
		if activeOnly && !cat.IsActive {
			continue
		}
		out = append(out, *cat)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(id string, fields bson.M) error { return nil }

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

type fakeServiceCounts struct {
	byCategory map[string]int64
}

func (r *fakeServiceCounts) CountByCategory(categoryID string) (int64, error) {
	return r.byCategory[categoryID], nil
}

func (r *fakeServiceCounts) Create(*models.Service) error                       { return nil }
func (r *fakeServiceCounts) Update(string, bson.M) error                        { return nil }
func (r *fakeServiceCounts) Delete(string) error                                { return nil }
func (r *fakeServiceCounts) GetByID(string) (*models.Service, error)            { return nil, nil }
func (r *fakeServiceCounts) GetByProvider(string) ([]models.Service, error)     { return nil, nil }
func (r *fakeServiceCounts) Search(models.SearchCriteria) ([]models.Service, error) {
	return nil, nil
}
func (r *fakeServiceCounts) CountMatching(models.SearchCriteria) (int64, error) { return 0, nil }
func (r *fakeServiceCounts) UpdateRating(string, float64, int) error            { return nil }
func (r *fakeServiceCounts) IDsByProvider(string) ([]string, error)             { return nil, nil }
func (r *fakeServiceCounts) CountAll(bool) (int64, error)                       { return 0, nil }
func (r *fakeServiceCounts) DistinctCountries() ([]string, error)               { return nil, nil }
func (r *fakeServiceCounts) DistinctCities(string) ([]string, error)            { return nil, nil }
func (r *fakeServiceCounts) DistinctAreas(string, string) ([]string, error)     { return nil, nil }

type fakeEventRepo struct {
	events map[string]*models.Event
}

func (r *fakeEventRepo) Create(ev *models.Event) error {
	copy := *ev
	r.events[ev.ID] = &copy
	return nil
}

func (r *fakeEventRepo) GetByID(id string) (*models.Event, error) {
	ev, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	copy := *ev
	return &copy, nil
}

func (r *fakeEventRepo) GetAll() ([]models.Event, error) {
	var out []models.Event
	for _, ev := range r.events {
		out = append(out, *ev)
	}
	return out, nil
}

func (r *fakeEventRepo) GetActive(now time.Time) ([]models.Event, error) { return nil, nil }
func (r *fakeEventRepo) Update(id string, fields bson.M) error           { return nil }

func (r *fakeEventRepo) Delete(id string) error {
	delete(r.events, id)
	return nil
}

func newTestService() (*DefaultAdminService, *fakeCategoryRepo, *fakeServiceCounts) {
	categories := &fakeCategoryRepo{categories: make(map[string]*models.Category)}
	services := &fakeServiceCounts{byCategory: make(map[string]int64)}
	svc := &DefaultAdminService{
		Categories: categories,
		Services:   services,
		Events:     &fakeEventRepo{events: make(map[string]*models.Event)},
	}
	return svc, categories, services
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	svc, _, services := newTestService()
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, CategoryInput{Name: "Plumbers"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	services.byCategory[cat.ID] = 2
	err = svc.DeleteCategory(ctx, cat.ID)
	var derr *utils.DomainError
	if !errors.As(err, &derr) || derr.Code != utils.CodeConflict {
		t.Fatalf("expected conflict while services reference the category, got %v", err)
	}

	services.byCategory[cat.ID] = 0
	if err := svc.DeleteCategory(ctx, cat.ID); err != nil {
		t.Fatalf("DeleteCategory after dereference: %v", err)
	}
}

func TestCreateCategoryDefaultsActive(t *testing.T) {
	svc, _, _ := newTestService()

	cat, err := svc.CreateCategory(context.Background(), CategoryInput{Name: "Cleaning"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if !cat.IsActive {
		t.Error("new category not active by default")
	}

	inactive := false
	cat, err = svc.CreateCategory(context.Background(), CategoryInput{Name: "Movers", IsActive: &inactive})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if cat.IsActive {
		t.Error("explicit isActive=false ignored")
	}
}

func TestCreateEventValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	now := time.Now()

	valid := EventInput{
		Title:     "Summer deals",
		Category:  "Plumbers",
		Discount:  "20% OFF",
		StartDate: now,
		EndDate:   now.Add(7 * 24 * time.Hour),
	}
	ev, err := svc.CreateEvent(ctx, valid)
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if ev.TargetAudience != models.AudienceAll {
		t.Errorf("audience = %q, want default %q", ev.TargetAudience, models.AudienceAll)
	}

	inverted := valid
	inverted.EndDate = now.Add(-time.Hour)
	if _, err := svc.CreateEvent(ctx, inverted); err == nil {
		t.Error("event with end before start accepted")
	}

	badAudience := valid
	badAudience.TargetAudience = "robots"
	if _, err := svc.CreateEvent(ctx, badAudience); err == nil {
		t.Error("unknown audience accepted")
	}
}
