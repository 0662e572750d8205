package catalog

import (
	"context"
	"time"

	"locallink/models"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// Search runs the filter pipeline, counts the full result set, and annotates
// the returned page with resolved discounts.
func (s *DefaultCatalogService) Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult, error) {
	criteria = normalizeCriteria(criteria)

	services, err := s.Services.Search(criteria)
	if err != nil {
		return nil, err
	}
	total, err := s.Services.CountMatching(criteria)
	if err != nil {
		return nil, err
	}

	names, err := s.categoryNames()
	if err != nil {
		return nil, err
	}
	table, err := s.discountTable(time.Now())
	if err != nil {
		return nil, err
	}

	annotated := make([]models.AnnotatedService, 0, len(services))
	for _, svc := range services {
		annotated = append(annotated, Annotate(svc, names[svc.CategoryID], table))
	}

	totalPages := int((total + int64(criteria.Limit) - 1) / int64(criteria.Limit))
	return &models.SearchResult{
		Services:       annotated,
		CurrentPage:    criteria.Page,
		TotalPages:     totalPages,
		TotalResults:   total,
		ResultsPerPage: criteria.Limit,
	}, nil
}

// normalizeCriteria clamps pagination to sane bounds. Pages are 1-indexed.
func normalizeCriteria(c models.SearchCriteria) models.SearchCriteria {
	if c.Page < 1 {
		c.Page = 1
	}
	if c.Limit < 1 {
		c.Limit = defaultPageSize
	}
	if c.Limit > maxPageSize {
		c.Limit = maxPageSize
	}
	return c
}
