package catalog

import (
	"testing"

	"locallink/models"
)

func TestNormalizeCriteria(t *testing.T) {
	cases := []struct {
		name      string
		in        models.SearchCriteria
		wantPage  int
		wantLimit int
	}{
		{"zero values", models.SearchCriteria{}, 1, defaultPageSize},
		{"negative page", models.SearchCriteria{Page: -3, Limit: 20}, 1, 20},
		{"limit over cap", models.SearchCriteria{Page: 2, Limit: 500}, 2, maxPageSize},
		{"in range", models.SearchCriteria{Page: 4, Limit: 25}, 4, 25},
	}
	for _, tc := range cases {
		got := normalizeCriteria(tc.in)
		if got.Page != tc.wantPage || got.Limit != tc.wantLimit {
			t.Errorf("%s: normalizeCriteria = page %d limit %d, want page %d limit %d",
				tc.name, got.Page, got.Limit, tc.wantPage, tc.wantLimit)
		}
	}
}
