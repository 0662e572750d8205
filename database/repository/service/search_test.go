package serviceRepo

import (
	"testing"

	"locallink/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildSearchFilterAlwaysExcludesInactive(t *testing.T) {
	filter := BuildSearchFilter(models.SearchCriteria{})
	if filter["isActive"] != true {
		t.Fatalf("filter missing isActive=true clause: %v", filter)
	}
	if len(filter) != 1 {
		t.Errorf("empty criteria produced extra clauses: %v", filter)
	}
}

func TestBuildSearchFilterGeo(t *testing.T) {
	lat, lng := 51.5, -0.12

	filter := BuildSearchFilter(models.SearchCriteria{Lat: &lat, Lng: &lng, Radius: "10"})
	geo, ok := filter["location.coordinates"].(bson.M)
	if !ok {
		t.Fatalf("expected geo clause, got %v", filter)
	}
	within, ok := geo["$geoWithin"].(bson.M)
	if !ok {
		t.Fatalf("expected $geoWithin, got %v", geo)
	}
	sphere, ok := within["$centerSphere"].(bson.A)
	if !ok || len(sphere) != 2 {
		t.Fatalf("expected $centerSphere [center, radians], got %v", within)
	}
	center := sphere[0].(bson.A)
	if center[0] != lng || center[1] != lat {
		t.Errorf("center = %v, want [lng lat] order", center)
	}
	radians := sphere[1].(float64)
	if radians <= 0 || radians > 0.01 {
		t.Errorf("radians = %v, want 10km/6378.1km", radians)
	}
}

func TestBuildSearchFilterRadiusAll(t *testing.T) {
	lat, lng := 51.5, -0.12

	for _, radius := range []string{models.RadiusAll, "", "bogus", "-5"} {
		filter := BuildSearchFilter(models.SearchCriteria{Lat: &lat, Lng: &lng, Radius: radius})
		if _, ok := filter["location.coordinates"]; ok {
			t.Errorf("radius %q produced a geo clause", radius)
		}
	}
}

func TestBuildSearchFilterClauses(t *testing.T) {
	filter := BuildSearchFilter(models.SearchCriteria{
		Keyword:   "plumbing",
		Country:   "Kenya",
		City:      "Nairobi",
		Area:      "Westlands",
		Category:  "cat-1",
		MinRating: 4,
	})

	text, ok := filter["$text"].(bson.M)
	if !ok || text["$search"] != "plumbing" {
		t.Errorf("keyword clause = %v, want $text $search", filter["$text"])
	}
	if filter["categoryId"] != "cat-1" {
		t.Errorf("categoryId = %v, want exact equality", filter["categoryId"])
	}
	rating, ok := filter["averageRating"].(bson.M)
	if !ok || rating["$gte"] != 4.0 {
		t.Errorf("averageRating clause = %v, want $gte 4", filter["averageRating"])
	}
	for _, field := range []string{"location.country", "location.city", "location.area"} {
		clause, ok := filter[field].(bson.M)
		if !ok || clause["$options"] != "i" {
			t.Errorf("%s clause = %v, want case-insensitive regex", field, filter[field])
		}
	}
}

func TestBuildSearchSort(t *testing.T) {
	relevance := BuildSearchSort(models.SearchCriteria{Keyword: "plumbing", Sort: models.SortRelevance})
	if relevance[0].Key != "score" {
		t.Errorf("relevance sort = %v, want textScore meta", relevance)
	}

	// Relevance without a keyword has no text score to sort on.
	fallback := BuildSearchSort(models.SearchCriteria{Sort: models.SortRelevance})
	if fallback[0].Key != "averageRating" {
		t.Errorf("keywordless relevance sort = %v, want rating fallback", fallback)
	}

	newest := BuildSearchSort(models.SearchCriteria{Sort: models.SortNewest})
	if newest[0].Key != "createdAt" || newest[0].Value != -1 {
		t.Errorf("newest sort = %v, want createdAt desc", newest)
	}

	rating := BuildSearchSort(models.SearchCriteria{Sort: models.SortRating})
	if rating[0].Key != "averageRating" || rating[1].Key != "totalReviews" {
		t.Errorf("rating sort = %v, want rating then review count", rating)
	}
}
