package serviceRepo

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// distinctStrings runs a distinct projection over active services, drops
// falsy values, and returns the rest sorted alphabetically.
func (r *MongoServiceRepo) distinctStrings(field string, filter bson.M) ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter["isActive"] = true
	values, err := r.coll.Distinct(ctx, field, filter)
	if err != nil {
		return nil, fmt.Errorf("distinct query on %s failed: %w", field, err)
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}

// exactInsensitive builds a case-insensitive exact match on a parent field.
func exactInsensitive(value string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(value) + "$", "$options": "i"}
}

// DistinctCountries lists every country that has at least one active service.
func (r *MongoServiceRepo) DistinctCountries() ([]string, error) {
	return r.distinctStrings("location.country", bson.M{})
}

// DistinctCities lists cities with active services in the given country.
func (r *MongoServiceRepo) DistinctCities(country string) ([]string, error) {
	return r.distinctStrings("location.city", bson.M{
		"location.country": exactInsensitive(country),
	})
}

// DistinctAreas lists areas with active services in the given country+city.
func (r *MongoServiceRepo) DistinctAreas(country, city string) ([]string, error) {
	return r.distinctStrings("location.area", bson.M{
		"location.country": exactInsensitive(country),
		"location.city":    exactInsensitive(city),
	})
}
