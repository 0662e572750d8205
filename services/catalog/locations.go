package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"locallink/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// locationCacheTTL matches the refresh cadence the filter dropdowns expect.
const locationCacheTTL = 30 * time.Minute

const locationCachePrefix = "locations:"

// Countries lists every country with at least one active service.
func (s *DefaultCatalogService) Countries(ctx context.Context) ([]string, error) {
	return s.cachedDistinct(ctx, locationCachePrefix+"countries", s.Services.DistinctCountries)
}

// Cities lists cities with active services in the given country.
func (s *DefaultCatalogService) Cities(ctx context.Context, country string) ([]string, error) {
	key := locationCachePrefix + "cities:" + strings.ToLower(country)
	return s.cachedDistinct(ctx, key, func() ([]string, error) {
		return s.Services.DistinctCities(country)
	})
}

// Areas lists areas with active services in the given country and city.
func (s *DefaultCatalogService) Areas(ctx context.Context, country, city string) ([]string, error) {
	key := locationCachePrefix + "areas:" + strings.ToLower(country) + ":" + strings.ToLower(city)
	return s.cachedDistinct(ctx, key, func() ([]string, error) {
		return s.Services.DistinctAreas(country, city)
	})
}

// cachedDistinct serves a distinct projection through the redis cache. Cache
// failures degrade to a direct query, never to an error.
func (s *DefaultCatalogService) cachedDistinct(ctx context.Context, key string, fetch func() ([]string, error)) ([]string, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			var values []string
			if jsonErr := json.Unmarshal([]byte(cached), &values); jsonErr == nil {
				return values, nil
			}
		} else if err != redis.Nil {
			utils.GetLogger().Warn("location cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	values, err := fetch()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, jsonErr := json.Marshal(values); jsonErr == nil {
			if err := s.Cache.Set(ctx, key, data, locationCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("location cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return values, nil
}

// invalidateLocationIndex drops the cached location lists after a service
// mutation that may change them.
func (s *DefaultCatalogService) invalidateLocationIndex(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	iter := s.Cache.Scan(ctx, 0, locationCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.Cache.Del(ctx, iter.Val()).Err(); err != nil {
			utils.GetLogger().Warn("location cache invalidation failed", zap.Error(err))
			return
		}
	}
	if err := iter.Err(); err != nil {
		utils.GetLogger().Warn("location cache scan failed", zap.Error(err))
	}
}
