// pkg/memcache/recommendation_cache.go
package mem

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache"

	"moodtrip/internal/models/request_models"
	"moodtrip/internal/models/response_models"
)

// RecommendationStore keeps recently generated recommendation sets so a
// repeated region+keywords request skips the whole retry loop.
type RecommendationStore interface {
	Get(key string) ([]*response_models.Destination, bool)
	Set(key string, destinations []*response_models.Destination)
}

const (
	defaultTTL      = time.Hour
	cleanupInterval = 2 * time.Hour
)

type recommendationCache struct {
	c *cache.Cache
}

func NewRecommendationCache() RecommendationStore {
	return &recommendationCache{
		c: cache.New(defaultTTL, cleanupInterval),
	}
}

func (s *recommendationCache) Get(key string) ([]*response_models.Destination, bool) {
	value, ok := s.c.Get(key)
	if !ok {
		return nil, false
	}
	destinations, ok := value.([]*response_models.Destination)
	return destinations, ok
}

func (s *recommendationCache) Set(key string, destinations []*response_models.Destination) {
	s.c.Set(key, destinations, cache.DefaultExpiration)
}

// Key derives a stable cache key from the region and the keyword set.
func Key(region string, keywords request_models.KeywordSet) string {
	h := sha256.New()
	h.Write([]byte(region))
	if encoded, err := json.Marshal(keywords); err == nil {
		h.Write(encoded)
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}
