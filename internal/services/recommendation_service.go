package services

import (
	"context"
	"log"

	"moodtrip/internal/models/request_models"
	"moodtrip/internal/models/response_models"
	mem "moodtrip/pkg/memcache"
)

const (
	ModeGenerated = "AI + 좌표검증"
	ModeCached    = "AI + 좌표검증 (캐시)"
)

type RecommendationServiceInterface interface {
	GetRecommendations(ctx context.Context, request request_models.RecommendationRequest) ([]*response_models.Destination, string, error)
}

type RecommendationService struct {
	generation GenerationServiceInterface
	store      mem.RecommendationStore
}

func NewRecommendationService(generation GenerationServiceInterface, store mem.RecommendationStore) RecommendationServiceInterface {
	return &RecommendationService{
		generation: generation,
		store:      store,
	}
}

// GetRecommendations drives one request end to end: generate candidates for
// the region, score them against the keywords, return the ranked top 8. The
// requested count is 5 for the all-regions sentinel and 8 otherwise; the
// generation service clamps it further.
func (s *RecommendationService) GetRecommendations(ctx context.Context, request request_models.RecommendationRequest) ([]*response_models.Destination, string, error) {
	region := request.Region
	if region == "" {
		region = AllRegions
	}

	cacheKey := mem.Key(region, request.Keywords)
	if cached, ok := s.store.Get(cacheKey); ok {
		log.Printf("Cache hit for region=%s", region)
		return cached, ModeCached, nil
	}

	count := 8
	if region == AllRegions {
		count = 5
	}

	destinations, err := s.generation.GenerateDestinations(ctx, request.Keywords, region, count)
	if err != nil {
		return nil, "", err
	}

	ranked := RankDestinations(destinations, request.Keywords)

	preview := ranked
	if len(preview) > 3 {
		preview = preview[:3]
	}
	for _, dest := range preview {
		log.Printf("   %d. %s - %d%%", dest.ID, dest.City, dest.MatchScore)
	}

	s.store.Set(cacheKey, ranked)
	return ranked, ModeGenerated, nil
}
