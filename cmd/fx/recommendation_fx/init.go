package recommendationfx

import (
	"go.uber.org/fx"

	"moodtrip/internal/services"
	mem "moodtrip/pkg/memcache"
)

var Module = fx.Provide(provideRecommendationService)

func provideRecommendationService(generation services.GenerationServiceInterface, store mem.RecommendationStore) services.RecommendationServiceInterface {
	return services.NewRecommendationService(generation, store)
}
