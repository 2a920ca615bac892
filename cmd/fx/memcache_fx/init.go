package memcachefx

import (
	"go.uber.org/fx"

	mem "moodtrip/pkg/memcache"
)

var Module = fx.Provide(provideRecommendationStore)

func provideRecommendationStore() mem.RecommendationStore {
	return mem.NewRecommendationCache()
}
