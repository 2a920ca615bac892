package controllersfx

import (
	"go.uber.org/fx"

	"moodtrip/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewRecommendationsController,
	controllers.NewHealthController,
)
