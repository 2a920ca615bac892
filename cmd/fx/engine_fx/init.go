package enginefx

import (
	"go.uber.org/fx"

	"moodtrip/internal/infra"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

var Module = fx.Provide(
	provideTextGenerator, provideCoordinateValidator, provideGenerationService)

func provideTextGenerator(cfg *infra.Config) (utils.TextGeneratorInterface, error) {
	return utils.NewTextGenerator(cfg.Provider, cfg.APIKey, cfg.Model, cfg.GeminiBaseURL)
}

func provideCoordinateValidator() *services.CoordinateValidator {
	return services.NewCoordinateValidator(nil)
}

func provideGenerationService(generator utils.TextGeneratorInterface, validator *services.CoordinateValidator) services.GenerationServiceInterface {
	return services.NewGenerationService(generator, validator)
}
