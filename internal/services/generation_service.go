package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"moodtrip/internal/models/request_models"
	"moodtrip/internal/models/response_models"
	"moodtrip/pkg/utils"
)

const (
	maxAttempts = 5
	minCount    = 3
	maxCount    = 5
)

type GenerationServiceInterface interface {
	GenerateDestinations(ctx context.Context, keywords request_models.KeywordSet, region string, count int) ([]*response_models.Destination, error)
}

type GenerationService struct {
	generator utils.TextGeneratorInterface
	validator *CoordinateValidator
}

func NewGenerationService(generator utils.TextGeneratorInterface, validator *CoordinateValidator) GenerationServiceInterface {
	return &GenerationService{
		generator: generator,
		validator: validator,
	}
}

// GenerateDestinations runs the bounded call-and-retry loop against the
// generator: build the prompt, call, extract, validate coordinates, assign
// ids. A populated result of at least 2 destinations ends the loop; anything
// else is logged, remembered as lastErr and retried.
func (s *GenerationService) GenerateDestinations(ctx context.Context, keywords request_models.KeywordSet, region string, count int) ([]*response_models.Destination, error) {
	actualCount := count
	if actualCount < minCount {
		actualCount = minCount
	}
	if actualCount > maxCount {
		actualCount = maxCount
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		log.Printf("Generating destinations (attempt %d/%d) region=%s count=%d", attempt, maxAttempts, region, actualCount)

		prompt := BuildPrompt(region, actualCount, keywords)

		text, err := s.generator.GenerateText(ctx, prompt)
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrRequestTimeout):
				log.Printf("Attempt %d timed out: %v", attempt, err)
			case errors.Is(err, utils.ErrUpstreamAPI):
				log.Printf("Attempt %d upstream error: %v", attempt, err)
			case errors.Is(err, utils.ErrMalformedEnvelope):
				log.Printf("Attempt %d malformed response: %v", attempt, err)
			default:
				log.Printf("Attempt %d failed: %v", attempt, err)
			}
			lastErr = err
			continue
		}

		log.Printf("Received %d chars from generator", len(text))

		destinations := DecodeDestinations(ExtractJSONArray(text))
		if len(destinations) < 2 {
			log.Printf("Not enough results (%d), retrying", len(destinations))
			lastErr = utils.ErrNotEnoughResults
			continue
		}

		// Coordinates first, ids after, so the ids reflect final output order.
		s.validator.Validate(destinations, region)
		for i, dest := range destinations {
			dest.ID = i + 1
		}

		log.Printf("Generated %d destinations", len(destinations))
		return destinations, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, lastErr)
	}
	return nil, utils.ErrGenerationFailed
}
