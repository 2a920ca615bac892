package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodtrip/internal/models/request_models"
	"moodtrip/pkg/utils"
)

const twoDestinationsJSON = `[
  {"city": "강릉", "region": "강원", "spots": [{"name": "경포대", "lat": 37.7955, "lng": 128.9085}]},
  {"city": "속초", "region": "강원", "spots": [{"name": "속초해변", "lat": 37.5, "lng": 127.0}]}
]`

// scriptedGenerator returns each scripted result in order, then repeats the
// last one.
type scriptedGenerator struct {
	calls   int
	prompts []string
	texts   []string
	errs    []error
}

func (s *scriptedGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	idx := s.calls
	if idx >= len(s.texts) {
		idx = len(s.texts) - 1
	}
	s.calls++
	s.prompts = append(s.prompts, prompt)
	return s.texts[idx], s.errs[idx]
}

func newTestGenerationService(gen utils.TextGeneratorInterface) GenerationServiceInterface {
	return NewGenerationService(gen, NewCoordinateValidator(rand.New(rand.NewSource(7))))
}

func TestGenerateDestinationsSucceedsOnFifthAttempt(t *testing.T) {
	gen := &scriptedGenerator{
		texts: []string{"", "", "", "", twoDestinationsJSON},
		errs:  []error{utils.ErrUpstreamAPI, utils.ErrUpstreamAPI, utils.ErrUpstreamAPI, utils.ErrUpstreamAPI, nil},
	}

	destinations, err := newTestGenerationService(gen).GenerateDestinations(context.Background(), request_models.KeywordSet{}, "강원", 5)
	require.NoError(t, err)
	require.Len(t, destinations, 2)
	assert.Equal(t, 5, gen.calls)
	assert.Equal(t, 1, destinations[0].ID)
	assert.Equal(t, 2, destinations[1].ID)
}

func TestGenerateDestinationsFailsAfterFiveAttempts(t *testing.T) {
	gen := &scriptedGenerator{
		texts: []string{""},
		errs:  []error{utils.ErrUpstreamAPI},
	}

	_, err := newTestGenerationService(gen).GenerateDestinations(context.Background(), request_models.KeywordSet{}, "강원", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
	assert.Equal(t, 5, gen.calls)
}

func TestGenerateDestinationsRetriesOnTooFewResults(t *testing.T) {
	gen := &scriptedGenerator{
		texts: []string{`[{"city": "강릉"}]`, twoDestinationsJSON},
		errs:  []error{nil, nil},
	}

	destinations, err := newTestGenerationService(gen).GenerateDestinations(context.Background(), request_models.KeywordSet{}, "강원", 5)
	require.NoError(t, err)
	assert.Len(t, destinations, 2)
	assert.Equal(t, 2, gen.calls)
}

func TestGenerateDestinationsRetriesOnGarbageText(t *testing.T) {
	gen := &scriptedGenerator{
		texts: []string{"I cannot answer that.", twoDestinationsJSON},
		errs:  []error{nil, nil},
	}

	destinations, err := newTestGenerationService(gen).GenerateDestinations(context.Background(), request_models.KeywordSet{}, "강원", 5)
	require.NoError(t, err)
	assert.Len(t, destinations, 2)
	assert.Equal(t, 2, gen.calls)
}

func TestGenerateDestinationsValidatesCoordinates(t *testing.T) {
	gen := &scriptedGenerator{
		texts: []string{twoDestinationsJSON},
		errs:  []error{nil},
	}

	destinations, err := newTestGenerationService(gen).GenerateDestinations(context.Background(), request_models.KeywordSet{}, "강원", 5)
	require.NoError(t, err)

	// 속초's spot carried the placeholder coordinate and must be corrected.
	sokcho := destinations[1]
	assert.Equal(t, 38.2070, sokcho.CenterLat)
	spot := sokcho.Spots[0]
	assert.False(t, spot.Lat == 37.5 && spot.Lng == 127.0)
	assert.InDelta(t, sokcho.CenterLat, spot.Lat, jitterRange)
	assert.InDelta(t, sokcho.CenterLng, spot.Lng, jitterRange)
}

func TestGenerateDestinationsClampsCount(t *testing.T) {
	gen := &scriptedGenerator{
		texts: []string{twoDestinationsJSON},
		errs:  []error{nil},
	}
	svc := newTestGenerationService(gen)

	_, err := svc.GenerateDestinations(context.Background(), request_models.KeywordSet{}, "강원", 8)
	require.NoError(t, err)
	assert.Contains(t, gen.prompts[0], "개수: 5개")

	_, err = svc.GenerateDestinations(context.Background(), request_models.KeywordSet{}, "강원", 1)
	require.NoError(t, err)
	assert.Contains(t, gen.prompts[1], "개수: 3개")
}
