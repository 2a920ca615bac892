package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodtrip/internal/models/request_models"
	"moodtrip/internal/models/response_models"
)

func TestRecommendationCacheRoundTrip(t *testing.T) {
	store := NewRecommendationCache()

	_, ok := store.Get("missing")
	assert.False(t, ok)

	destinations := []*response_models.Destination{{ID: 1, City: "강릉"}}
	store.Set("k", destinations)

	got, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, destinations, got)
}

func TestKeyIsStableAndDiscriminating(t *testing.T) {
	kw := request_models.KeywordSet{Themes: []string{"카페"}}

	assert.Equal(t, Key("강원", kw), Key("강원", kw))
	assert.NotEqual(t, Key("강원", kw), Key("제주", kw))
	assert.NotEqual(t, Key("강원", kw), Key("강원", request_models.KeywordSet{}))
}
