package services

import (
	"sort"

	"moodtrip/internal/models/request_models"
	"moodtrip/internal/models/response_models"
)

const (
	baseScore  = 55
	minMatch   = 72
	maxMatch   = 98
	maxResults = 8

	weightStyle     = 0.20
	weightCompanion = 0.15
	weightTheme     = 0.40
	weightPace      = 0.10
	weightTransport = 0.10
	weightMood      = 0.05
)

// ScoreDestination computes the heuristic match percentage for one
// destination from its per-category suitability table and the user's chosen
// keywords. The result is always inside [72, 98].
func ScoreDestination(dest *response_models.Destination, keywords request_models.KeywordSet) int {
	score := float64(baseScore)

	score += float64(categoryScore(dest, "여행_스타일", keywords.Style)) * weightStyle
	score += float64(categoryScore(dest, "동행", keywords.Companion)) * weightCompanion
	score += categoryMean(dest, "테마", keywords.Themes) * weightTheme
	score += float64(categoryScore(dest, "페이스", keywords.Pace)) * weightPace
	score += float64(categoryScore(dest, "교통", keywords.Transport)) * weightTransport
	score += categoryMean(dest, "분위기", keywords.Moods) * weightMood

	match := int(score)
	if match < minMatch {
		match = minMatch
	}
	if match > maxMatch {
		match = maxMatch
	}
	return match
}

func categoryScore(dest *response_models.Destination, category, value string) int {
	if value == "" {
		return 0
	}
	return dest.Scores[category][value]
}

func categoryMean(dest *response_models.Destination, category string, values []string) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, value := range values {
		sum += dest.Scores[category][value]
	}
	return float64(sum) / float64(len(values))
}

// RankDestinations annotates every destination with its match score, sorts
// descending (stable, so generation order breaks ties) and truncates to the
// top 8.
func RankDestinations(destinations []*response_models.Destination, keywords request_models.KeywordSet) []*response_models.Destination {
	for _, dest := range destinations {
		dest.MatchScore = ScoreDestination(dest, keywords)
	}

	sort.SliceStable(destinations, func(i, j int) bool {
		return destinations[i].MatchScore > destinations[j].MatchScore
	})

	if len(destinations) > maxResults {
		destinations = destinations[:maxResults]
	}
	return destinations
}
