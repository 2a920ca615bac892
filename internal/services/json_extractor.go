package services

import (
	"encoding/json"
	"strings"

	"moodtrip/internal/models/response_models"
)

// extractStrategy attempts to recover a non-empty JSON array from free-form
// model output. Returning false means "try the next one".
type extractStrategy func(text string) ([]json.RawMessage, bool)

var extractStrategies = []extractStrategy{
	parseDirect,
	parseFenceStripped,
	parseBracketSpan,
}

// ExtractJSONArray recovers a JSON array from text that is supposed to
// contain one, tolerating markdown fences and surrounding prose. Returns nil
// when no strategy yields a non-empty array.
func ExtractJSONArray(text string) []json.RawMessage {
	for _, strategy := range extractStrategies {
		if items, ok := strategy(text); ok {
			return items
		}
	}
	return nil
}

func parseDirect(text string) ([]json.RawMessage, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, false
	}
	return items, len(items) > 0
}

// parseFenceStripped drops a leading ```-style fence line (and the trailing
// one if present) before reparsing.
func parseFenceStripped(text string) ([]json.RawMessage, bool) {
	cleaned := strings.TrimSpace(text)
	if !strings.HasPrefix(cleaned, "```") {
		return nil, false
	}

	lines := strings.Split(cleaned, "\n")
	lines = lines[1:]
	if len(lines) > 0 && strings.HasPrefix(lines[len(lines)-1], "```") {
		lines = lines[:len(lines)-1]
	}

	return parseDirect(strings.TrimSpace(strings.Join(lines, "\n")))
}

// parseBracketSpan parses the substring between the first '[' and the last
// ']' in the text.
func parseBracketSpan(text string) ([]json.RawMessage, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end <= start {
		return nil, false
	}
	return parseDirect(text[start : end+1])
}

// DecodeDestinations maps raw array items into typed destinations. Items
// that do not fit the schema are dropped rather than failing the whole
// batch.
func DecodeDestinations(items []json.RawMessage) []*response_models.Destination {
	var destinations []*response_models.Destination
	for _, item := range items {
		var dest response_models.Destination
		if err := json.Unmarshal(item, &dest); err != nil {
			continue
		}
		destinations = append(destinations, &dest)
	}
	return destinations
}
