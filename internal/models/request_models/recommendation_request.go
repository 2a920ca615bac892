package request_models

// KeywordSet carries the user's travel preferences. The JSON keys are the
// category names the frontend sends; single-value categories hold one chosen
// value, 테마 and 분위기 hold a list.
type KeywordSet struct {
	Style     string   `json:"여행_스타일,omitempty"`
	Companion string   `json:"동행,omitempty"`
	Themes    []string `json:"테마,omitempty"`
	Pace      string   `json:"페이스,omitempty"`
	Transport string   `json:"교통,omitempty"`
	Moods     []string `json:"분위기,omitempty"`
}

// Flatten joins every chosen value into one list, in category order.
func (k KeywordSet) Flatten() []string {
	var parts []string
	if k.Style != "" {
		parts = append(parts, k.Style)
	}
	if k.Companion != "" {
		parts = append(parts, k.Companion)
	}
	parts = append(parts, k.Themes...)
	if k.Pace != "" {
		parts = append(parts, k.Pace)
	}
	if k.Transport != "" {
		parts = append(parts, k.Transport)
	}
	parts = append(parts, k.Moods...)
	return parts
}

type RecommendationRequest struct {
	Keywords KeywordSet `json:"keywords"`
	Region   string     `json:"region"`
}
