package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moodtrip/internal/models/request_models"
)

func TestBuildPromptSpotRangeByPace(t *testing.T) {
	tests := []struct {
		name string
		pace string
		want string
	}{
		{"relaxed", "여유", "2-3개 스팟"},
		{"packed", "빡빡", "6-8개 스팟"},
		{"moderate", "적당", "4-5개 스팟"},
		{"missing", "", "4-5개 스팟"},
		{"unknown", "아무거나", "4-5개 스팟"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt("강원", 5, request_models.KeywordSet{Pace: tt.pace})
			assert.Contains(t, prompt, tt.want)
		})
	}
}

func TestBuildPromptRegionCities(t *testing.T) {
	prompt := BuildPrompt("강원", 5, request_models.KeywordSet{})
	assert.Contains(t, prompt, "강릉, 속초, 양양, 평창, 정선, 동해")
	assert.Contains(t, prompt, "위도 37.1-38.6, 경도 127.7-129.4")
	assert.Contains(t, prompt, "강릉(37.7519, 128.8761)")
}

func TestBuildPromptUnknownRegionFallsBack(t *testing.T) {
	prompt := BuildPrompt("달나라", 5, request_models.KeywordSet{})
	assert.Contains(t, prompt, "전국 주요 도시")
	assert.Contains(t, prompt, "대한민국 전역")
}

func TestBuildPromptKeywordFlattening(t *testing.T) {
	kw := request_models.KeywordSet{
		Style:     "즉흥형",
		Companion: "커플",
		Themes:    []string{"카페", "휴양"},
		Pace:      "여유",
		Transport: "자차",
		Moods:     []string{"한적"},
	}
	prompt := BuildPrompt("강원", 3, kw)
	assert.Contains(t, prompt, "즉흥형, 커플, 카페, 휴양, 여유, 자차, 한적")
}

func TestBuildPromptEmptyKeywordsFallback(t *testing.T) {
	prompt := BuildPrompt("전체", 5, request_models.KeywordSet{})
	assert.Contains(t, prompt, "자유여행")
}

func TestBuildPromptCountAndConstraints(t *testing.T) {
	prompt := BuildPrompt("부산", 4, request_models.KeywordSet{})
	assert.Contains(t, prompt, "개수: 4개")
	assert.Contains(t, prompt, "반드시 4개 생성")
	assert.Contains(t, prompt, "37.5, 127.0 같은 둥근 숫자 사용 금지")
	assert.Contains(t, prompt, "restaurants 배열에 상세 식당 정보 추가")
	assert.Contains(t, prompt, "순수 JSON 배열만 출력!")
}
