package services

import (
	"fmt"
	"strings"

	"moodtrip/internal/models/request_models"
)

const defaultPace = "적당"

// spotRangeFor maps the pace keyword to how many spots each destination
// should pack.
func spotRangeFor(pace string) (int, int) {
	switch pace {
	case "여유":
		return 2, 3
	case "빡빡":
		return 6, 8
	default:
		return 4, 5
	}
}

func formatKeywords(kw request_models.KeywordSet) string {
	parts := kw.Flatten()
	if len(parts) == 0 {
		return "자유여행"
	}
	return strings.Join(parts, ", ")
}

// BuildPrompt renders the full instruction for the generative model: the
// request constraints, the coordinate rules, the restaurant rules and one
// fully worked example destination in the exact output schema. Pure function
// of its inputs.
func BuildPrompt(region string, count int, kw request_models.KeywordSet) string {
	keywords := formatKeywords(kw)
	cities := citiesFor(region)

	pace := kw.Pace
	if pace == "" {
		pace = defaultPace
	}
	minSpots, maxSpots := spotRangeFor(pace)

	return fmt.Sprintf(`당신은 한국 여행 전문가입니다. 아래 조건에 맞는 여행지를 JSON 배열로만 출력하세요.

**조건:**
- 지역: %s (도시: %s)
- 개수: %d개
- 사용자 선호: %s
- 페이스: %s → 각 여행지당 %d-%d개 스팟

**중요 규칙:**
1. 순수 JSON 배열만 출력 (설명, 주석, 마크다운 금지)
2. 각 여행지는 서로 다른 도시여야 함
3. %s 지역 내의 실제 도시만 추천
4. 반드시 %d개 생성

**🚨 좌표 입력 필수 규칙 🚨**
1. **실제 장소의 정확한 좌표만 사용**
2. **예시 좌표 절대 금지**: 37.5, 127.0 같은 둥근 숫자 사용 금지
3. **소수점 4자리 이상** (예: 37.7519, 128.8761)
4. **%s 지역 좌표 범위**: %s
5. **실제 좌표 예시**: %s

**🍽️ 식당 추천 강화 규칙:**
- 스팟 중 최소 2개는 **실제 식당명**으로 추천
- 식당 정보에 대표 메뉴, 가격대, 영업시간, 예약 필요 여부, 웨이팅 정보 포함
- 식당은 실제 존재하는 유명 맛집으로만 추천
- 지역 특산 음식 중심으로 추천
- restaurants 배열에 상세 식당 정보 추가

**출력 형식 (실제 좌표 예시):**
[
{
  "city": "강릉",
  "region": "%s",
  "description": "여유로운 카페 투어와 바다",
  "scores": {
    "여행_스타일": {"계획형": 65, "즉흥형": 85, "중간형": 80},
    "동행": {"솔로": 90, "친구": 85, "커플": 95, "가족": 80, "단체": 65},
    "테마": {"맛집": 80, "카페": 95, "로컬": 75, "감성": 90, "액티비티": 70, "휴양": 95, "문화예술": 60, "쇼핑": 50, "자연": 85},
    "페이스": {"여유": 95, "적당": 80, "빡빡": 50},
    "교통": {"대중교통": 65, "자차": 90, "도보": 70},
    "분위기": {"핫플": 85, "한적": 80, "이색": 70, "전통": 60, "트렌디": 75}
  },
  "quickInfo": {
    "location": "강원 강릉시",
    "duration": "1박 2일",
    "parking": "편리함",
    "budget": "15-20만원/인"
  },
  "spots": [
    {"name": "엄지네포장마차", "category": "맛집", "parking": false, "lat": 37.7946, "lng": 128.9133, "description": "꼬막비빔밥 원조 맛집", "menu": "꼬막비빔밥 (15,000원)", "price": "1인 1.5-2만원", "hours": "11:30-22:00", "reservation": "불가", "waiting": "주말 30분 이상", "tip": "오픈 직후 방문 추천"},
    {"name": "초당할머니순두부", "category": "맛집", "parking": true, "lat": 37.7915, "lng": 128.9173, "description": "초당 순두부 전문점", "menu": "순두부백반 (10,000원)", "price": "1인 1만원대", "hours": "07:00-19:30", "reservation": "불가", "waiting": "평일 10분", "tip": "아침 식사로 좋음"},
    {"name": "안목해변 커피거리", "category": "카페", "parking": true, "lat": 37.7714, "lng": 128.9469, "description": "동해를 보며 커피 한잔", "tip": "바다뷰 추천"},
    {"name": "경포대", "category": "자연", "parking": true, "lat": 37.7955, "lng": 128.9085, "description": "강릉 대표 해변", "tip": "일출 명소"}
  ],
  "restaurants": [
    {"name": "엄지네포장마차", "specialty": "꼬막비빔밥", "mustTry": "꼬막비빔밥 + 소면사리", "priceRange": "15,000-25,000원", "address": "강원 강릉시 경강로2255번길 21", "reservationTip": "예약 불가, 웨이팅 필수"},
    {"name": "초당할머니순두부", "specialty": "순두부", "mustTry": "얼큰순두부", "priceRange": "9,000-13,000원", "address": "강원 강릉시 초당순두부길 77", "reservationTip": "아침 일찍 방문 권장"}
  ],
  "tips": ["카페 투어 최적", "자차 이동 편리"],
  "avgRating": 4.8,
  "centerLat": 37.7519,
  "centerLng": 128.8761,
  "coverImage": "https://loremflickr.com/800/600/gangneung,korea"
}
]

**반드시:**
- lat, lng는 소수점 4자리 이상
- 실제 장소 좌표만 사용
- 37.5, 127.0 같은 예시 좌표 금지
- %d-%d개 스팟
- 최소 2개 이상 실제 식당 추천
- 식당마다 메뉴, 가격, 시간, 예약 정보 포함

순수 JSON 배열만 출력!`,
		region, cities, count, keywords, pace, minSpots, maxSpots,
		region, count,
		region, coordRangeFor(region), coordExamplesFor(region),
		region,
		minSpots, maxSpots)
}
