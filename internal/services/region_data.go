package services

// AllRegions is the sentinel region meaning "no region filter".
const AllRegions = "전체"

type regionBounds struct {
	LatMin, LatMax float64
	LngMin, LngMax float64
	CenterLat      float64
	CenterLng      float64
}

// regionCoords bounds every recommendable region. The 전체 entry doubles as
// the fallback for unrecognized region names.
var regionCoords = map[string]regionBounds{
	"강원":       {37.1, 38.6, 127.7, 129.4, 37.8, 128.5},
	"경기":       {36.9, 38.3, 126.4, 127.9, 37.5, 127.2},
	"충청":       {36.0, 37.5, 126.3, 128.5, 36.6, 127.4},
	"전라":       {34.4, 36.0, 126.1, 127.8, 35.2, 126.9},
	"경상":       {34.6, 36.9, 128.0, 129.5, 35.8, 128.7},
	"부산":       {35.0, 35.4, 128.9, 129.3, 35.2, 129.1},
	"제주":       {33.1, 33.6, 126.1, 126.9, 33.4, 126.5},
	AllRegions: {33.0, 38.6, 126.0, 130.0, 36.5, 127.5},
}

type cityCoord struct {
	Lat, Lng float64
}

// cityCoords holds the real center coordinate of every city the prompt
// offers the model.
var cityCoords = map[string]cityCoord{
	// 강원
	"강릉": {37.7519, 128.8761},
	"속초": {38.2070, 128.5918},
	"양양": {38.0754, 128.6190},
	"평창": {37.3709, 128.3906},
	"정선": {37.3807, 128.6608},
	"동해": {37.5247, 129.1144},

	// 경기
	"가평": {37.8314, 127.5095},
	"양평": {37.4914, 127.4949},
	"수원": {37.2636, 127.0286},
	"파주": {37.7599, 126.7800},
	"포천": {38.0314, 127.2003},
	"이천": {37.2722, 127.4350},

	// 충청
	"단양": {36.9846, 128.3659},
	"충주": {36.9910, 127.9260},
	"천안": {36.8151, 127.1139},
	"공주": {36.4465, 127.1189},
	"보령": {36.3334, 126.6129},
	"태안": {36.7456, 126.2981},

	// 전라
	"전주": {35.8242, 127.1480},
	"순천": {34.9506, 127.4872},
	"여수": {34.7604, 127.6622},
	"담양": {35.3209, 126.9882},
	"보성": {34.7714, 127.0800},
	"군산": {35.9676, 126.7369},

	// 경상
	"경주": {35.8562, 129.2247},
	"안동": {36.5684, 128.7294},
	"포항": {36.0190, 129.3435},
	"울산": {35.5384, 129.3114},
	"통영": {34.8544, 128.4331},
	"거제": {34.8806, 128.6214},

	// 부산
	"부산":  {35.1796, 129.0756},
	"해운대": {35.1585, 129.1603},
	"광안리": {35.1532, 129.1187},
	"송도":  {35.0757, 129.0177},
	"기장":  {35.2445, 129.2219},

	// 제주
	"제주":  {33.4996, 126.5312},
	"제주시": {33.4996, 126.5312},
	"서귀포": {33.2541, 126.5601},
	"애월":  {33.4672, 126.3319},
	"성산":  {33.4547, 126.8806},
	"한림":  {33.4114, 126.2691},
}

var regionCities = map[string]string{
	"강원": "강릉, 속초, 양양, 평창, 정선, 동해",
	"경기": "가평, 양평, 수원, 파주, 포천, 이천",
	"충청": "단양, 충주, 천안, 공주, 보령, 태안",
	"전라": "전주, 순천, 여수, 담양, 보성, 군산",
	"경상": "경주, 안동, 포항, 울산, 통영, 거제",
	"부산": "해운대, 광안리, 송도, 기장, 남포동",
	"제주": "제주시, 서귀포, 애월, 성산, 한림",
}

var regionCoordExamples = map[string]string{
	"강원": "강릉(37.7519, 128.8761), 속초(38.2070, 128.5918)",
	"경기": "가평(37.8314, 127.5095), 수원(37.2636, 127.0286)",
	"충청": "단양(36.9846, 128.3659), 공주(36.4465, 127.1189)",
	"전라": "전주(35.8242, 127.1480), 여수(34.7604, 127.6622)",
	"경상": "경주(35.8562, 129.2247), 통영(34.8544, 128.4331)",
	"부산": "해운대(35.1585, 129.1603), 광안리(35.1532, 129.1187)",
	"제주": "제주시(33.4996, 126.5312), 서귀포(33.2541, 126.5601)",
}

var regionCoordRanges = map[string]string{
	"강원": "위도 37.1-38.6, 경도 127.7-129.4",
	"경기": "위도 36.9-38.3, 경도 126.4-127.9",
	"충청": "위도 36.0-37.5, 경도 126.3-128.5",
	"전라": "위도 34.4-36.0, 경도 126.1-127.8",
	"경상": "위도 34.6-36.9, 경도 128.0-129.5",
	"부산": "위도 35.0-35.4, 경도 128.9-129.3",
	"제주": "위도 33.1-33.6, 경도 126.1-126.9",
}

func citiesFor(region string) string {
	if cities, ok := regionCities[region]; ok {
		return cities
	}
	return "전국 주요 도시"
}

func coordExamplesFor(region string) string {
	if examples, ok := regionCoordExamples[region]; ok {
		return examples
	}
	return "서울(37.5665, 126.9780), 부산(35.1796, 129.0756)"
}

func coordRangeFor(region string) string {
	if r, ok := regionCoordRanges[region]; ok {
		return r
	}
	return "대한민국 전역"
}

func boundsFor(region string) regionBounds {
	if b, ok := regionCoords[region]; ok {
		return b
	}
	return regionCoords[AllRegions]
}
