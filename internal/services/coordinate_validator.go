package services

import (
	"log"
	"math/rand"
	"time"

	"moodtrip/internal/models/response_models"
)

const (
	placeholderLat       = 37.5
	placeholderLng       = 127.0
	placeholderTolerance = 0.01
	jitterRange          = 0.05
)

// CoordinateValidator pins destination centers to the known city table and
// replaces implausible spot coordinates with a jittered point near the
// center. It is a plausibility pass, not geocoding: corrected spots land
// inside the region's bounding box, not on the actual venue.
type CoordinateValidator struct {
	rng *rand.Rand
}

// NewCoordinateValidator builds a validator. Pass a seeded rng to make the
// jitter deterministic in tests; nil gets a time-seeded one.
func NewCoordinateValidator(rng *rand.Rand) *CoordinateValidator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &CoordinateValidator{rng: rng}
}

// Validate mutates destinations in place and returns the same slice.
func (v *CoordinateValidator) Validate(destinations []*response_models.Destination, region string) []*response_models.Destination {
	bounds := boundsFor(region)

	for _, dest := range destinations {
		if city, ok := cityCoords[dest.City]; ok {
			dest.CenterLat = city.Lat
			dest.CenterLng = city.Lng
		} else {
			dest.CenterLat = bounds.CenterLat
			dest.CenterLng = bounds.CenterLng
			log.Printf("Unknown city %q, using region center", dest.City)
		}

		for i := range dest.Spots {
			spot := &dest.Spots[i]
			if !v.spotCoordInvalid(spot.Lat, spot.Lng, bounds) {
				continue
			}
			spot.Lat = dest.CenterLat + v.jitter()
			spot.Lng = dest.CenterLng + v.jitter()
		}
	}

	return destinations
}

func (v *CoordinateValidator) spotCoordInvalid(lat, lng float64, bounds regionBounds) bool {
	outOfBounds := lat < bounds.LatMin || lat > bounds.LatMax ||
		lng < bounds.LngMin || lng > bounds.LngMax
	isPlaceholder := abs(lat-placeholderLat) < placeholderTolerance &&
		abs(lng-placeholderLng) < placeholderTolerance
	return outOfBounds || isPlaceholder || lat == 0 || lng == 0
}

func (v *CoordinateValidator) jitter() float64 {
	return (v.rng.Float64()*2 - 1) * jitterRange
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
