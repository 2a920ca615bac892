package response_models

// Destination is one recommended place as the model generates it. ID and
// MatchScore are filled in after generation; CenterLat/CenterLng are
// overwritten by coordinate validation.
type Destination struct {
	ID          int                       `json:"id"`
	City        string                    `json:"city"`
	Region      string                    `json:"region"`
	Description string                    `json:"description"`
	Scores      map[string]map[string]int `json:"scores"`
	QuickInfo   QuickInfo                 `json:"quickInfo"`
	Spots       []Spot                    `json:"spots"`
	Restaurants []Restaurant              `json:"restaurants,omitempty"`
	Tips        []string                  `json:"tips"`
	AvgRating   float64                   `json:"avgRating"`
	CenterLat   float64                   `json:"centerLat"`
	CenterLng   float64                   `json:"centerLng"`
	CoverImage  string                    `json:"coverImage"`
	MatchScore  int                       `json:"matchScore"`
}

type QuickInfo struct {
	Location string `json:"location"`
	Duration string `json:"duration"`
	Parking  string `json:"parking"`
	Budget   string `json:"budget"`
}

// Spot is a point of interest inside a destination. The menu/price/hours
// fields are only present when the spot is a restaurant.
type Spot struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Parking     bool    `json:"parking"`
	Description string  `json:"description,omitempty"`
	Tip         string  `json:"tip,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lng         float64 `json:"lng,omitempty"`
	Menu        string  `json:"menu,omitempty"`
	Price       string  `json:"price,omitempty"`
	Hours       string  `json:"hours,omitempty"`
	Reservation string  `json:"reservation,omitempty"`
	Waiting     string  `json:"waiting,omitempty"`
}

// Restaurant is the detailed dining entry the prompt asks for in addition to
// restaurant spots.
type Restaurant struct {
	Name           string `json:"name"`
	Specialty      string `json:"specialty"`
	MustTry        string `json:"mustTry"`
	PriceRange     string `json:"priceRange"`
	Address        string `json:"address"`
	ReservationTip string `json:"reservationTip"`
}
