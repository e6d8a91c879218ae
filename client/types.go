package client

// Pagination is the envelope every list endpoint returns alongside its items.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	Zipcode      string `json:"zipcode,omitempty"`
}

type Destination struct {
	ID        string `json:"id"`
	City      string `json:"city"`
	State     string `json:"state,omitempty"`
	Country   string `json:"country"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
	PlaceID   string `json:"placeId,omitempty"`
}

type Trip struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Destinations []Destination `json:"destinations"`
}

type Activity struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Cost        float64 `json:"cost"`
	Address     Address `json:"address"`
}

type Hotel struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Address Address `json:"address"`
}

type Restaurant struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	PriceLevel int     `json:"priceLevel"`
	Address    Address `json:"address"`
}

type FlightInfo struct {
	ID                 string `json:"id"`
	AirlineName        string `json:"airlineName"`
	CarrierCode        string `json:"carrierCodeAirline,omitempty"`
	OriginAirport      string `json:"originAirport"`
	DestinationAirport string `json:"destinationAirport"`
	DepartureTime      string `json:"departureTime"`
	ArrivalTime        string `json:"arrivalTime"`
	Order              int    `json:"order"`
}

type Flight struct {
	ID                string       `json:"id"`
	StopNumber        int          `json:"stopNumber"`
	NonStop           bool         `json:"nonStop"`
	Duration          string       `json:"duration,omitempty"`
	Price             float64      `json:"price"`
	FlightInformation []FlightInfo `json:"flightInformation"`
}

// ─── List responses ───────────────────────────────────────────────────────────

type TripList struct {
	Trips      []Trip     `json:"trips"`
	Pagination Pagination `json:"pagination"`
}

type ActivityList struct {
	Activities []Activity `json:"activity"`
	Pagination Pagination `json:"pagination"`
}

type HotelList struct {
	Hotels     []Hotel    `json:"hotel"`
	Pagination Pagination `json:"pagination"`
}

type RestaurantList struct {
	Restaurants []Restaurant `json:"restaurant"`
	Pagination  Pagination   `json:"pagination"`
}

type FlightList struct {
	Flights    []Flight   `json:"flights"`
	Pagination Pagination `json:"pagination"`
}

// ─── Flight search (relay) ────────────────────────────────────────────────────

type FlightSearchParams struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children,omitempty"`
	MaxPrice      string `json:"maxPrice,omitempty"`
	NonStop       bool   `json:"nonStop,omitempty"`
}

type OfferSegment struct {
	Departure struct {
		IataCode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"departure"`
	Arrival struct {
		IataCode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"arrival"`
	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
}

type FlightOffer struct {
	ID          string         `json:"id"`
	Airline     string         `json:"airline"`
	Price       float64        `json:"price"`
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Departure   string         `json:"departure"`
	Arrival     string         `json:"arrival"`
	Stops       int            `json:"stops"`
	Duration    string         `json:"duration"`
	Segments    []OfferSegment `json:"segments"`
}

type FlightSearchResult struct {
	Flights  []FlightOffer     `json:"flights"`
	Carriers map[string]string `json:"carriers"`
}

// ─── Place details (relay) ────────────────────────────────────────────────────

type PlaceAddress struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	Zipcode      string `json:"zipcode"`
}

type PlaceDetails struct {
	Name      string       `json:"name"`
	Rating    float64      `json:"rating"`
	Address   PlaceAddress `json:"address"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
}
