package client

// FlightSegmentPayload is one leg of a create-flight request.
type FlightSegmentPayload struct {
	AirlineName        string `json:"airlineName"`
	CarrierCode        string `json:"carrierCodeAirline,omitempty"`
	OriginAirport      string `json:"originAirport"`
	DestinationAirport string `json:"destinationAirport"`
	DepartureAt        string `json:"departureAt"`
	ArrivalAt          string `json:"arrivalAt"`
}

// FlightPayload is the body of a create-flight request. DestinationID is
// filled in by CreateFlight.
type FlightPayload struct {
	DestinationID     string                 `json:"destinationId,omitempty"`
	Price             float64                `json:"price"`
	NonStop           bool                   `json:"nonStop"`
	StopNumber        int                    `json:"stopNumber"`
	Duration          string                 `json:"duration,omitempty"`
	FlightInformation []FlightSegmentPayload `json:"flightInformation"`
}

// SegmentStops is the stop count implied by a segment list: one fewer than
// the number of legs.
func SegmentStops(segmentCount int) int {
	if segmentCount < 1 {
		return 0
	}
	return segmentCount - 1
}

// ComposeFlightPayload turns a search offer into a create-flight request.
// Carrier codes resolve to airline names through the carriers dictionary,
// falling back to the code itself.
func ComposeFlightPayload(offer FlightOffer, carriers map[string]string) FlightPayload {
	stops := SegmentStops(len(offer.Segments))
	payload := FlightPayload{
		Price:      offer.Price,
		StopNumber: stops,
		NonStop:    stops == 0,
		Duration:   offer.Duration,
	}

	for _, seg := range offer.Segments {
		name := carriers[seg.CarrierCode]
		if name == "" {
			name = seg.CarrierCode
		}
		payload.FlightInformation = append(payload.FlightInformation, FlightSegmentPayload{
			AirlineName:        name,
			CarrierCode:        seg.CarrierCode,
			OriginAirport:      seg.Departure.IataCode,
			DestinationAirport: seg.Arrival.IataCode,
			DepartureAt:        seg.Departure.At,
			ArrivalAt:          seg.Arrival.At,
		})
	}
	return payload
}

// SearchFlights relays a flight search through the server to Amadeus.
func (c *Client) SearchFlights(params FlightSearchParams) (*FlightSearchResult, error) {
	var result FlightSearchResult
	if err := c.post("/api/flights", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PlaceDetails fetches a Google Place through the server relay.
func (c *Client) PlaceDetails(placeID string) (*PlaceDetails, error) {
	var details PlaceDetails
	if err := c.get("/api/places/"+placeID, &details); err != nil {
		return nil, err
	}
	return &details, nil
}
