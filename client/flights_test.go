package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentStops(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, SegmentStops(1))
	assert.Equal(t, 1, SegmentStops(2))
	assert.Equal(t, 2, SegmentStops(3))
	assert.Equal(t, 0, SegmentStops(0))
}

func sampleOffer() FlightOffer {
	offer := FlightOffer{
		ID:       "1",
		Price:    1845.30,
		Duration: "12h 45m",
	}

	mkSeg := func(carrier, from, to, dep, arr string) OfferSegment {
		var s OfferSegment
		s.CarrierCode = carrier
		s.Departure.IataCode = from
		s.Departure.At = dep
		s.Arrival.IataCode = to
		s.Arrival.At = arr
		return s
	}

	offer.Segments = []OfferSegment{
		mkSeg("LA", "GRU", "BSB", "2024-07-10T08:15:00", "2024-07-10T10:05:00"),
		mkSeg("AV", "BSB", "BOG", "2024-07-10T11:30:00", "2024-07-10T15:00:00"),
	}
	return offer
}

func TestComposeFlightPayload(t *testing.T) {
	t.Parallel()

	carriers := map[string]string{"LA": "LATAM AIRLINES"}
	payload := ComposeFlightPayload(sampleOffer(), carriers)

	assert.Equal(t, 1, payload.StopNumber)
	assert.False(t, payload.NonStop)
	assert.InDelta(t, 1845.30, payload.Price, 0.001)
	assert.Equal(t, "12h 45m", payload.Duration)

	require.Len(t, payload.FlightInformation, 2)

	first := payload.FlightInformation[0]
	assert.Equal(t, "LATAM AIRLINES", first.AirlineName)
	assert.Equal(t, "LA", first.CarrierCode)
	assert.Equal(t, "GRU", first.OriginAirport)
	assert.Equal(t, "BSB", first.DestinationAirport)
	assert.Equal(t, "2024-07-10T08:15:00", first.DepartureAt)

	// Unknown carrier codes fall back to the code itself
	second := payload.FlightInformation[1]
	assert.Equal(t, "AV", second.AirlineName)
}

func TestComposeFlightPayloadNonStop(t *testing.T) {
	t.Parallel()

	offer := sampleOffer()
	offer.Segments = offer.Segments[:1]

	payload := ComposeFlightPayload(offer, nil)
	assert.Equal(t, 0, payload.StopNumber)
	assert.True(t, payload.NonStop)
	assert.Len(t, payload.FlightInformation, 1)
}
