package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOffersJSON = `{
  "data": [
    {
      "id": "1",
      "price": {"total": "1845.30", "currency": "BRL"},
      "itineraries": [
        {
          "duration": "PT12H45M",
          "segments": [
            {
              "departure": {"iataCode": "GRU", "at": "2024-07-10T08:15:00"},
              "arrival": {"iataCode": "BSB", "at": "2024-07-10T10:05:00"},
              "carrierCode": "LA",
              "number": "3301"
            },
            {
              "departure": {"iataCode": "BSB", "at": "2024-07-10T11:30:00"},
              "arrival": {"iataCode": "MAO", "at": "2024-07-10T14:20:00"},
              "carrierCode": "LA",
              "number": "3578"
            },
            {
              "departure": {"iataCode": "MAO", "at": "2024-07-10T16:00:00"},
              "arrival": {"iataCode": "BOG", "at": "2024-07-10T19:00:00"},
              "carrierCode": "AV",
              "number": "124"
            }
          ]
        }
      ]
    },
    {
      "id": "2",
      "price": {"total": "2310.00", "currency": "BRL"},
      "itineraries": [
        {
          "duration": "PT5H30M",
          "segments": [
            {
              "departure": {"iataCode": "GRU", "at": "2024-07-10T09:00:00"},
              "arrival": {"iataCode": "BOG", "at": "2024-07-10T14:30:00"},
              "carrierCode": "AV",
              "number": "86"
            }
          ]
        }
      ]
    }
  ],
  "dictionaries": {
    "carriers": {"LA": "LATAM AIRLINES", "AV": "AVIANCA"}
  }
}`

func TestParseFlightOffers(t *testing.T) {
	t.Parallel()

	result, err := parseFlightOffers([]byte(sampleOffersJSON))
	require.NoError(t, err)
	require.Len(t, result.Flights, 2)

	multi := result.Flights[0]
	assert.Equal(t, "1", multi.ID)
	assert.Equal(t, "LA", multi.Airline)
	assert.InDelta(t, 1845.30, multi.Price, 0.001)
	assert.Equal(t, "GRU", multi.Origin)
	assert.Equal(t, "BOG", multi.Destination)
	assert.Equal(t, "2024-07-10T08:15:00", multi.Departure)
	assert.Equal(t, "2024-07-10T19:00:00", multi.Arrival)
	assert.Equal(t, 2, multi.Stops)
	assert.Equal(t, "12h 45m", multi.Duration)
	assert.Len(t, multi.Segments, 3)

	direct := result.Flights[1]
	assert.Equal(t, 0, direct.Stops)
	assert.Equal(t, "5h 30m", direct.Duration)

	assert.Equal(t, "LATAM AIRLINES", result.Carriers["LA"])
	assert.Equal(t, "AVIANCA", result.Carriers["AV"])
}

func TestParseFlightOffersEmpty(t *testing.T) {
	t.Parallel()

	result, err := parseFlightOffers([]byte(`{"data": []}`))
	require.NoError(t, err)
	assert.Empty(t, result.Flights)
	assert.NotNil(t, result.Carriers)
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		iso  string
		want string
	}{
		{"PT5H30M", "5h 30m"},
		{"PT12H45M", "12h 45m"},
		{"PT2H", "2h"},
		{"PT45M", "45m"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseDuration(tt.iso), "iso %q", tt.iso)
	}
}

func TestParsePrice(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1845.30, parsePrice("1845.30"), 0.001)
	assert.InDelta(t, 0, parsePrice("n/a"), 0.001)
}
