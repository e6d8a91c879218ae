package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"
)

// ─── Types ────────────────────────────────────────────────────────────────────

// PlaceAddress is the flattened address the client consumes when filling
// hotel and restaurant forms.
type PlaceAddress struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	Zipcode      string `json:"zipcode"`
}

// PlaceDetails carries what the client needs from a Google Place.
type PlaceDetails struct {
	Name      string       `json:"name"`
	Rating    float64      `json:"rating"`
	Address   PlaceAddress `json:"address"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
}

// ─── Places Client ────────────────────────────────────────────────────────────

type PlacesClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var (
	placesClient *PlacesClient
	placesOnce   sync.Once
)

// GetPlacesClient lazily initializes the Google Places client. The first
// caller pays the setup cost; later calls get the same instance.
func GetPlacesClient() *PlacesClient {
	placesOnce.Do(func() {
		placesClient = &PlacesClient{
			apiKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
			baseURL: "https://maps.googleapis.com/maps/api/place",
			httpClient: &http.Client{
				Timeout: 15 * time.Second,
			},
		}
		if placesClient.apiKey == "" {
			log.Println("⚠️  GOOGLE_MAPS_API_KEY not set — place details will fail")
		} else {
			log.Println("✅ Google Places client ready")
		}
	})
	return placesClient
}

// ResetPlacesClient discards the singleton so tests can point it at a stub
// server.
func ResetPlacesClient(c *PlacesClient) {
	placesOnce.Do(func() {})
	placesClient = c
}

// NewPlacesClient builds a client against a custom endpoint, for tests.
func NewPlacesClient(apiKey, baseURL string) *PlacesClient {
	return &PlacesClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ─── Place Details ────────────────────────────────────────────────────────────

type googlePlaceResponse struct {
	Status string `json:"status"`
	Result struct {
		Name              string  `json:"name"`
		Rating            float64 `json:"rating"`
		AddressComponents []struct {
			LongName  string   `json:"long_name"`
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// GetPlaceDetails fetches a place by ID and flattens its address components.
func (c *PlacesClient) GetPlaceDetails(placeID string) (*PlaceDetails, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("google places not configured")
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,rating,address_components,geometry")
	params.Set("key", c.apiKey)

	resp, err := c.httpClient.Get(c.baseURL + "/details/json?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("place details request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("place details error (%d): %s", resp.StatusCode, string(body))
	}

	var gr googlePlaceResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("failed to parse place details: %w", err)
	}
	if gr.Status != "OK" {
		return nil, fmt.Errorf("place details status: %s", gr.Status)
	}

	details := &PlaceDetails{
		Name:      gr.Result.Name,
		Rating:    gr.Result.Rating,
		Latitude:  gr.Result.Geometry.Location.Lat,
		Longitude: gr.Result.Geometry.Location.Lng,
	}

	for _, comp := range gr.Result.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "route":
				details.Address.Street = comp.LongName
			case "street_number":
				details.Address.Number = comp.LongName
			case "sublocality", "sublocality_level_1":
				details.Address.Neighborhood = comp.LongName
			case "neighborhood":
				if details.Address.Neighborhood == "" {
					details.Address.Neighborhood = comp.LongName
				}
			case "locality":
				details.Address.City = comp.LongName
			case "administrative_area_level_2":
				if details.Address.City == "" {
					details.Address.City = comp.LongName
				}
			case "administrative_area_level_1":
				details.Address.State = comp.ShortName
			case "country":
				details.Address.Country = comp.LongName
			case "postal_code":
				details.Address.Zipcode = comp.LongName
			}
		}
	}

	return details, nil
}
