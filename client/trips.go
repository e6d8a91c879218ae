package client

import (
	"fmt"
	"net/url"
)

// DefaultTripLimit is the trip list page size the web app uses.
const DefaultTripLimit = 9

// fetchList is the cache read-through shared by every list call.
func fetchList[T any](c *Client, key queryKey, path string) (*T, error) {
	if v, ok := c.cache.get(key); ok {
		if cached, ok := v.(*T); ok {
			return cached, nil
		}
	}
	out := new(T)
	if err := c.get(path, out); err != nil {
		return nil, err
	}
	c.cache.put(key, out)
	return out, nil
}

// ListTrips returns one page of the signed-in user's trips, optionally
// filtered by title.
func (c *Client) ListTrips(page int, title string) (*TripList, error) {
	if c.userID == "" {
		return nil, fmt.Errorf("not signed in")
	}

	key := queryKey{resource: "trip", scope: c.userID, page: page, limit: DefaultTripLimit, filter: title}
	path := fmt.Sprintf("/trip/list/%s?page=%d&limit=%d", c.userID, page, DefaultTripLimit)
	if title != "" {
		path += "&title=" + url.QueryEscape(title)
	}
	return fetchList[TripList](c, key, path)
}

type NewDestination struct {
	City      string   `json:"city"`
	State     string   `json:"state,omitempty"`
	Country   string   `json:"country,omitempty"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	PlaceID   string   `json:"placeId,omitempty"`
}

// CreateTrip creates a trip with its ordered destinations and stales the
// trip list.
func (c *Client) CreateTrip(title string, destinations []NewDestination) (*Trip, error) {
	if c.userID == "" {
		return nil, fmt.Errorf("not signed in")
	}

	body := map[string]any{
		"title":       title,
		"userTrips":   map[string]string{"userId": c.userID},
		"destination": destinations,
	}

	var resp struct {
		Trip Trip `json:"trip"`
	}
	if err := c.post("/trip/create", body, &resp); err != nil {
		return nil, err
	}

	c.cache.InvalidateFor(TripCreate, c.userID)
	return &resp.Trip, nil
}

func (c *Client) GetTrip(id string) (*Trip, error) {
	var resp struct {
		Trip Trip `json:"trip"`
	}
	if err := c.get("/trip/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp.Trip, nil
}

func (c *Client) DeleteTrip(id string) error {
	if err := c.delete("/trip/delete/"+id, nil); err != nil {
		return err
	}
	c.cache.InvalidateFor(TripDelete, c.userID)
	return nil
}

// TripSummaryPDF downloads the printable trip summary.
func (c *Client) TripSummaryPDF(id string) ([]byte, error) {
	return c.getRaw("/trip/summary/" + id)
}
