package client

import "fmt"

// Page sizes matching the trip details view.
const (
	DefaultActivityLimit = 9
	DefaultSubListLimit  = 4
)

// ─── Activities ───────────────────────────────────────────────────────────────

type NewActivity struct {
	DestinationID  string   `json:"destinationId"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Date           string   `json:"date"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	TimezoneOffset float64  `json:"timezoneOffset"`
	Cost           *float64 `json:"cost,omitempty"`
	Street         string   `json:"street,omitempty"`
	Number         string   `json:"number,omitempty"`
	Neighborhood   string   `json:"neighborhood,omitempty"`
	City           string   `json:"city,omitempty"`
	State          string   `json:"state,omitempty"`
	Country        string   `json:"country,omitempty"`
	Zipcode        string   `json:"zipcode,omitempty"`
}

func (c *Client) ListActivities(destinationID string, page int) (*ActivityList, error) {
	key := queryKey{resource: "activity", scope: destinationID, page: page, limit: DefaultActivityLimit}
	path := fmt.Sprintf("/activity/list/%s?page=%d&limit=%d", destinationID, page, DefaultActivityLimit)
	return fetchList[ActivityList](c, key, path)
}

func (c *Client) CreateActivity(destinationID string, params NewActivity) (*Activity, error) {
	var resp struct {
		Activity Activity `json:"activity"`
	}
	params.DestinationID = destinationID
	if err := c.post("/activity/create", params, &resp); err != nil {
		return nil, err
	}
	c.cache.InvalidateFor(ActivityCreate, destinationID)
	return &resp.Activity, nil
}

func (c *Client) DeleteActivity(destinationID, activityID string) error {
	if err := c.delete("/activity/delete/"+activityID, nil); err != nil {
		return err
	}
	c.cache.InvalidateFor(ActivityDelete, destinationID)
	return nil
}

// ─── Hotels ───────────────────────────────────────────────────────────────────

type NewHotel struct {
	DestinationID string  `json:"destinationId"`
	Name          string  `json:"name"`
	Rating        float64 `json:"rating,omitempty"`
	Street        string  `json:"street,omitempty"`
	Number        string  `json:"number,omitempty"`
	Neighborhood  string  `json:"neighborhood,omitempty"`
	City          string  `json:"city,omitempty"`
	State         string  `json:"state,omitempty"`
	Country       string  `json:"country,omitempty"`
	Zipcode       string  `json:"zipcode,omitempty"`
}

func (c *Client) ListHotels(destinationID string, page int) (*HotelList, error) {
	key := queryKey{resource: "hotel", scope: destinationID, page: page, limit: DefaultSubListLimit}
	path := fmt.Sprintf("/hotel/list/%s?page=%d&limit=%d", destinationID, page, DefaultSubListLimit)
	return fetchList[HotelList](c, key, path)
}

func (c *Client) CreateHotel(destinationID string, params NewHotel) (*Hotel, error) {
	var resp struct {
		Hotel Hotel `json:"hotel"`
	}
	params.DestinationID = destinationID
	if err := c.post("/hotel/create", params, &resp); err != nil {
		return nil, err
	}
	c.cache.InvalidateFor(HotelCreate, destinationID)
	return &resp.Hotel, nil
}

func (c *Client) DeleteHotel(destinationID, hotelID string) error {
	if err := c.delete("/hotel/delete/"+hotelID, nil); err != nil {
		return err
	}
	c.cache.InvalidateFor(HotelDelete, destinationID)
	return nil
}

// ─── Restaurants ──────────────────────────────────────────────────────────────

type NewRestaurant struct {
	DestinationID string  `json:"destinationId"`
	Name          string  `json:"name"`
	Rating        float64 `json:"rating,omitempty"`
	PriceLevel    int     `json:"priceLevel,omitempty"`
	Street        string  `json:"street,omitempty"`
	Number        string  `json:"number,omitempty"`
	Neighborhood  string  `json:"neighborhood,omitempty"`
	City          string  `json:"city,omitempty"`
	State         string  `json:"state,omitempty"`
	Country       string  `json:"country,omitempty"`
	Zipcode       string  `json:"zipcode,omitempty"`
}

func (c *Client) ListRestaurants(destinationID string, page int) (*RestaurantList, error) {
	key := queryKey{resource: "restaurant", scope: destinationID, page: page, limit: DefaultSubListLimit}
	path := fmt.Sprintf("/restaurant/list/%s?page=%d&limit=%d", destinationID, page, DefaultSubListLimit)
	return fetchList[RestaurantList](c, key, path)
}

func (c *Client) CreateRestaurant(destinationID string, params NewRestaurant) (*Restaurant, error) {
	var resp struct {
		Restaurant Restaurant `json:"restaurant"`
	}
	params.DestinationID = destinationID
	if err := c.post("/restaurant/create", params, &resp); err != nil {
		return nil, err
	}
	c.cache.InvalidateFor(RestaurantCreate, destinationID)
	return &resp.Restaurant, nil
}

func (c *Client) DeleteRestaurant(destinationID, restaurantID string) error {
	if err := c.delete("/restaurant/delete/"+restaurantID, nil); err != nil {
		return err
	}
	c.cache.InvalidateFor(RestaurantDelete, destinationID)
	return nil
}

// ─── Flights ──────────────────────────────────────────────────────────────────

func (c *Client) ListFlights(destinationID string, page int) (*FlightList, error) {
	key := queryKey{resource: "flight", scope: destinationID, page: page, limit: DefaultSubListLimit}
	path := fmt.Sprintf("/flight/list/%s?page=%d&limit=%d", destinationID, page, DefaultSubListLimit)
	return fetchList[FlightList](c, key, path)
}

func (c *Client) CreateFlight(destinationID string, payload FlightPayload) (*Flight, error) {
	var resp struct {
		Flight Flight `json:"flight"`
	}
	payload.DestinationID = destinationID
	if err := c.post("/flight/create", payload, &resp); err != nil {
		return nil, err
	}
	c.cache.InvalidateFor(FlightCreate, destinationID)
	return &resp.Flight, nil
}

func (c *Client) DeleteFlight(destinationID, flightID string) error {
	if err := c.delete("/flight/delete/"+flightID, nil); err != nil {
		return err
	}
	c.cache.InvalidateFor(FlightDelete, destinationID)
	return nil
}
