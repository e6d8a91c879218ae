package database

// Address is the denormalized street address carried by every
// destination-scoped resource. Fields mirror the structured decomposition
// returned by the places relay.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	Zipcode      string `json:"zipcode,omitempty"`
}
