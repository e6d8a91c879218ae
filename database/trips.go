package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

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

// CreateTrip inserts the trip and its ordered destinations in one transaction.
// Destinations are immutable after this point; there is no update path.
func CreateTrip(userID, title string, dests []Destination) (*Trip, error) {
	tx, err := DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	tripID := uuid.New().String()
	if _, err := tx.Exec(`INSERT INTO trips (id, user_id, title) VALUES ($1, $2, $3)`,
		tripID, userID, title); err != nil {
		return nil, fmt.Errorf("insert trip: %w", err)
	}

	out := make([]Destination, 0, len(dests))
	for i, d := range dests {
		d.ID = uuid.New().String()
		if _, err := tx.Exec(`
			INSERT INTO destinations (id, trip_id, city, state, country, start_date, end_date, latitude, longitude, place_id, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			d.ID, tripID, d.City, d.State, d.Country, d.StartDate, d.EndDate,
			d.Latitude, d.Longitude, d.PlaceID, i); err != nil {
			return nil, fmt.Errorf("insert destination: %w", err)
		}
		out = append(out, d)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &Trip{ID: tripID, Title: title, Destinations: out}, nil
}

// ListTrips returns one page of a user's trips (newest first) plus the total
// count before paging. An empty title matches everything.
func ListTrips(userID, title string, page, limit int) ([]Trip, int, error) {
	var total int
	err := DB.QueryRow(`
		SELECT COUNT(1) FROM trips
		WHERE user_id = $1 AND title ILIKE '%' || $2 || '%'`, userID, title).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count trips: %w", err)
	}

	rows, err := DB.Query(`
		SELECT id, title FROM trips
		WHERE user_id = $1 AND title ILIKE '%' || $2 || '%'
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`, userID, title, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	trips := []Trip{}
	for rows.Next() {
		var t Trip
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, 0, err
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range trips {
		dests, err := destinationsForTrip(trips[i].ID)
		if err != nil {
			return nil, 0, err
		}
		trips[i].Destinations = dests
	}
	return trips, total, nil
}

func GetTrip(id string) (*Trip, error) {
	t := &Trip{}
	err := DB.QueryRow(`SELECT id, title FROM trips WHERE id = $1`, id).Scan(&t.ID, &t.Title)
	if err != nil {
		return nil, err
	}
	t.Destinations, err = destinationsForTrip(t.ID)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTrip removes the trip (destinations and their attached resources cascade)
// and returns the owner's id so the caller can invalidate that user's list cache.
func DeleteTrip(id string) (string, error) {
	var userID string
	err := DB.QueryRow(`DELETE FROM trips WHERE id = $1 RETURNING user_id`, id).Scan(&userID)
	if err != nil {
		return "", err
	}
	return userID, nil
}

// TripOwner reports the owning user without touching the row.
func TripOwner(id string) (string, error) {
	var userID string
	err := DB.QueryRow(`SELECT user_id FROM trips WHERE id = $1`, id).Scan(&userID)
	return userID, err
}

// GetDestination fetches a single destination by id.
// DestinationOwner resolves the user owning the trip a destination belongs to.
func DestinationOwner(destinationID string) (string, error) {
	var owner string
	err := DB.QueryRow(`
		SELECT t.user_id FROM destinations d
		JOIN trips t ON t.id = d.trip_id
		WHERE d.id = $1`, destinationID).Scan(&owner)
	if err != nil {
		return "", err
	}
	return owner, nil
}

func GetDestination(id string) (*Destination, error) {
	d := &Destination{}
	err := DB.QueryRow(`
		SELECT id, city, state, country, start_date, end_date, latitude, longitude, place_id
		FROM destinations WHERE id = $1`, id).
		Scan(&d.ID, &d.City, &d.State, &d.Country, &d.StartDate, &d.EndDate,
			&d.Latitude, &d.Longitude, &d.PlaceID)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func destinationsForTrip(tripID string) ([]Destination, error) {
	rows, err := DB.Query(`
		SELECT id, city, state, country, start_date, end_date, latitude, longitude, place_id
		FROM destinations WHERE trip_id = $1 ORDER BY position`, tripID)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()

	dests := []Destination{}
	for rows.Next() {
		var d Destination
		if err := rows.Scan(&d.ID, &d.City, &d.State, &d.Country, &d.StartDate, &d.EndDate,
			&d.Latitude, &d.Longitude, &d.PlaceID); err != nil {
			return nil, err
		}
		dests = append(dests, d)
	}
	return dests, rows.Err()
}

var ErrNotFound = sql.ErrNoRows
