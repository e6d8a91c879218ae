package database

import (
	"fmt"

	"github.com/google/uuid"
)

type Hotel struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Address Address `json:"address"`
}

func CreateHotel(destinationID string, h *Hotel) error {
	h.ID = uuid.New().String()
	_, err := DB.Exec(`
		INSERT INTO hotels (id, destination_id, name, rating,
			street, number, neighborhood, city, state, country, zipcode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		h.ID, destinationID, h.Name, h.Rating,
		h.Address.Street, h.Address.Number, h.Address.Neighborhood,
		h.Address.City, h.Address.State, h.Address.Country, h.Address.Zipcode)
	if err != nil {
		return fmt.Errorf("insert hotel: %w", err)
	}
	return nil
}

func ListHotels(destinationID string, page, limit int) ([]Hotel, int, error) {
	var total int
	err := DB.QueryRow(`SELECT COUNT(1) FROM hotels WHERE destination_id = $1`,
		destinationID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count hotels: %w", err)
	}

	rows, err := DB.Query(`
		SELECT id, name, rating,
			street, number, neighborhood, city, state, country, zipcode
		FROM hotels WHERE destination_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, destinationID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	hotels := []Hotel{}
	for rows.Next() {
		var h Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Rating,
			&h.Address.Street, &h.Address.Number, &h.Address.Neighborhood,
			&h.Address.City, &h.Address.State, &h.Address.Country, &h.Address.Zipcode); err != nil {
			return nil, 0, err
		}
		hotels = append(hotels, h)
	}
	return hotels, total, rows.Err()
}

// HotelDestination resolves which destination a hotel belongs to.
func HotelDestination(id string) (string, error) {
	var destinationID string
	err := DB.QueryRow(`SELECT destination_id FROM hotels WHERE id = $1`, id).
		Scan(&destinationID)
	if err != nil {
		return "", err
	}
	return destinationID, nil
}

func DeleteHotel(id string) (string, error) {
	var destinationID string
	err := DB.QueryRow(`DELETE FROM hotels WHERE id = $1 RETURNING destination_id`, id).
		Scan(&destinationID)
	if err != nil {
		return "", err
	}
	return destinationID, nil
}
