package database

import (
	"fmt"

	"github.com/google/uuid"
)

type Restaurant struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	PriceLevel int     `json:"priceLevel"`
	Address    Address `json:"address"`
}

func CreateRestaurant(destinationID string, r *Restaurant) error {
	r.ID = uuid.New().String()
	_, err := DB.Exec(`
		INSERT INTO restaurants (id, destination_id, name, rating, price_level,
			street, number, neighborhood, city, state, country, zipcode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		r.ID, destinationID, r.Name, r.Rating, r.PriceLevel,
		r.Address.Street, r.Address.Number, r.Address.Neighborhood,
		r.Address.City, r.Address.State, r.Address.Country, r.Address.Zipcode)
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

func ListRestaurants(destinationID string, page, limit int) ([]Restaurant, int, error) {
	var total int
	err := DB.QueryRow(`SELECT COUNT(1) FROM restaurants WHERE destination_id = $1`,
		destinationID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count restaurants: %w", err)
	}

	rows, err := DB.Query(`
		SELECT id, name, rating, price_level,
			street, number, neighborhood, city, state, country, zipcode
		FROM restaurants WHERE destination_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, destinationID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := []Restaurant{}
	for rows.Next() {
		var r Restaurant
		if err := rows.Scan(&r.ID, &r.Name, &r.Rating, &r.PriceLevel,
			&r.Address.Street, &r.Address.Number, &r.Address.Neighborhood,
			&r.Address.City, &r.Address.State, &r.Address.Country, &r.Address.Zipcode); err != nil {
			return nil, 0, err
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, total, rows.Err()
}

// RestaurantDestination resolves which destination a restaurant belongs to.
func RestaurantDestination(id string) (string, error) {
	var destinationID string
	err := DB.QueryRow(`SELECT destination_id FROM restaurants WHERE id = $1`, id).
		Scan(&destinationID)
	if err != nil {
		return "", err
	}
	return destinationID, nil
}

func DeleteRestaurant(id string) (string, error) {
	var destinationID string
	err := DB.QueryRow(`DELETE FROM restaurants WHERE id = $1 RETURNING destination_id`, id).
		Scan(&destinationID)
	if err != nil {
		return "", err
	}
	return destinationID, nil
}
