package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Cost        float64   `json:"cost"`
	Address     Address   `json:"address"`
}

func CreateActivity(destinationID string, a *Activity, cost *float64) error {
	a.ID = uuid.New().String()
	var c sql.NullFloat64
	if cost != nil {
		c = sql.NullFloat64{Float64: *cost, Valid: true}
	}
	_, err := DB.Exec(`
		INSERT INTO activities (id, destination_id, title, description, start_date, end_date, cost,
			street, number, neighborhood, city, state, country, zipcode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		a.ID, destinationID, a.Title, a.Description, a.StartDate, a.EndDate, c,
		a.Address.Street, a.Address.Number, a.Address.Neighborhood,
		a.Address.City, a.Address.State, a.Address.Country, a.Address.Zipcode)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListActivities returns one page of a destination's activities ordered by
// start date, plus the total count before paging.
func ListActivities(destinationID string, page, limit int) ([]Activity, int, error) {
	var total int
	err := DB.QueryRow(`SELECT COUNT(1) FROM activities WHERE destination_id = $1`,
		destinationID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count activities: %w", err)
	}

	rows, err := DB.Query(`
		SELECT id, title, description, start_date, end_date, cost,
			street, number, neighborhood, city, state, country, zipcode
		FROM activities WHERE destination_id = $1
		ORDER BY start_date
		LIMIT $2 OFFSET $3`, destinationID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	activities := []Activity{}
	for rows.Next() {
		var a Activity
		var cost sql.NullFloat64
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.StartDate, &a.EndDate, &cost,
			&a.Address.Street, &a.Address.Number, &a.Address.Neighborhood,
			&a.Address.City, &a.Address.State, &a.Address.Country, &a.Address.Zipcode); err != nil {
			return nil, 0, err
		}
		if cost.Valid {
			a.Cost = cost.Float64
		}
		activities = append(activities, a)
	}
	return activities, total, rows.Err()
}

// DeleteActivity removes the row and returns its destination id so the caller
// can invalidate exactly that destination's activity cache.
// ActivityDestination resolves which destination an activity belongs to.
func ActivityDestination(id string) (string, error) {
	var destinationID string
	err := DB.QueryRow(`SELECT destination_id FROM activities WHERE id = $1`, id).
		Scan(&destinationID)
	if err != nil {
		return "", err
	}
	return destinationID, nil
}

func DeleteActivity(id string) (string, error) {
	var destinationID string
	err := DB.QueryRow(`DELETE FROM activities WHERE id = $1 RETURNING destination_id`, id).
		Scan(&destinationID)
	if err != nil {
		return "", err
	}
	return destinationID, nil
}
