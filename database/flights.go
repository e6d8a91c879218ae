package database

import (
	"fmt"

	"github.com/google/uuid"
)

// FlightInfo is one stored segment of a flight, ordered 1-based.
type FlightInfo struct {
	ID                 string `json:"id"`
	AirlineName        string `json:"airlineName"`
	CarrierCode        string `json:"carrierCodeAirline,omitempty"`
	OriginAirport      string `json:"originAirport"`
	DestinationAirport string `json:"destinationAirport"`
	DepartureTime      string `json:"departureTime"`
	ArrivalTime        string `json:"arrivalTime"`
	Order              int    `json:"order"`
}

type Flight struct {
	ID                string       `json:"id"`
	StopNumber        int          `json:"stopNumber"`
	NonStop           bool         `json:"nonStop"`
	Duration          string       `json:"duration,omitempty"`
	Price             float64      `json:"price"`
	FlightInformation []FlightInfo `json:"flightInformation"`
}

// CreateFlight inserts the flight and all its segments in one transaction.
func CreateFlight(destinationID string, f *Flight) error {
	f.ID = uuid.New().String()
	tx, err := DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO flights (id, destination_id, stop_number, non_stop, duration, price)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		f.ID, destinationID, f.StopNumber, f.NonStop, f.Duration, f.Price); err != nil {
		return fmt.Errorf("insert flight: %w", err)
	}

	for i := range f.FlightInformation {
		s := &f.FlightInformation[i]
		s.ID = uuid.New().String()
		if _, err := tx.Exec(`
			INSERT INTO flight_segments (id, flight_id, airline_name, carrier_code,
				origin_airport, destination_airport, departure_at, arrival_at, segment_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			s.ID, f.ID, s.AirlineName, s.CarrierCode,
			s.OriginAirport, s.DestinationAirport, s.DepartureTime, s.ArrivalTime, s.Order); err != nil {
			return fmt.Errorf("insert flight segment: %w", err)
		}
	}

	return tx.Commit()
}

func ListFlights(destinationID string, page, limit int) ([]Flight, int, error) {
	var total int
	err := DB.QueryRow(`SELECT COUNT(1) FROM flights WHERE destination_id = $1`,
		destinationID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count flights: %w", err)
	}

	rows, err := DB.Query(`
		SELECT id, stop_number, non_stop, duration, price
		FROM flights WHERE destination_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, destinationID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list flights: %w", err)
	}
	defer rows.Close()

	flights := []Flight{}
	for rows.Next() {
		var f Flight
		if err := rows.Scan(&f.ID, &f.StopNumber, &f.NonStop, &f.Duration, &f.Price); err != nil {
			return nil, 0, err
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range flights {
		segs, err := segmentsForFlight(flights[i].ID)
		if err != nil {
			return nil, 0, err
		}
		flights[i].FlightInformation = segs
	}
	return flights, total, nil
}

// FlightDestination resolves which destination a flight belongs to.
func FlightDestination(id string) (string, error) {
	var destinationID string
	err := DB.QueryRow(`SELECT destination_id FROM flights WHERE id = $1`, id).
		Scan(&destinationID)
	if err != nil {
		return "", err
	}
	return destinationID, nil
}

func DeleteFlight(id string) (string, error) {
	var destinationID string
	err := DB.QueryRow(`DELETE FROM flights WHERE id = $1 RETURNING destination_id`, id).
		Scan(&destinationID)
	if err != nil {
		return "", err
	}
	return destinationID, nil
}

func segmentsForFlight(flightID string) ([]FlightInfo, error) {
	rows, err := DB.Query(`
		SELECT id, airline_name, carrier_code, origin_airport, destination_airport,
			departure_at, arrival_at, segment_order
		FROM flight_segments WHERE flight_id = $1 ORDER BY segment_order`, flightID)
	if err != nil {
		return nil, fmt.Errorf("list flight segments: %w", err)
	}
	defer rows.Close()

	segs := []FlightInfo{}
	for rows.Next() {
		var s FlightInfo
		if err := rows.Scan(&s.ID, &s.AirlineName, &s.CarrierCode, &s.OriginAirport,
			&s.DestinationAirport, &s.DepartureTime, &s.ArrivalTime, &s.Order); err != nil {
			return nil, err
		}
		segs = append(segs, s)
	}
	return segs, rows.Err()
}
