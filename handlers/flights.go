package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"roteiro/database"
	"roteiro/services"
)

// ─── Create Flight ────────────────────────────────────────────────────────────

type flightSegmentRequest struct {
	AirlineName        string `json:"airlineName" binding:"required"`
	CarrierCode        string `json:"carrierCodeAirline"`
	OriginAirport      string `json:"originAirport" binding:"required"`
	DestinationAirport string `json:"destinationAirport" binding:"required"`
	DepartureAt        string `json:"departureAt"`
	DepartureDate      string `json:"departureDate"`
	DepartureTime      string `json:"departureTime"`
	ArrivalAt          string `json:"arrivalAt"`
	ArrivalDate        string `json:"arrivalDate"`
	ArrivalTime        string `json:"arrivalTime"`
}

type createFlightRequest struct {
	DestinationID     string                 `json:"destinationId" binding:"required"`
	Price             float64                `json:"price" binding:"required"`
	NonStop           bool                   `json:"nonStop"`
	StopNumber        int                    `json:"stopNumber"`
	Duration          string                 `json:"duration"`
	FlightInformation []flightSegmentRequest `json:"flightInformation" binding:"required,min=1"`
}

// segmentTimestamp accepts either a full ISO timestamp or a separate date
// and time pair from the flight form.
func segmentTimestamp(at, date, clock string) string {
	if at != "" {
		return at
	}
	if date != "" && clock != "" {
		return date + "T" + clock
	}
	return date + clock
}

func CreateFlightHandler(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	destID := req.DestinationID
	if !requireDestinationOwner(c, destID) {
		return
	}

	// Stop count must be consistent with the segment list
	if req.StopNumber != len(req.FlightInformation)-1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stopNumber must equal segment count minus one"})
		return
	}
	if req.NonStop != (req.StopNumber == 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nonStop does not match stopNumber"})
		return
	}

	flight := &database.Flight{
		Price:      req.Price,
		NonStop:    req.NonStop,
		StopNumber: req.StopNumber,
		Duration:   req.Duration,
	}
	for i, seg := range req.FlightInformation {
		flight.FlightInformation = append(flight.FlightInformation, database.FlightInfo{
			AirlineName:        seg.AirlineName,
			CarrierCode:        seg.CarrierCode,
			OriginAirport:      seg.OriginAirport,
			DestinationAirport: seg.DestinationAirport,
			DepartureTime:      segmentTimestamp(seg.DepartureAt, seg.DepartureDate, seg.DepartureTime),
			ArrivalTime:        segmentTimestamp(seg.ArrivalAt, seg.ArrivalDate, seg.ArrivalTime),
			Order:              i + 1,
		})
	}

	if err := database.CreateFlight(destID, flight); err != nil {
		log.Printf("❌ Failed to create flight: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create flight"})
		return
	}

	services.Cache().InvalidateFor(c.Request.Context(), services.FlightCreate, destID)
	c.JSON(http.StatusCreated, gin.H{"flight": flight})
}

// ─── List Flights ─────────────────────────────────────────────────────────────

func ListFlightsHandler(c *gin.Context) {
	destID := c.Param("destinationId")
	if !requireDestinationOwner(c, destID) {
		return
	}
	page, limit := parseListParams(c, 4)

	ctx := c.Request.Context()
	key := services.ListKey("flight", destID, page, limit, "")

	var cached gin.H
	if services.Cache().Get(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	flights, total, err := database.ListFlights(destID, page, limit)
	if err != nil {
		log.Printf("❌ Failed to list flights: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list flights"})
		return
	}

	resp := gin.H{
		"flights":    flights,
		"pagination": services.NewPagination(page, limit, total),
	}
	services.Cache().Set(ctx, key, resp)
	c.JSON(http.StatusOK, resp)
}

// ─── Delete Flight ────────────────────────────────────────────────────────────

func DeleteFlightHandler(c *gin.Context) {
	id := c.Param("id")

	destID, err := database.FlightDestination(id)
	if err != nil {
		if err == database.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete flight"})
		return
	}
	if !requireDestinationOwner(c, destID) {
		return
	}

	if _, err := database.DeleteFlight(id); err != nil {
		log.Printf("❌ Failed to delete flight: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete flight"})
		return
	}

	services.Cache().InvalidateFor(c.Request.Context(), services.FlightDelete, destID)
	c.JSON(http.StatusOK, gin.H{"message": "Flight deleted"})
}
