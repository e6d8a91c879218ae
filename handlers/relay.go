package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"roteiro/database"
	"roteiro/services"
)

// ─── Flight Offers Relay ──────────────────────────────────────────────────────

type flightSearchRequest struct {
	Origin        string `json:"origin" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	DepartureDate string `json:"departureDate" binding:"required"`
	ReturnDate    string `json:"returnDate"`
	Adults        int    `json:"adults" binding:"required,min=1"`
	Children      int    `json:"children"`
	MaxPrice      string `json:"maxPrice"`
	NonStop       bool   `json:"nonStop"`
}

// FlightOffersHandler relays a flight search to Amadeus. Upstream failures
// surface as a fixed client-facing message.
func FlightOffersHandler(c *gin.Context) {
	var req flightSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	client := services.GetAmadeusClient()
	if client == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error searching for flights"})
		return
	}

	result, err := client.SearchFlightOffers(services.FlightSearchRequest{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Adults:        req.Adults,
		Children:      req.Children,
		MaxPrice:      req.MaxPrice,
		NonStop:       req.NonStop,
	})
	if err != nil {
		log.Printf("⚠️  Flight search failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error searching for flights"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ─── Place Details Relay ──────────────────────────────────────────────────────

func PlaceDetailsHandler(c *gin.Context) {
	placeID := c.Param("placeId")
	if placeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing place id"})
		return
	}

	details, err := services.GetPlacesClient().GetPlaceDetails(placeID)
	if err != nil {
		log.Printf("⚠️  Place details failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error fetching place details"})
		return
	}

	c.JSON(http.StatusOK, details)
}

// ─── Health ───────────────────────────────────────────────────────────────────

func HealthHandler(c *gin.Context) {
	dbStatus := "ok"
	if err := database.DB.Ping(); err != nil {
		dbStatus = "unavailable"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": dbStatus,
	})
}
