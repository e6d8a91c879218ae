package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"roteiro/database"
	"roteiro/services"
)

// ─── Create Hotel ─────────────────────────────────────────────────────────────

type createHotelRequest struct {
	DestinationID string  `json:"destinationId" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Rating        float64 `json:"rating"`
	Street        string  `json:"street"`
	Number        string  `json:"number"`
	Neighborhood  string  `json:"neighborhood"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Country       string  `json:"country"`
	Zipcode       string  `json:"zipcode"`
}

func CreateHotelHandler(c *gin.Context) {
	var req createHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	destID := req.DestinationID
	if !requireDestinationOwner(c, destID) {
		return
	}

	dest, err := database.GetDestination(destID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hotel"})
		return
	}

	hotel := &database.Hotel{
		Name:   req.Name,
		Rating: req.Rating,
		Address: database.Address{
			Street:       req.Street,
			Number:       req.Number,
			Neighborhood: req.Neighborhood,
			City:         req.City,
			State:        req.State,
			Country:      req.Country,
			Zipcode:      req.Zipcode,
		},
	}
	if hotel.Address.City == "" {
		hotel.Address.City = dest.City
	}
	if hotel.Address.State == "" {
		hotel.Address.State = dest.State
	}
	if hotel.Address.Country == "" {
		hotel.Address.Country = dest.Country
	}

	if err := database.CreateHotel(destID, hotel); err != nil {
		log.Printf("❌ Failed to create hotel: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hotel"})
		return
	}

	services.Cache().InvalidateFor(c.Request.Context(), services.HotelCreate, destID)
	c.JSON(http.StatusCreated, gin.H{"hotel": hotel})
}

// ─── List Hotels ──────────────────────────────────────────────────────────────

func ListHotelsHandler(c *gin.Context) {
	destID := c.Param("destinationId")
	if !requireDestinationOwner(c, destID) {
		return
	}
	page, limit := parseListParams(c, 4)

	ctx := c.Request.Context()
	key := services.ListKey("hotel", destID, page, limit, "")

	var cached gin.H
	if services.Cache().Get(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	hotels, total, err := database.ListHotels(destID, page, limit)
	if err != nil {
		log.Printf("❌ Failed to list hotels: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list hotels"})
		return
	}

	resp := gin.H{
		"hotel":      hotels,
		"pagination": services.NewPagination(page, limit, total),
	}
	services.Cache().Set(ctx, key, resp)
	c.JSON(http.StatusOK, resp)
}

// ─── Delete Hotel ─────────────────────────────────────────────────────────────

func DeleteHotelHandler(c *gin.Context) {
	id := c.Param("id")

	destID, err := database.HotelDestination(id)
	if err != nil {
		if err == database.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hotel"})
		return
	}
	if !requireDestinationOwner(c, destID) {
		return
	}

	if _, err := database.DeleteHotel(id); err != nil {
		log.Printf("❌ Failed to delete hotel: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hotel"})
		return
	}

	services.Cache().InvalidateFor(c.Request.Context(), services.HotelDelete, destID)
	c.JSON(http.StatusOK, gin.H{"message": "Hotel deleted"})
}
