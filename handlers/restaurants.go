package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"roteiro/database"
	"roteiro/services"
)

// ─── Create Restaurant ────────────────────────────────────────────────────────

type createRestaurantRequest struct {
	DestinationID string  `json:"destinationId" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Rating        float64 `json:"rating"`
	PriceLevel    int     `json:"priceLevel"`
	Street        string  `json:"street"`
	Number        string  `json:"number"`
	Neighborhood  string  `json:"neighborhood"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Country       string  `json:"country"`
	Zipcode       string  `json:"zipcode"`
}

func CreateRestaurantHandler(c *gin.Context) {
	var req createRestaurantRequest
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}

	restaurant := &database.Restaurant{
		Name:       req.Name,
		Rating:     req.Rating,
		PriceLevel: req.PriceLevel,
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
	if restaurant.Address.City == "" {
		restaurant.Address.City = dest.City
	}
	if restaurant.Address.State == "" {
		restaurant.Address.State = dest.State
	}
	if restaurant.Address.Country == "" {
		restaurant.Address.Country = dest.Country
	}

	if err := database.CreateRestaurant(destID, restaurant); err != nil {
		log.Printf("❌ Failed to create restaurant: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}

	services.Cache().InvalidateFor(c.Request.Context(), services.RestaurantCreate, destID)
	c.JSON(http.StatusCreated, gin.H{"restaurant": restaurant})
}

// ─── List Restaurants ─────────────────────────────────────────────────────────

func ListRestaurantsHandler(c *gin.Context) {
	destID := c.Param("destinationId")
	if !requireDestinationOwner(c, destID) {
		return
	}
	page, limit := parseListParams(c, 4)

	ctx := c.Request.Context()
	key := services.ListKey("restaurant", destID, page, limit, "")

	var cached gin.H
	if services.Cache().Get(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	restaurants, total, err := database.ListRestaurants(destID, page, limit)
	if err != nil {
		log.Printf("❌ Failed to list restaurants: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list restaurants"})
		return
	}

	resp := gin.H{
		"restaurant": restaurants,
		"pagination": services.NewPagination(page, limit, total),
	}
	services.Cache().Set(ctx, key, resp)
	c.JSON(http.StatusOK, resp)
}

// ─── Delete Restaurant ────────────────────────────────────────────────────────

func DeleteRestaurantHandler(c *gin.Context) {
	id := c.Param("id")

	destID, err := database.RestaurantDestination(id)
	if err != nil {
		if err == database.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete restaurant"})
		return
	}
	if !requireDestinationOwner(c, destID) {
		return
	}

	if _, err := database.DeleteRestaurant(id); err != nil {
		log.Printf("❌ Failed to delete restaurant: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete restaurant"})
		return
	}

	services.Cache().InvalidateFor(c.Request.Context(), services.RestaurantDelete, destID)
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
}
