package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"
)

// ----------------------------------------------------
// Public catalog: food items (GET /api/food-items)
// ----------------------------------------------------

func GetFoodItems(c *gin.Context) {
	var items []models.FoodItem
	if err := config.DB.Find(&items).Error; err != nil {
		log.Printf("GetFoodItems error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch food items")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}
