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
// Public catalog: rooms (GET /api/rooms)
// ----------------------------------------------------

func GetRooms(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.Where("available = ?", true).Find(&rooms).Error; err != nil {
		log.Printf("GetRooms error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}
