package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/models"
	"hotel-reservation-backend/services"
)

// AdminController serves the role-gated administration endpoints. Booking
// reads go through BookingService so stored totals are healed before
// anything is aggregated or returned.
type AdminController struct {
	BookingSvc *services.BookingService
}

func NewAdminController(svc *services.BookingService) *AdminController {
	return &AdminController{BookingSvc: svc}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ---------------------------
// Listings
// ---------------------------

func (ctrl *AdminController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		log.Printf("GetAllUsers error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctrl *AdminController) GetAllRooms(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.Find(&rooms).Error; err != nil {
		log.Printf("GetAllRooms error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (ctrl *AdminController) GetAllFoodItems(c *gin.Context) {
	var items []models.FoodItem
	if err := config.DB.Find(&items).Error; err != nil {
		log.Printf("GetAllFoodItems error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch food items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ctrl *AdminController) GetAllBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.GetAll()
	if err != nil {
		log.Printf("GetAllBookings error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ---------------------------
// Statistics
// ---------------------------

// GetStats aggregates over healed booking totals, so revenue never counts
// a stale zero for a priceable booking.
func (ctrl *AdminController) GetStats(c *gin.Context) {
	var totalUsers, totalRooms, availableRooms, totalFoodItems int64
	config.DB.Model(&models.User{}).Count(&totalUsers)
	config.DB.Model(&models.Room{}).Count(&totalRooms)
	config.DB.Model(&models.Room{}).Where("available = ?", true).Count(&availableRooms)
	config.DB.Model(&models.FoodItem{}).Count(&totalFoodItems)

	bookings, err := ctrl.BookingSvc.GetAll()
	if err != nil {
		log.Printf("GetStats error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate stats"})
		return
	}

	byStatus := map[models.BookingStatus]int{}
	totalRevenue := decimal.Zero
	for i := range bookings {
		byStatus[bookings[i].Status]++
		totalRevenue = totalRevenue.Add(bookings[i].TotalAmount)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":        totalUsers,
		"totalRooms":        totalRooms,
		"availableRooms":    availableRooms,
		"bookedRooms":       totalRooms - availableRooms,
		"totalFoodItems":    totalFoodItems,
		"totalBookings":     len(bookings),
		"pendingBookings":   byStatus[models.StatusPending],
		"confirmedBookings": byStatus[models.StatusConfirmed],
		"cancelledBookings": byStatus[models.StatusCancelled],
		"completedBookings": byStatus[models.StatusCompleted],
		"totalRevenue":      totalRevenue,
	})
}

// ---------------------------
// Rooms
// ---------------------------

type updateRoomPayload struct {
	RoomNumber    string               `json:"roomNumber"`
	RoomType      string               `json:"roomType"`
	PricePerNight *decimal.NullDecimal `json:"pricePerNight"`
	Available     *bool                `json:"available"`
	Description   *string              `json:"description"`
	Amenities     *datatypes.JSON      `json:"amenities"`
}

func (ctrl *AdminController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	if payload.RoomNumber != "" {
		room.RoomNumber = payload.RoomNumber
	}
	if payload.RoomType != "" {
		room.RoomType = payload.RoomType
	}
	if payload.PricePerNight != nil {
		room.PricePerNight = *payload.PricePerNight
	}
	if payload.Available != nil {
		room.Available = *payload.Available
	}
	if payload.Description != nil {
		room.Description = *payload.Description
	}
	if payload.Amenities != nil {
		room.Amenities = *payload.Amenities
	}

	if err := config.DB.Save(&room).Error; err != nil {
		log.Printf("UpdateRoom error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, room)
}

// UpdateRoomAvailability toggles the informational availability flag;
// existing bookings are untouched.
func (ctrl *AdminController) UpdateRoomAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	available, err := strconv.ParseBool(c.Query("available"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "available query param required"})
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	room.Available = available
	if err := config.DB.Save(&room).Error; err != nil {
		log.Printf("UpdateRoomAvailability error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, room)
}

type updateRoomPricePayload struct {
	PricePerNight decimal.Decimal `json:"pricePerNight" binding:"required"`
}

// UpdateRoomPrice changes the nightly price. Already-stored booking
// totals are not recomputed; only the lazy on-load healing path can pick
// up the new price, and only while a stored total is still zero.
func (ctrl *AdminController) UpdateRoomPrice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateRoomPricePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pricePerNight required", "details": err.Error()})
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	room.PricePerNight = decimal.NullDecimal{Decimal: payload.PricePerNight, Valid: true}
	if err := config.DB.Save(&room).Error; err != nil {
		log.Printf("UpdateRoomPrice error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            room.ID,
		"roomNumber":    room.RoomNumber,
		"pricePerNight": room.PricePerNight,
		"message":       "Price updated successfully",
	})
}

func (ctrl *AdminController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		log.Printf("DeleteRoom error: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete room"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------------------------
// Food items
// ---------------------------

func (ctrl *AdminController) CreateFoodItem(c *gin.Context) {
	var item models.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		log.Printf("CreateFoodItem error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create food item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

type updateFoodItemPayload struct {
	Name    string               `json:"name"`
	Cuisine string               `json:"cuisine"`
	Price   *decimal.NullDecimal `json:"price"`
}

func (ctrl *AdminController) UpdateFoodItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateFoodItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	var item models.FoodItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food item not found"})
		return
	}

	if payload.Name != "" {
		item.Name = payload.Name
	}
	if payload.Cuisine != "" {
		item.Cuisine = payload.Cuisine
	}
	if payload.Price != nil {
		item.Price = *payload.Price
	}

	if err := config.DB.Save(&item).Error; err != nil {
		log.Printf("UpdateFoodItem error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ctrl *AdminController) DeleteFoodItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Delete(&models.FoodItem{}, id)
	if result.Error != nil {
		log.Printf("DeleteFoodItem error: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete food item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "food item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------------------------
// Bookings
// ---------------------------

type updateStatusPayload struct {
	Status string `json:"status"`
}

// UpdateBookingStatus applies the administrative override. The status
// comes from the ?status= query param, or a {"status": "..."} body as a
// fallback; unknown names get 400, never a silent default.
func (ctrl *AdminController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	statusText := c.Query("status")
	if statusText == "" {
		var payload updateStatusPayload
		if err := c.ShouldBindJSON(&payload); err == nil {
			statusText = payload.Status
		}
	}

	booking, err := ctrl.BookingSvc.UpdateStatus(id, statusText)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		default:
			log.Printf("UpdateBookingStatus error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (ctrl *AdminController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.BookingSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		log.Printf("DeleteBooking error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete booking"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------------------------
// Users
// ---------------------------

func (ctrl *AdminController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		log.Printf("DeleteUser error: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetUserDetails returns a user with booking history and total spent
// (summed over healed totals).
func (ctrl *AdminController) GetUserDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	bookings, err := ctrl.BookingSvc.GetByUser(user.ID)
	if err != nil {
		log.Printf("GetUserDetails error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}

	totalSpent := decimal.Zero
	for i := range bookings {
		totalSpent = totalSpent.Add(bookings[i].TotalAmount)
	}

	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"bookings":      bookings,
		"totalBookings": len(bookings),
		"totalSpent":    totalSpent,
	})
}
