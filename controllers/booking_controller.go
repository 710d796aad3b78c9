// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"

	"hotel-reservation-backend/middleware"
	"hotel-reservation-backend/models"
	"hotel-reservation-backend/services"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

// CreateBookingRequest accepts both food selection shapes the frontend
// sends: structured foodItems with quantities, or a flat foodItemIds list
// meaning quantity 1 each. TotalAmount is bound but never trusted — the
// server recomputes it.
type CreateBookingRequest struct {
	RoomIDs        []uint                       `json:"roomIds"`
	FoodItemIDs    []uint                       `json:"foodItemIds"`
	FoodItems      []services.FoodItemSelection `json:"foodItems"`
	FoodQuantities string                       `json:"foodQuantities"`
	TotalAmount    *decimal.Decimal             `json:"totalAmount"`
	CheckInDate    string                       `json:"checkInDate"`
	CheckOutDate   string                       `json:"checkOutDate"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking handles POST /api/bookings.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("CreateBooking bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "User not found or not authenticated"})
		return
	}

	booking, err := ctrl.BookingSvc.Create(services.CreateBookingInput{
		UserID:         userID,
		RoomIDs:        payload.RoomIDs,
		FoodItemIDs:    payload.FoodItemIDs,
		FoodItems:      payload.FoodItems,
		FoodQuantities: payload.FoodQuantities,
		CheckInDate:    payload.CheckInDate,
		CheckOutDate:   payload.CheckOutDate,
	})
	if err != nil {
		log.Printf("Service error creating booking: %v", err)
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusForbidden, gin.H{"error": "User not found or not authenticated"})
		case strings.Contains(err.Error(), "validation"):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create booking", "details": err.Error()})
		case isForeignKeyError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": "foreign key constraint", "details": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     booking.ID,
		"status": booking.Status,
		"total":  booking.TotalAmount,
	})
}

// GetMyBookings handles GET /api/bookings for the calling user.
func (ctrl *BookingController) GetMyBookings(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "User not found or not authenticated"})
		return
	}

	bookings, err := ctrl.BookingSvc.GetByUser(userID)
	if err != nil {
		log.Printf("GetMyBookings error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingDetails handles GET /api/bookings/:id. Owners see their own
// bookings; admins see any.
func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := ctrl.BookingSvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		log.Printf("GetBookingDetails error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}

	userID, _ := middleware.UserID(c)
	role, _ := c.Get("role")
	if booking.UserID != userID && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ---------------------------
// Helper: detect MySQL FK error
// ---------------------------
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1452
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "foreign key") || strings.Contains(lower, "1452")
}
