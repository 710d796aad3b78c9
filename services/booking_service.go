// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"
)

var (
	// ErrUserNotFound aborts booking creation before anything is written.
	ErrUserNotFound = errors.New("user not found")

	ErrBookingNotFound = errors.New("booking not found")
)

// BookingService wraps *gorm.DB and owns the booking pricing/lifecycle
// logic: creation, self-healing reads and status overrides.
type BookingService struct {
	DB       *gorm.DB
	Notifier Notifier // optional, best-effort
}

func NewBookingService(db *gorm.DB, notifier Notifier) *BookingService {
	return &BookingService{DB: db, Notifier: notifier}
}

// FoodItemSelection is one entry of the structured food request shape.
// Quantity is a pointer so an absent quantity (default 1) is
// distinguishable from an explicit zero.
type FoodItemSelection struct {
	FoodItemID uint `json:"foodItemId"`
	Quantity   *int `json:"quantity"`
}

// CreateBookingInput carries the creation payload. TotalAmount from the
// client is deliberately absent: the server-side computed total is the
// only authority.
type CreateBookingInput struct {
	UserID         uint
	RoomIDs        []uint
	FoodItemIDs    []uint
	FoodItems      []FoodItemSelection // takes precedence over FoodItemIDs
	FoodQuantities string              // raw JSON object text
	CheckInDate    string              // "2006-01-02", optional
	CheckOutDate   string              // "2006-01-02", optional
}

func parseBookingDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("validation: invalid date %q: %w", value, err)
	}
	return &t, nil
}

// Create resolves the referenced entities, prices the stay, persists the
// booking with CONFIRMED status and notifies the user best-effort.
//
// Unknown room/food IDs are silently dropped rather than rejected, and no
// availability or date-overlap check is made: two concurrent requests for
// the same room and dates both succeed.
func (s *BookingService) Create(input CreateBookingInput) (models.Booking, error) {
	var booking models.Booking

	var user models.User
	if err := s.DB.First(&user, input.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, ErrUserNotFound
		}
		return booking, fmt.Errorf("db error checking user: %w", err)
	}

	checkIn, err := parseBookingDate(input.CheckInDate)
	if err != nil {
		return booking, err
	}
	checkOut, err := parseBookingDate(input.CheckOutDate)
	if err != nil {
		return booking, err
	}

	rooms := []models.Room{}
	if len(input.RoomIDs) > 0 {
		if err := s.DB.Where("id IN ?", input.RoomIDs).Find(&rooms).Error; err != nil {
			return booking, fmt.Errorf("failed to load rooms: %w", err)
		}
	}

	// Structured foodItems entries win over the flat ID list; the flat
	// list implies quantity 1 for every item.
	foodItems := []models.FoodItem{}
	quantities := map[uint]int{}
	encodedQuantities := input.FoodQuantities
	if len(input.FoodItems) > 0 {
		ids := make([]uint, 0, len(input.FoodItems))
		for _, sel := range input.FoodItems {
			if sel.FoodItemID == 0 {
				continue
			}
			ids = append(ids, sel.FoodItemID)
			if sel.Quantity != nil {
				quantities[sel.FoodItemID] = *sel.Quantity
			}
		}
		if len(ids) > 0 {
			if err := s.DB.Where("id IN ?", ids).Find(&foodItems).Error; err != nil {
				return booking, fmt.Errorf("failed to load food items: %w", err)
			}
		}
		encodedQuantities = utils.EncodeFoodQuantities(quantities)
	} else if len(input.FoodItemIDs) > 0 {
		if err := s.DB.Where("id IN ?", input.FoodItemIDs).Find(&foodItems).Error; err != nil {
			return booking, fmt.Errorf("failed to load food items: %w", err)
		}
	}

	booking = models.Booking{
		UserID:         user.ID,
		Rooms:          rooms,
		FoodItems:      foodItems,
		FoodQuantities: encodedQuantities,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		TotalAmount:    ComputeBookingTotal(rooms, checkIn, checkOut, foodItems, quantities),
	}
	booking.SetStatus(models.StatusConfirmed)

	// GORM wraps the booking row plus its join-table memberships in a
	// single transaction.
	if err := s.DB.Create(&booking).Error; err != nil {
		return booking, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.Notifier != nil {
		if notifyErr := s.Notifier.SendBookingConfirmation(&booking, &user); notifyErr != nil {
			log.Printf("warning: confirmation notify failed for booking %d: %v", booking.ID, notifyErr)
		}
	}

	return booking, nil
}

// healTotal is the explicit post-read hook: a zero or missing stored
// total is recomputed from the currently loaded rooms, food items, dates
// and quantities. The healed value is authoritative for this read but is
// not written back.
func healTotal(b *models.Booking) {
	if !b.TotalAmount.IsZero() {
		return
	}
	quantities := utils.DecodeFoodQuantities(b.FoodQuantities)
	b.TotalAmount = ComputeBookingTotal(b.Rooms, b.CheckInDate, b.CheckOutDate, b.FoodItems, quantities)
}

// GetByID loads one booking with its relations, healed.
func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var b models.Booking
	if err := s.DB.Preload("Rooms").Preload("FoodItems").Preload("User").First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	healTotal(&b)
	return &b, nil
}

// GetAll returns every booking with relations, healed, newest first.
func (s *BookingService) GetAll() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Rooms").
		Preload("FoodItems").
		Preload("User").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	for i := range list {
		healTotal(&list[i])
	}
	return list, nil
}

// GetByUser returns one user's bookings, healed, newest first.
func (s *BookingService) GetByUser(userID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Rooms").
		Preload("FoodItems").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	for i := range list {
		healTotal(&list[i])
	}
	return list, nil
}

// UpdateStatus applies an administrative status override. The text is
// matched case-insensitively; unrecognized text surfaces
// models.ErrUnknownStatus instead of being coerced.
func (s *BookingService) UpdateStatus(id uint, statusText string) (*models.Booking, error) {
	status, err := models.ParseBookingStatus(statusText)
	if err != nil {
		return nil, err
	}

	var b models.Booking
	if err := s.DB.Preload("Rooms").Preload("FoodItems").First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	b.SetStatus(status)
	if err := s.DB.Model(&b).Update("status", b.Status).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	// The override response exposes the booking like any other read, so
	// a legacy zero total is healed here too.
	healTotal(&b)
	return &b, nil
}

// Delete removes a booking (administrative only).
func (s *BookingService) Delete(id uint) error {
	result := s.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
