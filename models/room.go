package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	RoomType   string `json:"roomType" gorm:"column:room_type;size:64"`

	// Nullable on purpose: legacy rows have no price and must charge zero.
	PricePerNight decimal.NullDecimal `json:"pricePerNight" gorm:"column:price_per_night;type:decimal(10,2)"`

	// Availability is informational only; nothing blocks booking an
	// unavailable room (see booking_service.go).
	Available bool `json:"available" gorm:"column:available;default:true"`

	Amenities   datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`
	Description string         `json:"description" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
