package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;column:user_id;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`

	Rooms     []Room     `gorm:"many2many:booking_rooms" json:"rooms"`
	FoodItems []FoodItem `gorm:"many2many:booking_food_items" json:"foodItems"`

	// JSON object text, e.g. {"1": 2, "3": 1}; decoded with utils.DecodeFoodQuantities.
	FoodQuantities string `gorm:"column:food_quantities;type:text" json:"foodQuantities,omitempty"`

	CheckInDate  *time.Time `gorm:"column:check_in_date" json:"checkInDate,omitempty"`
	CheckOutDate *time.Time `gorm:"column:check_out_date" json:"checkOutDate,omitempty"`

	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2);not null" json:"totalAmount"`
	Status      BookingStatus   `gorm:"column:status;size:32;not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetStatus overwrites the status unconditionally. There is no transition
// table: an administrative override may move a booking between any two
// states. Callers must go through this setter so a constrained state
// machine can be substituted later without touching them.
func (b *Booking) SetStatus(s BookingStatus) {
	b.Status = s
}
