package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FoodItem struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Cuisine string `gorm:"size:128" json:"cuisine"`

	// Nullable like Room.PricePerNight; a null price contributes zero.
	Price decimal.NullDecimal `json:"price" gorm:"type:decimal(10,2)"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
