package services

import (
	"time"

	"github.com/shopspring/decimal"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"
)

// ComputeBookingTotal prices a stay: every room charges its nightly price
// for the full stay length, every food item charges price × quantity.
// Null prices contribute zero, and the room charge is zero entirely when
// either date is missing. Pure function, exact decimal arithmetic, no
// error conditions.
func ComputeBookingTotal(
	rooms []models.Room,
	checkIn, checkOut *time.Time,
	foodItems []models.FoodItem,
	quantities map[uint]int,
) decimal.Decimal {
	total := decimal.Zero

	if checkIn != nil && checkOut != nil {
		nights := decimal.NewFromInt(NightsBetween(*checkIn, *checkOut))
		for _, room := range rooms {
			if room.PricePerNight.Valid {
				total = total.Add(room.PricePerNight.Decimal.Mul(nights))
			}
		}
	}

	for _, item := range foodItems {
		if !item.Price.Valid {
			continue
		}
		qty := utils.QuantityFor(quantities, item.ID)
		total = total.Add(item.Price.Decimal.Mul(decimal.NewFromInt(int64(qty))))
	}

	return total
}

// NightsBetween counts calendar days between the two dates, floored to a
// minimum of 1: same-day and inverted ranges still bill one night.
func NightsBetween(checkIn, checkOut time.Time) int64 {
	ci := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	co := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	nights := int64(co.Sub(ci).Hours() / 24)
	if nights <= 0 {
		nights = 1
	}
	return nights
}
