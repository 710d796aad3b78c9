package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"hotel-reservation-backend/models"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func nullPrice(v string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(v), Valid: true}
}

func room(id uint, price string) models.Room {
	return models.Room{ID: id, PricePerNight: nullPrice(price), Available: true}
}

func foodItem(id uint, price string) models.FoodItem {
	return models.FoodItem{ID: id, Price: nullPrice(price)}
}

func TestComputeBookingTotal_RoomsOnly(t *testing.T) {
	rooms := []models.Room{room(1, "100.00")}

	total := ComputeBookingTotal(rooms, date(2024, 6, 1), date(2024, 6, 4), nil, nil)

	assert.True(t, total.Equal(decimal.RequireFromString("300.00")), "got %s", total)
}

func TestComputeBookingTotal_FoodOnly(t *testing.T) {
	items := []models.FoodItem{foodItem(7, "15.00")}

	got := ComputeBookingTotal(nil, nil, nil, items, map[uint]int{7: 3})
	assert.True(t, got.Equal(decimal.RequireFromString("45.00")), "got %s", got)

	// Absent from the mapping -> default quantity 1.
	got = ComputeBookingTotal(nil, nil, nil, items, map[uint]int{})
	assert.True(t, got.Equal(decimal.RequireFromString("15.00")), "got %s", got)
}

func TestComputeBookingTotal_Additive(t *testing.T) {
	rooms := []models.Room{room(1, "80.00"), room(2, "120.00")}
	items := []models.FoodItem{foodItem(1, "10.00"), foodItem(2, "5.50")}
	checkIn, checkOut := date(2024, 6, 1), date(2024, 6, 3)
	quantities := map[uint]int{2: 4}

	roomCharge := ComputeBookingTotal(rooms, checkIn, checkOut, nil, nil)
	foodCharge := ComputeBookingTotal(nil, nil, nil, items, quantities)
	combined := ComputeBookingTotal(rooms, checkIn, checkOut, items, quantities)

	assert.True(t, combined.Equal(roomCharge.Add(foodCharge)),
		"combined %s != %s + %s", combined, roomCharge, foodCharge)
}

func TestComputeBookingTotal_ConcreteScenario(t *testing.T) {
	// Room 100/night for 2 nights plus one food item 15 at quantity 3.
	rooms := []models.Room{room(1, "100.00")}
	items := []models.FoodItem{foodItem(9, "15.00")}

	total := ComputeBookingTotal(rooms, date(2024, 6, 1), date(2024, 6, 3), items, map[uint]int{9: 3})

	assert.True(t, total.Equal(decimal.RequireFromString("245.00")), "got %s", total)
}

func TestComputeBookingTotal_MissingDatesSkipRoomCharge(t *testing.T) {
	rooms := []models.Room{room(1, "100.00")}
	items := []models.FoodItem{foodItem(1, "20.00")}

	for _, tc := range []struct {
		name             string
		checkIn, checkOut *time.Time
	}{
		{"no dates", nil, nil},
		{"check-in only", date(2024, 6, 1), nil},
		{"check-out only", nil, date(2024, 6, 3)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			total := ComputeBookingTotal(rooms, tc.checkIn, tc.checkOut, items, nil)
			assert.True(t, total.Equal(decimal.RequireFromString("20.00")), "got %s", total)
		})
	}
}

func TestComputeBookingTotal_NullPricesChargeZero(t *testing.T) {
	rooms := []models.Room{{ID: 1}, room(2, "50.00")}
	items := []models.FoodItem{{ID: 1}, foodItem(2, "10.00")}

	total := ComputeBookingTotal(rooms, date(2024, 6, 1), date(2024, 6, 2), items, nil)

	assert.True(t, total.Equal(decimal.RequireFromString("60.00")), "got %s", total)
}

func TestComputeBookingTotal_IgnoresAvailabilityFlag(t *testing.T) {
	// Availability is not enforced anywhere in pricing or creation; an
	// unavailable room still prices normally.
	unavailable := room(1, "100.00")
	unavailable.Available = false

	total := ComputeBookingTotal([]models.Room{unavailable}, date(2024, 6, 1), date(2024, 6, 2), nil, nil)

	assert.True(t, total.Equal(decimal.RequireFromString("100.00")), "got %s", total)
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int64
	}{
		{"two nights", *date(2024, 6, 1), *date(2024, 6, 3), 2},
		{"one night", *date(2024, 6, 1), *date(2024, 6, 2), 1},
		{"same day floors to one", *date(2024, 6, 1), *date(2024, 6, 1), 1},
		{"inverted range floors to one", *date(2024, 6, 3), *date(2024, 6, 1), 1},
		{"across month boundary", *date(2024, 6, 29), *date(2024, 7, 2), 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NightsBetween(tc.checkIn, tc.checkOut))
		})
	}
}

func TestComputeBookingTotal_NoAccumulationError(t *testing.T) {
	// 0.10 a hundred times must be exactly 10.00.
	items := make([]models.FoodItem, 0, 100)
	for i := uint(1); i <= 100; i++ {
		items = append(items, foodItem(i, "0.10"))
	}

	total := ComputeBookingTotal(nil, nil, nil, items, nil)

	assert.True(t, total.Equal(decimal.RequireFromString("10.00")), "got %s", total)
}
