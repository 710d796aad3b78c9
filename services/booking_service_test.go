package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation-backend/models"
)

func TestHealTotal_RecomputesZeroTotal(t *testing.T) {
	// A legacy booking persisted before pricing existed: total zero but
	// priceable rooms and food attached.
	b := models.Booking{
		Rooms:          []models.Room{room(1, "100.00")},
		FoodItems:      []models.FoodItem{foodItem(5, "15.00")},
		FoodQuantities: `{"5": 3}`,
		CheckInDate:    date(2024, 6, 1),
		CheckOutDate:   date(2024, 6, 3),
		TotalAmount:    decimal.Zero,
	}

	healTotal(&b)

	assert.True(t, b.TotalAmount.Equal(decimal.RequireFromString("245.00")), "got %s", b.TotalAmount)
}

func TestHealTotal_LeavesNonzeroTotalAlone(t *testing.T) {
	// A stored nonzero total is authoritative even when the catalog has
	// since changed under it.
	stored := decimal.RequireFromString("999.99")
	b := models.Booking{
		Rooms:       []models.Room{room(1, "100.00")},
		CheckInDate: date(2024, 6, 1),
		CheckOutDate: date(2024, 6, 2),
		TotalAmount: stored,
	}

	healTotal(&b)
	require.True(t, b.TotalAmount.Equal(stored))

	// Healing twice in succession yields the same value both times.
	healTotal(&b)
	assert.True(t, b.TotalAmount.Equal(stored))
}

func TestHealTotal_Idempotent(t *testing.T) {
	b := models.Booking{
		Rooms:        []models.Room{room(1, "100.00")},
		CheckInDate:  date(2024, 6, 1),
		CheckOutDate: date(2024, 6, 3),
	}

	healTotal(&b)
	first := b.TotalAmount
	healTotal(&b)

	require.False(t, first.IsZero())
	assert.True(t, b.TotalAmount.Equal(first))
}

func TestHealTotal_MalformedQuantitiesDefaultToOne(t *testing.T) {
	b := models.Booking{
		FoodItems:      []models.FoodItem{foodItem(1, "10.00"), foodItem(2, "4.00")},
		FoodQuantities: `{"1": oops`,
	}

	healTotal(&b)

	// Every item priced at quantity 1.
	assert.True(t, b.TotalAmount.Equal(decimal.RequireFromString("14.00")), "got %s", b.TotalAmount)
}

func TestHealTotal_NothingPriceableStaysZero(t *testing.T) {
	b := models.Booking{}

	healTotal(&b)

	assert.True(t, b.TotalAmount.IsZero())
}

func TestStatusOverride_ExposesHealedTotal(t *testing.T) {
	// An admin status override returns the booking in the response; a
	// legacy zero total must come back healed there just like on plain
	// reads.
	b := models.Booking{
		Rooms:          []models.Room{room(1, "150.00")},
		FoodItems:      []models.FoodItem{foodItem(2, "12.50")},
		FoodQuantities: `{"2": 2}`,
		CheckInDate:    date(2024, 6, 1),
		CheckOutDate:   date(2024, 6, 4),
		Status:         models.StatusConfirmed,
		TotalAmount:    decimal.Zero,
	}

	b.SetStatus(models.StatusCancelled)
	healTotal(&b)

	assert.Equal(t, models.StatusCancelled, b.Status)
	assert.True(t, b.TotalAmount.Equal(decimal.RequireFromString("475.00")), "got %s", b.TotalAmount)
}

func TestParseBookingDate(t *testing.T) {
	got, err := parseBookingDate("2024-06-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *date(2024, 6, 1), got.UTC())

	got, err = parseBookingDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseBookingDate("01/06/2024")
	assert.Error(t, err)
}
