package controllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateRoomPayload_BindsAmenities(t *testing.T) {
	var payload updateRoomPayload
	require.NoError(t, json.Unmarshal([]byte(`{"roomType":"Deluxe","amenities":["wifi","balcony"]}`), &payload))

	require.NotNil(t, payload.Amenities)
	assert.JSONEq(t, `["wifi","balcony"]`, string(*payload.Amenities))
	assert.Equal(t, "Deluxe", payload.RoomType)
	assert.Nil(t, payload.Available)
}

func TestUpdateRoomPayload_AbsentFieldsStayNil(t *testing.T) {
	// Absent fields stay nil so UpdateRoom leaves them unchanged.
	var payload updateRoomPayload
	require.NoError(t, json.Unmarshal([]byte(`{"available":false}`), &payload))

	assert.Nil(t, payload.Amenities)
	assert.Nil(t, payload.PricePerNight)
	assert.Nil(t, payload.Description)
	require.NotNil(t, payload.Available)
	assert.False(t, *payload.Available)
}
