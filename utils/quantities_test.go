package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeFoodQuantities(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[uint]int
	}{
		{"empty string", "", map[uint]int{}},
		{"whitespace only", "   ", map[uint]int{}},
		{"valid object", `{"1": 2, "3": 1}`, map[uint]int{1: 2, 3: 1}},
		{"malformed json", `{"1": 2,`, map[uint]int{}},
		{"not an object", `[1, 2, 3]`, map[uint]int{}},
		{"non-numeric key poisons mapping", `{"abc": 2, "1": 5}`, map[uint]int{}},
		{"non-integer value", `{"1": "two"}`, map[uint]int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeFoodQuantities(tc.text))
		})
	}
}

func TestEncodeFoodQuantities(t *testing.T) {
	assert.Equal(t, "", EncodeFoodQuantities(nil))
	assert.Equal(t, "", EncodeFoodQuantities(map[uint]int{}))

	// Stable key order.
	assert.Equal(t, `{"1":2,"3":1,"10":4}`, EncodeFoodQuantities(map[uint]int{3: 1, 10: 4, 1: 2}))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := map[uint]int{2: 3, 7: 1}
	assert.Equal(t, in, DecodeFoodQuantities(EncodeFoodQuantities(in)))
}

func TestQuantityFor(t *testing.T) {
	m := map[uint]int{4: 6}
	assert.Equal(t, 6, QuantityFor(m, 4))
	assert.Equal(t, 1, QuantityFor(m, 99), "absent item defaults to 1")
	assert.Equal(t, 1, QuantityFor(nil, 1))
}
