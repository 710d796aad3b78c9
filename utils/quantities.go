package utils

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

//
// ===========================================================
//  FOOD QUANTITY CODEC
// ===========================================================
//
// Bookings store their per-item quantities as a compact JSON object,
// e.g. {"1": 2, "3": 1}, keyed by food item ID.

// DecodeFoodQuantities parses the stored quantity text. It never fails:
// empty or malformed input decodes to an empty map, so every item falls
// back to the default quantity of 1 downstream. Legacy rows depend on
// this degrade-to-default path.
func DecodeFoodQuantities(text string) map[uint]int {
	out := map[uint]int{}
	if strings.TrimSpace(text) == "" {
		return out
	}

	var raw map[string]int
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return map[uint]int{}
	}
	for k, v := range raw {
		id, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			// A single bad key poisons the whole mapping, same as a
			// parse failure of the full document.
			return map[uint]int{}
		}
		out[uint(id)] = v
	}
	return out
}

// EncodeFoodQuantities renders the mapping back to its textual form.
// Keys are emitted in ascending ID order so the output is stable.
func EncodeFoodQuantities(quantities map[uint]int) string {
	if len(quantities) == 0 {
		return ""
	}

	ids := make([]uint, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var sb strings.Builder
	sb.WriteByte('{')
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
		sb.WriteString(`":`)
		sb.WriteString(strconv.Itoa(quantities[id]))
	}
	sb.WriteByte('}')
	return sb.String()
}

// QuantityFor returns the quantity for an item, defaulting to 1 when the
// item is absent from the mapping.
func QuantityFor(quantities map[uint]int, itemID uint) int {
	if q, ok := quantities[itemID]; ok {
		return q
	}
	return 1
}
