package util

import (
	"strconv"
)

// ParseID converts a string id (path param or bulk payload entry) to the
// numeric id used by catalog tables. Returns false for anything that is
// not a positive integer.
func ParseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// MustParseUint converts a string to an unsigned integer, returning 0 on
// failure.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}
