package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a product name into a URL-safe slug.
// Ampersands become "and", slashes become spaces, every other run of
// non-alphanumeric characters collapses to a single dash.
func Slugify(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.ReplaceAll(s, "/", " ")
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ParsePrice normalizes a decimal-formatted price string to integer minor
// units by dropping the decimal point: "19.99" becomes 1999. A value without
// a decimal point is taken as already normalized.
func ParsePrice(price string) (int64, error) {
	s := strings.TrimSpace(price)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidPrice)
	}
	s = strings.Replace(s, ".", "", 1)

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, price)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNegativePrice, price)
	}
	return v, nil
}
