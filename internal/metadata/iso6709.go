package metadata

import (
	"fmt"
	"regexp"
	"strconv"

	"photosync/internal/storage"
)

// iso6709 matches the leading latitude and longitude of an ISO 6709 string
// such as "+37.3349-122.0090+064.123/". Altitude is ignored.
var iso6709 = regexp.MustCompile(`^([+-]\d{1,2}(?:\.\d+)?)([+-]\d{1,3}(?:\.\d+)?)`)

// ParseISO6709 parses a decimal-degree ISO 6709 location.
func ParseISO6709(s string) (storage.Location, error) {
	m := iso6709.FindStringSubmatch(s)
	if m == nil {
		return storage.Location{}, fmt.Errorf("not an ISO 6709 location: %q", s)
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return storage.Location{}, fmt.Errorf("invalid latitude %q: %w", m[1], err)
	}
	lon, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return storage.Location{}, fmt.Errorf("invalid longitude %q: %w", m[2], err)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return storage.Location{}, fmt.Errorf("location out of range: %q", s)
	}
	return storage.NewLocation(lat, lon), nil
}
