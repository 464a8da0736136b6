package metadata

import (
	"fmt"
	"os"

	"github.com/rwcarlsen/goexif/exif"

	"photosync/internal/storage"
)

// exifLocation reads the GPS position from the EXIF block of an image file.
func exifLocation(path string) (storage.Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return storage.Location{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	x, err := exif.Decode(f)
	if err != nil {
		return storage.Location{}, fmt.Errorf("failed to decode exif: %w", err)
	}
	lat, lon, err := x.LatLong()
	if err != nil {
		return storage.Location{}, fmt.Errorf("no gps position: %w", err)
	}
	return storage.NewLocation(lat, lon), nil
}
