package storage

import (
	"database/sql"
	"path/filepath"
	"time"
)

// Location is a geographic coordinate read from embedded media metadata.
// Valid is false when the file carried no usable coordinates; Latitude and
// Longitude are 0 in that case.
type Location struct {
	Latitude  float64
	Longitude float64
	Valid     bool
}

// NewLocation returns a valid location for the given coordinates.
func NewLocation(lat, lon float64) Location {
	return Location{Latitude: lat, Longitude: lon, Valid: true}
}

func (l Location) nullable() (sql.NullFloat64, sql.NullFloat64) {
	if !l.Valid {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: l.Latitude, Valid: true}, sql.NullFloat64{Float64: l.Longitude, Valid: true}
}

func locationFrom(lat, lon sql.NullFloat64) Location {
	if !lat.Valid || !lon.Valid {
		return Location{}
	}
	return NewLocation(lat.Float64, lon.Float64)
}

// PhotoRecord is one cached row of the photos table.
// All dates are in milliseconds since the Unix epoch.
type PhotoRecord struct {
	ID           int64 // Assigned by the media index
	Title        string
	DateAdded    int64
	DateModified int64
	DateTaken    int64
	Size         int64 // Bytes
	MimeType     string
	Description  string
	Orientation  int
	Height       int
	Width        int
	Path         string
	Parent       string // Directory of Path
	Location     Location
}

// VideoRecord is one cached row of the videos table.
type VideoRecord struct {
	ID           int64
	Title        string
	DateAdded    int64
	DateModified int64
	DateTaken    int64
	Size         int64
	MimeType     string
	Description  string
	Category     string
	Language     string
	Tags         string
	Duration     int64 // Milliseconds
	Orientation  int
	Height       int
	Width        int
	Path         string
	Parent       string
	Location     Location
	Artist       string
	Album        string
	Resolution   string // "WIDTHxHEIGHT" as reported by the index
	Year         int
}

// Bucket groups cached media by parent directory.
type Bucket struct {
	Path         string
	Cardinality  int
	Size         int64
	DateModified int64
	CoverID      int64 // Most recently modified item in the bucket
}

// Name returns the last element of the bucket path.
func (b Bucket) Name() string {
	return filepath.Base(b.Path)
}

// Info summarises one media table.
type Info struct {
	Cardinality  int
	Size         int64
	DateModified int64
}

// Artist aggregates videos by artist.
type Artist struct {
	Name     string
	Tracks   int
	Albums   int
	Size     int64
	Duration int64
}

// VideoAlbum aggregates videos by album tag.
type VideoAlbum struct {
	Title     string
	Tracks    int
	Size      int64
	Duration  int64
	FirstYear int
	LastYear  int
}

// AlbumRecord is a user-curated photo album.
type AlbumRecord struct {
	ID           int64
	Name         string
	Description  string
	Tag          string // Owner tag, e.g. the client that created the album
	DateCreated  int64
	DateModified int64
}

// AlbumMember places a photo at a position inside an album.
type AlbumMember struct {
	AlbumID int64
	PhotoID int64
	Order   int64
}

// Job run states.
const (
	RunStatusRunning   = "running"
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
)

// JobRun records one execution of a background job.
type JobRun struct {
	ID         string // UUID
	JobKey     string
	Status     string
	StartedAt  time.Time
	FinishedAt *time.Time
	Report     map[string]int64
	Error      string
}
