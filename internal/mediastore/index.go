// Package mediastore reads the external media index: a SQLite catalog laid
// out like the Android MediaStore, with one table per media kind. The index
// is authoritative and is only ever opened read-only.
package mediastore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_index.go -package=mocks photosync/internal/mediastore Index

import (
	"context"
	"database/sql"
	"errors"
)

// ErrIndexUnavailable is returned when the index cannot answer a query for a
// kind. It is fatal for that kind's sync only.
var ErrIndexUnavailable = errors.New("media index unavailable")

// Kind identifies one of the two media kinds held by the index.
type Kind int

const (
	KindPhoto Kind = iota
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindPhoto:
		return "photos"
	case KindVideo:
		return "videos"
	default:
		return "unknown"
	}
}

// Table returns the index table backing k.
func (k Kind) Table() string {
	if k == KindVideo {
		return "video"
	}
	return "images"
}

// Row is one raw index record. Dates are in seconds since the Unix epoch.
// Video-only columns are left invalid for photos.
type Row struct {
	ID           int64
	Path         string
	Title        sql.NullString
	Size         sql.NullInt64
	MimeType     sql.NullString
	Description  sql.NullString
	DateAdded    sql.NullInt64
	DateModified sql.NullInt64
	DateTaken    sql.NullInt64
	Orientation  sql.NullInt64
	Width        sql.NullInt64
	Height       sql.NullInt64

	Category   sql.NullString
	Language   sql.NullString
	Tags       sql.NullString
	Duration   sql.NullInt64
	Artist     sql.NullString
	Album      sql.NullString
	Resolution sql.NullString
}

// Index is the read side of the external media catalog.
type Index interface {
	// IDs returns every id currently in the index for kind.
	IDs(ctx context.Context, kind Kind) ([]int64, error)
	// MaxModified returns the newest date_modified in seconds. ok is false
	// when the index reports no value.
	MaxModified(ctx context.Context, kind Kind) (sec int64, ok bool, err error)
	// FetchSince returns rows with date_modified strictly greater than since.
	FetchSince(ctx context.Context, kind Kind, since int64) ([]Row, error)
}
