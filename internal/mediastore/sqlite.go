package mediastore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"
)

// idSeparator joins ids in the GROUP_CONCAT result.
const idSeparator = ","

const photoColumns = `_id, _data, title, _size, mime_type, description,
	date_added, date_modified, datetaken, orientation, width, height`

const videoColumns = photoColumns + `,
	category, language, tags, duration, artist, album, resolution`

// SQLiteIndex reads a MediaStore-layout SQLite file.
// It implements the Index interface.
type SQLiteIndex struct {
	db *sql.DB
}

// Open opens the index at path read-only.
func Open(path string) (*SQLiteIndex, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve index path: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", filepath.ToSlash(absPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open media index: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping media index: %w", err)
	}
	return &SQLiteIndex{db: db}, nil
}

// NewSQLiteIndex wraps an already open handle.
func NewSQLiteIndex(db *sql.DB) *SQLiteIndex {
	return &SQLiteIndex{db: db}
}

// PingContext checks that the index file is still readable.
func (x *SQLiteIndex) PingContext(ctx context.Context) error {
	if err := x.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrIndexUnavailable, err)
	}
	return nil
}

// Close closes the underlying handle.
func (x *SQLiteIndex) Close() error {
	return x.db.Close()
}

// IDs runs a single aggregate query and splits the concatenated id list.
func (x *SQLiteIndex) IDs(ctx context.Context, kind Kind) ([]int64, error) {
	var joined sql.NullString
	err := x.db.QueryRowContext(ctx,
		"SELECT GROUP_CONCAT(_id, '"+idSeparator+"') FROM "+kind.Table(),
	).Scan(&joined)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no id row for %s", ErrIndexUnavailable, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s ids: %w", ErrIndexUnavailable, kind, err)
	}
	ids, err := parseIDs(joined.String)
	if err != nil {
		return nil, fmt.Errorf("%w: %s ids: %w", ErrIndexUnavailable, kind, err)
	}
	return ids, nil
}

// MaxModified returns MAX(date_modified) for kind.
func (x *SQLiteIndex) MaxModified(ctx context.Context, kind Kind) (int64, bool, error) {
	var latest sql.NullInt64
	err := x.db.QueryRowContext(ctx, "SELECT MAX(date_modified) FROM "+kind.Table()).Scan(&latest)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s max modified: %w", ErrIndexUnavailable, kind, err)
	}
	return latest.Int64, latest.Valid, nil
}

// FetchSince returns every row of kind modified after since.
func (x *SQLiteIndex) FetchSince(ctx context.Context, kind Kind, since int64) ([]Row, error) {
	columns := photoColumns
	if kind == KindVideo {
		columns = videoColumns
	}
	rows, err := x.db.QueryContext(ctx,
		"SELECT "+columns+" FROM "+kind.Table()+" WHERE date_modified > ? ORDER BY _id",
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s rows: %w", ErrIndexUnavailable, kind, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []Row
	for rows.Next() {
		var r Row
		dest := []any{
			&r.ID, &r.Path, &r.Title, &r.Size, &r.MimeType, &r.Description,
			&r.DateAdded, &r.DateModified, &r.DateTaken, &r.Orientation, &r.Width, &r.Height,
		}
		if kind == KindVideo {
			dest = append(dest, &r.Category, &r.Language, &r.Tags, &r.Duration, &r.Artist, &r.Album, &r.Resolution)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: scan %s row: %w", ErrIndexUnavailable, kind, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s row iteration: %w", ErrIndexUnavailable, kind, err)
	}
	return out, nil
}

// parseIDs splits a GROUP_CONCAT result. An empty string is an empty index.
func parseIDs(joined string) ([]int64, error) {
	if joined == "" {
		return []int64{}, nil
	}
	parts := strings.Split(joined, idSeparator)
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
