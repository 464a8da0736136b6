package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// PhotoStore defines the interface for cached photo operations.
type PhotoStore interface {
	// DeleteNotIn removes every photo whose id is not in ids and returns the count removed.
	DeleteNotIn(ctx context.Context, ids []int64) (int64, error)
	// LastModified returns the newest date_modified (ms). ok is false for an empty table.
	LastModified(ctx context.Context) (ms int64, ok bool, err error)
	// InsertAll writes photos in one transaction, replacing rows with the same id.
	InsertAll(ctx context.Context, photos []PhotoRecord) error
	// List returns photos whose title contains query (all when empty), newest first.
	List(ctx context.Context, query string) ([]PhotoRecord, error)
	// GetByID returns ErrNotFound when the id is not cached.
	GetByID(ctx context.Context, id int64) (*PhotoRecord, error)
	Count(ctx context.Context) (int, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Buckets(ctx context.Context, query string) ([]Bucket, error)
	BucketByPath(ctx context.Context, path string) (*Bucket, error)
	Info(ctx context.Context) (Info, error)
}

const photoColumns = `id, title, date_added, date_modified, date_taken, file_size, mime_type,
	description, orientation, height, width, path, parent_path, latitude, longitude`

// PhotoRepo provides methods for photo operations.
// It implements the PhotoStore interface.
type PhotoRepo struct {
	db   *sql.DB
	feed *ChangeFeed
}

// NewPhotoRepo creates a new PhotoRepo. feed may be nil.
func NewPhotoRepo(db *sql.DB, feed *ChangeFeed) *PhotoRepo {
	return &PhotoRepo{db: db, feed: feed}
}

// DB returns the underlying database handle.
func (r *PhotoRepo) DB() *sql.DB {
	return r.db
}

// DeleteNotIn removes every photo whose id is not in ids.
func (r *PhotoRepo) DeleteNotIn(ctx context.Context, ids []int64) (int64, error) {
	n, err := deleteNotIn(ctx, r.db, TablePhotos, ids)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.feed.Publish(TablePhotos)
	}
	return n, nil
}

// LastModified returns the newest cached modification time in milliseconds.
func (r *PhotoRepo) LastModified(ctx context.Context) (int64, bool, error) {
	return lastModified(ctx, r.db, TablePhotos)
}

// InsertAll writes photos in a single transaction. A photo whose id is
// already cached is overwritten in place so album memberships survive.
func (r *PhotoRepo) InsertAll(ctx context.Context, photos []PhotoRecord) error {
	if len(photos) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO photos (`+photoColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		 title = excluded.title, date_added = excluded.date_added,
		 date_modified = excluded.date_modified, date_taken = excluded.date_taken,
		 file_size = excluded.file_size, mime_type = excluded.mime_type,
		 description = excluded.description, orientation = excluded.orientation,
		 height = excluded.height, width = excluded.width, path = excluded.path,
		 parent_path = excluded.parent_path, latitude = excluded.latitude,
		 longitude = excluded.longitude`)
	if err != nil {
		return fmt.Errorf("failed to prepare photo insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i := range photos {
		p := &photos[i]
		lat, lon := p.Location.nullable()
		_, err := stmt.ExecContext(ctx,
			p.ID, p.Title, p.DateAdded, p.DateModified, p.DateTaken, p.Size, p.MimeType,
			p.Description, p.Orientation, p.Height, p.Width, p.Path, p.Parent, lat, lon,
		)
		if err != nil {
			return fmt.Errorf("failed to insert photo %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit photo insert: %w", err)
	}
	r.feed.Publish(TablePhotos)
	return nil
}

// List returns photos whose title contains query, newest first.
func (r *PhotoRepo) List(ctx context.Context, query string) ([]PhotoRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+photoColumns+` FROM photos
		 WHERE ? = '' OR title LIKE '%' || ? || '%'
		 ORDER BY date_modified DESC, id`,
		query, query,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var photos []PhotoRecord
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return photos, nil
}

// GetByID gets a photo by id. Returns nil and ErrNotFound if not found.
func (r *PhotoRepo) GetByID(ctx context.Context, id int64) (*PhotoRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+photoColumns+` FROM photos WHERE id = ?`, id)
	p, err := scanPhoto(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Count returns the number of cached photos.
func (r *PhotoRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, TablePhotos)
}

// Exists reports whether a photo id is cached.
func (r *PhotoRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, TablePhotos, id)
}

// Buckets groups photos by parent directory.
func (r *PhotoRepo) Buckets(ctx context.Context, query string) ([]Bucket, error) {
	return buckets(ctx, r.db, TablePhotos, query)
}

// BucketByPath returns the bucket for one directory.
func (r *PhotoRepo) BucketByPath(ctx context.Context, path string) (*Bucket, error) {
	return bucketByPath(ctx, r.db, TablePhotos, path)
}

// Info summarises the photos table.
func (r *PhotoRepo) Info(ctx context.Context) (Info, error) {
	return info(ctx, r.db, TablePhotos)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPhoto(s rowScanner) (*PhotoRecord, error) {
	var p PhotoRecord
	var lat, lon sql.NullFloat64
	err := s.Scan(&p.ID, &p.Title, &p.DateAdded, &p.DateModified, &p.DateTaken, &p.Size, &p.MimeType,
		&p.Description, &p.Orientation, &p.Height, &p.Width, &p.Path, &p.Parent, &lat, &lon)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan photo: %w", err)
	}
	p.Location = locationFrom(lat, lon)
	return &p, nil
}
