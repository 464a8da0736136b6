package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// VideoStore defines the interface for cached video operations.
type VideoStore interface {
	DeleteNotIn(ctx context.Context, ids []int64) (int64, error)
	LastModified(ctx context.Context) (ms int64, ok bool, err error)
	InsertAll(ctx context.Context, videos []VideoRecord) error
	List(ctx context.Context, query string) ([]VideoRecord, error)
	GetByID(ctx context.Context, id int64) (*VideoRecord, error)
	Count(ctx context.Context) (int, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Buckets(ctx context.Context, query string) ([]Bucket, error)
	BucketByPath(ctx context.Context, path string) (*Bucket, error)
	Info(ctx context.Context) (Info, error)
	// Artists groups videos by artist, filtered by name substring.
	Artists(ctx context.Context, query string) ([]Artist, error)
	// Albums groups videos by album tag, filtered by title substring.
	Albums(ctx context.Context, query string) ([]VideoAlbum, error)
}

const videoColumns = `id, title, date_added, date_modified, date_taken, file_size, mime_type,
	description, category, language, tags, duration, orientation, height, width, path,
	parent_path, latitude, longitude, artist, album, resolution, year`

// VideoRepo provides methods for video operations.
// It implements the VideoStore interface.
type VideoRepo struct {
	db   *sql.DB
	feed *ChangeFeed
}

// NewVideoRepo creates a new VideoRepo. feed may be nil.
func NewVideoRepo(db *sql.DB, feed *ChangeFeed) *VideoRepo {
	return &VideoRepo{db: db, feed: feed}
}

// DeleteNotIn removes every video whose id is not in ids.
func (r *VideoRepo) DeleteNotIn(ctx context.Context, ids []int64) (int64, error) {
	n, err := deleteNotIn(ctx, r.db, TableVideos, ids)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.feed.Publish(TableVideos)
	}
	return n, nil
}

// LastModified returns the newest cached modification time in milliseconds.
func (r *VideoRepo) LastModified(ctx context.Context) (int64, bool, error) {
	return lastModified(ctx, r.db, TableVideos)
}

// InsertAll writes videos in a single transaction, overwriting rows with the same id.
func (r *VideoRepo) InsertAll(ctx context.Context, videos []VideoRecord) error {
	if len(videos) == 0 {
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
		`INSERT OR REPLACE INTO videos (`+videoColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare video insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i := range videos {
		v := &videos[i]
		lat, lon := v.Location.nullable()
		_, err := stmt.ExecContext(ctx,
			v.ID, v.Title, v.DateAdded, v.DateModified, v.DateTaken, v.Size, v.MimeType,
			v.Description, v.Category, v.Language, v.Tags, v.Duration, v.Orientation, v.Height, v.Width,
			v.Path, v.Parent, lat, lon, v.Artist, v.Album, v.Resolution, v.Year,
		)
		if err != nil {
			return fmt.Errorf("failed to insert video %d: %w", v.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit video insert: %w", err)
	}
	r.feed.Publish(TableVideos)
	return nil
}

// List returns videos whose title contains query, newest first.
func (r *VideoRepo) List(ctx context.Context, query string) ([]VideoRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+videoColumns+` FROM videos
		 WHERE ? = '' OR title LIKE '%' || ? || '%'
		 ORDER BY date_modified DESC, id`,
		query, query,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var videos []VideoRecord
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return videos, nil
}

// GetByID gets a video by id. Returns nil and ErrNotFound if not found.
func (r *VideoRepo) GetByID(ctx context.Context, id int64) (*VideoRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = ?`, id)
	v, err := scanVideo(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Count returns the number of cached videos.
func (r *VideoRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, TableVideos)
}

// Exists reports whether a video id is cached.
func (r *VideoRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, TableVideos, id)
}

// Buckets groups videos by parent directory.
func (r *VideoRepo) Buckets(ctx context.Context, query string) ([]Bucket, error) {
	return buckets(ctx, r.db, TableVideos, query)
}

// BucketByPath returns the bucket for one directory.
func (r *VideoRepo) BucketByPath(ctx context.Context, path string) (*Bucket, error) {
	return bucketByPath(ctx, r.db, TableVideos, path)
}

// Info summarises the videos table.
func (r *VideoRepo) Info(ctx context.Context) (Info, error) {
	return info(ctx, r.db, TableVideos)
}

// Artists groups videos by artist.
func (r *VideoRepo) Artists(ctx context.Context, query string) ([]Artist, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT artist, COUNT(*), COUNT(DISTINCT album), COALESCE(SUM(file_size), 0), COALESCE(SUM(duration), 0)
		 FROM videos
		 WHERE ? = '' OR artist LIKE '%' || ? || '%'
		 GROUP BY artist
		 ORDER BY MAX(date_modified) DESC`,
		query, query,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query artists: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var artists []Artist
	for rows.Next() {
		var a Artist
		if err := rows.Scan(&a.Name, &a.Tracks, &a.Albums, &a.Size, &a.Duration); err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return artists, nil
}

// Albums groups videos by album tag.
func (r *VideoRepo) Albums(ctx context.Context, query string) ([]VideoAlbum, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT album, COUNT(*), COALESCE(SUM(file_size), 0), COALESCE(SUM(duration), 0), MIN(year), MAX(year)
		 FROM videos
		 WHERE ? = '' OR album LIKE '%' || ? || '%'
		 GROUP BY album
		 ORDER BY MAX(date_modified) DESC`,
		query, query,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query video albums: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var albums []VideoAlbum
	for rows.Next() {
		var a VideoAlbum
		if err := rows.Scan(&a.Title, &a.Tracks, &a.Size, &a.Duration, &a.FirstYear, &a.LastYear); err != nil {
			return nil, fmt.Errorf("failed to scan video album: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return albums, nil
}

func scanVideo(s rowScanner) (*VideoRecord, error) {
	var v VideoRecord
	var lat, lon sql.NullFloat64
	err := s.Scan(&v.ID, &v.Title, &v.DateAdded, &v.DateModified, &v.DateTaken, &v.Size, &v.MimeType,
		&v.Description, &v.Category, &v.Language, &v.Tags, &v.Duration, &v.Orientation, &v.Height, &v.Width,
		&v.Path, &v.Parent, &lat, &lon, &v.Artist, &v.Album, &v.Resolution, &v.Year)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan video: %w", err)
	}
	v.Location = locationFrom(lat, lon)
	return &v, nil
}
