package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
)

// ErrConflict is returned when a write violates a uniqueness or reference constraint.
var ErrConflict = errors.New("constraint violation")

// AlbumStore defines the interface for user album operations.
type AlbumStore interface {
	// Create inserts album and sets its ID and timestamps.
	Create(ctx context.Context, album *AlbumRecord) error
	List(ctx context.Context, query string) ([]AlbumRecord, error)
	GetByID(ctx context.Context, id int64) (*AlbumRecord, error)
	// Delete removes the album and its memberships. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id int64) error
	// AddMember places photoID at order; members at or after order shift back.
	// A negative or out of range order appends.
	AddMember(ctx context.Context, albumID, photoID, order int64) (AlbumMember, error)
	// RemoveMember removes photoID; later members shift forward.
	RemoveMember(ctx context.Context, albumID, photoID int64) error
	Members(ctx context.Context, albumID int64) ([]AlbumMember, error)
}

// AlbumRepo provides methods for album operations.
type AlbumRepo struct {
	db   *sql.DB
	feed *ChangeFeed
	now  func() time.Time
}

// NewAlbumRepo creates a new AlbumRepo. feed may be nil.
func NewAlbumRepo(db *sql.DB, feed *ChangeFeed) *AlbumRepo {
	return &AlbumRepo{db: db, feed: feed, now: time.Now}
}

// Create inserts a new album.
func (r *AlbumRepo) Create(ctx context.Context, album *AlbumRecord) error {
	now := r.now().UnixMilli()
	album.DateCreated = now
	album.DateModified = now

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO albums (name, description, tag, date_created, date_modified) VALUES (?, ?, ?, ?, ?)",
		album.Name, album.Description, album.Tag, album.DateCreated, album.DateModified,
	)
	if err != nil {
		return fmt.Errorf("failed to insert album: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read album id: %w", err)
	}
	album.ID = id
	r.feed.Publish(TableAlbums)
	return nil
}

// List returns albums whose name contains query, most recently modified first.
func (r *AlbumRepo) List(ctx context.Context, query string) ([]AlbumRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, tag, date_created, date_modified FROM albums
		 WHERE ? = '' OR name LIKE '%' || ? || '%'
		 ORDER BY date_modified DESC, id`,
		query, query,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query albums: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var albums []AlbumRecord
	for rows.Next() {
		var a AlbumRecord
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Tag, &a.DateCreated, &a.DateModified); err != nil {
			return nil, fmt.Errorf("failed to scan album: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return albums, nil
}

// GetByID gets an album by id. Returns nil and ErrNotFound if not found.
func (r *AlbumRepo) GetByID(ctx context.Context, id int64) (*AlbumRecord, error) {
	var a AlbumRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, description, tag, date_created, date_modified FROM albums WHERE id = ?", id,
	).Scan(&a.ID, &a.Name, &a.Description, &a.Tag, &a.DateCreated, &a.DateModified)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query album: %w", err)
	}
	return &a, nil
}

// Delete removes an album; memberships cascade.
func (r *AlbumRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM albums WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	r.feed.Publish(TableAlbums)
	return nil
}

// AddMember adds a photo to an album at the given position.
func (r *AlbumRepo) AddMember(ctx context.Context, albumID, photoID, order int64) (AlbumMember, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return AlbumMember{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var size int64
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM album_members WHERE album_id = ?", albumID).Scan(&size); err != nil {
		return AlbumMember{}, fmt.Errorf("failed to count album members: %w", err)
	}
	if order < 0 || order > size {
		order = size
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO album_members (album_id, photo_id, member_order) VALUES (?, ?, ?)",
		albumID, photoID, order,
	)
	if err != nil {
		if isConstraintError(err) {
			return AlbumMember{}, fmt.Errorf("failed to add photo %d to album %d: %w", photoID, albumID, ErrConflict)
		}
		return AlbumMember{}, fmt.Errorf("failed to add album member: %w", err)
	}

	if err := touchAlbum(ctx, tx, albumID, r.now()); err != nil {
		return AlbumMember{}, err
	}
	if err := tx.Commit(); err != nil {
		return AlbumMember{}, fmt.Errorf("failed to commit album member: %w", err)
	}
	r.feed.Publish(TableAlbumMembers)
	return AlbumMember{AlbumID: albumID, PhotoID: photoID, Order: order}, nil
}

// RemoveMember removes a photo from an album.
func (r *AlbumRepo) RemoveMember(ctx context.Context, albumID, photoID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, "DELETE FROM album_members WHERE album_id = ? AND photo_id = ?", albumID, photoID)
	if err != nil {
		return fmt.Errorf("failed to remove album member: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := touchAlbum(ctx, tx, albumID, r.now()); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit album member removal: %w", err)
	}
	r.feed.Publish(TableAlbumMembers)
	return nil
}

// Members returns the album's photos in order.
func (r *AlbumRepo) Members(ctx context.Context, albumID int64) ([]AlbumMember, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT album_id, photo_id, member_order FROM album_members WHERE album_id = ? ORDER BY member_order",
		albumID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query album members: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var members []AlbumMember
	for rows.Next() {
		var m AlbumMember
		if err := rows.Scan(&m.AlbumID, &m.PhotoID, &m.Order); err != nil {
			return nil, fmt.Errorf("failed to scan album member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return members, nil
}

func touchAlbum(ctx context.Context, tx *sql.Tx, albumID int64, now time.Time) error {
	if _, err := tx.ExecContext(ctx, "UPDATE albums SET date_modified = ? WHERE id = ?", now.UnixMilli(), albumID); err != nil {
		return fmt.Errorf("failed to touch album: %w", err)
	}
	return nil
}

func isConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}
