package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// deleteNotIn removes every row of table whose id is not in ids.
// The id set is staged in a temp table so it is not bound by SQLite's
// host parameter limit. An empty set clears the table.
func deleteNotIn(ctx context.Context, db *sql.DB, table string, ids []int64) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if len(ids) == 0 {
		res, err := tx.ExecContext(ctx, "DELETE FROM "+table)
		if err != nil {
			return 0, fmt.Errorf("failed to clear %s: %w", table, err)
		}
		if err := tx.Commit(); err != nil {
			return 0, fmt.Errorf("failed to commit delete: %w", err)
		}
		return res.RowsAffected()
	}

	if _, err := tx.ExecContext(ctx, "CREATE TEMP TABLE IF NOT EXISTS keep_ids (id INTEGER PRIMARY KEY)"); err != nil {
		return 0, fmt.Errorf("failed to create id staging table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM temp.keep_ids"); err != nil {
		return 0, fmt.Errorf("failed to reset id staging table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO temp.keep_ids (id) VALUES (?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare id staging insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, id := range ids {
		if _, err := stmt.ExecContext(ctx, id); err != nil {
			return 0, fmt.Errorf("failed to stage id %d: %w", id, err)
		}
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE id NOT IN (SELECT id FROM temp.keep_ids)")
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale rows from %s: %w", table, err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM temp.keep_ids"); err != nil {
		return 0, fmt.Errorf("failed to reset id staging table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit delete: %w", err)
	}
	return deleted, nil
}

// lastModified returns MAX(date_modified) of table; ok is false when the
// table is empty.
func lastModified(ctx context.Context, db *sql.DB, table string) (int64, bool, error) {
	var latest sql.NullInt64
	if err := db.QueryRowContext(ctx, "SELECT MAX(date_modified) FROM "+table).Scan(&latest); err != nil {
		return 0, false, fmt.Errorf("failed to query last modified of %s: %w", table, err)
	}
	return latest.Int64, latest.Valid, nil
}

func count(ctx context.Context, db *sql.DB, table string) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

func exists(ctx context.Context, db *sql.DB, table string, id int64) (bool, error) {
	var ok bool
	if err := db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM "+table+" WHERE id = ?)", id).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	return ok, nil
}

func info(ctx context.Context, db *sql.DB, table string) (Info, error) {
	var i Info
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(file_size), 0), COALESCE(MAX(date_modified), 0) FROM "+table,
	).Scan(&i.Cardinality, &i.Size, &i.DateModified)
	if err != nil {
		return Info{}, fmt.Errorf("failed to query %s info: %w", table, err)
	}
	return i, nil
}

// buckets groups table by parent_path. SQLite takes the bare id column from
// the row holding MAX(date_modified), which makes it the bucket cover.
func buckets(ctx context.Context, db *sql.DB, table, query string) ([]Bucket, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT parent_path, COUNT(*), COALESCE(SUM(file_size), 0), MAX(date_modified) AS latest, id
		 FROM `+table+`
		 WHERE ? = '' OR parent_path LIKE '%' || ? || '%'
		 GROUP BY parent_path
		 ORDER BY latest DESC`,
		query, query,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s buckets: %w", table, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []Bucket
	for rows.Next() {
		var b Bucket
		if err := rows.Scan(&b.Path, &b.Cardinality, &b.Size, &b.DateModified, &b.CoverID); err != nil {
			return nil, fmt.Errorf("failed to scan bucket: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return out, nil
}

func bucketByPath(ctx context.Context, db *sql.DB, table, path string) (*Bucket, error) {
	var b Bucket
	err := db.QueryRowContext(ctx,
		`SELECT parent_path, COUNT(*), COALESCE(SUM(file_size), 0), MAX(date_modified), id
		 FROM `+table+` WHERE parent_path = ? GROUP BY parent_path`,
		path,
	).Scan(&b.Path, &b.Cardinality, &b.Size, &b.DateModified, &b.CoverID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query bucket: %w", err)
	}
	return &b, nil
}
