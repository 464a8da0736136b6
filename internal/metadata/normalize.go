package metadata

import (
	"database/sql"
	"path/filepath"
	"strings"
)

// Defaults applied to missing index columns.
const (
	UnknownString = "<unknown>"
	msPerSecond   = 1000
)

// millis converts an index timestamp in seconds to milliseconds; NULL is 0.
func millis(sec sql.NullInt64) int64 {
	if !sec.Valid {
		return 0
	}
	return sec.Int64 * msPerSecond
}

func stringOr(s sql.NullString, def string) string {
	if !s.Valid {
		return def
	}
	return s.String
}

func intOr0(n sql.NullInt64) int {
	return int(n.Int64)
}

// Parent returns the directory holding path, or "" for an empty path.
func Parent(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Dir(path)
}

// title returns the index title, falling back to the file name without its
// extension.
func title(t sql.NullString, path string) string {
	if t.Valid && t.String != "" {
		return t.String
	}
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
