package metadata

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"photosync/internal/mediastore"
	"photosync/internal/storage"
)

func str(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }
func num(n int64) sql.NullInt64   { return sql.NullInt64{Int64: n, Valid: true} }

func TestExtractor_PhotoDefaults(t *testing.T) {
	e := NewExtractor("")
	row := mediastore.Row{
		ID:           7,
		Path:         filepath.Join(t.TempDir(), "missing", "IMG_0001.jpg"),
		DateModified: num(1_600_000_000),
	}

	got := e.Photo(context.Background(), row)

	if got.ID != 7 {
		t.Errorf("ID = %d, want 7", got.ID)
	}
	if got.Title != "IMG_0001" {
		t.Errorf("Title = %q, want file name fallback", got.Title)
	}
	if got.DateModified != 1_600_000_000_000 {
		t.Errorf("DateModified = %d, want milliseconds", got.DateModified)
	}
	if got.DateAdded != 0 || got.DateTaken != 0 {
		t.Errorf("NULL dates should be 0, got added=%d taken=%d", got.DateAdded, got.DateTaken)
	}
	if got.Parent != filepath.Dir(row.Path) {
		t.Errorf("Parent = %q, want %q", got.Parent, filepath.Dir(row.Path))
	}
	if got.Description != "" || got.Width != 0 || got.Orientation != 0 {
		t.Errorf("unexpected non-default fields: %+v", got)
	}
	if got.Location.Valid || got.Location.Latitude != 0 || got.Location.Longitude != 0 {
		t.Errorf("unreadable file should leave location at (0, 0), got %+v", got.Location)
	}
}

func TestExtractor_PhotoLocation(t *testing.T) {
	e := NewExtractor("")
	e.location = func(string) (storage.Location, error) {
		return storage.NewLocation(1.5, 2.5), nil
	}

	got := e.Photo(context.Background(), mediastore.Row{ID: 1, Path: "/a/b.jpg", Title: str("beach"), Width: num(4000)})

	if got.Title != "beach" || got.Width != 4000 {
		t.Errorf("Photo() = %+v", got)
	}
	if !got.Location.Valid || got.Location.Longitude != 2.5 {
		t.Errorf("Photo() location = %+v", got.Location)
	}
}

func TestExtractor_VideoDefaults(t *testing.T) {
	tests := []struct {
		name    string
		ffprobe string
		probe   probeFunc
	}{
		{
			name:    "probing disabled",
			ffprobe: "",
		},
		{
			name:    "missing binary",
			ffprobe: filepath.Join(t.TempDir(), "no-ffprobe"),
			probe:   runFFprobe,
		},
		{
			name:    "probe error",
			ffprobe: "ffprobe",
			probe: func(context.Context, string, string) ([]byte, error) {
				return nil, errors.New("boom")
			},
		},
		{
			name:    "garbage output",
			ffprobe: "ffprobe",
			probe: func(context.Context, string, string) ([]byte, error) {
				return []byte("not json"), nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(tt.ffprobe)
			if tt.probe != nil {
				e.probe = tt.probe
			}

			got := e.Video(context.Background(), mediastore.Row{
				ID:          3,
				Path:        "/movies/clip.mp4",
				DateAdded:   num(10),
				Duration:    num(5000),
				Orientation: num(90),
			})

			if got.Category != UnknownString || got.Language != UnknownString {
				t.Errorf("category/language = %q/%q, want %q", got.Category, got.Language, UnknownString)
			}
			if got.Artist != UnknownString || got.Album != UnknownString {
				t.Errorf("artist/album = %q/%q, want %q", got.Artist, got.Album, UnknownString)
			}
			if got.Tags != "" || got.Resolution != "" {
				t.Errorf("tags/resolution = %q/%q, want empty", got.Tags, got.Resolution)
			}
			if got.Year != 0 || got.Orientation != 0 || got.Location.Valid {
				t.Errorf("probe fields should default, got %+v", got)
			}
			if got.DateAdded != 10_000 || got.Duration != 5000 || got.Parent != "/movies" {
				t.Errorf("index fields = %+v", got)
			}
		})
	}
}

func TestExtractor_VideoProbe(t *testing.T) {
	e := NewExtractor("ffprobe")
	var probedPath string
	e.probe = func(_ context.Context, _, path string) ([]byte, error) {
		probedPath = path
		return []byte(`{
			"streams": [{"codec_type": "video", "tags": {"rotate": "90"}}],
			"format": {"tags": {"location": "+40.0000-074.0000/", "date": "2012-01-01"}}
		}`), nil
	}

	got := e.Video(context.Background(), mediastore.Row{
		ID:         4,
		Path:       "/movies/trip.mov",
		Artist:     str("me"),
		Resolution: str("1920x1080"),
	})

	if probedPath != "/movies/trip.mov" {
		t.Errorf("probed %q", probedPath)
	}
	if got.Year != 2012 || got.Orientation != 90 {
		t.Errorf("year/orientation = %d/%d", got.Year, got.Orientation)
	}
	if !got.Location.Valid || got.Location.Longitude != -74 {
		t.Errorf("location = %+v", got.Location)
	}
	if got.Artist != "me" || got.Resolution != "1920x1080" {
		t.Errorf("artist/resolution = %q/%q", got.Artist, got.Resolution)
	}
}

func TestParent(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"/a/b/c.jpg":     "/a/b",
		"/root.jpg":      "/",
		"relative/x.mp4": "relative",
	}
	for in, want := range tests {
		if got := Parent(in); got != want {
			t.Errorf("Parent(%q) = %q, want %q", in, got, want)
		}
	}
}
