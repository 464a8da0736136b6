package handlers

import (
	"time"

	"photosync/internal/storage"
)

// PhotoResponse is the JSON form of a cached photo. Dates are Unix milliseconds.
type PhotoResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	DateAdded    int64   `json:"date_added"`
	DateModified int64   `json:"date_modified"`
	DateTaken    int64   `json:"date_taken"`
	Size         int64   `json:"size"`
	MimeType     string  `json:"mime_type"`
	Description  string  `json:"description"`
	Orientation  int     `json:"orientation"`
	Height       int     `json:"height"`
	Width        int     `json:"width"`
	Path         string  `json:"path"`
	Parent       string  `json:"parent"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	HasLocation  bool    `json:"has_location"`
}

// VideoResponse is the JSON form of a cached video.
type VideoResponse struct {
	PhotoResponse
	Category   string `json:"category"`
	Language   string `json:"language"`
	Tags       string `json:"tags"`
	Duration   int64  `json:"duration"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	Resolution string `json:"resolution"`
	Year       int    `json:"year"`
}

// BucketResponse is a parent directory summary.
type BucketResponse struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Cardinality  int    `json:"cardinality"`
	Size         int64  `json:"size"`
	DateModified int64  `json:"date_modified"`
	CoverID      int64  `json:"cover_id"`
}

// InfoResponse summarises one media kind.
type InfoResponse struct {
	Cardinality  int   `json:"cardinality"`
	Size         int64 `json:"size"`
	DateModified int64 `json:"date_modified"`
}

// ArtistResponse groups videos by artist.
type ArtistResponse struct {
	Name     string `json:"name"`
	Tracks   int    `json:"tracks"`
	Albums   int    `json:"albums"`
	Size     int64  `json:"size"`
	Duration int64  `json:"duration"`
}

// VideoAlbumResponse groups videos by album tag.
type VideoAlbumResponse struct {
	Title     string `json:"title"`
	Tracks    int    `json:"tracks"`
	Size      int64  `json:"size"`
	Duration  int64  `json:"duration"`
	FirstYear int    `json:"first_year"`
	LastYear  int    `json:"last_year"`
}

// AlbumResponse is a user album.
type AlbumResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Tag          string `json:"tag"`
	DateCreated  int64  `json:"date_created"`
	DateModified int64  `json:"date_modified"`
}

// MemberResponse places a photo inside an album.
type MemberResponse struct {
	AlbumID int64 `json:"album_id"`
	PhotoID int64 `json:"photo_id"`
	Order   int64 `json:"order"`
}

// RunResponse is one recorded sync run.
type RunResponse struct {
	ID         string           `json:"id"`
	JobKey     string           `json:"job_key"`
	Status     string           `json:"status"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt *time.Time       `json:"finished_at,omitempty"`
	Report     map[string]int64 `json:"report"`
	Error      string           `json:"error,omitempty"`
}

func toPhotoResponse(p storage.PhotoRecord) PhotoResponse {
	return PhotoResponse{
		ID:           p.ID,
		Title:        p.Title,
		DateAdded:    p.DateAdded,
		DateModified: p.DateModified,
		DateTaken:    p.DateTaken,
		Size:         p.Size,
		MimeType:     p.MimeType,
		Description:  p.Description,
		Orientation:  p.Orientation,
		Height:       p.Height,
		Width:        p.Width,
		Path:         p.Path,
		Parent:       p.Parent,
		Latitude:     p.Location.Latitude,
		Longitude:    p.Location.Longitude,
		HasLocation:  p.Location.Valid,
	}
}

func toVideoResponse(v storage.VideoRecord) VideoResponse {
	return VideoResponse{
		PhotoResponse: PhotoResponse{
			ID:           v.ID,
			Title:        v.Title,
			DateAdded:    v.DateAdded,
			DateModified: v.DateModified,
			DateTaken:    v.DateTaken,
			Size:         v.Size,
			MimeType:     v.MimeType,
			Description:  v.Description,
			Orientation:  v.Orientation,
			Height:       v.Height,
			Width:        v.Width,
			Path:         v.Path,
			Parent:       v.Parent,
			Latitude:     v.Location.Latitude,
			Longitude:    v.Location.Longitude,
			HasLocation:  v.Location.Valid,
		},
		Category:   v.Category,
		Language:   v.Language,
		Tags:       v.Tags,
		Duration:   v.Duration,
		Artist:     v.Artist,
		Album:      v.Album,
		Resolution: v.Resolution,
		Year:       v.Year,
	}
}

func toBucketResponse(b storage.Bucket) BucketResponse {
	return BucketResponse{
		Path:         b.Path,
		Name:         b.Name(),
		Cardinality:  b.Cardinality,
		Size:         b.Size,
		DateModified: b.DateModified,
		CoverID:      b.CoverID,
	}
}

func toAlbumResponse(a storage.AlbumRecord) AlbumResponse {
	return AlbumResponse{
		ID:           a.ID,
		Name:         a.Name,
		Description:  a.Description,
		Tag:          a.Tag,
		DateCreated:  a.DateCreated,
		DateModified: a.DateModified,
	}
}

func toMemberResponse(m storage.AlbumMember) MemberResponse {
	return MemberResponse{AlbumID: m.AlbumID, PhotoID: m.PhotoID, Order: m.Order}
}

func toRunResponse(r storage.JobRun) RunResponse {
	report := r.Report
	if report == nil {
		report = map[string]int64{}
	}
	return RunResponse{
		ID:         r.ID,
		JobKey:     r.JobKey,
		Status:     r.Status,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Report:     report,
		Error:      r.Error,
	}
}

// mapSlice converts every element of in.
func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
