package handlers

import (
	"net/http"

	"photosync/internal/mediastore"
	"photosync/internal/service"
	"photosync/internal/storage"
)

// MediaHandler serves the cached photos and videos.
type MediaHandler struct {
	gallery service.GalleryService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(gallery service.GalleryService) *MediaHandler {
	return &MediaHandler{gallery: gallery}
}

// ListPhotos handles GET /api/photos?q=.
func (h *MediaHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	photos, err := h.gallery.ListPhotos(ctx, r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list photos")
		return
	}
	writeJSON(ctx, w, http.StatusOK, mapSlice(photos, toPhotoResponse))
}

// GetPhoto handles GET /api/photos/{id}.
func (h *MediaHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid photo id")
		return
	}
	p, err := h.gallery.GetPhoto(ctx, id)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to get photo")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toPhotoResponse(*p))
}

// ListVideos handles GET /api/videos?q=.
func (h *MediaHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	videos, err := h.gallery.ListVideos(ctx, r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list videos")
		return
	}
	writeJSON(ctx, w, http.StatusOK, mapSlice(videos, toVideoResponse))
}

// GetVideo handles GET /api/videos/{id}.
func (h *MediaHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid video id")
		return
	}
	v, err := h.gallery.GetVideo(ctx, id)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to get video")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toVideoResponse(*v))
}

// VideoArtists handles GET /api/videos/artists?q=.
func (h *MediaHandler) VideoArtists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	artists, err := h.gallery.VideoArtists(ctx, r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list artists")
		return
	}
	writeJSON(ctx, w, http.StatusOK, mapSlice(artists, func(a storage.Artist) ArtistResponse {
		return ArtistResponse{Name: a.Name, Tracks: a.Tracks, Albums: a.Albums, Size: a.Size, Duration: a.Duration}
	}))
}

// VideoAlbums handles GET /api/videos/albums?q=.
func (h *MediaHandler) VideoAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	albums, err := h.gallery.VideoAlbums(ctx, r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list video albums")
		return
	}
	writeJSON(ctx, w, http.StatusOK, mapSlice(albums, func(a storage.VideoAlbum) VideoAlbumResponse {
		return VideoAlbumResponse{
			Title:     a.Title,
			Tracks:    a.Tracks,
			Size:      a.Size,
			Duration:  a.Duration,
			FirstYear: a.FirstYear,
			LastYear:  a.LastYear,
		}
	}))
}

// Buckets returns a handler for GET /api/{kind}/buckets. With ?path= it
// returns that single bucket, otherwise every bucket matching ?q=.
func (h *MediaHandler) Buckets(kind mediastore.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if path := r.URL.Query().Get("path"); path != "" {
			b, err := h.gallery.Bucket(ctx, kind, path)
			if err != nil {
				handleServiceError(ctx, w, err, "Failed to get bucket")
				return
			}
			writeJSON(ctx, w, http.StatusOK, toBucketResponse(*b))
			return
		}

		buckets, err := h.gallery.Buckets(ctx, kind, r.URL.Query().Get("q"))
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to list buckets")
			return
		}
		writeJSON(ctx, w, http.StatusOK, mapSlice(buckets, toBucketResponse))
	}
}

// Info returns a handler for GET /api/{kind}/info.
func (h *MediaHandler) Info(kind mediastore.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		info, err := h.gallery.Info(ctx, kind)
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to read info")
			return
		}
		writeJSON(ctx, w, http.StatusOK, InfoResponse{
			Cardinality:  info.Cardinality,
			Size:         info.Size,
			DateModified: info.DateModified,
		})
	}
}
