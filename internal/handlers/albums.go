package handlers

import (
	"encoding/json"
	"net/http"

	"photosync/internal/contextutil"
	"photosync/internal/service"
)

// AlbumHandler handles HTTP requests for user albums.
type AlbumHandler struct {
	gallery service.GalleryService
}

// NewAlbumHandler creates a new AlbumHandler.
func NewAlbumHandler(gallery service.GalleryService) *AlbumHandler {
	return &AlbumHandler{gallery: gallery}
}

// CreateAlbumRequest represents the HTTP request payload for album creation.
type CreateAlbumRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
}

// AddMemberRequest represents the HTTP request payload for adding a photo.
// Order is optional; when omitted the photo is appended.
type AddMemberRequest struct {
	PhotoID int64  `json:"photo_id"`
	Order   *int64 `json:"order,omitempty"`
}

// List handles GET /api/albums?q=.
func (h *AlbumHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	albums, err := h.gallery.ListAlbums(ctx, r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list albums")
		return
	}
	writeJSON(ctx, w, http.StatusOK, mapSlice(albums, toAlbumResponse))
}

// Create handles POST /api/albums.
func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	album, err := h.gallery.CreateAlbum(ctx, service.CreateAlbumRequest{
		Name:        req.Name,
		Description: req.Description,
		Tag:         req.Tag,
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to create album")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, toAlbumResponse(*album))
}

// Get handles GET /api/albums/{id}.
func (h *AlbumHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid album id")
		return
	}
	album, err := h.gallery.GetAlbum(ctx, id)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to get album")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toAlbumResponse(*album))
}

// Delete handles DELETE /api/albums/{id}.
func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid album id")
		return
	}
	if err := h.gallery.DeleteAlbum(ctx, id); err != nil {
		handleServiceError(ctx, w, err, "Failed to delete album")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Members handles GET /api/albums/{id}/members.
func (h *AlbumHandler) Members(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid album id")
		return
	}
	members, err := h.gallery.AlbumMembers(ctx, id)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list album members")
		return
	}
	writeJSON(ctx, w, http.StatusOK, mapSlice(members, toMemberResponse))
}

// AddMember handles POST /api/albums/{id}/members.
func (h *AlbumHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid album id")
		return
	}

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order := int64(-1)
	if req.Order != nil {
		order = *req.Order
	}

	m, err := h.gallery.AddAlbumMember(ctx, service.AddMemberRequest{
		AlbumID: id,
		PhotoID: req.PhotoID,
		Order:   order,
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to add album member")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, toMemberResponse(m))
}

// RemoveMember handles DELETE /api/albums/{id}/members/{photoID}.
func (h *AlbumHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid album id")
		return
	}
	photoID, ok := idParam(r, "photoID")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid photo id")
		return
	}
	if err := h.gallery.RemoveAlbumMember(ctx, id, photoID); err != nil {
		handleServiceError(ctx, w, err, "Failed to remove album member")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
