package handlers

import (
	"net/http"
	"strconv"

	"photosync/internal/contextutil"
	"photosync/internal/service"
)

// SyncTrigger requests a background sync.
type SyncTrigger interface {
	CheckForUpdates() bool
	// Stopped reports that requests are refused because the server is shutting down.
	Stopped() bool
}

// SyncHandler exposes the sync trigger and the run history.
type SyncHandler struct {
	trigger SyncTrigger
	gallery service.GalleryService
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(trigger SyncTrigger, gallery service.GalleryService) *SyncHandler {
	return &SyncHandler{trigger: trigger, gallery: gallery}
}

// SyncResponse reports whether a sync request was accepted.
type SyncResponse struct {
	Status string `json:"status"`
}

// Trigger handles POST /api/sync. A request made while a sync is running is
// dropped, and the response says so. During shutdown it returns 503.
func (h *SyncHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.trigger.CheckForUpdates() {
		if h.trigger.Stopped() {
			contextutil.LoggerFromContext(ctx).WarnContext(ctx, "sync refused, shutting down")
			writeJSON(ctx, w, http.StatusServiceUnavailable, SyncResponse{Status: "shutting_down"})
			return
		}
		contextutil.LoggerFromContext(ctx).InfoContext(ctx, "sync already running")
		writeJSON(ctx, w, http.StatusAccepted, SyncResponse{Status: "already_running"})
		return
	}
	writeJSON(ctx, w, http.StatusAccepted, SyncResponse{Status: "accepted"})
}

// Runs handles GET /api/sync/runs?limit=.
func (h *SyncHandler) Runs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	runs, err := h.gallery.RecentRuns(ctx, limit)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list sync runs")
		return
	}
	writeJSON(ctx, w, http.StatusOK, mapSlice(runs, toRunResponse))
}
