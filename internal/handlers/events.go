package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"photosync/internal/contextutil"
	"photosync/internal/storage"
)

// Subscriber hands out change notifications.
type Subscriber interface {
	Subscribe() (<-chan storage.Change, func())
}

// EventsHandler streams cache changes as server-sent events.
type EventsHandler struct {
	feed      Subscriber
	keepalive time.Duration
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(feed Subscriber) *EventsHandler {
	return &EventsHandler{feed: feed, keepalive: 30 * time.Second}
}

// ChangeEvent is the data payload of a "change" event.
type ChangeEvent struct {
	Table string    `json:"table"`
	At    time.Time `json:"at"`
}

// ServeHTTP handles GET /api/events. The stream ends when the client goes away.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	changes, unsubscribe := h.feed.Subscribe()
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(h.keepalive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case c, ok := <-changes:
			if !ok {
				return
			}
			data, err := json.Marshal(ChangeEvent{Table: c.Table, At: c.At})
			if err != nil {
				logger.ErrorContext(ctx, "failed to encode change event", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", data); err != nil {
				logger.DebugContext(ctx, "event stream closed", "error", err)
				return
			}
			flusher.Flush()
		}
	}
}
