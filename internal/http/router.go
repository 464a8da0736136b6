package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"photosync/internal/handlers"
	"photosync/internal/mediastore"
	"photosync/internal/service"
)

const healthPath = "/api/health"

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Gallery service.GalleryService
	Trigger handlers.SyncTrigger
	Feed    handlers.Subscriber
	// Checks are pinged by the health endpoint, keyed by name.
	Checks map[string]handlers.Pinger
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(CORS)

	media := handlers.NewMediaHandler(deps.Gallery)
	albums := handlers.NewAlbumHandler(deps.Gallery)
	sync := handlers.NewSyncHandler(deps.Trigger, deps.Gallery)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.Checks))
		r.Method(http.MethodGet, "/events", handlers.NewEventsHandler(deps.Feed))

		r.Post("/sync", sync.Trigger)
		r.Get("/sync/runs", sync.Runs)

		r.Route("/photos", func(r chi.Router) {
			r.Get("/", media.ListPhotos)
			r.Get("/buckets", media.Buckets(mediastore.KindPhoto))
			r.Get("/info", media.Info(mediastore.KindPhoto))
			r.Get("/{id}", media.GetPhoto)
		})

		r.Route("/videos", func(r chi.Router) {
			r.Get("/", media.ListVideos)
			r.Get("/buckets", media.Buckets(mediastore.KindVideo))
			r.Get("/info", media.Info(mediastore.KindVideo))
			r.Get("/artists", media.VideoArtists)
			r.Get("/albums", media.VideoAlbums)
			r.Get("/{id}", media.GetVideo)
		})

		r.Route("/albums", func(r chi.Router) {
			r.Get("/", albums.List)
			r.Post("/", albums.Create)
			r.Get("/{id}", albums.Get)
			r.Delete("/{id}", albums.Delete)
			r.Get("/{id}/members", albums.Members)
			r.Post("/{id}/members", albums.AddMember)
			r.Delete("/{id}/members/{photoID}", albums.RemoveMember)
		})
	})

	return r
}
