package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// withURLParams attaches chi path parameters to req as the router would.
func withURLParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
