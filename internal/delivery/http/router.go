package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"dragonfire/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes. The
// method patterns make the mux answer unsupported verbs with 405 and an
// Allow header listing the supported ones.
func NewRouter(events *controllers.EventController, requireIdentity func(http.HandlerFunc) http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	// Public read path
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("GET /events/{id}", events.GetEvent)

	// Admin mutations
	mux.HandleFunc("POST /events", requireIdentity(events.CreateEvent))
	mux.HandleFunc("PUT /events/{id}", requireIdentity(events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{id}", requireIdentity(events.DeleteEvent))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
