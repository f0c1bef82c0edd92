package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter serves the API both at the root and under /api. Unmatched
// requests bypass the router middleware, so the fallback handlers carry
// their own request logging.
func NewRouter(h Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(h.RequestLogger, h.Recoverer)
	r.NotFoundHandler = h.RequestLogger(http.HandlerFunc(h.NotFoundHandler))
	r.MethodNotAllowedHandler = h.RequestLogger(http.HandlerFunc(h.MethodNotAllowedHandler))

	r.HandleFunc("/healthz", h.HealthHandler).Methods("GET")
	h.Routes(r.PathPrefix("/api").Subrouter())
	h.Routes(r)
	return r
}

func (h Handler) Routes(r *mux.Router) {
	r.HandleFunc("/signup", h.SignupHandler).Methods("POST")
	r.HandleFunc("/checkin", h.CheckinHandler).Methods("POST")
	r.HandleFunc("/book", h.BookHandler).Methods("POST")
	r.HandleFunc("/gyms", h.GymsHandler).Methods("GET")
	r.HandleFunc("/gyms/{id}", h.GymHandler).Methods("GET")
	r.HandleFunc("/gyms/{id}/checkin-code", h.GymCheckinCodeHandler).Methods("GET")
	r.HandleFunc("/user/{username}", h.UserHandler).Methods("GET")
	r.HandleFunc("/user/{username}/bookings", h.UserBookingsHandler).Methods("GET")
}
