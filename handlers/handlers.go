package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ratfit/models"
	"ratfit/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	svc      service.Service
	log      *zap.Logger
	validate *requestValidator
}

func NewHandler(svc service.Service, log *zap.Logger) Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return Handler{
		svc:      svc,
		log:      log,
		validate: newRequestValidator(),
	}
}

type SignupRequest struct {
	Username   string   `json:"username" validate:"required"`
	HomeGymID  string   `json:"homeGymId" validate:"required"`
	AwayGymIDs []string `json:"awayGymIds" validate:"omitempty,dive,required"`
}

type CheckinRequest struct {
	UserID string `json:"userId" validate:"required"`
	GymID  string `json:"gymId" validate:"required"`
}

type BookingRequest struct {
	UserID string `json:"userId" validate:"required"`
	GymID  string `json:"gymId" validate:"required"`
	Date   string `json:"date" validate:"required"`
}

type SignupResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
}

type CheckinResponse struct {
	Success bool           `json:"success"`
	Checkin models.Checkin `json:"checkin"`
}

type BookingResponse struct {
	Success bool           `json:"success"`
	Booking models.Booking `json:"booking"`
}

type BookingsResponse struct {
	Bookings []models.Booking `json:"bookings"`
}

type ErrorResponse struct {
	Message string               `json:"message"`
	Errors  []service.FieldError `json:"errors,omitempty"`
}

const (
	msgInvalidInput  = "Invalid input"
	msgUsernameTaken = "Username already exists"
	msgUserNotFound  = "User not found"
	msgGymNotFound   = "Gym not found"
	msgInternal      = "Internal server error"

	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
	msgBodyTooLarge     = "Request body too large"

	maxBodyBytes = 1 << 20
)

func (h Handler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !h.bind(w, r, &req) {
		return
	}
	user, err := h.svc.Signup(r.Context(), models.NewUser{
		Username:   req.Username,
		HomeGymID:  req.HomeGymID,
		AwayGymIDs: req.AwayGymIDs,
	})
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SignupResponse{Success: true, User: user})
}

func (h Handler) CheckinHandler(w http.ResponseWriter, r *http.Request) {
	var req CheckinRequest
	if !h.bind(w, r, &req) {
		return
	}
	checkin, err := h.svc.CheckIn(r.Context(), models.NewCheckin{
		UserID: req.UserID,
		GymID:  req.GymID,
	})
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CheckinResponse{Success: true, Checkin: checkin})
}

func (h Handler) BookHandler(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if !h.bind(w, r, &req) {
		return
	}
	booking, err := h.svc.Book(r.Context(), models.NewBooking{
		UserID: req.UserID,
		GymID:  req.GymID,
		Date:   req.Date,
	})
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BookingResponse{Success: true, Booking: booking})
}

func (h Handler) GymsHandler(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.ListGyms(r.Context())
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, overview)
}

func (h Handler) GymHandler(w http.ResponseWriter, r *http.Request) {
	gym, err := h.svc.GetGym(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, gym)
}

func (h Handler) GymCheckinCodeHandler(w http.ResponseWriter, r *http.Request) {
	code, err := h.svc.GymCheckinCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, code)
}

func (h Handler) UserHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetProfile(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

func (h Handler) UserBookingsHandler(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.svc.GetUserBookings(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BookingsResponse{Bookings: bookings})
}

func (h Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, msgNotFound, nil)
}

func (h Handler) MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed, nil)
}

// bind decodes and validates the JSON body into dst. It writes the error
// response itself and reports whether the handler may continue. Bodies over
// maxBodyBytes are rejected with 413.
func (h Handler) bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondWithError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge, nil)
			return false
		}
		respondWithError(w, http.StatusBadRequest, msgInvalidInput, decodeErrors(err))
		return false
	}
	if fields := h.validate.Struct(dst); len(fields) > 0 {
		respondWithError(w, http.StatusBadRequest, msgInvalidInput, fields)
		return false
	}
	return true
}

func (h Handler) respondWithServiceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithError(w, http.StatusBadRequest, msgInvalidInput, verr.Fields)
	case errors.Is(err, service.ErrUsernameTaken):
		respondWithError(w, http.StatusBadRequest, msgUsernameTaken, nil)
	case errors.Is(err, service.ErrUserNotFound):
		respondWithError(w, http.StatusNotFound, msgUserNotFound, nil)
	case errors.Is(err, service.ErrGymNotFound):
		respondWithError(w, http.StatusNotFound, msgGymNotFound, nil)
	default:
		h.log.Error("request failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, msgInternal, nil)
	}
}

func respondWithError(w http.ResponseWriter, code int, message string, fields []service.FieldError) {
	respondWithJSON(w, code, ErrorResponse{Message: message, Errors: fields})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
