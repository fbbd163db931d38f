package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/adapters/auth"
	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/adapters/observability"
	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/app"
	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/domain"
)

type Handlers struct {
	Hotels   *app.HotelService
	Bookings *app.BookingService
	Reviews  *app.ReviewService
	Tokens   *auth.Service
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/api/hotels", func(r chi.Router) {
		r.Get("/", h.listHotels)
		r.Get("/{id}", h.getHotel)
		r.Group(func(r chi.Router) {
			r.Use(Auth(h.Tokens), AdminOnly)
			r.Post("/", h.addHotel)
			r.Put("/{id}", h.updateHotel)
			r.Delete("/{id}", h.deleteHotel)
		})
	})

	s.mux.Route("/api/bookings", func(r chi.Router) {
		r.Use(Auth(h.Tokens))
		r.Post("/", h.addBooking)
		r.Get("/", h.listBookings)
		r.Delete("/{id}", h.cancelBooking)
	})

	s.mux.Route("/api/reviews", func(r chi.Router) {
		r.Get("/{hotelId}", h.listReviews)
		r.Group(func(r chi.Router) {
			r.Use(Auth(h.Tokens))
			r.Post("/", h.addReview)
		})
	})
}

// ---- response helpers ----

type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{"ok": false, "message": msg})
}

// writeDomainErr translates the error taxonomy to a status code. Unknown
// errors are logged in full and reported without internal detail.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, userMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, userMessage(err))
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, userMessage(err))
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, userMessage(err))
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func userMessage(err error) string { return err.Error() }

// parseDate accepts a calendar date, or a full timestamp whose time-of-day
// is discarded downstream.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ---- hotels ----

type hotelRequest struct {
	Name        *string  `json:"name"`
	Location    *string  `json:"location"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Amenities   []string `json:"amenities"`
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Hotels.List(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotels)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hv, err := h.Hotels.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hv)
}

func (h *Handlers) addHotel(w http.ResponseWriter, r *http.Request) {
	var req hotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	in := app.HotelInput{Amenities: req.Amenities}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Location != nil {
		in.Location = *req.Location
	}
	if req.Price != nil {
		in.Rate = *req.Price
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.Image != nil {
		in.Image = *req.Image
	}
	hv, err := h.Hotels.Create(r.Context(), in)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, hv)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	var req hotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	upd := domain.HotelUpdate{
		Name:        req.Name,
		Location:    req.Location,
		Rate:        req.Price,
		Description: req.Description,
		Image:       req.Image,
		Amenities:   req.Amenities,
	}
	hv, err := h.Hotels.Update(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hv)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	if err := h.Hotels.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"ok": true, "message": "hotel removed"})
}

// ---- bookings ----

type bookingRequest struct {
	HotelID  string `json:"hotelId"`
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
	Guests   int    `json:"guests"`
}

func (h *Handlers) addBooking(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())

	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.ObserveBooking("rejected")
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.HotelID == "" || req.Checkin == "" || req.Checkout == "" || req.Guests < 1 {
		observability.ObserveBooking("rejected")
		writeError(w, http.StatusBadRequest, "invalid booking details: guests must be at least 1")
		return
	}
	checkin, err := parseDate(req.Checkin)
	if err != nil {
		observability.ObserveBooking("rejected")
		writeError(w, http.StatusBadRequest, "invalid check-in date")
		return
	}
	checkout, err := parseDate(req.Checkout)
	if err != nil {
		observability.ObserveBooking("rejected")
		writeError(w, http.StatusBadRequest, "invalid check-out date")
		return
	}

	booking, err := h.Bookings.Create(r.Context(), id.UserID, app.CreateBookingInput{
		HotelID:  req.HotelID,
		Checkin:  checkin,
		Checkout: checkout,
		Guests:   req.Guests,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			observability.ObserveBooking("conflict")
		default:
			observability.ObserveBooking("rejected")
		}
		writeDomainErr(w, err)
		return
	}
	observability.ObserveBooking("confirmed")
	writeJSON(w, http.StatusCreated, envelope{
		"ok":      true,
		"message": "booking successful",
		"booking": envelope{
			"id":         booking.ID,
			"hotelId":    booking.HotelID,
			"checkin":    booking.Checkin.Format(domain.DateLayout),
			"checkout":   booking.Checkout.Format(domain.DateLayout),
			"guests":     booking.Guests,
			"totalPrice": booking.TotalPrice,
			"createdAt":  booking.CreatedAt,
		},
	})
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	views, err := h.Bookings.ListForUser(r.Context(), id.UserID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handlers) cancelBooking(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	if err := h.Bookings.Cancel(r.Context(), id.UserID, chi.URLParam(r, "id")); err != nil {
		writeDomainErr(w, err)
		return
	}
	observability.ObserveBooking("cancelled")
	writeJSON(w, http.StatusOK, envelope{"ok": true, "message": "booking cancelled successfully"})
}

// ---- reviews ----

type reviewRequest struct {
	HotelID string `json:"hotelId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *Handlers) addReview(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	rv, err := h.Reviews.Add(r.Context(), id.UserID, app.ReviewInput{
		HotelID: req.HotelID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"ok": true, "review": rv})
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	out, err := h.Reviews.ListForHotel(r.Context(), chi.URLParam(r, "hotelId"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		"ok":        true,
		"reviews":   out.Reviews,
		"avgRating": out.AvgRating,
		"count":     out.Count,
	})
}
