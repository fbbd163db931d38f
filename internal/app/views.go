package app

import (
	"time"

	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/domain"
)

// Read models returned to the HTTP layer. Domain entities stay tag-free;
// the JSON shape lives here.

type HotelView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location,omitempty"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Amenities   []string  `json:"amenities"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BookingView struct {
	ID         string    `json:"id"`
	Checkin    string    `json:"checkin"`  // YYYY-MM-DD
	Checkout   string    `json:"checkout"` // YYYY-MM-DD
	Guests     int       `json:"guests"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
	Hotel      HotelView `json:"hotel"`
	Nights     int       `json:"nights"`
}

type ReviewView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	HotelID   string    `json:"hotelId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func mapHotel(h domain.Hotel) HotelView {
	amen := h.Amenities
	if amen == nil {
		amen = []string{}
	}
	return HotelView{
		ID:          h.ID,
		Name:        h.Name,
		Location:    h.Location,
		Price:       h.Rate,
		Description: h.Description,
		Image:       h.Image,
		Amenities:   amen,
		CreatedAt:   h.CreatedAt,
	}
}

func mapHotels(hs []domain.Hotel) []HotelView {
	out := make([]HotelView, 0, len(hs))
	for _, h := range hs {
		out = append(out, mapHotel(h))
	}
	return out
}

// mapBooking recomputes nights from the stored dates; a stored nights field
// is never trusted (there is none).
func mapBooking(b domain.Booking, h domain.Hotel) BookingView {
	return BookingView{
		ID:         b.ID,
		Checkin:    b.Checkin.Format(domain.DateLayout),
		Checkout:   b.Checkout.Format(domain.DateLayout),
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
		Hotel:      mapHotel(h),
		Nights:     b.Nights(),
	}
}

func mapReview(r domain.Review) ReviewView {
	return ReviewView{
		ID:        r.ID,
		UserID:    r.UserID,
		HotelID:   r.HotelID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
