package domain

import "context"

// Store ports. Implementations assign IDs and creation timestamps; domain
// code never minted either. Absent records surface as ErrNotFound.

type HotelStore interface {
	CreateHotel(ctx context.Context, h Hotel) (Hotel, error)
	FindHotel(ctx context.Context, id string) (Hotel, error)
	ListHotels(ctx context.Context) ([]Hotel, error) // newest first
	UpdateHotel(ctx context.Context, id string, upd HotelUpdate) (Hotel, error)
	DeleteHotel(ctx context.Context, id string) error
}

type BookingStore interface {
	CreateBooking(ctx context.Context, b Booking) (Booking, error)
	FindBooking(ctx context.Context, id string) (Booking, error)
	// FindBookingsByHotel returns every live booking for the hotel; the
	// overlap scan is fetch-then-filter, no date pre-filter at the query.
	FindBookingsByHotel(ctx context.Context, hotelID string) ([]Booking, error)
	FindBookingsByUser(ctx context.Context, userID string) ([]Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

type ReviewStore interface {
	// CreateReview returns ErrConflict when the (user, hotel) pair already
	// has a review; uniqueness is enforced at the storage boundary.
	CreateReview(ctx context.Context, r Review) (Review, error)
	FindReviewsByHotel(ctx context.Context, hotelID string) ([]Review, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
