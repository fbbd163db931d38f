package app_test

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/app"
	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/domain"
)

// ---- in-memory fakes implementing the domain store ports ----

type fakeHotelStore struct {
	hotels map[string]domain.Hotel
}

func newFakeHotelStore() *fakeHotelStore {
	return &fakeHotelStore{hotels: map[string]domain.Hotel{}}
}

func (f *fakeHotelStore) CreateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	h.ID = uuid.NewString()
	h.CreatedAt = time.Now().UTC()
	f.hotels[h.ID] = h
	return h, nil
}

func (f *fakeHotelStore) FindHotel(ctx context.Context, id string) (domain.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return domain.Hotel{}, fmt.Errorf("%w: hotel", domain.ErrNotFound)
	}
	return h, nil
}

func (f *fakeHotelStore) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	out := make([]domain.Hotel, 0, len(f.hotels))
	for _, h := range f.hotels {
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHotelStore) UpdateHotel(ctx context.Context, id string, upd domain.HotelUpdate) (domain.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return domain.Hotel{}, fmt.Errorf("%w: hotel", domain.ErrNotFound)
	}
	if upd.Name != nil {
		h.Name = *upd.Name
	}
	if upd.Rate != nil {
		h.Rate = *upd.Rate
	}
	if upd.Location != nil {
		h.Location = *upd.Location
	}
	if upd.Description != nil {
		h.Description = *upd.Description
	}
	if upd.Image != nil {
		h.Image = *upd.Image
	}
	if upd.Amenities != nil {
		h.Amenities = upd.Amenities
	}
	f.hotels[id] = h
	return h, nil
}

func (f *fakeHotelStore) DeleteHotel(ctx context.Context, id string) error {
	if _, ok := f.hotels[id]; !ok {
		return fmt.Errorf("%w: hotel", domain.ErrNotFound)
	}
	delete(f.hotels, id)
	return nil
}

type fakeBookingStore struct {
	bookings map[string]domain.Booking
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: map[string]domain.Booking{}}
}

func (f *fakeBookingStore) CreateBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC()
	f.bookings[b.ID] = b
	return b, nil
}

func (f *fakeBookingStore) FindBooking(ctx context.Context, id string) (domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return domain.Booking{}, fmt.Errorf("%w: booking", domain.ErrNotFound)
	}
	return b, nil
}

func (f *fakeBookingStore) FindBookingsByHotel(ctx context.Context, hotelID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.HotelID == hotelID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) FindBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) DeleteBooking(ctx context.Context, id string) error {
	if _, ok := f.bookings[id]; !ok {
		return fmt.Errorf("%w: booking", domain.ErrNotFound)
	}
	delete(f.bookings, id)
	return nil
}

type fakeReviewStore struct {
	reviews map[string]domain.Review
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: map[string]domain.Review{}}
}

func (f *fakeReviewStore) CreateReview(ctx context.Context, r domain.Review) (domain.Review, error) {
	for _, ex := range f.reviews {
		if ex.UserID == r.UserID && ex.HotelID == r.HotelID {
			return domain.Review{}, fmt.Errorf("%w: you have already reviewed this hotel", domain.ErrConflict)
		}
	}
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	f.reviews[r.ID] = r
	return r, nil
}

func (f *fakeReviewStore) FindReviewsByHotel(ctx context.Context, hotelID string) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range f.reviews {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *app.HotelView:
		*d = v.(app.HotelView)
	case *[]app.HotelView:
		*d = v.([]app.HotelView)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}
