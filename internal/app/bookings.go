package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/domain"
)

// BookingService owns the booking lifecycle: admission (validate, overlap
// scan, price), listing, and cancellation. A booking is persisted only
// after the overlap check passes; there is no intermediate stored state.
type BookingService struct {
	bookings domain.BookingStore
	hotels   domain.HotelStore
}

func NewBookingService(b domain.BookingStore, h domain.HotelStore) *BookingService {
	return &BookingService{bookings: b, hotels: h}
}

type CreateBookingInput struct {
	HotelID  string
	Checkin  time.Time
	Checkout time.Time
	Guests   int
}

// Create admits a stay request. Preconditions are checked in order, each
// short-circuiting: input shape, date ordering, hotel existence, then a
// linear overlap scan across every live booking of the hotel. The read of
// existing bookings and the write of the new one are not serialized; two
// racing requests can both pass the scan (documented storage-level gap).
func (s *BookingService) Create(ctx context.Context, userID string, in CreateBookingInput) (domain.Booking, error) {
	if in.HotelID == "" || in.Checkin.IsZero() || in.Checkout.IsZero() || in.Guests < 1 {
		return domain.Booking{}, fmt.Errorf("%w: hotel, dates and at least one guest are required", domain.ErrValidation)
	}

	checkin, checkout := domain.Day(in.Checkin), domain.Day(in.Checkout)
	if !checkout.After(checkin) {
		return domain.Booking{}, fmt.Errorf("%w: check-out must be after check-in", domain.ErrValidation)
	}

	hotel, err := s.hotels.FindHotel(ctx, in.HotelID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Booking{}, fmt.Errorf("%w: hotel", domain.ErrNotFound)
		}
		return domain.Booking{}, err
	}

	existing, err := s.bookings.FindBookingsByHotel(ctx, in.HotelID)
	if err != nil {
		return domain.Booking{}, err
	}
	for _, b := range existing {
		if b.Overlaps(checkin, checkout) {
			return domain.Booking{}, fmt.Errorf("%w: hotel is already booked for the selected dates", domain.ErrConflict)
		}
	}

	nights := domain.Nights(checkin, checkout)
	booking := domain.Booking{
		UserID:     userID,
		HotelID:    in.HotelID,
		Checkin:    checkin,
		Checkout:   checkout,
		Guests:     in.Guests,
		TotalPrice: hotel.Rate * float64(nights) * float64(in.Guests),
	}
	return s.bookings.CreateBooking(ctx, booking)
}

// ListForUser returns the caller's bookings, newest check-in first, each
// expanded with the full hotel record and the recomputed stay length.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]BookingView, error) {
	bs, err := s.bookings.FindBookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(bs, func(i, j int) bool { return bs[i].Checkin.After(bs[j].Checkin) })

	seen := map[string]domain.Hotel{}
	views := make([]BookingView, 0, len(bs))
	for _, b := range bs {
		h, ok := seen[b.HotelID]
		if !ok {
			h, err = s.hotels.FindHotel(ctx, b.HotelID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			seen[b.HotelID] = h
		}
		views = append(views, mapBooking(b, h))
	}
	return views, nil
}

// Cancel hard-deletes a booking. Only the owner may cancel, and only while
// today is strictly before the check-in day; check-in <= today means the
// stay has already started.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID string) error {
	b, err := s.bookings.FindBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return fmt.Errorf("%w: only the booking owner can cancel it", domain.ErrForbidden)
	}
	today := domain.Day(time.Now())
	if !domain.Day(b.Checkin).After(today) {
		return fmt.Errorf("%w: booking has already started", domain.ErrValidation)
	}
	return s.bookings.DeleteBooking(ctx, bookingID)
}
