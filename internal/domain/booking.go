package domain

import "time"

type Booking struct {
	ID         string
	UserID     string
	HotelID    string
	Checkin    time.Time // UTC midnight
	Checkout   time.Time // UTC midnight, strictly after Checkin
	Guests     int       // >= 1
	TotalPrice float64
	CreatedAt  time.Time
}

// Overlaps reports whether a candidate stay collides with this booking.
// Dates are compared at day granularity. A conflict holds if any of:
//
//  1. the candidate check-in falls inside [b.Checkin, b.Checkout) — starting
//     on an existing checkout day (back-to-back) is allowed;
//  2. the candidate check-out falls inside (b.Checkin, b.Checkout] — ending
//     on an existing checkin day is allowed;
//  3. this booking is fully contained within the candidate range.
//
// Exact-duplicate ranges conflict.
func (b Booking) Overlaps(checkin, checkout time.Time) bool {
	exIn, exOut := Day(b.Checkin), Day(b.Checkout)
	in, out := Day(checkin), Day(checkout)

	if !in.Before(exIn) && in.Before(exOut) {
		return true
	}
	if out.After(exIn) && !out.After(exOut) {
		return true
	}
	if !exIn.Before(in) && !exOut.After(out) {
		return true
	}
	return false
}

// Nights returns the stay length in whole days.
func (b Booking) Nights() int { return Nights(b.Checkin, b.Checkout) }
