package domain

import "time"

type Hotel struct {
	ID          string
	Name        string
	Location    string
	Rate        float64 // nightly rate, non-negative; sole pricing input
	Description string
	Image       string
	Amenities   []string
	CreatedAt   time.Time
}

// HotelUpdate carries partial updates; nil fields are left untouched.
type HotelUpdate struct {
	Name        *string
	Location    *string
	Rate        *float64
	Description *string
	Image       *string
	Amenities   []string
}
