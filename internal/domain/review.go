package domain

import "time"

type Review struct {
	ID        string
	UserID    string
	HotelID   string
	Rating    int // 1..5
	Comment   string
	CreatedAt time.Time
}
