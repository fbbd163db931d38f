package app

import (
	"context"
	"fmt"
	"time"

	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/domain"
)

const hotelListKey = "hotels:all"

// HotelService serves hotel CRUD. Reads go through the cache; every write
// invalidates the affected keys so stale records are never served past TTL.
type HotelService struct {
	repo     domain.HotelStore
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewHotelService(r domain.HotelStore, c domain.Cache, ttl time.Duration) *HotelService {
	return &HotelService{repo: r, cache: c, cacheTTL: ttl}
}

type HotelInput struct {
	Name        string
	Location    string
	Rate        float64
	Description string
	Image       string
	Amenities   []string
}

func (s *HotelService) Get(ctx context.Context, id string) (HotelView, error) {
	key := "hotel:" + id
	var hv HotelView
	if ok, _ := s.cache.Get(ctx, key, &hv); ok {
		return hv, nil
	}
	h, err := s.repo.FindHotel(ctx, id)
	if err != nil {
		return HotelView{}, err
	}
	hv = mapHotel(h)
	_ = s.cache.Set(ctx, key, hv, int(s.cacheTTL.Seconds()))
	return hv, nil
}

func (s *HotelService) List(ctx context.Context) ([]HotelView, error) {
	var out []HotelView
	if ok, _ := s.cache.Get(ctx, hotelListKey, &out); ok {
		return out, nil
	}
	hs, err := s.repo.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	out = mapHotels(hs)
	_ = s.cache.Set(ctx, hotelListKey, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *HotelService) Create(ctx context.Context, in HotelInput) (HotelView, error) {
	if in.Name == "" {
		return HotelView{}, fmt.Errorf("%w: hotel name is required", domain.ErrValidation)
	}
	if in.Rate < 0 {
		return HotelView{}, fmt.Errorf("%w: nightly rate must not be negative", domain.ErrValidation)
	}
	h, err := s.repo.CreateHotel(ctx, domain.Hotel{
		Name:        in.Name,
		Location:    in.Location,
		Rate:        in.Rate,
		Description: in.Description,
		Image:       in.Image,
		Amenities:   in.Amenities,
	})
	if err != nil {
		return HotelView{}, err
	}
	_ = s.cache.Del(ctx, hotelListKey)
	return mapHotel(h), nil
}

func (s *HotelService) Update(ctx context.Context, id string, upd domain.HotelUpdate) (HotelView, error) {
	if upd.Rate != nil && *upd.Rate < 0 {
		return HotelView{}, fmt.Errorf("%w: nightly rate must not be negative", domain.ErrValidation)
	}
	h, err := s.repo.UpdateHotel(ctx, id, upd)
	if err != nil {
		return HotelView{}, err
	}
	s.invalidate(ctx, id)
	return mapHotel(h), nil
}

func (s *HotelService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteHotel(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *HotelService) invalidate(ctx context.Context, id string) {
	_ = s.cache.Del(ctx, "hotel:"+id)
	_ = s.cache.Del(ctx, hotelListKey)
}
