package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/app"
	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/domain"
)

func TestGetHotel_CacheMissThenHit(t *testing.T) {
	store := newFakeHotelStore()
	cache := &fakeCache{}
	svc := app.NewHotelService(store, cache, 10*time.Minute)

	h, err := store.CreateHotel(context.Background(), domain.Hotel{Name: "Grand Vista", Rate: 120})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	// Miss (first time, populates cache)
	hv, err := svc.Get(context.Background(), h.ID)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if hv.Name != "Grand Vista" || hv.Price != 120 {
		t.Fatalf("unexpected hotel: %+v", hv)
	}

	// Mutate the store directly to ensure the second read comes from cache
	mutated := h
	mutated.Name = "SHOULD NOT SEE THIS"
	store.hotels[h.ID] = mutated

	hv2, err := svc.Get(context.Background(), h.ID)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if hv2.Name != "Grand Vista" {
		t.Fatalf("expected cached name, got %s", hv2.Name)
	}
}

func TestUpdateHotel_InvalidatesCache(t *testing.T) {
	store := newFakeHotelStore()
	cache := &fakeCache{}
	svc := app.NewHotelService(store, cache, 10*time.Minute)

	h, _ := store.CreateHotel(context.Background(), domain.Hotel{Name: "Old Name", Rate: 50})
	if _, err := svc.Get(context.Background(), h.ID); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	newName := "New Name"
	if _, err := svc.Update(context.Background(), h.ID, domain.HotelUpdate{Name: &newName}); err != nil {
		t.Fatalf("update: %v", err)
	}

	hv, err := svc.Get(context.Background(), h.ID)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if hv.Name != "New Name" {
		t.Fatalf("expected updated name after invalidation, got %s", hv.Name)
	}
}

func TestCreateHotel_Validation(t *testing.T) {
	store := newFakeHotelStore()
	svc := app.NewHotelService(store, &fakeCache{}, time.Minute)

	if _, err := svc.Create(context.Background(), app.HotelInput{Rate: 10}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), app.HotelInput{Name: "X", Rate: -1}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for negative rate, got %v", err)
	}
}

func TestDeleteHotel_MissingIsNotFound(t *testing.T) {
	store := newFakeHotelStore()
	svc := app.NewHotelService(store, &fakeCache{}, time.Minute)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
