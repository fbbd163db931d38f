package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/app"
	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/domain"
)

func TestAddReview(t *testing.T) {
	svc := app.NewReviewService(newFakeReviewStore())

	rv, err := svc.Add(context.Background(), "user-1", app.ReviewInput{
		HotelID: "hotel-1", Rating: 4, Comment: "great stay",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rv.ID)
	assert.Equal(t, 4, rv.Rating)
}

func TestAddReview_Validation(t *testing.T) {
	svc := app.NewReviewService(newFakeReviewStore())

	cases := []struct {
		name string
		in   app.ReviewInput
	}{
		{"missing hotel", app.ReviewInput{Rating: 3}},
		{"missing rating", app.ReviewInput{HotelID: "hotel-1"}},
		{"rating too low", app.ReviewInput{HotelID: "hotel-1", Rating: -2}},
		{"rating too high", app.ReviewInput{HotelID: "hotel-1", Rating: 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), "user-1", tc.in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAddReview_DuplicateConflicts(t *testing.T) {
	svc := app.NewReviewService(newFakeReviewStore())

	_, err := svc.Add(context.Background(), "user-1", app.ReviewInput{HotelID: "hotel-1", Rating: 5})
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), "user-1", app.ReviewInput{HotelID: "hotel-1", Rating: 2})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// same user, different hotel is fine
	_, err = svc.Add(context.Background(), "user-1", app.ReviewInput{HotelID: "hotel-2", Rating: 2})
	assert.NoError(t, err)
}

func TestListForHotel_Average(t *testing.T) {
	store := newFakeReviewStore()
	svc := app.NewReviewService(store)

	for i, rating := range []int{5, 4, 4} {
		_, err := svc.Add(context.Background(), "user-"+string(rune('a'+i)), app.ReviewInput{
			HotelID: "hotel-1", Rating: rating,
		})
		require.NoError(t, err)
	}

	out, err := svc.ListForHotel(context.Background(), "hotel-1")
	require.NoError(t, err)
	assert.Equal(t, 3, out.Count)
	assert.Len(t, out.Reviews, 3)
	assert.Equal(t, 4.3, out.AvgRating) // 13/3 rounded to one decimal
}

func TestListForHotel_Empty(t *testing.T) {
	svc := app.NewReviewService(newFakeReviewStore())

	out, err := svc.ListForHotel(context.Background(), "hotel-1")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Count)
	assert.Equal(t, 0.0, out.AvgRating)
	assert.Empty(t, out.Reviews)
}
