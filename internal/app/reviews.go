package app

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/domain"
)

type ReviewService struct {
	reviews domain.ReviewStore
}

func NewReviewService(r domain.ReviewStore) *ReviewService {
	return &ReviewService{reviews: r}
}

type ReviewInput struct {
	HotelID string
	Rating  int
	Comment string
}

type ReviewsSummary struct {
	Reviews   []ReviewView `json:"reviews"`
	AvgRating float64      `json:"avgRating"`
	Count     int          `json:"count"`
}

// Add records one review per (user, hotel); the duplicate case surfaces as
// a conflict from the storage uniqueness constraint, not a scan here.
func (s *ReviewService) Add(ctx context.Context, userID string, in ReviewInput) (ReviewView, error) {
	if in.HotelID == "" || in.Rating == 0 {
		return ReviewView{}, fmt.Errorf("%w: hotel and rating are required", domain.ErrValidation)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return ReviewView{}, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	r, err := s.reviews.CreateReview(ctx, domain.Review{
		UserID:  userID,
		HotelID: in.HotelID,
		Rating:  in.Rating,
		Comment: in.Comment,
	})
	if err != nil {
		return ReviewView{}, err
	}
	return mapReview(r), nil
}

// ListForHotel returns the hotel's reviews, newest first, with the average
// rating rounded to one decimal.
func (s *ReviewService) ListForHotel(ctx context.Context, hotelID string) (ReviewsSummary, error) {
	rs, err := s.reviews.FindReviewsByHotel(ctx, hotelID)
	if err != nil {
		return ReviewsSummary{}, err
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].CreatedAt.After(rs[j].CreatedAt) })

	sum := 0
	views := make([]ReviewView, 0, len(rs))
	for _, r := range rs {
		sum += r.Rating
		views = append(views, mapReview(r))
	}
	n := len(rs)
	avg := 0.0
	if n > 0 {
		avg = math.Round(float64(sum)/float64(n)*10) / 10
	}
	return ReviewsSummary{Reviews: views, AvgRating: avg, Count: n}, nil
}
