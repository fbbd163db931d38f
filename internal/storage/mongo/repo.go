package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/A-J-Jovia/Hotel-Booking-Backend/internal/domain"
)

// Repo implements the domain store ports on MongoDB collections. Documents
// carry store-assigned ObjectIDs and creation timestamps; domain entities
// see them as opaque hex strings.
type Repo struct {
	hotels   *mongo.Collection
	bookings *mongo.Collection
	reviews  *mongo.Collection
}

func New(db *mongo.Database) *Repo {
	return &Repo{
		hotels:   db.Collection("hotels"),
		bookings: db.Collection("bookings"),
		reviews:  db.Collection("reviews"),
	}
}

// EnsureIndexes creates the uniqueness constraint backing the one-review-
// per-(user, hotel) invariant, plus the lookup indexes the scans use.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.reviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "hotelId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("reviews index: %w", err)
	}
	_, err = r.bookings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "hotelId", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("bookings indexes: %w", err)
	}
	return nil
}

func oid(id string) (primitive.ObjectID, error) {
	v, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id", domain.ErrValidation)
	}
	return v, nil
}

// ---- documents ----

type hotelDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Location    string             `bson:"location,omitempty"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description,omitempty"`
	Image       string             `bson:"image,omitempty"`
	Amenities   []string           `bson:"amenities"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d hotelDoc) toDomain() domain.Hotel {
	return domain.Hotel{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Location:    d.Location,
		Rate:        d.Price,
		Description: d.Description,
		Image:       d.Image,
		Amenities:   d.Amenities,
		CreatedAt:   d.CreatedAt,
	}
}

type bookingDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     primitive.ObjectID `bson:"userId"`
	HotelID    primitive.ObjectID `bson:"hotelId"`
	Checkin    time.Time          `bson:"checkin"`
	Checkout   time.Time          `bson:"checkout"`
	Guests     int                `bson:"guests"`
	TotalPrice float64            `bson:"totalPrice"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func (d bookingDoc) toDomain() domain.Booking {
	return domain.Booking{
		ID:         d.ID.Hex(),
		UserID:     d.UserID.Hex(),
		HotelID:    d.HotelID.Hex(),
		Checkin:    domain.Day(d.Checkin),
		Checkout:   domain.Day(d.Checkout),
		Guests:     d.Guests,
		TotalPrice: d.TotalPrice,
		CreatedAt:  d.CreatedAt,
	}
}

type reviewDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	HotelID   primitive.ObjectID `bson:"hotelId"`
	Rating    int                `bson:"rating"`
	Comment   string             `bson:"comment,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d reviewDoc) toDomain() domain.Review {
	return domain.Review{
		ID:        d.ID.Hex(),
		UserID:    d.UserID.Hex(),
		HotelID:   d.HotelID.Hex(),
		Rating:    d.Rating,
		Comment:   d.Comment,
		CreatedAt: d.CreatedAt,
	}
}

// ---- hotels ----

func (r *Repo) CreateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	doc := hotelDoc{
		Name:        h.Name,
		Location:    h.Location,
		Price:       h.Rate,
		Description: h.Description,
		Image:       h.Image,
		Amenities:   h.Amenities,
		CreatedAt:   time.Now().UTC(),
	}
	if doc.Amenities == nil {
		doc.Amenities = []string{}
	}
	res, err := r.hotels.InsertOne(ctx, doc)
	if err != nil {
		return domain.Hotel{}, err
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *Repo) FindHotel(ctx context.Context, id string) (domain.Hotel, error) {
	v, err := oid(id)
	if err != nil {
		return domain.Hotel{}, err
	}
	var doc hotelDoc
	if err := r.hotels.FindOne(ctx, bson.M{"_id": v}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Hotel{}, fmt.Errorf("%w: hotel", domain.ErrNotFound)
		}
		return domain.Hotel{}, err
	}
	return doc.toDomain(), nil
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	cur, err := r.hotels.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Hotel
	for cur.Next(ctx) {
		var doc hotelDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *Repo) UpdateHotel(ctx context.Context, id string, upd domain.HotelUpdate) (domain.Hotel, error) {
	v, err := oid(id)
	if err != nil {
		return domain.Hotel{}, err
	}
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Rate != nil {
		set["price"] = *upd.Rate
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.Amenities != nil {
		set["amenities"] = upd.Amenities
	}
	if len(set) == 0 {
		return r.FindHotel(ctx, id)
	}

	var doc hotelDoc
	err = r.hotels.FindOneAndUpdate(ctx, bson.M{"_id": v}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Hotel{}, fmt.Errorf("%w: hotel", domain.ErrNotFound)
		}
		return domain.Hotel{}, err
	}
	return doc.toDomain(), nil
}

func (r *Repo) DeleteHotel(ctx context.Context, id string) error {
	v, err := oid(id)
	if err != nil {
		return err
	}
	res, err := r.hotels.DeleteOne(ctx, bson.M{"_id": v})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: hotel", domain.ErrNotFound)
	}
	return nil
}

// ---- bookings ----

func (r *Repo) CreateBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	userID, err := oid(b.UserID)
	if err != nil {
		return domain.Booking{}, err
	}
	hotelID, err := oid(b.HotelID)
	if err != nil {
		return domain.Booking{}, err
	}
	doc := bookingDoc{
		UserID:     userID,
		HotelID:    hotelID,
		Checkin:    domain.Day(b.Checkin),
		Checkout:   domain.Day(b.Checkout),
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		CreatedAt:  time.Now().UTC(),
	}
	res, err := r.bookings.InsertOne(ctx, doc)
	if err != nil {
		return domain.Booking{}, err
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *Repo) FindBooking(ctx context.Context, id string) (domain.Booking, error) {
	v, err := oid(id)
	if err != nil {
		return domain.Booking{}, err
	}
	var doc bookingDoc
	if err := r.bookings.FindOne(ctx, bson.M{"_id": v}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Booking{}, fmt.Errorf("%w: booking", domain.ErrNotFound)
		}
		return domain.Booking{}, err
	}
	return doc.toDomain(), nil
}

func (r *Repo) FindBookingsByHotel(ctx context.Context, hotelID string) ([]domain.Booking, error) {
	v, err := oid(hotelID)
	if err != nil {
		return nil, err
	}
	return r.findBookings(ctx, bson.M{"hotelId": v})
}

func (r *Repo) FindBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	v, err := oid(userID)
	if err != nil {
		return nil, err
	}
	return r.findBookings(ctx, bson.M{"userId": v})
}

func (r *Repo) findBookings(ctx context.Context, filter bson.M) ([]domain.Booking, error) {
	cur, err := r.bookings.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Booking
	for cur.Next(ctx) {
		var doc bookingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *Repo) DeleteBooking(ctx context.Context, id string) error {
	v, err := oid(id)
	if err != nil {
		return err
	}
	res, err := r.bookings.DeleteOne(ctx, bson.M{"_id": v})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: booking", domain.ErrNotFound)
	}
	return nil
}

// ---- reviews ----

func (r *Repo) CreateReview(ctx context.Context, rv domain.Review) (domain.Review, error) {
	userID, err := oid(rv.UserID)
	if err != nil {
		return domain.Review{}, err
	}
	hotelID, err := oid(rv.HotelID)
	if err != nil {
		return domain.Review{}, err
	}
	doc := reviewDoc{
		UserID:    userID,
		HotelID:   hotelID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: time.Now().UTC(),
	}
	res, err := r.reviews.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Review{}, fmt.Errorf("%w: you have already reviewed this hotel", domain.ErrConflict)
		}
		return domain.Review{}, err
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *Repo) FindReviewsByHotel(ctx context.Context, hotelID string) ([]domain.Review, error) {
	v, err := oid(hotelID)
	if err != nil {
		return nil, err
	}
	cur, err := r.reviews.Find(ctx, bson.M{"hotelId": v},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Review
	for cur.Next(ctx) {
		var doc reviewDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}
