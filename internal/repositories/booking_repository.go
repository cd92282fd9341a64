package repositories

import (
	"context"

	"ebus/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingRepo persists reservation requests. Bookings are insert-only;
// nothing in this system mutates or deletes them.
type BookingRepo interface {
	Insert(ctx context.Context, b models.Booking) (models.Booking, error)
	FindByID(ctx context.Context, id string) (models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
}

type MongoBookingRepo struct {
	Col *mongo.Collection
}

func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{Col: db.Collection("bookings")}
}

func (r *MongoBookingRepo) Insert(ctx context.Context, b models.Booking) (models.Booking, error) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if _, err := r.Col.InsertOne(ctx, b); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (r *MongoBookingRepo) FindByID(ctx context.Context, id string) (models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Booking{}, mongo.ErrNoDocuments
	}
	var b models.Booking
	err = r.Col.FindOne(ctx, bson.M{"_id": oid}).Decode(&b)
	return b, err
}

// ListByUser returns the user's bookings ordered by travel date ascending.
func (r *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []models.Booking{}, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{"user": oid}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	bookings := []models.Booking{}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
