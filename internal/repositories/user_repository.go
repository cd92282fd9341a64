package repositories

import (
	"context"
	"strings"

	"ebus/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepo stores auth users. The booking core only resolves ids from it.
type UserRepo interface {
	Insert(ctx context.Context, u models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
}

type MongoUserRepo struct {
	Col *mongo.Collection
}

func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{Col: db.Collection("users")}
}

func (r *MongoUserRepo) Insert(ctx context.Context, u models.User) (models.User, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if _, err := r.Col.InsertOne(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r *MongoUserRepo) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.Col.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&u)
	return u, err
}

func (r *MongoUserRepo) FindByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, mongo.ErrNoDocuments
	}
	var u models.User
	err = r.Col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	return u, err
}
