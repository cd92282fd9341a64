package repositories

import (
	"context"

	"ebus/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RouteRepo is the read-mostly catalog store. Routes are never updated or
// deleted; the only write is the startup seed.
type RouteRepo interface {
	List(ctx context.Context) ([]models.Route, error)
	FindByID(ctx context.Context, id string) (models.Route, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, routes []models.Route) error
}

type MongoRouteRepo struct {
	Col *mongo.Collection
}

func NewMongoRouteRepo(db *mongo.Database) *MongoRouteRepo {
	return &MongoRouteRepo{Col: db.Collection("routes")}
}

// List returns the catalog in insertion order (_id ascending).
func (r *MongoRouteRepo) List(ctx context.Context) ([]models.Route, error) {
	cur, err := r.Col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	routes := []models.Route{}
	if err := cur.All(ctx, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *MongoRouteRepo) FindByID(ctx context.Context, id string) (models.Route, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// a malformed id can never match a stored route
		return models.Route{}, mongo.ErrNoDocuments
	}
	var route models.Route
	err = r.Col.FindOne(ctx, bson.M{"_id": oid}).Decode(&route)
	return route, err
}

func (r *MongoRouteRepo) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}

func (r *MongoRouteRepo) InsertMany(ctx context.Context, routes []models.Route) error {
	if len(routes) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(routes))
	for _, rt := range routes {
		docs = append(docs, rt)
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}
