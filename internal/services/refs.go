package services

import "go.mongodb.org/mongo-driver/bson/primitive"

// parseRef converts an opaque store reference back to an ObjectID.
func parseRef(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}
