package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Route is a sellable origin/destination/price tuple. Prices are in ETB.
type Route struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Origin      string             `bson:"origin" json:"origin"`
	Destination string             `bson:"destination" json:"destination"`
	Price       float64            `bson:"price" json:"price"`
}

// AllowedOrigins and AllowedDestinations are the catalog schema enums.
// Only Addis Ababa departures are sold; the catalog seed rejects any
// route outside these sets.
var (
	AllowedOrigins      = []string{"Addis Ababa"}
	AllowedDestinations = []string{"Bahir Dar", "Adama", "Jimma", "Dessie", "Dire Dawa"}
)

// DefaultRoutes is the seed set inserted into an empty catalog at startup.
var DefaultRoutes = []Route{
	{Origin: "Addis Ababa", Destination: "Bahir Dar", Price: 500},
	{Origin: "Addis Ababa", Destination: "Adama", Price: 200},
	{Origin: "Addis Ababa", Destination: "Jimma", Price: 450},
	{Origin: "Addis Ababa", Destination: "Dessie", Price: 600},
	{Origin: "Addis Ababa", Destination: "Dire Dawa", Price: 800},
}
