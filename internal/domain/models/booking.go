package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses. Only Pending is ever assigned: there is no booking
// lifecycle (cancellation, payment confirmation) in this system.
const StatusPending = "Pending"

// PaymentMethods are the labels the booking form offers. The server
// stores the label as-is; no payment gateway is contacted.
var PaymentMethods = []string{"mobile_money", "bank_transfer", "card"}

// ValidPaymentMethod reports whether method is one of the offered labels.
func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Booking is one reservation request referencing a user and a route.
// Created once with status Pending and never mutated afterwards.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        primitive.ObjectID `bson:"user" json:"userId"`
	RouteID       primitive.ObjectID `bson:"route" json:"routeId"`
	Date          time.Time          `bson:"date" json:"date"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Status        string             `bson:"status" json:"status"`
	PaymentMethod string             `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
