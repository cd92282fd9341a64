package config

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client *mongo.Client
	dbMu   sync.Mutex
)

// ConnectDB initializes the shared Mongo client (idempotent).
// Startup connection failure is fatal: better to die loudly than
// serve requests against a store that was never reachable.
func ConnectDB(uri string) *mongo.Client {
	dbMu.Lock()
	defer dbMu.Unlock()

	if client != nil {
		return client
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second).
		SetSocketTimeout(45 * time.Second).
		SetMaxPoolSize(25)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatalf("failed to open mongo connection: %v", err)
	}

	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("failed to ping mongo: %v", err)
	}

	client = c
	log.Println("connected to MongoDB")
	return client
}

// EnsureDB pings the shared client, reconnecting when it was never opened.
func EnsureDB(uri string) error {
	dbMu.Lock()
	c := client
	dbMu.Unlock()

	if c == nil {
		ConnectDB(uri)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return c.Ping(ctx, readpref.Primary())
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
		client = nil
	}
}
