package utils

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB connects to MongoDB using MONGO_URI and returns the client
func ConnectDB() *mongo.Client {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.Fatalf("Cannot connect to the database! %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Cannot reach the database! %v", err)
	}

	log.Println("Connected to the database!")
	return client
}

// DatabaseName returns the configured database name
func DatabaseName() string {
	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "foodorder"
	}
	return name
}
