package config

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// InitMongo connects to MongoDB and returns the client and the app
// database. The handles are passed down explicitly; nothing reads them
// through this package.
func InitMongo() (*mongo.Client, *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		Logger.Fatal("Error connecting to MongoDB:", zap.Error(err))
	}

	if err := client.Ping(ctx, nil); err != nil {
		Logger.Fatal("Error pinging MongoDB:", zap.Error(err))
	}

	Logger.Info("✅ Connected to MongoDB")
	return client, client.Database(os.Getenv("MONGO_DB"))
}

// EnsureIndexes creates the unique username index the registration path
// relies on for duplicate detection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
