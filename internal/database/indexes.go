package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("products").Indexes()

	categoryIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
		Options: options.Index().
			SetName("category_index").
			SetPartialFilterExpression(bson.M{
				"category": bson.M{
					"$exists": true,
				},
			}),
	}

	log.Println("EnsureProductIndexes: creating category_index")
	_, err := indexes.CreateOne(ctx, categoryIndex)
	if err != nil {
		log.Println("EnsureProductIndexes: category index error:", err)
		return err
	}
	return nil
}

// EnsureOrderIndexes backs the order-tracking lookup, which matches orders by
// the customer's phone number.
func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	contactIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "customerContact", Value: 1}},
		Options: options.Index().SetName("customerContact_index"),
	}

	log.Println("EnsureOrderIndexes: creating customerContact_index")
	_, err := indexes.CreateOne(ctx, contactIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: customerContact index error:", err)
		return err
	}
	return nil
}
