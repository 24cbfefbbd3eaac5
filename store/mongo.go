package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"confetti-orders/models"
)

// Connect opens and pings a MongoDB client for the given URI.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// MongoStore is the alternate Store backend, one document per order in
// the orders collection.
type MongoStore struct {
	Collection *mongo.Collection
}

// NewMongoStore creates a store over the confetti database.
func NewMongoStore(client *mongo.Client) *MongoStore {
	collection := client.Database("confetti").Collection("orders")
	return &MongoStore{Collection: collection}
}

// Load retrieves every order in the collection.
func (s *MongoStore) Load(ctx context.Context) (map[string]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := map[string]models.Order{}
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders[order.ID] = order
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	return orders, nil
}

// Put upserts one order by id.
func (s *MongoStore) Put(ctx context.Context, order models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := s.Collection.ReplaceOne(ctx, bson.M{"_id": order.ID}, order, opts)
	if err != nil {
		return fmt.Errorf("upsert order %s: %w", order.ID, err)
	}
	return nil
}
