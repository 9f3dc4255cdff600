package catalog

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"storefront-service/models"
)

// MongoSource loads the product list from a MongoDB collection. Used when
// MONGO_URI is configured; any failure falls back to the static seed so the
// storefront keeps working without the database.
type MongoSource struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewMongoSource(ctx context.Context, uri, db string, logger *zap.Logger) (*MongoSource, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &MongoSource{
		collection: client.Database(db).Collection("products"),
		logger:     logger,
	}, nil
}

func (s *MongoSource) Products(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		s.logger.Error("Failed to query products", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		s.logger.Error("Failed to decode products", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Loaded products from MongoDB", zap.Int("count", len(products)))
	return products, nil
}
