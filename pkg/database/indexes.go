package database

import (
	"context"
	"time"

	"homeinsight-listings/pkg/logger"
	"homeinsight-listings/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PropertiesCollection holds the listings.
const PropertiesCollection = "properties"

// PropertyIndexes backs the public search filters and its sort order.
func PropertyIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "featured", Value: -1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "purpose", Value: 1}, {Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "propertyType", Value: 1}}},
		{Keys: bson.D{{Key: "bedrooms", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
	}
}

// create indexes for the properties collection to optimize search performance.
func CreatePropertyIndexes(db *mongo.Database) error {
	collection := db.Collection(PropertiesCollection)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := collection.Indexes().CreateMany(ctx, PropertyIndexes())
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", PropertiesCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", PropertiesCollection).Inc()
		logger.GlobalLogger.Errorf("Failed to create indexes: %v", err)
		return err
	}

	logger.GlobalLogger.Println("MongoDB indexes created successfully.")
	return nil
}
