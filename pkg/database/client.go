package database

import (
	"context"
	"fmt"
	"time"

	"homeinsight-listings/pkg/config"
	"homeinsight-listings/pkg/logger"
	"homeinsight-listings/pkg/metrics"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var MongoClient *mongo.Client
var DB *mongo.Database

// initialize the MongoDB client and database connection.
func InitDB(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.Database.URI).
		SetConnectTimeout(cfg.Database.Timeout).
		SetMaxPoolSize(100)

	start := time.Now()
	client, err := mongo.Connect(ctx, clientOptions)
	metrics.MongoOperationDuration.WithLabelValues("connect", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("connect", "").Inc()
		logger.GlobalLogger.Errorf("failed to connect to MongoDB: %v", err)
		return fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	MongoClient = client
	if err := Ping(ctx); err != nil {
		client.Disconnect(ctx)
		MongoClient = nil
		logger.GlobalLogger.Errorf("failed to ping MongoDB: %v", err)
		return fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	DB = client.Database(cfg.Database.DBName)

	if err := CreatePropertyIndexes(DB); err != nil {
		logger.GlobalLogger.Errorf("continuing without property indexes: %v", err)
	}

	logger.GlobalLogger.Printf("MongoDB connected successfully: db=%s", cfg.Database.DBName)
	return nil
}

// Ping checks the primary, for start-up and the health endpoint.
func Ping(ctx context.Context) error {
	if MongoClient == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	start := time.Now()
	err := MongoClient.Ping(ctx, readpref.Primary())
	metrics.MongoOperationDuration.WithLabelValues("ping", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("ping", "").Inc()
		return err
	}
	return nil
}

// close the MongoDB client connection.
func CloseDB() {
	if MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		start := time.Now()
		err := MongoClient.Disconnect(ctx)
		metrics.MongoOperationDuration.WithLabelValues("disconnect", "").Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.MongoErrorsTotal.WithLabelValues("disconnect", "").Inc()
			logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
		} else {
			logger.GlobalLogger.Println("MongoDB connection closed")
		}
	}
}
