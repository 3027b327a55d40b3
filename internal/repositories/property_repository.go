package repositories

import (
	"context"
	"fmt"
	"time"

	apperrors "homeinsight-listings/internal/errors"
	"homeinsight-listings/internal/models"
	"homeinsight-listings/internal/utils"
	"homeinsight-listings/pkg/database"
	"homeinsight-listings/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type propertyRepository struct {
	collection *mongo.Collection
}

func NewPropertyRepository(db database.Database) PropertyRepository {
	return &propertyRepository{
		collection: db.GetCollection(database.PropertiesCollection),
	}
}

func (r *propertyRepository) Search(ctx context.Context, filter bson.M, skip int64, limit int) ([]models.Property, int64, error) {
	start := time.Now()
	total, err := r.collection.CountDocuments(ctx, filter)
	observe("count_documents", start, err)
	if err != nil {
		return nil, 0, fmt.Errorf("count properties: %w: %v", apperrors.ErrDatabaseQuery, err)
	}

	findOptions := options.Find().
		SetSort(SearchSort).
		SetSkip(skip).
		SetLimit(int64(limit))

	start = time.Now()
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	observe("find", start, err)
	if err != nil {
		return nil, 0, fmt.Errorf("find properties: %w: %v", apperrors.ErrDatabaseQuery, err)
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	start = time.Now()
	err = cursor.All(ctx, &properties)
	observe("cursor_all", start, err)
	if err != nil {
		return nil, 0, fmt.Errorf("decode properties: %w: %v", apperrors.ErrDatabaseQuery, err)
	}
	return properties, total, nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	start := time.Now()
	var property models.Property
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err == mongo.ErrNoDocuments {
		observe("find_one", start, nil)
		return nil, utils.WrapError(apperrors.ErrPropertyNotFound, "id %s", id.Hex())
	}
	observe("find_one", start, err)
	if err != nil {
		return nil, fmt.Errorf("find property %s: %w: %v", id.Hex(), apperrors.ErrDatabaseQuery, err)
	}
	return &property, nil
}

// Stats counts listings per status and featured flag in one aggregation.
func (r *propertyRepository) Stats(ctx context.Context) (models.Stats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":      nil,
			"total":    bson.M{"$sum": 1},
			"pending":  countIf(bson.M{"$eq": bson.A{"$status", models.StatusPending}}),
			"approved": countIf(bson.M{"$eq": bson.A{"$status", models.StatusApproved}}),
			"rejected": countIf(bson.M{"$eq": bson.A{"$status", models.StatusRejected}}),
			"featured": countIf(bson.M{"$eq": bson.A{"$featured", true}}),
		}}},
	}

	start := time.Now()
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	observe("aggregate", start, err)
	if err != nil {
		return models.Stats{}, fmt.Errorf("aggregate stats: %w: %v", apperrors.ErrDatabaseQuery, err)
	}
	defer cursor.Close(ctx)

	var rows []models.Stats
	if err := cursor.All(ctx, &rows); err != nil {
		return models.Stats{}, fmt.Errorf("decode stats: %w: %v", apperrors.ErrDatabaseQuery, err)
	}
	if len(rows) == 0 {
		return models.Stats{}, nil
	}
	return rows[0], nil
}

func countIf(cond bson.M) bson.M {
	return bson.M{"$sum": bson.M{"$cond": bson.A{cond, 1, 0}}}
}

func observe(operation string, start time.Time, err error) {
	metrics.MongoOperationDuration.WithLabelValues(operation, database.PropertiesCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues(operation, database.PropertiesCollection).Inc()
	}
}
