package database

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// interface for MongoDB operations.
type Database interface {
	GetCollection(name string) *mongo.Collection
}

// Database interface using a MongoDB database.
type MongoDatabase struct {
	db *mongo.Database
}

// create a new MongoDatabase instance. A nil db falls back to DB.
func NewMongoDatabase(db *mongo.Database) *MongoDatabase {
	if db == nil {
		db = DB
	}
	return &MongoDatabase{db: db}
}

// return a MongoDB collection by name.
func (m *MongoDatabase) GetCollection(name string) *mongo.Collection {
	return m.db.Collection(name)
}
