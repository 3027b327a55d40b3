package services

import (
	"context"
	"errors"
	"sync"
	"time"

	apperrors "homeinsight-listings/internal/errors"
	"homeinsight-listings/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRepo struct {
	mu          sync.Mutex
	properties  []models.Property
	total       int64
	stats       models.Stats
	err         error
	searchCalls int
	findCalls   int
	lastFilter  bson.M
	lastSkip    int64
	lastLimit   int
}

func (r *fakeRepo) Search(ctx context.Context, filter bson.M, skip int64, limit int) ([]models.Property, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searchCalls++
	r.lastFilter, r.lastSkip, r.lastLimit = filter, skip, limit
	if r.err != nil {
		return nil, 0, r.err
	}
	return r.properties, r.total, nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	for i := range r.properties {
		if r.properties[i].ID == id {
			p := r.properties[i]
			return &p, nil
		}
	}
	return nil, apperrors.ErrPropertyNotFound
}

func (r *fakeRepo) Stats(ctx context.Context) (models.Stats, error) {
	return r.stats, r.err
}

type fakeSearchCache struct {
	mu       sync.Mutex
	pages    map[string]*models.SearchResponse
	getErr   error
	setErr   error
	lastTTL  time.Duration
	setCalls int
}

func newFakeSearchCache() *fakeSearchCache {
	return &fakeSearchCache{pages: map[string]*models.SearchResponse{}}
}

func (c *fakeSearchCache) GetSearch(ctx context.Context, key string) (*models.SearchResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.pages[key], nil
}

func (c *fakeSearchCache) SetSearch(ctx context.Context, key string, resp *models.SearchResponse, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setCalls++
	c.lastTTL = expiration
	if c.setErr != nil {
		return c.setErr
	}
	c.pages[key] = resp
	return nil
}

var errRedisDown = errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
