package services

import (
	"context"
	"testing"

	"homeinsight-listings/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProperties(t *testing.T) {
	stats := models.Stats{Total: 30, Pending: 4, Approved: 24, Rejected: 2, Featured: 5}
	repo := &fakeRepo{properties: listings(12), total: 30, stats: stats}

	resp, err := NewAdminService(repo).ListProperties(context.Background(), models.SearchParams{Status: models.StatusPending, Page: 3, Limit: 12})
	require.NoError(t, err)
	assert.Len(t, resp.Properties, 12)
	assert.Equal(t, models.Pagination{Current: 3, Pages: 3, Total: 30}, resp.Pagination)
	assert.Equal(t, stats, resp.Stats)
	assert.Equal(t, "pending", repo.lastFilter["status"])
	assert.Equal(t, int64(24), repo.lastSkip)
}

func TestListProperties_NoStatusFilter(t *testing.T) {
	repo := &fakeRepo{properties: listings(1), total: 1}
	_, err := NewAdminService(repo).ListProperties(context.Background(), models.SearchParams{Page: 1, Limit: 12})
	require.NoError(t, err)
	_, ok := repo.lastFilter["status"]
	assert.False(t, ok)
}

func TestListProperties_Failure(t *testing.T) {
	repo := &fakeRepo{err: errRedisDown}
	_, err := NewAdminService(repo).ListProperties(context.Background(), models.SearchParams{Page: 1, Limit: 12})
	assert.Error(t, err)
}
