package services

import (
	"context"
	"testing"
	"time"

	apperrors "homeinsight-listings/internal/errors"
	"homeinsight-listings/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetPropertyByID_CachesLocally(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &fakeRepo{properties: []models.Property{{ID: id, PropertyName: "Palm Villa"}}}
	svc := NewPropertyService(repo, 10, time.Minute)
	defer svc.Stop()

	p, err := svc.GetPropertyByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Palm Villa", p.PropertyName)

	p, err = svc.GetPropertyByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Palm Villa", p.PropertyName)
	assert.Equal(t, 1, repo.findCalls)
}

func TestGetPropertyByID_NotFound(t *testing.T) {
	svc := NewPropertyService(&fakeRepo{}, 10, time.Minute)
	defer svc.Stop()

	_, err := svc.GetPropertyByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, apperrors.ErrPropertyNotFound)
}
