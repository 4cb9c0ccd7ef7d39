package services

import (
	"context"
	"testing"

	"amora_server/models"

	"github.com/stretchr/testify/require"
)

func TestNextCandidateFiltersOrientationAndSelf(t *testing.T) {
	store := NewMemoryProfileStore()
	ctx := context.Background()

	require.NoError(t, store.PutProfile(ctx, models.UserProfile{UserID: "alina", Orientation: "Гей"}))
	require.NoError(t, store.PutProfile(ctx, models.UserProfile{UserID: "bella", Orientation: "Гей"}))
	require.NoError(t, store.PutProfile(ctx, models.UserProfile{UserID: "chloe", Orientation: "Би"}))

	for i := 0; i < 20; i++ {
		candidate, err := store.Next(ctx, "alina")
		require.NoError(t, err)
		require.NotNil(t, candidate)
		require.Equal(t, "bella", candidate.UserID)
	}
}

func TestNextCandidateEmptyPool(t *testing.T) {
	store := NewMemoryProfileStore()
	ctx := context.Background()

	require.NoError(t, store.PutProfile(ctx, models.UserProfile{UserID: "chloe", Orientation: "Би"}))

	candidate, err := store.Next(ctx, "chloe")
	require.NoError(t, err)
	require.Nil(t, candidate)
}

func TestNextCandidateUnknownRequester(t *testing.T) {
	store := NewMemoryProfileStore()

	_, err := store.Next(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}
