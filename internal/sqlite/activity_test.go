package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lmoretto/wanderlust/internal/domain/activity"
)

func TestActivityRepository_LogList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewActivityRepository(db)
	entry1 := &activity.Entry{
		SessionID: "1",
		Type:      activity.TypeSessionAccepted,
		Summary:   "Accepted session",
		Details:   `{"id":"1"}`,
		CreatedAt: time.Now().Add(-time.Minute),
	}
	entry2 := &activity.Entry{
		SessionID:  "1",
		LandmarkID: "2",
		Type:       activity.TypeLandmarkFound,
		Summary:    "Found landmark",
		Details:    `{"id":"2"}`,
		CreatedAt:  time.Now(),
	}

	require.NoError(t, repo.Log(ctx, entry1))
	require.NoError(t, repo.Log(ctx, entry2))
	require.NotZero(t, entry1.ID)
	require.NotZero(t, entry2.ID)

	entries, err := repo.List(ctx, activity.ListOptions{SessionID: "1"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, entry2.Type, entries[0].Type)
	require.Equal(t, entry1.Type, entries[1].Type)
}

func TestActivityRepository_Filters(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewActivityRepository(db)
	require.NoError(t, repo.Log(ctx, &activity.Entry{
		SessionID: "1",
		Type:      activity.TypeSessionAccepted,
		Summary:   "Accepted session",
	}))
	require.NoError(t, repo.Log(ctx, &activity.Entry{
		SessionID:  "1",
		LandmarkID: "2",
		Type:       activity.TypeLandmarkFound,
		Summary:    "Found landmark",
	}))
	require.NoError(t, repo.Log(ctx, &activity.Entry{
		SessionID:  "2",
		LandmarkID: "3",
		Type:       activity.TypeLandmarkFound,
		Summary:    "Found landmark",
	}))

	entries, err := repo.List(ctx, activity.ListOptions{LandmarkID: "2"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "1", entries[0].SessionID)

	found := activity.TypeLandmarkFound
	entries, err = repo.List(ctx, activity.ListOptions{Type: &found})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entries, err = repo.List(ctx, activity.ListOptions{SessionID: "2", Type: &found})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "3", entries[0].LandmarkID)
}

func TestActivityRepository_LimitOffset(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewActivityRepository(db)
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Log(ctx, &activity.Entry{
			SessionID: "1",
			Type:      activity.TypeLandmarkMissed,
			Summary:   "Missed landmark",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := repo.List(ctx, activity.ListOptions{SessionID: "1", Limit: 2})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	page, err := repo.List(ctx, activity.ListOptions{SessionID: "1", Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.NotEqual(t, entries[0].ID, page[0].ID)
}

func TestActivityRepository_EmptyOptionalColumns(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewActivityRepository(db)
	require.NoError(t, repo.Log(ctx, &activity.Entry{
		Type:    activity.TypeLevelUp,
		Summary: "Reached level 2",
	}))

	entries, err := repo.List(ctx, activity.ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Empty(t, entries[0].SessionID)
	require.Empty(t, entries[0].LandmarkID)
	require.Empty(t, entries[0].Details)
	require.False(t, entries[0].CreatedAt.IsZero())
}
