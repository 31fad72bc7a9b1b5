package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lmoretto/wanderlust/internal/repository"
)

func TestStateStore_SetGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	store := NewStateStore(db)
	require.NoError(t, store.Set(ctx, "gameState", []byte(`{"acceptedGameSessions":[]}`)))

	value, err := store.Get(ctx, "gameState")
	require.NoError(t, err)
	require.JSONEq(t, `{"acceptedGameSessions":[]}`, string(value))
}

func TestStateStore_SetOverwrites(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	store := NewStateStore(db)
	require.NoError(t, store.Set(ctx, "experience", []byte(`{"currentExp":0,"currentLevel":1}`)))
	require.NoError(t, store.Set(ctx, "experience", []byte(`{"currentExp":50,"currentLevel":2}`)))

	value, err := store.Get(ctx, "experience")
	require.NoError(t, err)
	require.JSONEq(t, `{"currentExp":50,"currentLevel":2}`, string(value))
}

func TestStateStore_GetMissing(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	store := NewStateStore(db)
	_, err := store.Get(ctx, "gameSessionTimer_1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStateStore_Delete(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	store := NewStateStore(db)
	require.NoError(t, store.Set(ctx, "gameSessionTimer_1", []byte(`{"timeLeft":120,"lastUpdated":0}`)))
	require.NoError(t, store.Delete(ctx, "gameSessionTimer_1"))

	_, err := store.Get(ctx, "gameSessionTimer_1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	// Deleting a key that is already gone is not an error
	require.NoError(t, store.Delete(ctx, "gameSessionTimer_1"))
}

func TestStateStore_KeysAreIndependent(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	store := NewStateStore(db)
	require.NoError(t, store.Set(ctx, "gameSessionTimer_1", []byte(`{"timeLeft":60,"lastUpdated":0}`)))
	require.NoError(t, store.Set(ctx, "gameSessionTimer_2", []byte(`{"timeLeft":90,"lastUpdated":0}`)))
	require.NoError(t, store.Delete(ctx, "gameSessionTimer_1"))

	value, err := store.Get(ctx, "gameSessionTimer_2")
	require.NoError(t, err)
	require.JSONEq(t, `{"timeLeft":90,"lastUpdated":0}`, string(value))
}
