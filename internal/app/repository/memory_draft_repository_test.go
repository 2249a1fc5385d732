package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jteo/listify-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDraftRepository_GetMissing(t *testing.T) {
	repo := NewMemoryDraftRepository(time.Hour)

	draft, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, draft)
}

func TestMemoryDraftRepository_SaveAndGet(t *testing.T) {
	repo := NewMemoryDraftRepository(time.Hour)
	ctx := context.Background()

	draft := model.NewDraft()
	draft.BusinessInfo.BusinessName = "Bishan Tuition Centre"
	require.NoError(t, repo.Save(ctx, "s1", draft))

	stored, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Bishan Tuition Centre", stored.BusinessInfo.BusinessName)

	// The stored draft is isolated from later mutation of either copy.
	draft.BusinessInfo.BusinessName = "changed"
	stored.BusinessInfo.BusinessName = "also changed"

	again, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Bishan Tuition Centre", again.BusinessInfo.BusinessName)
}

func TestMemoryDraftRepository_Delete(t *testing.T) {
	repo := NewMemoryDraftRepository(time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "s1", model.NewDraft()))
	require.NoError(t, repo.Delete(ctx, "s1"))

	stored, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestMemoryDraftRepository_SubmitLock(t *testing.T) {
	repo := NewMemoryDraftRepository(time.Hour)
	ctx := context.Background()

	acquired, err := repo.TryAcquireSubmitLock(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, acquired)

	// Second acquisition fails while the lock is held.
	acquired, err = repo.TryAcquireSubmitLock(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, acquired)

	// A different session is unaffected.
	acquired, err = repo.TryAcquireSubmitLock(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, acquired)

	require.NoError(t, repo.ReleaseSubmitLock(ctx, "s1"))
	acquired, err = repo.TryAcquireSubmitLock(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestMemoryDraftRepository_SubmitLockExpires(t *testing.T) {
	now := time.Now()
	repo := &memoryDraftRepository{
		ttl:     time.Hour,
		entries: make(map[string]memoryDraftEntry),
		locks:   make(map[string]time.Time),
		now:     func() time.Time { return now },
	}
	ctx := context.Background()

	acquired, err := repo.TryAcquireSubmitLock(ctx, "s1")
	require.NoError(t, err)
	require.True(t, acquired)

	// A stuck lock frees itself after its TTL.
	now = now.Add(submitLockTTL + time.Second)
	acquired, err = repo.TryAcquireSubmitLock(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestMemoryDraftRepository_PurgeExpired(t *testing.T) {
	now := time.Now()
	repo := &memoryDraftRepository{
		ttl:     time.Minute,
		entries: make(map[string]memoryDraftEntry),
		locks:   make(map[string]time.Time),
		now:     func() time.Time { return now },
	}
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "old", model.NewDraft()))
	now = now.Add(30 * time.Second)
	require.NoError(t, repo.Save(ctx, "fresh", model.NewDraft()))

	now = now.Add(45 * time.Second)
	purged, err := repo.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	stale, err := repo.Get(ctx, "old")
	require.NoError(t, err)
	assert.Nil(t, stale)

	kept, err := repo.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
