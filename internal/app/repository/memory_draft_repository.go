package repository

import (
	"context"
	"sync"
	"time"

	"github.com/jteo/listify-backend/internal/app/model"
)

type memoryDraftEntry struct {
	draft     *model.Draft
	expiresAt time.Time
}

// memoryDraftRepository keeps drafts in process memory. Used in tests
// and when running without Redis; drafts do not survive a restart.
type memoryDraftRepository struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryDraftEntry
	locks   map[string]time.Time
	now     func() time.Time
}

func NewMemoryDraftRepository(ttl time.Duration) DraftRepository {
	return &memoryDraftRepository{
		ttl:     ttl,
		entries: make(map[string]memoryDraftEntry),
		locks:   make(map[string]time.Time),
		now:     time.Now,
	}
}

func (r *memoryDraftRepository) Get(ctx context.Context, sessionID string) (*model.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[sessionID]
	if !ok || r.now().After(entry.expiresAt) {
		return nil, nil
	}
	return entry.draft.Clone(), nil
}

func (r *memoryDraftRepository) Save(ctx context.Context, sessionID string, draft *model.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[sessionID] = memoryDraftEntry{
		draft:     draft.Clone(),
		expiresAt: r.now().Add(r.ttl),
	}
	return nil
}

func (r *memoryDraftRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, sessionID)
	return nil
}

func (r *memoryDraftRepository) TryAcquireSubmitLock(ctx context.Context, sessionID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lockedAt, ok := r.locks[sessionID]; ok && r.now().Sub(lockedAt) < submitLockTTL {
		return false, nil
	}
	r.locks[sessionID] = r.now()
	return true, nil
}

func (r *memoryDraftRepository) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.locks, sessionID)
	return nil
}

func (r *memoryDraftRepository) PurgeExpired(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	purged := 0
	for sessionID, entry := range r.entries {
		if r.now().After(entry.expiresAt) {
			delete(r.entries, sessionID)
			purged++
		}
	}
	return purged, nil
}
