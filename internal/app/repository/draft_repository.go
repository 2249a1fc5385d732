package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jteo/listify-backend/internal/app/model"
	"github.com/jteo/listify-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// DraftRepository is the session-scoped draft store. Get returns
// (nil, nil) when no draft exists for the session; Save replaces the
// whole draft, which is the single lawful mutation boundary of the
// wizard. The submit lock implements the "submitting" flag that blocks
// a duplicate submission while one is in flight.
type DraftRepository interface {
	Get(ctx context.Context, sessionID string) (*model.Draft, error)
	Save(ctx context.Context, sessionID string, draft *model.Draft) error
	Delete(ctx context.Context, sessionID string) error

	TryAcquireSubmitLock(ctx context.Context, sessionID string) (bool, error)
	ReleaseSubmitLock(ctx context.Context, sessionID string) error

	// PurgeExpired removes drafts past their TTL. Redis handles expiry
	// natively, so the Redis implementation is a no-op.
	PurgeExpired(ctx context.Context) (int, error)
}

// submitLockTTL caps how long a stuck submission can keep a session
// locked out of resubmitting.
const submitLockTTL = 2 * time.Minute

type redisDraftRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftRepository(client *redis.Client, ttl time.Duration) DraftRepository {
	return &redisDraftRepository{client: client, ttl: ttl}
}

func draftKey(sessionID string) string {
	return fmt.Sprintf("draft:%s", sessionID)
}

func submitLockKey(sessionID string) string {
	return fmt.Sprintf("draft:submit:%s", sessionID)
}

func (r *redisDraftRepository) Get(ctx context.Context, sessionID string) (*model.Draft, error) {
	data, err := r.client.Get(ctx, draftKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to fetch draft from Redis", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return nil, err
	}

	var draft model.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		logger.Error("Failed to decode stored draft", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return nil, err
	}
	draft.Normalize()

	return &draft, nil
}

func (r *redisDraftRepository) Save(ctx context.Context, sessionID string, draft *model.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, draftKey(sessionID), data, r.ttl).Err(); err != nil {
		logger.Error("Failed to save draft to Redis", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return err
	}

	logger.Debug("Draft saved", map[string]interface{}{
		"session_id": sessionID,
	})
	return nil
}

func (r *redisDraftRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, draftKey(sessionID)).Err()
}

func (r *redisDraftRepository) TryAcquireSubmitLock(ctx context.Context, sessionID string) (bool, error) {
	ok, err := r.client.SetNX(ctx, submitLockKey(sessionID), "pending", submitLockTTL).Result()
	if err != nil {
		logger.Error("Failed to acquire submit lock", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return false, err
	}
	return ok, nil
}

func (r *redisDraftRepository) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, submitLockKey(sessionID)).Err()
}

func (r *redisDraftRepository) PurgeExpired(ctx context.Context) (int, error) {
	// Redis evicts expired draft keys on its own.
	return 0, nil
}
