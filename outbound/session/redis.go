package session

import (
	"context"
	"encoding/json"
	"errors"
	"event-map/common/constant"
	"event-map/common/errs"
	coreSession "event-map/core/session"
	"fmt"
	"github.com/redis/go-redis/v9"
	"time"
)

// RedisStore keeps each session as a JSON document that expires after TTL of inactivity.
type RedisStore struct {
	Cache *redis.Client
	TTL   time.Duration
}

func key(id string) string {
	return fmt.Sprintf(constant.SessionKey, id)
}

func (s RedisStore) ttl() time.Duration {
	if s.TTL <= 0 {
		return constant.SessionDefaultTTL
	}
	return s.TTL
}

func (s RedisStore) Get(ctx context.Context, id string) (coreSession.Session, error) {
	data, err := s.Cache.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return coreSession.Session{}, errs.ErrSessionNotFound
	}
	if err != nil {
		return coreSession.Session{}, fmt.Errorf("get session: %w", err)
	}

	var sess coreSession.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return coreSession.Session{}, fmt.Errorf("decode session %s: %w", id, err)
	}

	return sess, nil
}

// Save writes sess and restarts its expiry.
func (s RedisStore) Save(ctx context.Context, sess coreSession.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.Cache.Set(ctx, key(sess.Id), data, s.ttl()).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (s RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.Cache.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
