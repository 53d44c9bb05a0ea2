package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "skillmatch:assessment:"

// RedisStore keeps snapshots in Redis under one key per candidate. Every save
// refreshes the key's TTL; zero means no expiry.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a store on an existing client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(candidateID string) string {
	return redisKeyPrefix + candidateID
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context, candidateID string) (*Snapshot, error) {
	raw, err := s.client.Get(ctx, redisKey(candidateID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{CandidateID: candidateID, Message: "failed to read snapshot", Cause: err}
	}

	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, &StoreError{CandidateID: candidateID, Message: "failed to decode snapshot", Cause: err}
	}
	return &snapshot, nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, candidateID string, snapshot *Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return &StoreError{CandidateID: candidateID, Message: "failed to encode snapshot", Cause: err}
	}

	if err := s.client.Set(ctx, redisKey(candidateID), raw, s.ttl).Err(); err != nil {
		return &StoreError{CandidateID: candidateID, Message: "failed to write snapshot", Cause: err}
	}
	return nil
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return &StoreError{Message: "redis ping failed", Cause: err}
	}
	return nil
}
