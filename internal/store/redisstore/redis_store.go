package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hr-portal/internal/store"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix      = "hr:"
	defaultTimeout = 5 * time.Second
	// patchRetries bounds the optimistic-lock loop when concurrent writers
	// touch the same record.
	patchRetries = 3
)

// RedisStore implements store.Client over redis. Each record lives at its own
// key so Patch can run under WATCH, giving compare-and-swap semantics for the
// status transitions the approval engine depends on. A per-collection set
// indexes the ids for List.
type RedisStore struct {
	rdb     *redis.Client
	timeout time.Duration
}

func New(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, timeout: defaultTimeout}
}

func recordKey(collection, id string) string {
	return keyPrefix + collection + ":" + id
}

func indexKey(collection string) string {
	return keyPrefix + collection
}

func (s *RedisStore) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.rdb.Get(ctx, recordKey(collection, id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, unavailable(err)
	}
	return decode(raw)
}

func (s *RedisStore) List(ctx context.Context, collection string, filter store.Filter) ([]map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ids, err := s.rdb.SMembers(ctx, indexKey(collection)).Result()
	if err != nil {
		return nil, unavailable(err)
	}
	out := make([]map[string]any, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = recordKey(collection, id)
	}
	values, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, unavailable(err)
	}
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index member without a record: deleted concurrently.
			continue
		}
		doc, err := decode(raw)
		if err != nil {
			return nil, err
		}
		if store.Matches(doc, filter) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *RedisStore) Create(ctx context.Context, collection, id string, doc map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	ok, err := s.rdb.SetNX(ctx, recordKey(collection, id), string(raw), 0).Result()
	if err != nil {
		return unavailable(err)
	}
	if !ok {
		return store.ErrConflict
	}
	if err := s.rdb.SAdd(ctx, indexKey(collection), id).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *RedisStore) Patch(ctx context.Context, collection, id string, partial map[string]any) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key := recordKey(collection, id)
	var merged map[string]any

	apply := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return store.ErrNotFound
		}
		if err != nil {
			return err
		}
		doc, err := decode(raw)
		if err != nil {
			return err
		}
		merged = store.Merge(doc, partial)
		out, err := json.Marshal(merged)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, string(out), 0)
			return nil
		})
		return err
	}

	for i := 0; i < patchRetries; i++ {
		err := s.rdb.Watch(ctx, apply, key)
		if err == nil {
			return merged, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, unavailable(err)
	}
	return nil, unavailable(redis.TxFailedErr)
}

func (s *RedisStore) Delete(ctx context.Context, collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.rdb.Del(ctx, recordKey(collection, id)).Result()
	if err != nil {
		return unavailable(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	if err := s.rdb.SRem(ctx, indexKey(collection), id).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func decode(raw string) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("corrupt record: %w", err)
	}
	return doc, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
}
