package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RedisStore Redis 文档存储实现
// 每个集合一个 hash（doc:{collection}），field 为文档 id，value 为 JSON。
// 批量提交用 TxPipeline（MULTI/EXEC）保证单批次原子性。
type RedisStore struct {
	c *redis.Client
}

func NewRedisStore(c *redis.Client) *RedisStore { return &RedisStore{c: c} }

var _ Store = (*RedisStore)(nil)

func collectionKey(collection string) string {
	return "doc:" + collection
}

func (s *RedisStore) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := s.c.HSet(ctx, collectionKey(collection), id, string(raw)).Err(); err != nil {
		return fmt.Errorf("failed to set document %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	val, err := s.c.HGet(ctx, collectionKey(collection), id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document %s/%s: %w", collection, id, err)
	}
	return decodeDoc(json.RawMessage(val))
}

func (s *RedisStore) Delete(ctx context.Context, collection, id string) error {
	if err := s.c.HDel(ctx, collectionKey(collection), id).Err(); err != nil {
		return fmt.Errorf("failed to delete document %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, collection string) ([]Document, error) {
	all, err := s.c.HGetAll(ctx, collectionKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list collection %s: %w", collection, err)
	}
	docs := make([]Document, 0, len(all))
	for id, val := range all {
		data, err := decodeDoc(json.RawMessage(val))
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{ID: id, Data: data})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (s *RedisStore) Query(ctx context.Context, collection string, filters map[string]any) ([]Document, error) {
	all, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]Document, 0, len(all))
	for _, d := range all {
		if matchFilters(d.Data, filters) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *RedisStore) CommitBatch(ctx context.Context, ops []Operation) error {
	if err := checkBatchSize(ops); err != nil {
		return err
	}
	if len(ops) == 0 {
		return nil
	}
	pipe := s.c.TxPipeline()
	for _, op := range ops {
		switch op.Kind {
		case OpSet:
			raw, err := json.Marshal(op.Data)
			if err != nil {
				return fmt.Errorf("failed to encode document %s/%s: %w", op.Collection, op.ID, err)
			}
			pipe.HSet(ctx, collectionKey(op.Collection), op.ID, string(raw))
		case OpDelete:
			pipe.HDel(ctx, collectionKey(op.Collection), op.ID)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}
