package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore 内存文档存储
// 用于测试和 STORE_BACKEND=memory 的本地开发（无外部依赖即可跑通导入流程）。
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any // collection -> id -> data
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: map[string]map[string]map[string]any{},
	}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Create(_ context.Context, collection string, data map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.put(collection, id, data)
	return id, nil
}

func (s *MemoryStore) Set(_ context.Context, collection, id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(collection, id, data)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	col, ok := s.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	data, ok := col[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyDoc(data), nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if col, ok := s.collections[collection]; ok {
		delete(col, id)
	}
	return nil
}

func (s *MemoryStore) List(_ context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	col := s.collections[collection]
	docs := make([]Document, 0, len(col))
	for id, data := range col {
		docs = append(docs, Document{ID: id, Data: copyDoc(data)})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (s *MemoryStore) Query(ctx context.Context, collection string, filters map[string]any) ([]Document, error) {
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

func (s *MemoryStore) CommitBatch(_ context.Context, ops []Operation) error {
	if err := checkBatchSize(ops); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// 批次内全部应用，或在校验失败时全部不应用
	for _, op := range ops {
		switch op.Kind {
		case OpSet:
			s.put(op.Collection, op.ID, op.Data)
		case OpDelete:
			if col, ok := s.collections[op.Collection]; ok {
				delete(col, op.ID)
			}
		}
	}
	return nil
}

// put 需在持锁状态下调用
func (s *MemoryStore) put(collection, id string, data map[string]any) {
	col, ok := s.collections[collection]
	if !ok {
		col = map[string]map[string]any{}
		s.collections[collection] = col
	}
	col[id] = copyDoc(data)
}

func copyDoc(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

func matchFilters(data, filters map[string]any) bool {
	for k, want := range filters {
		if data[k] != want {
			return false
		}
	}
	return true
}
