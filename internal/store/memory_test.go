package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.Create(ctx, "cases", map[string]any{"name": "林阿嬤"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.Get(ctx, "cases", id)
	require.NoError(t, err)
	require.Equal(t, "林阿嬤", got["name"])

	// Set 覆盖写入
	require.NoError(t, s.Set(ctx, "cases", id, map[string]any{"name": "王伯伯"}))
	got, err = s.Get(ctx, "cases", id)
	require.NoError(t, err)
	require.Equal(t, "王伯伯", got["name"])

	require.NoError(t, s.Delete(ctx, "cases", id))
	_, err = s.Get(ctx, "cases", id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "cases", "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreQuery(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, "cases", "a", map[string]any{"status": "active", "name": "A"}))
	require.NoError(t, s.Set(ctx, "cases", "b", map[string]any{"status": "archived", "name": "B"}))
	require.NoError(t, s.Set(ctx, "cases", "c", map[string]any{"status": "active", "name": "C"}))

	docs, err := s.Query(ctx, "cases", map[string]any{"status": "active"})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	for _, d := range docs {
		require.Equal(t, "active", d.Data["status"])
	}
}

func TestMemoryStoreCommitBatch(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, "cases", "old", map[string]any{"name": "舊個案"}))

	ops := []Operation{
		{Kind: OpSet, Collection: "cases", ID: "x", Data: map[string]any{"name": "X"}},
		{Kind: OpSet, Collection: "caregivers", ID: "y", Data: map[string]any{"name": "Y"}},
		{Kind: OpDelete, Collection: "cases", ID: "old"},
	}
	require.NoError(t, s.CommitBatch(ctx, ops))

	_, err := s.Get(ctx, "cases", "old")
	require.ErrorIs(t, err, ErrNotFound)
	got, err := s.Get(ctx, "caregivers", "y")
	require.NoError(t, err)
	require.Equal(t, "Y", got["name"])
}

func TestCommitBatchRejectsOversize(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	ops := make([]Operation, MaxBatchSize+1)
	for i := range ops {
		ops[i] = Operation{Kind: OpSet, Collection: "cases", ID: fmt.Sprintf("doc-%d", i), Data: map[string]any{}}
	}
	err := s.CommitBatch(ctx, ops)
	require.Error(t, err)

	// 超限批次不得写入任何文档
	docs, err := s.List(ctx, "cases")
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	data := map[string]any{"name": "original"}
	require.NoError(t, s.Set(ctx, "cases", "a", data))
	data["name"] = "mutated"

	got, err := s.Get(ctx, "cases", "a")
	require.NoError(t, err)
	require.Equal(t, "original", got["name"])
}
