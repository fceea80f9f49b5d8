package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"homecare-data/internal/store"
)

func seedCases(t *testing.T, st store.Store) {
	t.Helper()
	ctx := context.Background()
	docs := []map[string]any{
		{"name": "林阿嬤", "status": "active", "caseNumber": "C001", "caregiver": "張大美", "phone": "02-1234-5678"},
		{"name": "王伯伯", "status": "archived", "caseNumber": "C002", "caregiver": "李小明"},
		{"name": "陳奶奶", "status": "active", "caseNumber": "C003", "caregiver": "張大美"},
	}
	for i, doc := range docs {
		require.NoError(t, st.Set(ctx, "cases", fmt.Sprintf("case-%d", i+1), doc))
	}
}

func TestCaseServiceListByStatus(t *testing.T) {
	st := store.NewMemoryStore()
	seedCases(t, st)
	svc := NewCaseService(st, zap.NewNop())

	items, total, err := svc.List(context.Background(), "", "active", 1, 50)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, items, 2)
	for _, c := range items {
		require.Equal(t, "active", c.Status)
	}
}

func TestCaseServiceListSearch(t *testing.T) {
	st := store.NewMemoryStore()
	seedCases(t, st)
	svc := NewCaseService(st, zap.NewNop())

	// 姓名子串
	items, total, err := svc.List(context.Background(), "阿嬤", "", 1, 50)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "林阿嬤", items[0].Name)

	// 居服員子串 + 状态过滤叠加
	items, total, err = svc.List(context.Background(), "張大美", "active", 1, 50)
	require.NoError(t, err)
	require.Equal(t, 2, total)

	// 案號
	_, total, err = svc.List(context.Background(), "C002", "", 1, 50)
	require.NoError(t, err)
	require.Equal(t, 1, total)
}

func TestCaseServiceListPagination(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	for i := 0; i < 5; i++ {
		require.NoError(t, st.Set(ctx, "cases", fmt.Sprintf("case-%d", i), map[string]any{"name": fmt.Sprintf("個案%d", i)}))
	}
	svc := NewCaseService(st, zap.NewNop())

	items, total, err := svc.List(ctx, "", "", 2, 2)
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Len(t, items, 2)

	// 越界页返回空列表而不是错误
	items, total, err = svc.List(ctx, "", "", 9, 2)
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Empty(t, items)
}

func TestCaseServiceGet(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	seedCases(t, st)
	svc := NewCaseService(st, zap.NewNop())

	c, err := svc.Get(ctx, "case-1")
	require.NoError(t, err)
	require.Equal(t, "case-1", c.ID)
	require.Equal(t, "林阿嬤", c.Name)

	_, err = svc.Get(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}
