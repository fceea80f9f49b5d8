package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"homecare-data/internal/store"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(ctx, "cases", "c1", map[string]any{"name": "A", "status": "active"}))
	require.NoError(t, st.Set(ctx, "cases", "c2", map[string]any{"name": "B", "status": "active"}))
	require.NoError(t, st.Set(ctx, "cases", "c3", map[string]any{"name": "C", "status": "pending"}))
	require.NoError(t, st.Set(ctx, "cases", "c4", map[string]any{"name": "D", "status": "archived"}))
	require.NoError(t, st.Set(ctx, "caregivers", "g1", map[string]any{"name": "E", "status": "active"}))
	require.NoError(t, st.Set(ctx, "caregivers", "g2", map[string]any{"name": "F", "status": "inactive"}))

	svc := NewDashboardService(st, store.NewMemoryKV(), zap.NewNop())
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, stats.TotalCases)
	require.Equal(t, 2, stats.ActiveCases)
	require.Equal(t, 1, stats.PendingCases)
	require.Equal(t, 1, stats.ArchivedCases)
	require.Equal(t, 2, stats.TotalCaregivers)
	require.Equal(t, 1, stats.ActiveCaregivers)
}

func TestDashboardStatsServedFromCache(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(ctx, "cases", "c1", map[string]any{"name": "A", "status": "active"}))

	svc := NewDashboardService(st, store.NewMemoryKV(), zap.NewNop())
	first, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, first.TotalCases)

	// 缓存 TTL 内的后续写入不反映在统计里
	require.NoError(t, st.Set(ctx, "cases", "c2", map[string]any{"name": "B", "status": "active"}))
	second, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, second.TotalCases)
}
