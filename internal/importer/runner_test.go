package importer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"homecare-data/internal/normalize"
	"homecare-data/internal/store"
)

func TestRunnerImportsCases(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	r := NewRunner(st, zap.NewNop())

	rows := []normalize.Row{
		{"姓名": "林阿嬤", "狀態": "服務中", "年齡": "82"},
		{"姓名": "王伯伯", "狀態": "已結案"},
		{"姓名": ""}, // 空白行
	}
	summary, err := r.Run(ctx, rows, CaseEntity, Options{Mode: ModeBatched})
	require.NoError(t, err)
	require.Equal(t, 3, summary.Total)
	require.Equal(t, 2, summary.Succeeded)
	require.Equal(t, 1, summary.Skipped)
	require.Zero(t, summary.Failed)
	require.Equal(t, 1, summary.Batches)

	docs, err := st.List(ctx, "cases")
	require.NoError(t, err)
	require.Len(t, docs, 2)
}

func TestRunnerCaregiverReimportIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	r := NewRunner(st, zap.NewNop())

	rows := []normalize.Row{
		{"員工編號": "EMP001", "姓名": "張大美", "現在狀態": "在職"},
	}
	_, err := r.Run(ctx, rows, CaregiverEntity, Options{Mode: ModeBatched})
	require.NoError(t, err)

	// 同一員工再次导入：覆盖旧档，不产生重复文档
	rows[0]["現在狀態"] = "離職"
	_, err = r.Run(ctx, rows, CaregiverEntity, Options{Mode: ModeBatched})
	require.NoError(t, err)

	docs, err := st.List(ctx, "caregivers")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "EMP001", docs[0].ID)
	require.Equal(t, "inactive", docs[0].Data["status"])
}

func TestRunnerResetReplacesCollection(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(ctx, "cases", "stale-1", map[string]any{"name": "舊個案一"}))
	require.NoError(t, st.Set(ctx, "cases", "stale-2", map[string]any{"name": "舊個案二"}))

	r := NewRunner(st, zap.NewNop())
	rows := []normalize.Row{{"姓名": "林阿嬤"}}
	summary, err := r.Run(ctx, rows, CaseEntity, Options{Mode: ModeIsolated, Reset: true})
	require.NoError(t, err)
	require.Equal(t, 2, summary.Deleted)
	require.Equal(t, 1, summary.Succeeded)

	// 清空先于写入：导入完成后集合里只剩新数据
	docs, err := st.List(ctx, "cases")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "林阿嬤", docs[0].Data["name"])
}

func TestRunnerIsolatedModeContinuesPastFailures(t *testing.T) {
	ctx := context.Background()
	st := newRecordingStore()
	r := NewRunner(st, zap.NewNop())

	rows := make([]normalize.Row, 10)
	for i := range rows {
		rows[i] = normalize.Row{
			"員工編號": fmt.Sprintf("EMP%03d", i),
			"姓名":   fmt.Sprintf("居服員%d", i),
		}
	}
	st.failDocKeys["EMP004"] = true

	summary, err := r.Run(ctx, rows, CaregiverEntity, Options{Mode: ModeIsolated})
	require.NoError(t, err)
	require.Equal(t, 9, summary.Succeeded)
	require.Equal(t, 1, summary.Failed)
}

func TestRunnerEmptyRows(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	r := NewRunner(st, zap.NewNop())

	summary, err := r.Run(ctx, nil, CaseEntity, Options{Mode: ModeBatched})
	require.NoError(t, err)
	require.Zero(t, summary.Total)
	require.Zero(t, summary.Succeeded)
}

func TestResetCollection(t *testing.T) {
	ctx := context.Background()
	st := newRecordingStore()
	for i := 0; i < store.MaxBatchSize+3; i++ {
		require.NoError(t, st.Set(ctx, "cases", fmt.Sprintf("doc-%04d", i), map[string]any{}))
	}

	deleted, err := ResetCollection(ctx, st, "cases", zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, store.MaxBatchSize+3, deleted)
	// 删除同样按最大批次切分
	require.Equal(t, []int{store.MaxBatchSize, 3}, st.batchSizes)

	docs, err := st.List(ctx, "cases")
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestResetCollectionEmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	st := newRecordingStore()

	deleted, err := ResetCollection(ctx, st, "cases", zap.NewNop())
	require.NoError(t, err)
	require.Zero(t, deleted)
	require.Empty(t, st.batchSizes)
}
