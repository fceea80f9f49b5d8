package importer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"homecare-data/internal/store"
)

// ResetCollection 全量刷新导入的前置步骤：清空目标集合
// 枚举全部文档后按最大批次删除，删完才返回；空集合是 no-op。
// 必须在新导入的任何写入之前执行，导入完成后集合里才只剩新数据。
func ResetCollection(ctx context.Context, st store.Store, collection string, logger *zap.Logger) (int, error) {
	docs, err := st.List(ctx, collection)
	if err != nil {
		return 0, fmt.Errorf("failed to list collection %s: %w", collection, err)
	}
	if len(docs) == 0 {
		logger.Info("collection already empty", zap.String("collection", collection))
		return 0, nil
	}

	total := len(docs)
	deleted := 0
	ops := make([]store.Operation, 0, store.MaxBatchSize)

	flush := func() error {
		if len(ops) == 0 {
			return nil
		}
		if err := st.CommitBatch(ctx, ops); err != nil {
			return fmt.Errorf("failed to delete batch from %s: %w", collection, err)
		}
		deleted += len(ops)
		logger.Info("reset progress",
			zap.String("collection", collection),
			zap.Int("deleted", deleted),
			zap.Int("total", total))
		ops = ops[:0]
		return nil
	}

	for _, doc := range docs {
		ops = append(ops, store.Operation{
			Kind:       store.OpDelete,
			Collection: collection,
			ID:         doc.ID,
		})
		if len(ops) == store.MaxBatchSize {
			if err := flush(); err != nil {
				return deleted, err
			}
		}
	}
	if err := flush(); err != nil {
		return deleted, err
	}
	return deleted, nil
}
