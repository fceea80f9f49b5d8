package importer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"homecare-data/internal/store"
)

// WriteMode 写入策略
type WriteMode int

const (
	// ModeBatched 按最大批次凑满提交，单批原子；首个失败批次终止整个运行
	ModeBatched WriteMode = iota
	// ModeIsolated 逐条写入，失败按条计数后继续（牺牲吞吐换取行级失败可见性）
	ModeIsolated
)

// CommitError 存储拒绝了一个批次或文档
type CommitError struct {
	Batch int    // 批次序号（从 1 开始；isolated 模式为 0）
	DocID string // isolated 模式下出错的文档 key（可能为空）
	Err   error
}

func (e *CommitError) Error() string {
	if e.Batch > 0 {
		return fmt.Sprintf("commit of batch %d failed: %v", e.Batch, e.Err)
	}
	return fmt.Sprintf("commit of document %q failed: %v", e.DocID, e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }

// Counts 写入阶段的结果计数
type Counts struct {
	Success int
	Errors  int
	Batches int // 成功提交的批次数（isolated 模式为 0）
}

// Writer 把组装好的记录提交到存储
type Writer struct {
	store      store.Store
	logger     *zap.Logger
	collection string
	mode       WriteMode
}

func NewWriter(st store.Store, logger *zap.Logger, collection string, mode WriteMode) *Writer {
	return &Writer{store: st, logger: logger, collection: collection, mode: mode}
}

// Write 顺序提交全部记录
// batched 模式下返回的 error 是 *CommitError，Counts 反映失败前已完成的进度；
// isolated 模式永不因单条失败返回 error，失败都进 Counts.Errors。
func (w *Writer) Write(ctx context.Context, records []Record) (Counts, error) {
	if w.mode == ModeIsolated {
		return w.writeIsolated(ctx, records)
	}
	return w.writeBatched(ctx, records)
}

func (w *Writer) writeBatched(ctx context.Context, records []Record) (Counts, error) {
	var counts Counts
	totalBatches := (len(records) + store.MaxBatchSize - 1) / store.MaxBatchSize

	ops := make([]store.Operation, 0, store.MaxBatchSize)
	flush := func() error {
		if len(ops) == 0 {
			return nil
		}
		if err := w.store.CommitBatch(ctx, ops); err != nil {
			return &CommitError{Batch: counts.Batches + 1, Err: err}
		}
		counts.Batches++
		counts.Success += len(ops)
		w.logger.Info("batch committed",
			zap.String("collection", w.collection),
			zap.Int("batch", counts.Batches),
			zap.Int("total_batches", totalBatches),
			zap.Int("operations", len(ops)))
		ops = ops[:0]
		return nil
	}

	for _, rec := range records {
		id := rec.Key
		if id == "" {
			id = uuid.NewString()
		}
		ops = append(ops, store.Operation{
			Kind:       store.OpSet,
			Collection: w.collection,
			ID:         id,
			Data:       rec.Doc,
		})
		if len(ops) == store.MaxBatchSize {
			if err := flush(); err != nil {
				return counts, err
			}
		}
	}
	if err := flush(); err != nil {
		return counts, err
	}
	return counts, nil
}

func (w *Writer) writeIsolated(ctx context.Context, records []Record) (Counts, error) {
	var counts Counts
	for _, rec := range records {
		var err error
		if rec.Key != "" {
			err = w.store.Set(ctx, w.collection, rec.Key, rec.Doc)
		} else {
			_, err = w.store.Create(ctx, w.collection, rec.Doc)
		}
		if err != nil {
			counts.Errors++
			w.logger.Warn("document write failed",
				zap.String("collection", w.collection),
				zap.String("key", rec.Key),
				zap.Error(err))
			continue
		}
		counts.Success++
	}
	return counts, nil
}
