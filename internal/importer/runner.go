package importer

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"homecare-data/internal/normalize"
	"homecare-data/internal/store"
)

// Options 一次导入运行的配置
// 两种写入模式的失败策略（batched 首错即停、isolated 记账续跑）在这里显式选择。
type Options struct {
	Mode  WriteMode
	Reset bool // 写入前清空目标集合（全量刷新导入）
}

// Summary 一次运行的聚合结果
// 失败时同样填充，报告失败前已完成的进度；跳过和失败的行都被计数，不会被静默丢弃。
type Summary struct {
	Total     int // 解码出的数据行数
	Succeeded int
	Skipped   int // 空白行（姓名为空）
	Failed    int
	Batches   int
	Deleted   int // Reset 阶段删除的旧文档数
}

// Runner 端到端导入：规范化 -> 组装 -> [清空] -> 写入
// 单逻辑线程顺序执行，只在存储 I/O 处阻塞；批次间没有原子性，也不做重试。
type Runner struct {
	store  store.Store
	logger *zap.Logger
}

func NewRunner(st store.Store, logger *zap.Logger) *Runner {
	return &Runner{store: st, logger: logger}
}

// Run 对已解码的行执行导入
// batched 模式下 NormalizationError 与 CommitError 都终止运行（行不能被静默
// 从批次里剔除）；isolated 模式下两者都按行记账后继续。
func (r *Runner) Run(ctx context.Context, rows []normalize.Row, entity Entity, opts Options) (Summary, error) {
	summary := Summary{Total: len(rows)}
	now := time.Now()

	// Normalizing：逐行规范化并组装，无持久化中间态
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		fields, err := normalize.Apply(row, entity.Fields, entity.Statuses, now)
		if err != nil {
			var normErr *normalize.NormalizationError
			if errors.As(err, &normErr) && opts.Mode == ModeIsolated {
				summary.Failed++
				r.logger.Warn("row normalization failed",
					zap.Int("row", i+1),
					zap.String("field", normErr.Field))
				continue
			}
			return summary, err
		}
		rec, ok := entity.Assemble(fields, now)
		if !ok {
			summary.Skipped++
			continue
		}
		records = append(records, rec)
	}

	if summary.Skipped > 0 {
		r.logger.Info("blank rows skipped",
			zap.String("collection", entity.Collection),
			zap.Int("skipped", summary.Skipped))
	}

	// Resetting：全量刷新时先清空旧数据，避免重复/过期文档
	if opts.Reset {
		deleted, err := ResetCollection(ctx, r.store, entity.Collection, r.logger)
		summary.Deleted = deleted
		if err != nil {
			return summary, err
		}
	}

	// Writing
	writer := NewWriter(r.store, r.logger, entity.Collection, opts.Mode)
	counts, err := writer.Write(ctx, records)
	summary.Succeeded = counts.Success
	summary.Failed += counts.Errors
	summary.Batches = counts.Batches
	if err != nil {
		return summary, err
	}

	r.logger.Info("import finished",
		zap.String("collection", entity.Collection),
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed))
	return summary, nil
}
