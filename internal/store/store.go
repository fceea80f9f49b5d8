package store

import (
	"context"
	"errors"
	"fmt"
)

// MaxBatchSize 单个原子批次允许的最大操作数（参考部署的存储限制）
const MaxBatchSize = 500

// ErrNotFound 文档不存在
var ErrNotFound = errors.New("document not found")

// Document 集合中的一个文档（id + 普通键值对数据）
type Document struct {
	ID   string
	Data map[string]any
}

// OpKind 批量操作类型
type OpKind int

const (
	OpSet OpKind = iota // 覆盖写入（upsert）
	OpDelete
)

// Operation 批量提交中的一个操作
type Operation struct {
	Kind       OpKind
	Collection string
	ID         string
	Data       map[string]any // OpSet 时必填
}

// Store 文档存储接口
// 语义对齐导入管道的外部契约：按 id 读写删、按字段等值查询、
// 以及不超过 MaxBatchSize 的原子批量提交。批次之间没有原子性。
type Store interface {
	// Create 自动生成 id 写入新文档，返回生成的 id
	Create(ctx context.Context, collection string, data map[string]any) (string, error)
	// Set 以指定 id 覆盖写入（不存在则创建）
	Set(ctx context.Context, collection, id string, data map[string]any) error
	Get(ctx context.Context, collection, id string) (map[string]any, error)
	Delete(ctx context.Context, collection, id string) error
	// List 枚举集合内全部文档
	List(ctx context.Context, collection string) ([]Document, error)
	// Query 顶层字段等值过滤
	Query(ctx context.Context, collection string, filters map[string]any) ([]Document, error)
	// CommitBatch 原子提交一组操作；len(ops) > MaxBatchSize 时直接报错，不触碰存储
	CommitBatch(ctx context.Context, ops []Operation) error
}

func checkBatchSize(ops []Operation) error {
	if len(ops) > MaxBatchSize {
		return fmt.Errorf("batch of %d operations exceeds limit of %d", len(ops), MaxBatchSize)
	}
	return nil
}
