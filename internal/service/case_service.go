package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"homecare-data/internal/domain"
	"homecare-data/internal/store"
)

const casesCollection = "cases"

// CaseService 个案读侧服务（浏览器 UI 的列表/详情查询走这里）
type CaseService struct {
	store  store.Store
	logger *zap.Logger
}

func NewCaseService(st store.Store, logger *zap.Logger) *CaseService {
	return &CaseService{store: st, logger: logger}
}

// List 按状态过滤 + 姓名/案號/居服員子串搜索，分页返回
// 状态是等值过滤，走存储查询；子串搜索存储不支持，拉回后在内存过滤。
func (s *CaseService) List(ctx context.Context, search, status string, page, size int) ([]domain.Case, int, error) {
	var docs []store.Document
	var err error
	if status != "" {
		docs, err = s.store.Query(ctx, casesCollection, map[string]any{"status": status})
	} else {
		docs, err = s.store.List(ctx, casesCollection)
	}
	if err != nil {
		return nil, 0, err
	}

	all := make([]domain.Case, 0, len(docs))
	for _, d := range docs {
		c := domain.CaseFromDocument(d.ID, d.Data)
		if search != "" && !caseMatches(c, search) {
			continue
		}
		all = append(all, c)
	}

	total := len(all)
	items := paginate(all, page, size)
	return items, total, nil
}

// Get 按文档 ID 取单个个案
func (s *CaseService) Get(ctx context.Context, id string) (*domain.Case, error) {
	data, err := s.store.Get(ctx, casesCollection, id)
	if err != nil {
		return nil, err
	}
	c := domain.CaseFromDocument(id, data)
	return &c, nil
}

func caseMatches(c domain.Case, search string) bool {
	return strings.Contains(c.Name, search) ||
		strings.Contains(c.CaseNumber, search) ||
		strings.Contains(c.Caregiver, search) ||
		strings.Contains(c.Phone, search)
}

func paginate[T any](items []T, page, size int) []T {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 50
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
