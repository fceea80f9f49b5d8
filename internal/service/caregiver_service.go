package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"homecare-data/internal/domain"
	"homecare-data/internal/store"
)

const caregiversCollection = "caregivers"

// CaregiverService 居服員读侧服务
type CaregiverService struct {
	store  store.Store
	logger *zap.Logger
}

func NewCaregiverService(st store.Store, logger *zap.Logger) *CaregiverService {
	return &CaregiverService{store: st, logger: logger}
}

// List 按状态过滤 + 姓名/員工編號/服務區域子串搜索，分页返回
func (s *CaregiverService) List(ctx context.Context, search, status string, page, size int) ([]domain.Caregiver, int, error) {
	var docs []store.Document
	var err error
	if status != "" {
		docs, err = s.store.Query(ctx, caregiversCollection, map[string]any{"status": status})
	} else {
		docs, err = s.store.List(ctx, caregiversCollection)
	}
	if err != nil {
		return nil, 0, err
	}

	all := make([]domain.Caregiver, 0, len(docs))
	for _, d := range docs {
		c := domain.CaregiverFromDocument(d.ID, d.Data)
		if search != "" && !caregiverMatches(c, search) {
			continue
		}
		all = append(all, c)
	}

	total := len(all)
	items := paginate(all, page, size)
	return items, total, nil
}

// Get 按文档 ID（通常是員工編號）取单个居服員
func (s *CaregiverService) Get(ctx context.Context, id string) (*domain.Caregiver, error) {
	data, err := s.store.Get(ctx, caregiversCollection, id)
	if err != nil {
		return nil, err
	}
	c := domain.CaregiverFromDocument(id, data)
	return &c, nil
}

func caregiverMatches(c domain.Caregiver, search string) bool {
	return strings.Contains(c.Name, search) ||
		strings.Contains(c.EmployeeID, search) ||
		strings.Contains(c.ServiceArea, search) ||
		strings.Contains(c.Phone, search)
}
