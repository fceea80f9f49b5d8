package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"homecare-data/internal/domain"
	"homecare-data/internal/store"
)

const (
	statsCacheKey = "homecare:dashboard:stats"
	statsCacheTTL = 60 * time.Second
)

// DashboardStats 仪表板统计（从存储实时计算，不再是前端写死的数字）
type DashboardStats struct {
	TotalCases       int `json:"totalCases"`
	ActiveCases      int `json:"activeCases"`
	PendingCases     int `json:"pendingCases"`
	ArchivedCases    int `json:"archivedCases"`
	TotalCaregivers  int `json:"totalCaregivers"`
	ActiveCaregivers int `json:"activeCaregivers"`
}

// DashboardService 统计服务，带 KV 短时缓存（统计要扫全集合，直查太重）
type DashboardService struct {
	store  store.Store
	cache  store.KV
	logger *zap.Logger
}

func NewDashboardService(st store.Store, cache store.KV, logger *zap.Logger) *DashboardService {
	return &DashboardService{store: st, cache: cache, logger: logger}
}

// Stats 返回当前统计，命中缓存时直接反解析缓存值
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if cached, err := s.cache.Get(ctx, statsCacheKey); err == nil {
		var stats DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, statsCacheKey, string(raw), statsCacheTTL); err != nil {
			s.logger.Warn("failed to cache dashboard stats", zap.Error(err))
		}
	}
	return stats, nil
}

func (s *DashboardService) compute(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	caseDocs, err := s.store.List(ctx, casesCollection)
	if err != nil {
		return nil, err
	}
	stats.TotalCases = len(caseDocs)
	for _, d := range caseDocs {
		switch domain.CaseFromDocument(d.ID, d.Data).Status {
		case "active":
			stats.ActiveCases++
		case "pending":
			stats.PendingCases++
		case "archived":
			stats.ArchivedCases++
		}
	}

	caregiverDocs, err := s.store.List(ctx, caregiversCollection)
	if err != nil {
		return nil, err
	}
	stats.TotalCaregivers = len(caregiverDocs)
	for _, d := range caregiverDocs {
		if domain.CaregiverFromDocument(d.ID, d.Data).Status == "active" {
			stats.ActiveCaregivers++
		}
	}

	return stats, nil
}
