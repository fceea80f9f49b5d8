package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"homecare-data/internal/service"
	"homecare-data/internal/store"
)

// CareHandler 个案/居服員/仪表板读侧 API
type CareHandler struct {
	cases      *service.CaseService
	caregivers *service.CaregiverService
	dashboard  *service.DashboardService
	logger     *zap.Logger
}

func NewCareHandler(cases *service.CaseService, caregivers *service.CaregiverService, dashboard *service.DashboardService, logger *zap.Logger) *CareHandler {
	return &CareHandler{
		cases:      cases,
		caregivers: caregivers,
		dashboard:  dashboard,
		logger:     logger,
	}
}

func (h *CareHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, total, err := h.cases.List(r.Context(),
		q.Get("search"),
		q.Get("status"),
		parseInt(q.Get("page"), 1),
		parseInt(q.Get("size"), 50),
	)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(fmt.Sprintf("failed to list cases: %v", err)))
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]any{
		"items": items,
		"total": total,
	}))
}

func (h *CareHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/care/api/v1/cases/")
	if id == "" {
		writeJSON(w, http.StatusOK, Fail("case id is required"))
		return
	}
	c, err := h.cases.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, Fail("case not found"))
			return
		}
		writeJSON(w, http.StatusOK, Fail(fmt.Sprintf("failed to get case: %v", err)))
		return
	}
	writeJSON(w, http.StatusOK, Ok(c))
}

func (h *CareHandler) ListCaregivers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, total, err := h.caregivers.List(r.Context(),
		q.Get("search"),
		q.Get("status"),
		parseInt(q.Get("page"), 1),
		parseInt(q.Get("size"), 50),
	)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(fmt.Sprintf("failed to list caregivers: %v", err)))
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]any{
		"items": items,
		"total": total,
	}))
}

func (h *CareHandler) GetCaregiver(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/care/api/v1/caregivers/")
	if id == "" {
		writeJSON(w, http.StatusOK, Fail("caregiver id is required"))
		return
	}
	c, err := h.caregivers.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, Fail("caregiver not found"))
			return
		}
		writeJSON(w, http.StatusOK, Fail(fmt.Sprintf("failed to get caregiver: %v", err)))
		return
	}
	writeJSON(w, http.StatusOK, Ok(c))
}

func (h *CareHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(fmt.Sprintf("failed to compute stats: %v", err)))
		return
	}
	writeJSON(w, http.StatusOK, Ok(stats))
}
