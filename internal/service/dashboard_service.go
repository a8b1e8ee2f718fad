package service

import (
	"context"

	"github.com/edulink/edulink-backend/internal/model"
)

// DashboardStore is the aggregation contract for the dashboard.
type DashboardStore interface {
	DashboardStats(ctx context.Context, adminID int) (*model.DashboardStats, error)
}

// DashboardService serves the per-tenant overview counts.
type DashboardService struct {
	store DashboardStore
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store DashboardStore) *DashboardService {
	return &DashboardService{store: store}
}

// Stats returns the admin's overview counts.
func (s *DashboardService) Stats(ctx context.Context, adminID int) (*model.DashboardStats, error) {
	return s.store.DashboardStats(ctx, adminID)
}
