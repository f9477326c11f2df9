package queries

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shopadmin/internal/adapters/out/redisx"
	"shopadmin/internal/core/domain/model/order"
)

// GetDashboardSummaryQueryHandler serves the admin dashboard counters
// through a Redis read-through cache. Cache failures degrade to a direct
// database read; they are logged, never surfaced.
type GetDashboardSummaryQueryHandler struct {
	db     *gorm.DB
	cache  *redis.Client
	logger *zap.Logger
}

// NewGetDashboardSummaryQueryHandler creates a handler for dashboard queries.
func NewGetDashboardSummaryQueryHandler(
	db *gorm.DB,
	cache *redis.Client,
	logger *zap.Logger,
) GetDashboardSummaryQueryHandler {
	return GetDashboardSummaryQueryHandler{db: db, cache: cache, logger: logger}
}

// Handle executes the dashboard summary query.
func (h GetDashboardSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardSummaryQuery,
) (GetDashboardSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	if cached, ok := h.fromCache(ctx); ok {
		return cached, nil
	}

	resp, err := h.compute(ctx)
	if err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	h.store(ctx, resp)
	return resp, nil
}

func (h GetDashboardSummaryQueryHandler) fromCache(ctx context.Context) (GetDashboardSummaryQueryResponse, bool) {
	payload, err := h.cache.Get(ctx, redisx.DashboardSummaryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return GetDashboardSummaryQueryResponse{}, false
	}
	if err != nil {
		h.logger.Warn("dashboard cache read failed", zap.Error(err))
		return GetDashboardSummaryQueryResponse{}, false
	}

	var resp GetDashboardSummaryQueryResponse
	if err = json.Unmarshal(payload, &resp); err != nil {
		h.logger.Warn("dashboard cache entry corrupt", zap.Error(err))
		return GetDashboardSummaryQueryResponse{}, false
	}
	return resp, true
}

func (h GetDashboardSummaryQueryHandler) store(ctx context.Context, resp GetDashboardSummaryQueryResponse) {
	payload, err := json.Marshal(resp)
	if err != nil {
		h.logger.Warn("dashboard cache marshal failed", zap.Error(err))
		return
	}
	if err = h.cache.Set(ctx, redisx.DashboardSummaryKey, payload, redisx.DashboardSummaryTTL).Err(); err != nil {
		h.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
}

func (h GetDashboardSummaryQueryHandler) compute(ctx context.Context) (GetDashboardSummaryQueryResponse, error) {
	resp := GetDashboardSummaryQueryResponse{
		OrdersByStatus: make(map[string]int, len(order.AllStatuses())),
		GeneratedAt:    time.Now().UTC(),
	}
	for _, status := range order.AllStatuses() {
		resp.OrdersByStatus[status.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status_id, COUNT(*)
		FROM orders
		GROUP BY status_id
	`).Rows()
	if err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var statusID, count int
		if err = rows.Scan(&statusID, &count); err != nil {
			return GetDashboardSummaryQueryResponse{}, err
		}
		resp.OrdersByStatus[order.Status(statusID).String()] = count
	}
	if err = rows.Err(); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM products
		WHERE active AND stock <= ?
	`, lowStockThreshold).Row().Scan(&resp.LowStockProducts)
	if err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	return resp, nil
}
