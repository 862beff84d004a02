package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"github.com/newrayan/leads-service/pkg/redis"
)

// HealthHandler reports liveness of the service and its backing
// stores: the submissions database and the relay delivery cache.
type HealthHandler struct {
	submissionsDB *sqlx.DB
	deliveryCache *redis.Client
	checkTimeout  time.Duration
}

func NewHealthHandler(db *sqlx.DB, cache *redis.Client) *HealthHandler {
	return &HealthHandler{
		submissionsDB: db,
		deliveryCache: cache,
		checkTimeout:  2 * time.Second,
	}
}

// Health pings the submissions store and, when configured, the relay
// delivery cache. The cache is optional: absent means "disabled",
// unreachable means "degraded". Only the submissions store can take
// the whole status down.
// @Summary Health check
// @Description Reports service status with submissions-store and delivery-cache connectivity
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.checkTimeout)
	defer cancel()

	overallStatus := "ok"

	storeStatus := "up"
	if h.submissionsDB == nil {
		storeStatus = "down"
		overallStatus = "down"
	} else if err := h.submissionsDB.PingContext(ctx); err != nil {
		storeStatus = "down"
		overallStatus = "down"
	}

	cacheStatus := "disabled"
	if h.deliveryCache != nil {
		if err := h.deliveryCache.Ping(ctx); err != nil {
			cacheStatus = "down"
			overallStatus = "degraded"
		} else {
			cacheStatus = "up"
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"service":   "leads-service",
		"status":    overallStatus,
		"timestamp": time.Now().Format(time.RFC3339),
		"components": map[string]any{
			"submissionsStore": map[string]any{
				"status": storeStatus,
			},
			"deliveryCache": map[string]any{
				"status": cacheStatus,
			},
		},
	})
}
