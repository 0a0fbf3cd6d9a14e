package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"asprakserver/database"
)

// SystemHandler serves health and statistics endpoints.
type SystemHandler struct {
	db        *database.AsprakDB
	startTime time.Time
}

// NewSystemHandler creates a system handler bound to the given database.
func NewSystemHandler(db *database.AsprakDB) *SystemHandler {
	return &SystemHandler{db: db, startTime: time.Now()}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// HandleHealth reports liveness
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse "database unreachable"
// @Router /health [get]
func (h *SystemHandler) HandleHealth(c *gin.Context) {
	resp := HealthResponse{
		Status:        "ok",
		Database:      "ok",
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}
	if err := h.db.Ping(); err != nil {
		resp.Status = "degraded"
		resp.Database = err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleStats reports roster totals
// @Summary Roster statistics
// @Description Returns total, active and expired row counts plus the per-cohort breakdown.
// @Tags system
// @Produce json
// @Success 200 {object} database.Stats
// @Failure 500 {object} ErrorResponse
// @Router /stats [get]
func (h *SystemHandler) HandleStats(c *gin.Context) {
	stats, err := h.db.GetStats()
	if err != nil {
		SendJSONError(c, http.StatusInternalServerError, "failed to compute stats: "+err.Error())
		return
	}
	SendJSONResponse(c, http.StatusOK, stats)
}
