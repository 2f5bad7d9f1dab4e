package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
	sqlDB     *sql.DB
	startedAt time.Time
}

func NewHealthHandler(base *BaseHandler, sqlDB *sql.DB) *HealthHandler {
	return &HealthHandler{
		BaseHandler: base,
		sqlDB:       sqlDB,
		startedAt:   time.Now(),
	}
}

func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Root)
	rg.GET("/healthz", h.Healthz)
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Job Board API is running"})
}

// Healthz reports liveness plus a cheap store ping.
func (h *HealthHandler) Healthz(c *gin.Context) {
	status := "ok"
	if h.sqlDB == nil || h.sqlDB.Ping() != nil {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	})
}
