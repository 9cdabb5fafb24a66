package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yizeng/campus-events/internal/api/handler/v1/response"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db  Pinger
	now func() time.Time
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		now: time.Now,
	}
}

// HandleHealth godoc
// @Summary      Report whether the API can reach the database
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Health
// @Failure      503  {object}  response.Health
// @Router       /health [get]
func (h *HealthHandler) HandleHealth(ctx *gin.Context) {
	if err := h.db.PingContext(ctx.Request.Context()); err != nil {
		zap.L().Warn("health check failed", zap.String("request_id", requestid.Get(ctx)), zap.Error(err))
		ctx.JSON(http.StatusServiceUnavailable, response.Health{
			Status:    "unhealthy",
			Database:  "disconnected",
			Timestamp: h.now(),
		})
		return
	}

	ctx.JSON(http.StatusOK, response.Health{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: h.now(),
	})
}
