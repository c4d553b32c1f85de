package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/clock"
	"github.com/yukikurage/todo-tracker-api/internal/constants"
)

// HealthHandler answers the liveness probe.
type HealthHandler struct {
	clock   clock.Clock
	started time.Time
}

func NewHealthHandler(clk clock.Clock) *HealthHandler {
	if clk == nil {
		clk = clock.WallClock
	}
	return &HealthHandler{clock: clk, started: clk.Now()}
}

type HealthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}

// Health reports a fixed healthy status and the process uptime in seconds.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: constants.HealthyStatus,
		Uptime: h.clock.Now().Sub(h.started).Seconds(),
	})
}
