package handler

import (
	"net/http"
	"time"

	"trafficalert/internal/delivery/api/response"
	"trafficalert/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DispatchHandlerParams holds dependencies for DispatchHandler, injected by Fx.
type DispatchHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
}

// DispatchHandler exposes the dispatch loop state
type DispatchHandler struct {
	dispatchUC usecase.DispatchUsecase
}

// NewDispatchHandler is the constructor for DispatchHandler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{dispatchUC: params.DispatchUC}
}

// DispatchStatus is the body of the status endpoint
type DispatchStatus struct {
	LastPoll   time.Time            `json:"last_poll"`
	LastReport *usecase.CycleReport `json:"last_report"` // nil before the first cycle
}

// Status returns the current poll boundary and the most recent cycle report
func (h *DispatchHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, DispatchStatus{
		LastPoll:   h.dispatchUC.LastPoll(),
		LastReport: h.dispatchUC.LastReport(),
	})
}

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
