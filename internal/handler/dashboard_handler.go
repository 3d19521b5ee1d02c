package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weddingplanner/internal/errors"
	"weddingplanner/internal/middleware"
	"weddingplanner/internal/service"
)

// DashboardHandler serves the analytics endpoint.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Dashboard godoc
// @Summary Planning progress summary
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /analytics/dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return httpError(errors.ErrUnauthorized)
	}

	summary, err := h.dashboardService.Summarize(c.Request().Context(), user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
