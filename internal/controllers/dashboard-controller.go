package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facilities-system/internal/services"
	"facilities-system/pkg/utils"
)

type DashboardController struct {
	service services.DashboardServiceInterface
	logger  *zap.Logger
}

func NewDashboardController(service services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{service: service, logger: logger}
}

func (c *DashboardController) GetSummary(ctx echo.Context) error {
	summary, err := c.service.GetSummary(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, summary, "Resumo do painel", http.StatusOK)
}
