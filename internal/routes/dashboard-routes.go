package routes

import (
	"github.com/labstack/echo/v4"

	"facilities-system/internal/controllers"
)

func registerDashboardRoutes(api *echo.Group, dashboard *controllers.DashboardController) {
	api.GET("/dashboard/summary", dashboard.GetSummary)
}
