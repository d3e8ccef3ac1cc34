package routes

import (
	"github.com/labstack/echo/v4"

	"facilities-system/internal/controllers"
)

func registerMaintenanceRoutes(api *echo.Group, maintenance *controllers.MaintenanceController) {
	group := api.Group("/maintenances")
	group.GET("", maintenance.GetMaintenances)
	group.GET("/:id", maintenance.FindMaintenance)
	group.POST("", maintenance.CreateMaintenance)
	group.PUT("/:id", maintenance.UpdateMaintenance)
	group.DELETE("/:id", maintenance.DeleteMaintenance)
}
