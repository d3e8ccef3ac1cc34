package routes

import (
	"github.com/labstack/echo/v4"

	"facilities-system/internal/controllers"
)

func registerEquipmentRoutes(api *echo.Group, equipment *controllers.EquipmentController) {
	group := api.Group("/equipments")
	group.GET("", equipment.GetEquipments)
	group.GET("/:id", equipment.FindEquipment)
	group.POST("", equipment.CreateEquipment)
	group.PUT("/:id", equipment.UpdateEquipment)
}
