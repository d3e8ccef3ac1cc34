package routes

import (
	"github.com/labstack/echo/v4"

	"facilities-system/internal/controllers"
)

func registerConsumptionRoutes(api *echo.Group, consumption *controllers.ConsumptionController) {
	responsible := api.Group("/responsible-units")
	responsible.GET("", consumption.GetResponsibleUnits)
	responsible.GET("/:id", consumption.FindResponsibleUnit)
	responsible.POST("", consumption.CreateResponsibleUnit)
	responsible.PUT("/:id", consumption.UpdateResponsibleUnit)
	responsible.DELETE("/:id", consumption.DeleteResponsibleUnit)

	consumer := api.Group("/consumer-units")
	consumer.GET("", consumption.GetConsumerUnits)
	consumer.GET("/:id", consumption.FindConsumerUnit)
	consumer.POST("", consumption.CreateConsumerUnit)
	consumer.PUT("/:id", consumption.UpdateConsumerUnit)
	consumer.DELETE("/:id", consumption.DeleteConsumerUnit)

	bills := api.Group("/energy-bills")
	bills.GET("", consumption.GetEnergyBills)
	bills.GET("/export", consumption.ExportEnergyBills)
	bills.GET("/:id", consumption.FindEnergyBill)
	bills.POST("", consumption.CreateEnergyBill)
	bills.PUT("/:id", consumption.UpdateEnergyBill)
	bills.DELETE("/:id", consumption.DeleteEnergyBill)
}
