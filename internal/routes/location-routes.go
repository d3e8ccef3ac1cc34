package routes

import (
	"github.com/labstack/echo/v4"

	"facilities-system/internal/controllers"
)

func registerLocationRoutes(
	api *echo.Group,
	campus *controllers.CampusController,
	center *controllers.CenterController,
	department *controllers.DepartmentController,
	block *controllers.BlockController,
	room *controllers.RoomController,
) {
	campuses := api.Group("/campuses")
	campuses.GET("", campus.GetCampuses)
	campuses.GET("/:id", campus.FindCampus)
	campuses.POST("", campus.CreateCampus)
	campuses.PUT("/:id", campus.UpdateCampus)
	campuses.DELETE("/:id", campus.DeleteCampus)

	centers := api.Group("/centers")
	centers.GET("", center.GetCenters)
	centers.GET("/:id", center.FindCenter)
	centers.POST("", center.CreateCenter)
	centers.PUT("/:id", center.UpdateCenter)
	centers.DELETE("/:id", center.DeleteCenter)

	departments := api.Group("/departments")
	departments.GET("", department.GetDepartments)
	departments.GET("/:id", department.FindDepartment)
	departments.POST("", department.CreateDepartment)
	departments.PUT("/:id", department.UpdateDepartment)
	departments.DELETE("/:id", department.DeleteDepartment)

	blocks := api.Group("/blocks")
	blocks.GET("", block.GetBlocks)
	blocks.GET("/:id", block.FindBlock)
	blocks.POST("", block.CreateBlock)
	blocks.PUT("/:id", block.UpdateBlock)
	blocks.DELETE("/:id", block.DeleteBlock)

	rooms := api.Group("/rooms")
	rooms.GET("", room.GetRooms)
	rooms.GET("/:id", room.FindRoom)
	rooms.POST("", room.CreateRoom)
	rooms.PUT("/:id", room.UpdateRoom)
	rooms.DELETE("/:id", room.DeleteRoom)
}
