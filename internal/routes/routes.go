package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facilities-system/internal/controllers"
	"facilities-system/internal/repositories"
	"facilities-system/internal/services"
	"facilities-system/pkg/config"
)

// Loggers agrupa os loggers nomeados de cada área da API.
type Loggers struct {
	Locations   *zap.Logger
	Equipment   *zap.Logger
	Maintenance *zap.Logger
	Consumption *zap.Logger
	Dashboard   *zap.Logger
}

// InitRouter monta a cadeia repositório → serviço → controller de cada
// recurso e registra as rotas sob /api.
func InitRouter(e *echo.Echo, pool *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config, loggers Loggers) {
	api := e.Group("/api")

	txManager := repositories.NewTxManager(pool)

	campusRepo := repositories.NewCampusRepository(pool, loggers.Locations)
	centerRepo := repositories.NewCenterRepository(pool, loggers.Locations)
	departmentRepo := repositories.NewDepartmentRepository(pool, loggers.Locations)
	blockRepo := repositories.NewBlockRepository(pool, loggers.Locations)
	roomRepo := repositories.NewRoomRepository(pool, loggers.Locations)
	equipmentRepo := repositories.NewEquipmentRepository(pool, loggers.Equipment)
	maintenanceRepo := repositories.NewMaintenanceRepository(pool, loggers.Maintenance)
	responsibleRepo := repositories.NewResponsibleUnitRepository(pool, loggers.Consumption)
	consumerRepo := repositories.NewConsumerUnitRepository(pool, loggers.Consumption)
	billRepo := repositories.NewEnergyBillRepository(pool, loggers.Consumption)
	dashboardRepo := repositories.NewDashboardRepository(pool, loggers.Dashboard)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient, loggers.Dashboard)

	campusService := services.NewCampusService(campusRepo, loggers.Locations)
	centerService := services.NewCenterService(centerRepo, campusRepo, loggers.Locations)
	departmentService := services.NewDepartmentService(departmentRepo, centerRepo, loggers.Locations)
	blockService := services.NewBlockService(blockRepo, departmentRepo, loggers.Locations)
	roomService := services.NewRoomService(roomRepo, blockRepo, loggers.Locations)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, equipmentRepo, txManager, loggers.Maintenance)
	equipmentService := services.NewEquipmentService(equipmentRepo, roomRepo, maintenanceService, txManager, loggers.Equipment)
	consumptionService := services.NewConsumptionService(responsibleRepo, consumerRepo, billRepo, loggers.Consumption)
	dashboardService := services.NewDashboardService(dashboardRepo, cacheRepo, cfg.Dashboard.SummaryTTL, loggers.Dashboard)

	registerLocationRoutes(api,
		controllers.NewCampusController(campusService, loggers.Locations),
		controllers.NewCenterController(centerService, loggers.Locations),
		controllers.NewDepartmentController(departmentService, loggers.Locations),
		controllers.NewBlockController(blockService, loggers.Locations),
		controllers.NewRoomController(roomService, loggers.Locations),
	)
	registerEquipmentRoutes(api, controllers.NewEquipmentController(equipmentService, loggers.Equipment))
	registerMaintenanceRoutes(api, controllers.NewMaintenanceController(maintenanceService, loggers.Maintenance))
	registerConsumptionRoutes(api, controllers.NewConsumptionController(consumptionService, loggers.Consumption))
	registerDashboardRoutes(api, controllers.NewDashboardController(dashboardService, loggers.Dashboard))
}
