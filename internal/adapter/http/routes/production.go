package routes

import (
	"net/http"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathStages   = "/stages"
	PathMachines = "/machines"
	PathSync     = "/sync"
	PathImports  = "/imports"
	PathSettings = "/settings"
	PathWebhooks = "/webhooks"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addWebhookRoutes(rg *gin.RouterGroup, importHandler *handlers.ImportHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/orders", importHandler.ImportWebhook)
	}
}

func addProductionRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	stageHandler *handlers.StageHandler,
	machineHandler *handlers.MachineHandler,
	syncHandler *handlers.SyncHandler,
	importHandler *handlers.ImportHandler,
	settingsHandler *handlers.SettingsHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/in-production", orderHandler.ListInProductionProducts)
		orders.GET("/qr/:payload", orderHandler.ResolveQRCode)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id/products/manufactured", orderHandler.SetProductManufactured)
		orders.PATCH("/:order_id/stages/:stage_id/start", stageHandler.StartStage)
		orders.PATCH("/:order_id/stages/:stage_id/complete", stageHandler.CompleteStage)
	}

	stages := rg.Group(PathStages)
	{
		stages.GET("/available", stageHandler.ListAvailableStages)
	}

	machines := rg.Group(PathMachines)
	{
		machines.POST("", machineHandler.CreateMachine)
		machines.GET("", machineHandler.ListMachines)
		machines.GET("/recommendations", machineHandler.RecommendNext)
		machines.POST("/:machine_id/operations", machineHandler.StartOperation)
		machines.PATCH("/operations/:operation_id/complete", machineHandler.CompleteOperation)
		machines.PATCH("/operations/:operation_id/interrupt", machineHandler.InterruptOperation)
	}

	sync := rg.Group(PathSync)
	{
		sync.POST("/orders", syncHandler.SyncOrders)
	}

	imports := rg.Group(PathImports)
	{
		imports.POST("/csv", importHandler.ImportCSV)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("/stages", settingsHandler.GetStageCatalog)
		settings.POST("/stages", settingsHandler.AddStage)
	}
}
