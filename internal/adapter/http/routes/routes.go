package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/nguyenvanlinh1902/ProductionManagement-sub000/docs" // This will be auto-generated
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/http/handlers"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/http/middleware"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/persistence/relational"
	repository2 "github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/persistence/repository"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/infrastructure/commerce"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/infrastructure/database"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := newOrderRepository(ddb)
	auditRepo := repository2.NewStageAuditDynamoRepository(ddb)
	machineRepo := repository2.NewMachineDynamoRepository(ddb)
	recommendationRepo := repository2.NewRecommendationDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	var commerceGateway interfaces.ICommerceGateway
	shopifyGateway, err := commerce.NewShopifyGateway(os.Getenv("SHOPIFY_STORE_DOMAIN"), os.Getenv("SHOPIFY_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Shopify gateway not configured: %v", err)
	} else {
		commerceGateway = shopifyGateway
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, settingsRepo)
	stageUseCase := usecase.NewStageUseCase(orderRepo, auditRepo, userRepo, settingsRepo)
	machineUseCase := usecase.NewMachineUseCase(machineRepo, recommendationRepo, userRepo)
	syncUseCase := usecase.NewSyncUseCase(orderRepo, commerceGateway)
	importUseCase := usecase.NewImportUseCase(orderRepo, settingsRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, userRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	stageHandler := handlers.NewStageHandler(stageUseCase)
	machineHandler := handlers.NewMachineHandler(machineUseCase)
	syncHandler := handlers.NewSyncHandler(syncUseCase)
	importHandler := handlers.NewImportHandler(importUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Webhook intake is authenticated by the channel's HMAC, not a user
	// token, so it stays outside the token-protected group.
	addWebhookRoutes(v1, importHandler)

	protected := v1.Group("")
	protected.Use(middleware.EnsureValidToken())
	addProductionRoutes(protected, orderHandler, stageHandler, machineHandler, syncHandler, importHandler, settingsHandler)
}

// newOrderRepository picks the authoritative order store. ORDER_STORE
// selects exactly one backend; DynamoDB is the default.
func newOrderRepository(ddb *dynamodb.Client) interfaces.IOrderRepository {
	store := strings.ToLower(strings.TrimSpace(os.Getenv("ORDER_STORE")))
	if store == "relational" || store == "sql" {
		db, err := database.ConnectRelational()
		if err != nil {
			log.Fatalf("Failed to connect the relational order store: %v", err)
		}
		repo, err := relational.NewOrderGormRepository(db)
		if err != nil {
			log.Fatalf("Failed to initialize the relational order store: %v", err)
		}
		log.Printf("[routes][store] order store=relational")
		return repo
	}
	return repository2.NewOrderDynamoRepository(ddb)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
