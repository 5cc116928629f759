package routes

import (
	"context"
	"strconv"

	_ "entregaswoo/docs" // swagger docs registration
	"entregaswoo/internal/adapter/http/handlers"
	"entregaswoo/internal/adapter/persistence/repository"
	"entregaswoo/internal/infrastructure/config"
	"entregaswoo/internal/infrastructure/database"
	"entregaswoo/internal/infrastructure/identity"
	"entregaswoo/internal/infrastructure/messaging"
	"entregaswoo/internal/infrastructure/storage"
	"entregaswoo/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires every dependency and starts the server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.HTTPPort)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes(cfg config.Config) {
	ctx := context.Background()

	ddb := database.ConnectDynamoDB(cfg.AWS)

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	storeRepo := repository.NewStoreDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	assocRepo := repository.NewAssociationDynamoRepository(ddb)

	notifier, err := messaging.NewTelegramNotifier(cfg.Telegram.BotToken)
	if err != nil {
		// A typed nil notifier fails per send, which the dispatcher
		// records as delivery failures instead of crashing ingest.
		log.Warnf("Telegram notifier not configured: %v", err)
	}

	objectStorage, err := storage.NewS3ObjectStorage(ctx, cfg.AWS)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	identityProvider := identity.NewAuthAdminClient(cfg.AuthAdminURL, cfg.AuthAdminToken)

	dispatcher := usecase.NewNotificationDispatcher(assocRepo, userRepo, notifier, cfg.Telegram.ChatIDs, cfg.Telegram.StoreChannels)
	dispatcher.Start(ctx)

	sessionUseCase := usecase.NewSessionUseCase(userRepo, assocRepo, cfg.AuthJWTSecret, cfg.SessionCacheTTL)
	webhookUseCase := usecase.NewWebhookIngestUseCase(orderRepo, dispatcher, cfg.WebhookSecret)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, storeRepo, cfg.OrdersPageSize)
	reconciliationUseCase := usecase.NewReconciliationUseCase(orderRepo)
	directoryUseCase := usecase.NewDirectoryUseCase(storeRepo, userRepo, assocRepo, objectStorage, identityProvider)

	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	reconciliationHandler := handlers.NewReconciliationHandler(reconciliationUseCase)
	directoryHandler := handlers.NewDirectoryHandler(directoryUseCase)
	sessionHandler := handlers.NewSessionHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWebhookRoutes(v1, webhookHandler)

	authenticated := v1.Group("", handlers.Authenticate(sessionUseCase))
	addSessionRoutes(authenticated, sessionHandler, directoryHandler)
	addOrderRoutes(authenticated, orderHandler, reconciliationHandler)
	addDirectoryRoutes(authenticated, directoryHandler)
}

func setMiddlewares() {
	router.HandleMethodNotAllowed = true
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
