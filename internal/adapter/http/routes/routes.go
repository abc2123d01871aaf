package routes

import (
	"log"

	_ "oficina_xpto/docs" // swag-generated documentation
	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/http/middleware"
	"oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/domain/workflow"
	"oficina_xpto/internal/infrastructure/config"
	"oficina_xpto/internal/infrastructure/database"
	"oficina_xpto/internal/infrastructure/payments"
	"oficina_xpto/internal/infrastructure/security"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(cfg.AppAddr); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter assembles a fresh engine with all routes wired against the given
// config. Run uses the package-level engine; tests build their own.
func NewRouter(cfg *config.Config) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	registerRoutes(engine, cfg)
	return engine
}

func getRoutes(cfg *config.Config) {
	registerRoutes(router, cfg)
}

func registerRoutes(engine *gin.Engine, cfg *config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	vehicleRepo := repository.NewVehicleDynamoRepository(ddb)
	mechanicRepo := repository.NewMechanicDynamoRepository(ddb)
	partRepo := repository.NewPartDynamoRepository(ddb)
	serviceRepo := repository.NewServiceDynamoRepository(ddb)
	orderRepo := repository.NewWorkOrderDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	expenseRepo := repository.NewExpenseDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)

	policy := workflow.FromName(cfg.StatusPolicy)
	log.Printf("[os][routes] status policy=%s", policy.Name())

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	tokens := security.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, vehicleRepo, orderRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, customerRepo, orderRepo)
	mechanicUseCase := usecase.NewMechanicUseCase(mechanicRepo)
	catalogUseCase := usecase.NewCatalogUseCase(partRepo, serviceRepo)
	workOrderUseCase := usecase.NewWorkOrderUseCase(orderRepo, vehicleRepo, mechanicRepo, partRepo, serviceRepo, paymentRepo, policy)
	financeUseCase := usecase.NewFinanceUseCase(paymentRepo, expenseRepo, orderRepo, paymentGateway)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokens)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	mechanicHandler := handlers.NewMechanicHandler(mechanicUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)
	financeHandler := handlers.NewFinanceHandler(financeUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	// Rotas publicas
	addPingRoutes(engine)
	addAuthRoutes(engine, authHandler)

	// Rotas protegidas por bearer token
	protected := engine.Group("", middleware.RequireAuth(tokens))
	addWorkshopRoutes(protected, customerHandler, vehicleHandler, mechanicHandler, catalogHandler, workOrderHandler, financeHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
