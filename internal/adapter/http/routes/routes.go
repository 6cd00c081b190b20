package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "ipay_billing/docs" // generated by swag init
	"ipay_billing/internal/adapter/http/handlers"
	"ipay_billing/internal/adapter/persistence/repository"
	"ipay_billing/internal/config"
	"ipay_billing/internal/infrastructure/database"
	"ipay_billing/internal/infrastructure/ipay"
	"ipay_billing/internal/usecase"
	"ipay_billing/internal/usecase/interfaces"
	"ipay_billing/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const HeaderRequestID = "X-Request-ID"

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	getRoutes(router, cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(r *gin.Engine, cfg config.Config) {
	ctx := context.Background()

	gatewayMetrics := metrics.NewGatewayMetrics(prometheus.DefaultRegisterer)
	gateway := ipay.NewClient(cfg, ipay.WithMetrics(gatewayMetrics))
	if cfg.ClientID == "" || cfg.SecretKey == "" {
		log.Printf("[routes] IPAY_CLIENT_ID or IPAY_SECRET_KEY is empty; iPay will reject token requests")
	}

	paymentUseCase := usecase.NewPaymentUseCase(gateway, connectRecordRepository(ctx))
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

// connectRecordRepository returns nil when DynamoDB is unreachable; payments
// keep working without history.
func connectRecordRepository(ctx context.Context) interfaces.IPaymentRecordRepository {
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		log.Printf("[routes] dynamodb not configured; payment records disabled err=%v", err)
		return nil
	}

	if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		err := database.EnsureTable(ctx, ddb,
			repository.PaymentRecordsTableName(),
			repository.PaymentRecordsShopOrderIDIndex,
			repository.PaymentRecordsShopOrderIDKey,
		)
		if err != nil {
			log.Printf("[routes] ensure table failed err=%v", err)
		}
	}

	return repository.NewPaymentRecordDynamoRepository(ddb)
}

func setMiddlewares(r *gin.Engine) {
	r.Use(requestID())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v request_id=%s", recovered, c.GetString(HeaderRequestID))
		c.AbortWithStatus(500)
	}))
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
