package routes

import (
	"log"
	_ "auxilio_propg/docs" // swag-generated documentation
	"auxilio_propg/internal/adapter/http/handlers"
	"auxilio_propg/internal/adapter/persistence/repository"
	"auxilio_propg/internal/infrastructure/database"
	"auxilio_propg/internal/infrastructure/mail"
	"auxilio_propg/internal/infrastructure/payments"
	"auxilio_propg/internal/usecase"
	"auxilio_propg/internal/usecase/interfaces"
	"net/http"
	"os"
	"strconv"

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
	requestRepo, auditRepo, configRepo := buildRepositories()

	permissions := usecase.NewPermissionTable()
	templates := usecase.NewTemplateRegistry(configRepo)
	mailer := mail.NewSMTPMailerFromEnv()
	notificationUseCase := usecase.NewNotificationUseCase(templates, configRepo, mailer, auditRepo)
	auditUseCase := usecase.NewAuditLogUseCase(auditRepo, permissions)

	var disbursement interfaces.IDisbursementGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		disbursement = mpGateway
	}

	aidUseCase := usecase.NewAidRequestUseCase(requestRepo, auditRepo, permissions, notificationUseCase, disbursement)

	aidHandler := handlers.NewAidRequestHandler(aidUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase, permissions)
	auditHandler := handlers.NewAuditLogHandler(auditUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAidRoutes(v1, aidHandler, notificationHandler, auditHandler)
}

// buildRepositories selects the record store backend via REQUEST_STORE:
// "sheets" keeps the legacy spreadsheet during the migration window,
// "memory" serves local runs, anything else means DynamoDB.
func buildRepositories() (interfaces.IAidRequestRepository, interfaces.IAuditLogRepository, interfaces.INotificationConfigRepository) {
	switch os.Getenv("REQUEST_STORE") {
	case "sheets":
		log.Printf("[routes] using Google Sheets record store")
		requestRepo := repository.NewAidRequestSheetsRepository(
			os.Getenv("SHEETS_SPREADSHEET_ID"),
			getenvDefault("SHEETS_SHEET_NAME", "Solicitações"),
			os.Getenv("SHEETS_CREDENTIALS_FILE"),
		)
		ddb := database.ConnectDynamoDB()
		return requestRepo, repository.NewAuditLogDynamoRepository(ddb), repository.NewNotificationConfigDynamoRepository(ddb)
	case "memory":
		log.Printf("[routes] using in-memory stores")
		return repository.NewAidRequestMemoryRepository(), repository.NewAuditLogMemoryRepository(), repository.NewNotificationConfigMemoryRepository()
	default:
		ddb := database.ConnectDynamoDB()
		return repository.NewAidRequestDynamoRepository(ddb), repository.NewAuditLogDynamoRepository(ddb), repository.NewNotificationConfigDynamoRepository(ddb)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
