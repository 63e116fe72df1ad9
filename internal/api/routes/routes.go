package routes

import (
	"time"

	"crm-distribution-backend/internal/api/handlers"
	"crm-distribution-backend/internal/api/middleware"
	"crm-distribution-backend/internal/config"
	"crm-distribution-backend/internal/events"
	"crm-distribution-backend/internal/repository"
	"crm-distribution-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	leadRepo := repository.NewLeadRepository(db)
	sourceRepo := repository.NewSourceRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)
	weightRepo := repository.NewOperatorSourceWeightRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Initialize the event publisher; disabled when AMQP_URL is empty
	var publisher service.ContactEventPublisher
	if cfg.AMQPURL != "" {
		pub, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			logrus.WithError(err).Warn("event publishing disabled: broker unreachable")
		} else {
			publisher = pub
		}
	}

	// Initialize services
	leadService := service.NewLeadService(leadRepo, contactRepo, validator)
	sourceService := service.NewSourceService(sourceRepo, contactRepo, validator)
	operatorService := service.NewOperatorService(operatorRepo, weightRepo, sourceRepo, contactRepo, validator)
	contactService := service.NewContactService(contactRepo)
	distributionService := service.NewDistributionService(
		db,
		validator,
		service.NewLockedRand(time.Now().UnixNano()),
		publisher,
		cfg.AssignMaxRetries,
		time.Duration(cfg.AssignRetryMs)*time.Millisecond,
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	leadHandler := handlers.NewLeadHandler(leadService)
	sourceHandler := handlers.NewSourceHandler(sourceService)
	operatorHandler := handlers.NewOperatorHandler(operatorService)
	contactHandler := handlers.NewContactHandler(contactService, distributionService)
	statsHandler := handlers.NewStatsHandler(distributionService, contactService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Operator routes
		operators := v1.Group("/operators")
		{
			operators.GET("", operatorHandler.ListOperators)
			operators.POST("", operatorHandler.CreateOperator)
			operators.GET("/:id", operatorHandler.GetOperator)
			operators.PUT("/:id", operatorHandler.UpdateOperator)
			operators.DELETE("/:id", operatorHandler.DeleteOperator)
			operators.GET("/:id/contacts", operatorHandler.GetOperatorContacts)
			operators.GET("/:id/weights", operatorHandler.GetOperatorWeights)
			operators.PUT("/:id/sources/:sourceId/weight", operatorHandler.SetOperatorWeight)
		}

		// Source routes
		sources := v1.Group("/sources")
		{
			sources.GET("", sourceHandler.ListSources)
			sources.POST("", sourceHandler.CreateSource)
			sources.GET("/:id", sourceHandler.GetSource)
			sources.PUT("/:id", sourceHandler.UpdateSource)
			sources.DELETE("/:id", sourceHandler.DeleteSource)
			sources.GET("/:id/contacts", sourceHandler.GetSourceContacts)
		}

		// Lead routes
		leads := v1.Group("/leads")
		{
			leads.GET("", leadHandler.ListLeads)
			leads.POST("", leadHandler.CreateLead)
			leads.GET("/:id", leadHandler.GetLead)
			leads.GET("/:id/contacts", leadHandler.GetLeadContacts)
		}

		// Contact routes
		contacts := v1.Group("/contacts")
		{
			contacts.GET("", contactHandler.ListContacts)
			contacts.POST("/register", contactHandler.RegisterContact)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.POST("/:id/process", contactHandler.MarkContactProcessed)
		}

		// Stats routes
		stats := v1.Group("/stats")
		{
			stats.GET("/operator-load", statsHandler.GetOperatorLoadStats)
			stats.GET("/unprocessed-contacts", statsHandler.GetUnprocessedContacts)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
