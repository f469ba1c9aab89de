package routes

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "flex_billing/docs" // This will be auto-generated
	"flex_billing/internal/adapter/http/handlers"
	"flex_billing/internal/adapter/scheduler"
	"flex_billing/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run(cfg config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to wire dependencies: %v", err)
	}
	defer deps.Close()

	getRoutes(deps)

	if cfg.SchedulerInterval > 0 {
		go scheduler.NewTicker(deps.scheduler, cfg.SchedulerInterval).Run(ctx)
	}

	err = router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(deps *dependencies) {
	orderHandler := handlers.NewOrderHandler(deps.refunds)
	flexPlanHandler := handlers.NewFlexPlanHandler(deps.flexPlans)
	trialHandler := handlers.NewTrialHandler(deps.trials)
	jobHandler := handlers.NewJobHandler(deps.scheduler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFlexBillingRoutes(v1, orderHandler, flexPlanHandler, trialHandler, jobHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
