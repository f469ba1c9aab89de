package routes

import (
	"net/http"

	"flex_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing      = "/ping"
	PathOrders    = "/orders"
	PathFlexPlans = "/flex-plans"
	PathTrials    = "/trials"
	PathJobs      = "/jobs"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addFlexBillingRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, flexPlanHandler *handlers.FlexPlanHandler, trialHandler *handlers.TrialHandler, jobHandler *handlers.JobHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("/:invoice_number/refund", orderHandler.RefundOrder)
		orders.POST("/:invoice_number/cancel", orderHandler.CancelOrder)
	}

	plans := rg.Group(PathFlexPlans)
	{
		plans.POST("", flexPlanHandler.CreatePlan)
		plans.POST("/:id/pause", flexPlanHandler.PausePlan)
		plans.POST("/:id/resume", flexPlanHandler.ResumePlan)
		plans.POST("/:id/skip", flexPlanHandler.SkipPlan)
		plans.POST("/:id/process", flexPlanHandler.ProcessPlan)
		plans.DELETE("/:id", flexPlanHandler.CancelPlan)
	}

	trials := rg.Group(PathTrials)
	{
		trials.POST("/:customer_id/skip", trialHandler.SkipTrial)
		trials.POST("/:customer_id/cancel", trialHandler.CancelTrial)
		trials.POST("/:customer_id/convert", trialHandler.ConvertTrial)
	}

	jobs := rg.Group(PathJobs)
	{
		// Intended for an external cron; the in-process ticker calls the same use case.
		jobs.POST("/flex-orders", jobHandler.RunFlexOrders)
		jobs.POST("/trial-conversions", jobHandler.RunTrialConversions)
	}
}
