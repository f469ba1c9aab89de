package handlers

import (
	"log"
	"net/http"

	response "flex_billing/internal/adapter/http/dto/response"
	"flex_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	jobFlexOrders       = "flex-orders"
	jobTrialConversions = "trial-conversions"
)

// JobHandler lets an external cron trigger the dispatch runs.
type JobHandler struct {
	usecase usecase.ISchedulerUseCase
}

func NewJobHandler(uc usecase.ISchedulerUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// RunFlexOrders godoc
// @Summary      Dispatch due flex orders
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.DispatchResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /jobs/flex-orders [post]
func (h *JobHandler) RunFlexOrders(c *gin.Context) {
	log.Printf("[scheduler][handler] %s start", jobFlexOrders)

	summary, err := h.usecase.RunFlexOrders(c.Request.Context())
	if err != nil {
		log.Printf("[scheduler][handler] %s failed err=%v", jobFlexOrders, err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDispatchSummary(jobFlexOrders, summary))
}

// RunTrialConversions godoc
// @Summary      Dispatch due trial conversions
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.DispatchResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /jobs/trial-conversions [post]
func (h *JobHandler) RunTrialConversions(c *gin.Context) {
	log.Printf("[scheduler][handler] %s start", jobTrialConversions)

	summary, err := h.usecase.RunTrialConversions(c.Request.Context())
	if err != nil {
		log.Printf("[scheduler][handler] %s failed err=%v", jobTrialConversions, err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDispatchSummary(jobTrialConversions, summary))
}
