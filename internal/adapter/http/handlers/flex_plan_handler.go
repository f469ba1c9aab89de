package handlers

import (
	"log"
	"net/http"

	request "flex_billing/internal/adapter/http/dto/request"
	response "flex_billing/internal/adapter/http/dto/response"
	"flex_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

const adminSource = "admin"

// FlexPlanHandler drives the flex plan state machine for operators.
type FlexPlanHandler struct {
	usecase usecase.IFlexPlanUseCase
}

func NewFlexPlanHandler(uc usecase.IFlexPlanUseCase) *FlexPlanHandler {
	return &FlexPlanHandler{usecase: uc}
}

// CreatePlan godoc
// @Summary      Create a flex plan and charge its first cycle
// @Tags         flex-plans
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateFlexPlanRequest  true  "Plan"
// @Success      201  {object}  response.FlexPlanResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      402  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /flex-plans [post]
func (h *FlexPlanHandler) CreatePlan(c *gin.Context) {
	var payload request.CreateFlexPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[flex][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	items, err := payload.ItemRequests()
	if err != nil {
		log.Printf("[flex][handler] create invalid items customer_id=%s err=%v", payload.CustomerID, err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	log.Printf("[flex][handler] create start customer_id=%s items=%d", payload.CustomerID, len(items))

	plan, err := h.usecase.Create(c.Request.Context(), usecase.CreatePlanRequest{
		CustomerID: payload.CustomerID,
		Items:      items,
		Discounts:  payload.DiscountEntities(),
		Source:     request.SourceRequest{Source: payload.Source}.ResolveSource(adminSource),
	})
	if err != nil {
		log.Printf("[flex][handler] create failed customer_id=%s err=%v", payload.CustomerID, err)
		writeError(c, err)
		return
	}
	log.Printf("[flex][handler] create success customer_id=%s plan_id=%s", payload.CustomerID, plan.ID)

	c.JSON(http.StatusCreated, response.FromFlexPlan(plan))
}

// PausePlan godoc
// @Summary      Pause a flex plan
// @Tags         flex-plans
// @Produce      json
// @Param        id  path  string  true  "Flex plan id"
// @Success      200  {object}  response.FlexPlanResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /flex-plans/{id}/pause [post]
func (h *FlexPlanHandler) PausePlan(c *gin.Context) {
	planID := c.Param("id")
	log.Printf("[flex][handler] pause start plan_id=%s", planID)

	plan, err := h.usecase.Pause(c.Request.Context(), planID)
	if err != nil {
		log.Printf("[flex][handler] pause failed plan_id=%s err=%v", planID, err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromFlexPlan(plan))
}

// ResumePlan godoc
// @Summary      Resume a paused flex plan
// @Tags         flex-plans
// @Produce      json
// @Param        id  path  string  true  "Flex plan id"
// @Success      200  {object}  response.FlexPlanResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /flex-plans/{id}/resume [post]
func (h *FlexPlanHandler) ResumePlan(c *gin.Context) {
	planID := c.Param("id")
	log.Printf("[flex][handler] resume start plan_id=%s", planID)

	plan, err := h.usecase.Resume(c.Request.Context(), planID)
	if err != nil {
		log.Printf("[flex][handler] resume failed plan_id=%s err=%v", planID, err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromFlexPlan(plan))
}

// SkipPlan godoc
// @Summary      Skip the next flex order
// @Tags         flex-plans
// @Accept       json
// @Produce      json
// @Param        id    path  string               true   "Flex plan id"
// @Param        body  body  request.SkipRequest  false  "Days to push the reminder out"
// @Success      200  {object}  response.FlexPlanResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /flex-plans/{id}/skip [post]
func (h *FlexPlanHandler) SkipPlan(c *gin.Context) {
	planID := c.Param("id")

	var payload request.SkipRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	log.Printf("[flex][handler] skip start plan_id=%s days=%d", planID, payload.Days)

	plan, err := h.usecase.Skip(c.Request.Context(), planID, payload.Days)
	if err != nil {
		log.Printf("[flex][handler] skip failed plan_id=%s err=%v", planID, err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromFlexPlan(plan))
}

// ProcessPlan charges one cycle now, outside the scheduler.
//
// @Summary      Charge a flex plan cycle now
// @Tags         flex-plans
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true   "Flex plan id"
// @Param        body  body  request.SourceRequest  false  "Order source"
// @Success      200  {object}  response.OrderResponse
// @Failure      402  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /flex-plans/{id}/process [post]
func (h *FlexPlanHandler) ProcessPlan(c *gin.Context) {
	planID := c.Param("id")

	var payload request.SourceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}
	source := payload.ResolveSource(adminSource)
	log.Printf("[flex][handler] process start plan_id=%s source=%s", planID, source)

	order, err := h.usecase.Process(c.Request.Context(), planID, source)
	if err != nil {
		log.Printf("[flex][handler] process failed plan_id=%s err=%v", planID, err)
		writeError(c, err)
		return
	}
	log.Printf("[flex][handler] process success plan_id=%s invoice_number=%s", planID, order.InvoiceNumber)

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// CancelPlan godoc
// @Summary      Cancel a flex plan
// @Tags         flex-plans
// @Produce      json
// @Param        id  path  string  true  "Flex plan id"
// @Success      200  {object}  response.CustomerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /flex-plans/{id} [delete]
func (h *FlexPlanHandler) CancelPlan(c *gin.Context) {
	planID := c.Param("id")
	log.Printf("[flex][handler] cancel start plan_id=%s", planID)

	customer, err := h.usecase.Cancel(c.Request.Context(), planID)
	if err != nil {
		log.Printf("[flex][handler] cancel failed plan_id=%s err=%v", planID, err)
		writeError(c, err)
		return
	}
	log.Printf("[flex][handler] cancel success plan_id=%s customer_id=%s", planID, customer.ID)

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}
