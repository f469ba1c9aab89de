package handlers

import (
	"log"
	"net/http"

	request "flex_billing/internal/adapter/http/dto/request"
	response "flex_billing/internal/adapter/http/dto/response"
	"flex_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TrialHandler struct {
	usecase usecase.ITrialUseCase
}

func NewTrialHandler(uc usecase.ITrialUseCase) *TrialHandler {
	return &TrialHandler{usecase: uc}
}

// ConvertTrial places the first flex order for a trial customer right away.
//
// @Summary      Convert a trial customer to a flex plan
// @Tags         trials
// @Accept       json
// @Produce      json
// @Param        customer_id  path  string                 true   "Customer id"
// @Param        body         body  request.SourceRequest  false  "Order source"
// @Success      201  {object}  response.FlexPlanResponse
// @Failure      402  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /trials/{customer_id}/convert [post]
func (h *TrialHandler) ConvertTrial(c *gin.Context) {
	customerID := c.Param("customer_id")

	var payload request.SourceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}
	source := payload.ResolveSource(adminSource)
	log.Printf("[trial][handler] convert start customer_id=%s source=%s", customerID, source)

	plan, err := h.usecase.Convert(c.Request.Context(), customerID, source)
	if err != nil {
		log.Printf("[trial][handler] convert failed customer_id=%s err=%v", customerID, err)
		writeError(c, err)
		return
	}
	log.Printf("[trial][handler] convert success customer_id=%s plan_id=%s", customerID, plan.ID)

	c.JSON(http.StatusCreated, response.FromFlexPlan(plan))
}

// SkipTrial godoc
// @Summary      Delay a trial conversion
// @Tags         trials
// @Accept       json
// @Produce      json
// @Param        customer_id  path  string               true   "Customer id"
// @Param        body         body  request.SkipRequest  false  "Days to push the follow-up out"
// @Success      200  {object}  response.CustomerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /trials/{customer_id}/skip [post]
func (h *TrialHandler) SkipTrial(c *gin.Context) {
	customerID := c.Param("customer_id")

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
	log.Printf("[trial][handler] skip start customer_id=%s days=%d", customerID, payload.Days)

	customer, err := h.usecase.Skip(c.Request.Context(), customerID, payload.Days)
	if err != nil {
		log.Printf("[trial][handler] skip failed customer_id=%s err=%v", customerID, err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// CancelTrial godoc
// @Summary      Stop a trial conversion
// @Tags         trials
// @Produce      json
// @Param        customer_id  path  string  true  "Customer id"
// @Success      200  {object}  response.CustomerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /trials/{customer_id}/cancel [post]
func (h *TrialHandler) CancelTrial(c *gin.Context) {
	customerID := c.Param("customer_id")
	log.Printf("[trial][handler] cancel start customer_id=%s", customerID)

	customer, err := h.usecase.Cancel(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("[trial][handler] cancel failed customer_id=%s err=%v", customerID, err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}
