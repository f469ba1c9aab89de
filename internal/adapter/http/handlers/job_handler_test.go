package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	response "flex_billing/internal/adapter/http/dto/response"
	"flex_billing/internal/adapter/http/handlers/mocks"
	"flex_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISchedulerUseCase(ctrl)
	h := NewJobHandler(uc)

	r := gin.New()
	r.POST("/v1/jobs/flex-orders", h.RunFlexOrders)
	r.POST("/v1/jobs/trial-conversions", h.RunTrialConversions)

	t.Run("flex orders summary", func(t *testing.T) {
		uc.EXPECT().RunFlexOrders(gomock.Any()).Return(usecase.DispatchSummary{Candidates: 3, Claimed: 2, Succeeded: 1, Failed: 1}, nil)

		w := serve(r, http.MethodPost, "/v1/jobs/flex-orders", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.DispatchResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Job != jobFlexOrders || body.Claimed != 2 || body.Failed != 1 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("trial conversions error", func(t *testing.T) {
		uc.EXPECT().RunTrialConversions(gomock.Any()).Return(usecase.DispatchSummary{}, errors.New("query failed"))

		if w := serve(r, http.MethodPost, "/v1/jobs/trial-conversions", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
