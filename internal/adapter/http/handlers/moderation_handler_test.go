package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servease/internal/adapter/http/handlers/mocks"
	"servease/internal/domain/entities"
	"servease/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestModerationHandler_ProviderActions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve stamps approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIModerationUseCase(ctrl)
		h := NewModerationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/providers/:prov_id/approve", h.ApproveProvider)

		now := time.Now().UTC()
		uc.EXPECT().ApproveProvider(gomock.Any(), "prov-1").
			Return(entities.Provider{ID: "prov-1", IsApproved: true, ApprovedAt: &now}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/providers/prov-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["is_approved"] != true || body["approved_at"] == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("block unknown provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIModerationUseCase(ctrl)
		h := NewModerationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/providers/:prov_id/block", h.BlockProvider)

		uc.EXPECT().BlockProvider(gomock.Any(), "missing").Return(entities.Provider{}, usecase.ErrProviderNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/providers/missing/block", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unblock keeps approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIModerationUseCase(ctrl)
		h := NewModerationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/providers/:prov_id/unblock", h.UnblockProvider)

		uc.EXPECT().UnblockProvider(gomock.Any(), "prov-1").
			Return(entities.Provider{ID: "prov-1", IsApproved: true, IsBlocked: false}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/providers/prov-1/unblock", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["is_approved"] != true || body["is_blocked"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestModerationHandler_ServiceActions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("first approval activates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIModerationUseCase(ctrl)
		h := NewModerationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/services/:service_id/approve", h.ApproveService)

		now := time.Now().UTC()
		uc.EXPECT().ApproveService(gomock.Any(), "svc-1").
			Return(entities.Service{ID: "svc-1", IsApproved: true, IsActive: true, ApprovedAt: &now}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/services/svc-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["is_active"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("block unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIModerationUseCase(ctrl)
		h := NewModerationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/services/:service_id/block", h.BlockService)

		uc.EXPECT().BlockService(gomock.Any(), "missing").Return(entities.Service{}, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/services/missing/block", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestModerationHandler_CustomerActions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("block success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIModerationUseCase(ctrl)
		h := NewModerationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/customers/:cust_id/block", h.BlockCustomer)

		uc.EXPECT().BlockCustomer(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", IsBlocked: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/customers/cust-1/block", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["is_blocked"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unblock unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIModerationUseCase(ctrl)
		h := NewModerationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/customers/:cust_id/unblock", h.UnblockCustomer)

		uc.EXPECT().UnblockCustomer(gomock.Any(), "missing").Return(entities.Customer{}, usecase.ErrCustomerNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/customers/missing/unblock", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapModerationError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidActorID, http.StatusBadRequest},
		{usecase.ErrProviderNotFound, http.StatusNotFound},
		{usecase.ErrServiceNotFound, http.StatusNotFound},
		{usecase.ErrCustomerNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapModerationError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
