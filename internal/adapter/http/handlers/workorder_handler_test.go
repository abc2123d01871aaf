package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_xpto/internal/adapter/http/handlers/mocks"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/workflow"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWorkOrderHandler_Open(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/os/", h.Open)

		req := httptest.NewRequest(http.MethodPost, "/os/", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("vehicle not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/os/", h.Open)

		uc.EXPECT().Open(gomock.Any(), gomock.Any()).Return(entities.WorkOrder{}, usecase.ErrVehicleNotFound)

		body := `{"veiculo_id":"v-x","mecanico_id":"m-1","km_atual":1000,"defeito_reclamado":"barulho"}`
		req := httptest.NewRequest(http.MethodPost, "/os/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("open success returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/os/", h.Open)

		uc.EXPECT().Open(gomock.Any(), usecase.OpenWorkOrderInput{
			VehicleID:      "v-1",
			MechanicID:     "m-1",
			Odometer:       1000,
			ReportedDefect: "barulho",
		}).Return(entities.WorkOrder{ID: "os-1", Status: entities.OrderStatusOrcamento, VehicleID: "v-1"}, nil)

		body := `{"veiculo_id":"v-1","mecanico_id":"m-1","km_atual":1000,"defeito_reclamado":"barulho"}`
		req := httptest.NewRequest(http.MethodPost, "/os/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp["id"] != "os-1" || resp["status"] != "ORCAMENTO" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestWorkOrderHandler_GetDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	h := NewWorkOrderHandler(uc)

	r := gin.New()
	r.GET("/os/:id/detalhes", h.GetDetail)

	uc.EXPECT().GetDetail(gomock.Any(), "os-1").Return(entities.WorkOrderDetail{
		WorkOrder: entities.WorkOrder{ID: "os-1", Status: entities.OrderStatusExecucao},
		Payments:  []entities.Payment{{ID: "pay-1", Amount: 100}},

		PartsTotal:    100,
		ServicesTotal: 120,
		GrandTotal:    220,
		PaidTotal:     100,
		Balance:       120,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/os/os-1/detalhes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp["total_geral"] != 220.0 || resp["saldo_devedor"] != 120.0 {
		t.Fatalf("unexpected totals: %v", resp)
	}
}

func TestWorkOrderHandler_AddPartLine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("insufficient stock maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/os/:id/adicionar-peca", h.AddPartLine)

		uc.EXPECT().AddPartLine(gomock.Any(), "os-1", gomock.Any()).Return(entities.WorkOrder{}, usecase.ErrInsufficientStock)

		body := `{"peca_id":"p-1","quantidade":5}`
		req := httptest.NewRequest(http.MethodPost, "/os/os-1/adicionar-peca", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp["code"] != "INSUFFICIENT_STOCK" {
			t.Fatalf("expected INSUFFICIENT_STOCK code, got %v", resp)
		}
	})

	t.Run("ambiguous variant maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/os/:id/adicionar-peca", h.AddPartLine)

		uc.EXPECT().AddPartLine(gomock.Any(), "os-1", gomock.Any()).Return(entities.WorkOrder{}, usecase.ErrLineVariantAmbiguous)

		body := `{"peca_id":"p-1","nome_peca":"avulsa","quantidade":1}`
		req := httptest.NewRequest(http.MethodPost, "/os/os-1/adicionar-peca", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("add success returns updated order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/os/:id/adicionar-peca", h.AddPartLine)

		uc.EXPECT().AddPartLine(gomock.Any(), "os-1", usecase.AddPartLineInput{PartID: "p-1", Quantity: 2}).Return(entities.WorkOrder{
			ID: "os-1",
			PartLines: []entities.PartLine{
				{LineID: "l-1", PartID: "p-1", Name: "pastilha", Quantity: 2, UnitPrice: 50},
			},
		}, nil)

		body := `{"peca_id":"p-1","quantidade":2}`
		req := httptest.NewRequest(http.MethodPost, "/os/os-1/adicionar-peca", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestWorkOrderHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forbidden transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.PATCH("/os/:id/status", h.SetStatus)

		uc.EXPECT().SetStatus(gomock.Any(), "os-1", entities.OrderStatusFinalizado).Return(entities.WorkOrder{}, workflow.ErrTransitionNotAllowed)

		req := httptest.NewRequest(http.MethodPatch, "/os/os-1/status", bytes.NewBufferString(`{"status":"FINALIZADO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.PATCH("/os/:id/status", h.SetStatus)

		uc.EXPECT().SetStatus(gomock.Any(), "os-1", entities.OrderStatus("QUALQUER")).Return(entities.WorkOrder{}, workflow.ErrUnknownStatus)

		req := httptest.NewRequest(http.MethodPatch, "/os/os-1/status", bytes.NewBufferString(`{"status":"QUALQUER"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("status change success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.PATCH("/os/:id/status", h.SetStatus)

		uc.EXPECT().SetStatus(gomock.Any(), "os-1", entities.OrderStatusExecucao).Return(entities.WorkOrder{ID: "os-1", Status: entities.OrderStatusExecucao}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/os/os-1/status", bytes.NewBufferString(`{"status":"EXECUCAO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
