package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_xpto/internal/adapter/http/handlers/mocks"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestFinanceHandler_RegisterPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.POST("/pagamentos/", h.RegisterPayment)

		req := httptest.NewRequest(http.MethodPost, "/pagamentos/", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("declined gateway payment maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.POST("/pagamentos/", h.RegisterPayment)

		uc.EXPECT().RegisterPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrPaymentDeclined)

		body := `{"ordem_servico_id":"os-1","valor":50,"forma_pagamento":"CARTAO","mp_payload":{"token":"tok"}}`
		req := httptest.NewRequest(http.MethodPost, "/pagamentos/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("register success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.POST("/pagamentos/", h.RegisterPayment)

		uc.EXPECT().RegisterPayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.RegisterPaymentInput) (entities.Payment, error) {
				if in.WorkOrderID != "os-1" || in.Amount != 120 || in.Method != "PIX" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Payment{ID: "pay-1", WorkOrderID: "os-1", Amount: 120, Method: "PIX", Installment: 1}, nil
			},
		)

		body := `{"ordem_servico_id":"os-1","valor":120,"forma_pagamento":"PIX"}`
		req := httptest.NewRequest(http.MethodPost, "/pagamentos/", bytes.NewBufferString(body))
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
		if resp["valor"] != 120.0 || resp["forma_pagamento"] != "PIX" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestFinanceHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFinanceUseCase(ctrl)
	h := NewFinanceHandler(uc)

	r := gin.New()
	r.GET("/pagamentos/resumo", h.Summary)

	uc.EXPECT().Summary(gomock.Any()).Return(entities.FinanceSummary{ReceiptsTotal: 1500, ExpensesTotal: 400, Balance: 1100}, nil)

	req := httptest.NewRequest(http.MethodGet, "/pagamentos/resumo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp["total_receitas"] != 1500.0 || resp["total_despesas"] != 400.0 || resp["saldo"] != 1100.0 {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestFinanceHandler_Expenses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid category maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.POST("/pagamentos/despesas/", h.RegisterExpense)

		uc.EXPECT().RegisterExpense(gomock.Any(), gomock.Any()).Return(entities.Expense{}, usecase.ErrInvalidExpenseInput)

		body := `{"descricao":"aluguel","valor":2000,"data_vencimento":"2025-09-05T00:00:00Z","categoria":"OUTRA"}`
		req := httptest.NewRequest(http.MethodPost, "/pagamentos/despesas/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete unknown expense maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.DELETE("/pagamentos/despesas/:id", h.DeleteExpense)

		uc.EXPECT().DeleteExpense(gomock.Any(), "e-x").Return(usecase.ErrExpenseNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/pagamentos/despesas/e-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
