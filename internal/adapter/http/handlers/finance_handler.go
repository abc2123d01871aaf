package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFinancePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid finance payload", http.StatusBadRequest)

// FinanceHandler handles HTTP requests for payments, expenses and the summary.

type FinanceHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewFinanceHandler(uc usecase.IFinanceUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

func (h *FinanceHandler) RegisterPayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFinancePayload.HTTPStatus, errInvalidFinancePayload.ToHTTPError())
		return
	}
	log.Printf("[finance][handler] payment start os_id=%s valor=%.2f forma=%s", payload.WorkOrderID, payload.Amount, payload.Method)

	created, err := h.usecase.RegisterPayment(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[finance][handler] payment failed os_id=%s err=%v", payload.WorkOrderID, err)
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[finance][handler] payment success os_id=%s payment_id=%s", created.WorkOrderID, created.ID)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

func (h *FinanceHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context())
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *FinanceHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFinanceSummary(summary))
}

func (h *FinanceHandler) RegisterExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFinancePayload.HTTPStatus, errInvalidFinancePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.RegisterExpense(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromExpense(created))
}

func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.usecase.ListExpenses(c.Request.Context())
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpenses(expenses))
}

func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	if err := h.usecase.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapFinanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInput), errors.Is(err, usecase.ErrInvalidExpenseInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExpenseNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Expense not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("CONFLICT", "Payment declined by provider", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
