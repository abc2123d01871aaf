package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/workflow"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid service order payload", http.StatusBadRequest)

// WorkOrderHandler handles HTTP requests for service orders (OS).

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

func (h *WorkOrderHandler) Open(c *gin.Context) {
	var payload request.OpenWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Open(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[os][handler] open failed veiculo_id=%s err=%v", payload.VehicleID, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[os][handler] open success os_id=%s veiculo_id=%s", created.ID, created.VehicleID)

	c.JSON(http.StatusCreated, response.FromWorkOrder(created))
}

func (h *WorkOrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

func (h *WorkOrderHandler) GetDetail(c *gin.Context) {
	detail, err := h.usecase.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrderDetail(detail))
}

func (h *WorkOrderHandler) AddPartLine(c *gin.Context) {
	orderID := c.Param("id")

	var payload request.AddPartLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AddPartLine(c.Request.Context(), orderID, payload.ToInput())
	if err != nil {
		log.Printf("[os][handler] add-part failed os_id=%s peca_id=%s err=%v", orderID, payload.PartID, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

func (h *WorkOrderHandler) RemovePartLine(c *gin.Context) {
	orderID := c.Param("id")

	updated, err := h.usecase.RemovePartLine(c.Request.Context(), orderID, c.Param("lineID"))
	if err != nil {
		log.Printf("[os][handler] remove-part failed os_id=%s item_id=%s err=%v", orderID, c.Param("lineID"), err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

func (h *WorkOrderHandler) AddServiceLine(c *gin.Context) {
	orderID := c.Param("id")

	var payload request.AddServiceLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AddServiceLine(c.Request.Context(), orderID, payload.ToInput())
	if err != nil {
		log.Printf("[os][handler] add-service failed os_id=%s servico_id=%s err=%v", orderID, payload.ServiceID, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

func (h *WorkOrderHandler) RemoveServiceLine(c *gin.Context) {
	orderID := c.Param("id")

	updated, err := h.usecase.RemoveServiceLine(c.Request.Context(), orderID, c.Param("lineID"))
	if err != nil {
		log.Printf("[os][handler] remove-service failed os_id=%s item_id=%s err=%v", orderID, c.Param("lineID"), err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

func (h *WorkOrderHandler) SetStatus(c *gin.Context) {
	orderID := c.Param("id")

	var payload request.SetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetStatus(c.Request.Context(), orderID, entities.OrderStatus(payload.Status))
	if err != nil {
		log.Printf("[os][handler] set-status failed os_id=%s status=%s err=%v", orderID, payload.Status, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[os][handler] set-status success os_id=%s status=%s", orderID, updated.Status)

	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderInput),
		errors.Is(err, usecase.ErrInvalidLineInput),
		errors.Is(err, usecase.ErrLineVariantAmbiguous),
		errors.Is(err, workflow.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Mechanic not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Insufficient stock for requested quantity", http.StatusConflict)
	case errors.Is(err, workflow.ErrTransitionNotAllowed):
		return pkg.NewDomainErrorSimple("CONFLICT", "Status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
