package handlers

import (
	"errors"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

type MechanicHandler struct {
	usecase usecase.IMechanicUseCase
}

func NewMechanicHandler(uc usecase.IMechanicUseCase) *MechanicHandler {
	return &MechanicHandler{usecase: uc}
}

func (h *MechanicHandler) Create(c *gin.Context) {
	var payload request.MechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid mechanic payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMechanic(created))
}

func (h *MechanicHandler) List(c *gin.Context) {
	mechanics, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMechanics(mechanics))
}

func mapMechanicError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMechanicInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Mechanic not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
