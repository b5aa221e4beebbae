package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/service"
	"github.com/stayloop/stayloop/internal/types"
)

type InvoiceHandler struct {
	service service.InvoiceService
	log     *logger.Logger
}

func NewInvoiceHandler(service service.InvoiceService, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{service: service, log: log}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	inv, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.InvoiceResponse{Invoice: inv})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.InvoiceResponse{Invoice: inv})
}

func (h *InvoiceHandler) List(c *gin.Context) {
	var filter types.QueryFilter
	if !bindQuery(c, &filter) {
		return
	}
	result, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.NewListResponse(result.Items, result.Total, filter.Pagination()))
}

func (h *InvoiceHandler) Finalize(c *gin.Context) {
	inv, err := h.service.Finalize(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.InvoiceResponse{Invoice: inv})
}

func (h *InvoiceHandler) Void(c *gin.Context) {
	inv, err := h.service.Void(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.InvoiceResponse{Invoice: inv})
}

func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	inv, err := h.service.RecordPayment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.InvoiceResponse{Invoice: inv})
}
