package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/service"
)

type CatalogHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

func NewCatalogHandler(service service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, log: log}
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.CreateCatalogRequest
	if !bindJSON(c, &req) {
		return
	}
	cat, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.CatalogResponse{Catalog: cat})
}

func (h *CatalogHandler) Get(c *gin.Context) {
	cat, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.CatalogResponse{Catalog: cat})
}

func (h *CatalogHandler) List(c *gin.Context) {
	catalogs, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": catalogs})
}

func (h *CatalogHandler) CalculatePrice(c *gin.Context) {
	var req dto.CalculatePriceRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.service.CalculatePrice(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	n, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
