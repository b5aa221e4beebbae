package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/service"
	"github.com/stayloop/stayloop/internal/types"
)

type DestinationHandler struct {
	service service.DestinationService
	log     *logger.Logger
}

func NewDestinationHandler(service service.DestinationService, log *logger.Logger) *DestinationHandler {
	return &DestinationHandler{service: service, log: log}
}

func (h *DestinationHandler) Create(c *gin.Context) {
	var req dto.CreateDestinationRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.DestinationResponse{Destination: d})
}

func (h *DestinationHandler) Get(c *gin.Context) {
	d, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.DestinationResponse{Destination: d})
}

func (h *DestinationHandler) List(c *gin.Context) {
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

func (h *DestinationHandler) Update(c *gin.Context) {
	var req dto.UpdateDestinationRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.DestinationResponse{Destination: d})
}

func (h *DestinationHandler) Delete(c *gin.Context) {
	n, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

func (h *DestinationHandler) Restore(c *gin.Context) {
	n, err := h.service.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restored": n})
}
