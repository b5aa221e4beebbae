package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/service"
	"github.com/stayloop/stayloop/internal/types"
)

type AccommodationHandler struct {
	service service.AccommodationService
	log     *logger.Logger
}

func NewAccommodationHandler(service service.AccommodationService, log *logger.Logger) *AccommodationHandler {
	return &AccommodationHandler{service: service, log: log}
}

func (h *AccommodationHandler) Create(c *gin.Context) {
	var req dto.CreateAccommodationRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.AccommodationResponse{Accommodation: a})
}

// Get returns the listing; an `expand` query parameter hydrates relations,
// e.g. ?expand=destination,tags.
func (h *AccommodationHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	expand := c.Query("expand")
	if expand != "" {
		a, err := h.service.GetWithRelations(ctx, id, strings.Split(expand, ","))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, dto.AccommodationResponse{Accommodation: a})
		return
	}

	a, err := h.service.Get(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.AccommodationResponse{Accommodation: a})
}

func (h *AccommodationHandler) List(c *gin.Context) {
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

func (h *AccommodationHandler) Search(c *gin.Context) {
	var req dto.SearchAccommodationsRequest
	if !bindQuery(c, &req) {
		return
	}
	result, err := h.service.Search(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.NewListResponse(result.Items, result.Total, req.QueryFilter.Pagination()))
}

func (h *AccommodationHandler) Update(c *gin.Context) {
	var req dto.UpdateAccommodationRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.AccommodationResponse{Accommodation: a})
}

func (h *AccommodationHandler) Delete(c *gin.Context) {
	n, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

func (h *AccommodationHandler) Restore(c *gin.Context) {
	n, err := h.service.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restored": n})
}

func (h *AccommodationHandler) ReplaceTags(c *gin.Context) {
	var req dto.ReplaceAccommodationTagsRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}
	if err := h.service.ReplaceTags(c.Request.Context(), c.Param("id"), req.TagIDs); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
