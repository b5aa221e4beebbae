package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/service"
)

type TagHandler struct {
	service service.TagService
	log     *logger.Logger
}

func NewTagHandler(service service.TagService, log *logger.Logger) *TagHandler {
	return &TagHandler{service: service, log: log}
}

func (h *TagHandler) Create(c *gin.Context) {
	var req dto.CreateTagRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.TagResponse{Tag: t})
}

func (h *TagHandler) Get(c *gin.Context) {
	t, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.TagResponse{Tag: t})
}

func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": tags})
}

func (h *TagHandler) Delete(c *gin.Context) {
	n, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
