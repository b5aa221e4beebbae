package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stayloop/stayloop/internal/api/dto"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/service"
	"github.com/stayloop/stayloop/internal/types"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{service: service, log: log}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.BookingResponse{Booking: b})
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.BookingResponse{Booking: b})
}

func (h *BookingHandler) List(c *gin.Context) {
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

func (h *BookingHandler) Confirm(c *gin.Context) {
	b, err := h.service.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.BookingResponse{Booking: b})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	b, err := h.service.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.BookingResponse{Booking: b})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	b, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.BookingResponse{Booking: b})
}

func (h *BookingHandler) Delete(c *gin.Context) {
	n, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// Revenue reports paid revenue for an accommodation over [from, to).
func (h *BookingHandler) Revenue(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("from must be an RFC3339 timestamp").
			Mark(ierr.ErrValidation))
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("to must be an RFC3339 timestamp").
			Mark(ierr.ErrValidation))
		return
	}

	accommodationID := c.Param("id")
	total, err := h.service.Revenue(c.Request.Context(), accommodationID, from, to)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.BookingRevenueResponse{
		AccommodationID: accommodationID,
		From:            from,
		To:              to,
		Total:           total,
	})
}
