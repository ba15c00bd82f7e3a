package availability

import (
	"errors"
	"net/http"
	"time"

	"pawspace/internal/domain"
	"pawspace/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/availability", h.Check)
}

// Check expects room_size plus start/end as RFC 3339 instants or plain
// dates (a plain date means midnight, so a date range is half-open).
func (h *Handler) Check(c *gin.Context) {
	size := domain.RoomSize(c.Query("room_size"))

	start, err := parseInstant(c.Query("start"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid start")
		return
	}
	end, err := parseInstant(c.Query("end"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid end")
		return
	}

	estimate, err := h.service.Check(c.Request.Context(), CheckRequest{RoomSize: size, Start: start, End: end})
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid availability request")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "AVAILABILITY_UNKNOWN", ErrCheckFailed.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"availability": estimate})
}

func parseInstant(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
