package booking

import (
	"net/http"

	"pawspace/internal/pkg/response"
	"pawspace/internal/validation"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	// Field-level gate; the orchestrator is never reached with an
	// invalid submission.
	ok, errs := validation.ValidateBooking(validation.BookingData{
		ReviewData: validation.ReviewData{
			OwnerDetails:  req.OwnerDetails,
			Pets:          req.Pets,
			ConfirmedInfo: req.ConfirmedInfo,
		},
		TotalAmounts:     req.TotalAmounts,
		DiscountsApplied: req.DiscountsApplied,
	})
	if !ok {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking details are invalid", errs)
		return
	}

	result := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if !result.Success {
		switch result.Error {
		case ErrUnauthenticated.Error():
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", result.Error)
		case ErrRoomConflict.Error():
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", result.Error)
		default:
			response.Error(c, http.StatusInternalServerError, "BOOKING_FAILED", result.Error)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": result})
}

func (h *Handler) ListBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	rows, err := h.service.ListOwnerBookings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}
