package booking

import (
	"pawspace/internal/domain"
)

// CreateBookingRequest is the submission payload. TotalAmounts and
// DiscountsApplied are positional per pet; a missing discount entry
// defaults to zero.
type CreateBookingRequest struct {
	OwnerDetails     domain.OwnerDetails `json:"owner_details" binding:"required"`
	Pets             []domain.Pet        `json:"pets" binding:"required"`
	TotalAmounts     []float64           `json:"total_amounts" binding:"required"`
	DiscountsApplied []float64           `json:"discounts_applied"`
	ConfirmedInfo    bool                `json:"confirmed_info"`
}
