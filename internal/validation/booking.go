package validation

import (
	"fmt"

	"pawspace/internal/domain"
)

// ReviewData is the final-step snapshot of the form.
type ReviewData struct {
	OwnerDetails  domain.OwnerDetails `json:"owner_details"`
	Pets          []domain.Pet        `json:"pets"`
	ConfirmedInfo bool                `json:"confirmed_info"`
}

// BookingData adds the externally computed money figures. Totals are
// trusted for magnitude but sanity-checked for sign so a caller cannot
// push a zero or negative amount into a write.
type BookingData struct {
	ReviewData
	TotalAmounts     []float64 `json:"total_amounts,omitempty"`
	DiscountsApplied []float64 `json:"discounts_applied,omitempty"`
}

// ValidateReviewStep aggregates field errors across the whole
// submission. Pet errors are keyed "pets[i].field" so the form can
// target the offending card.
func ValidateReviewStep(d ReviewData) map[string]string {
	errs := map[string]string{}

	if !d.ConfirmedInfo {
		errs["confirmation"] = "please confirm your details before submitting"
	}

	for field, msg := range ValidateCustomerDetails(d.OwnerDetails) {
		errs[field] = msg
	}

	for i, p := range d.Pets {
		for field, msg := range ValidatePetDetails(p) {
			errs[fmt.Sprintf("pets[%d].%s", i, field)] = msg
		}
		// Business hours are re-checked here on purpose: totals and
		// submissions can arrive from a different call path than the
		// live form, so the review gate cannot rely on the per-field
		// pass having happened.
		if p.ServiceType == domain.ServiceGrooming && p.Grooming != nil &&
			p.Grooming.ServiceTime != "" && !WithinBusinessHours(p.Grooming.ServiceTime) {
			errs[fmt.Sprintf("pets[%d].service_time", i)] = "grooming is available between 09:00 and 17:00"
		}
	}

	return errs
}

// ValidateBooking is the last pure gate before the transactional
// write. It returns ok=false with the combined error map on any
// problem; the orchestrator must never be called when ok is false.
func ValidateBooking(d BookingData) (bool, map[string]string) {
	errs := ValidateReviewStep(d.ReviewData)

	if len(d.Pets) == 0 {
		errs["pets"] = "at least one pet is required"
	}

	for _, total := range d.TotalAmounts {
		if total <= 0 {
			errs["pricing"] = "booking total must be greater than zero"
			break
		}
	}

	return len(errs) == 0, errs
}
