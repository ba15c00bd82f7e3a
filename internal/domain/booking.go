package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// ServiceSummary labels which service kinds a booking batch contains.
// A batch mixing boarding and grooming pets is recorded as "mixed"
// rather than taking the first pet's type.
type ServiceSummary string

const (
	SummaryBoarding ServiceSummary = "boarding"
	SummaryGrooming ServiceSummary = "grooming"
	SummaryMixed    ServiceSummary = "mixed"
)

// SummarizeServices derives the batch-level service label from the
// submitted pets.
func SummarizeServices(pets []Pet) ServiceSummary {
	var boarding, grooming bool
	for _, p := range pets {
		switch p.ServiceType {
		case ServiceBoarding:
			boarding = true
		case ServiceGrooming:
			grooming = true
		}
	}
	switch {
	case boarding && grooming:
		return SummaryMixed
	case grooming:
		return SummaryGrooming
	default:
		return SummaryBoarding
	}
}

// Booking is the persisted aggregate for one submission batch.
// DiscountApplied is a percentage figure (20 means 20%), summed over
// the batch the same way TotalAmount is.
type Booking struct {
	ID               int64          `json:"id"`
	PublicID         string         `json:"public_id"`
	OwnerID          int64          `json:"owner_id"`
	ServiceDateStart time.Time      `json:"service_date_start"`
	ServiceDateEnd   time.Time      `json:"service_date_end"`
	Status           BookingStatus  `json:"status"`
	TotalAmount      float64        `json:"total_amount"`
	DiscountApplied  float64        `json:"discount_applied"`
	ServiceSummary   ServiceSummary `json:"service_summary"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// BookingResult is what the submission entry point hands back to the
// form. Error is a human-readable message; field-level problems never
// reach this type, they are caught by validation beforehand.
type BookingResult struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id,omitempty"`
	Error     string `json:"error,omitempty"`
}
