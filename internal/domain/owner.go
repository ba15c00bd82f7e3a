package domain

// OwnerDetails is the customer record a submission is made under.
// ID is zero for owners that have not been persisted yet; the booking
// transaction resolves the row by ID, then by email, before inserting.
type OwnerDetails struct {
	ID            int64  `json:"id,omitempty"`
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required"`
}
