package booking

import (
	"context"

	"pawspace/internal/repository"
)

// BookingStore is the slice of the storage layer the orchestrator
// needs: a transaction for the write path and the history read.
type BookingStore interface {
	Begin(ctx context.Context) (repository.Tx, error)
	ListByOwnerUser(ctx context.Context, userID int64, limit, offset int) ([]repository.OwnerBookingRow, error)
}
