package availability

import (
	"context"
	"time"

	"pawspace/internal/domain"
)

// OccupancyReader counts confirmed stays overlapping a window.
type OccupancyReader interface {
	CountConfirmedOverlapping(ctx context.Context, size domain.RoomSize, start, end time.Time) (int, error)
}

// RoomInventory is the static room count per size class.
type RoomInventory interface {
	CountBySize(ctx context.Context, size domain.RoomSize) (int, error)
}
