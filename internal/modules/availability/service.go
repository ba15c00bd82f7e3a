package availability

import (
	"context"
	"fmt"
	"time"

	"pawspace/internal/domain"

	"github.com/rs/zerolog"
)

type CheckRequest struct {
	RoomSize domain.RoomSize
	Start    time.Time
	End      time.Time
}

type Service struct {
	occupancy OccupancyReader
	rooms     RoomInventory
	log       zerolog.Logger
}

func NewService(occupancy OccupancyReader, rooms RoomInventory, log zerolog.Logger) *Service {
	return &Service{occupancy: occupancy, rooms: rooms, log: log}
}

// Check estimates remaining capacity for a size class over the
// half-open window [start, end). The figure is advisory: it reads only
// committed confirmed bookings, and two racing submissions can both
// see a free room. The database constraint is the real gate, so a
// failed check must surface as unknown availability, never as
// "available".
func (s *Service) Check(ctx context.Context, req CheckRequest) (*domain.AvailabilityEstimate, error) {
	if req.RoomSize == "" || !req.End.After(req.Start) {
		return nil, ErrValidation
	}

	total, err := s.rooms.CountBySize(ctx, req.RoomSize)
	if err != nil {
		s.log.Error().Err(err).Str("room_size", string(req.RoomSize)).Msg("room inventory lookup failed")
		return nil, fmt.Errorf("%w: %v", ErrCheckFailed, err)
	}

	occupied, err := s.occupancy.CountConfirmedOverlapping(ctx, req.RoomSize, req.Start, req.End)
	if err != nil {
		s.log.Error().Err(err).Str("room_size", string(req.RoomSize)).Msg("occupancy lookup failed")
		return nil, fmt.Errorf("%w: %v", ErrCheckFailed, err)
	}

	available := total - occupied
	if available < 0 {
		available = 0
	}

	return &domain.AvailabilityEstimate{
		RoomSize:       req.RoomSize,
		TotalRooms:     total,
		OccupiedCount:  occupied,
		AvailableRooms: available,
		Source:         domain.SourceEstimate,
	}, nil
}
