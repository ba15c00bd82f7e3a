package booking

import (
	"context"
	"errors"
	"time"

	"pawspace/internal/domain"
	"pawspace/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

type Service struct {
	store   BookingStore
	history *historyCache
	log     zerolog.Logger
}

func NewService(store BookingStore, log zerolog.Logger) *Service {
	return &Service{
		store:   store,
		history: newHistoryCache(),
		log:     log,
	}
}

// CreateBooking runs one submission as a single unit of work: resolve
// the owner, insert the booking row, then per pet (in array order) the
// pet row, its boarding or grooming sub-row, and any meal rows. Any
// fault rolls the whole unit back before returning, so no partial
// rows survive a failure. Validation is the caller's gate; this method
// assumes the submission already passed it.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) domain.BookingResult {
	if userID == 0 {
		return failure(ErrUnauthenticated.Error())
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("could not start booking transaction")
		return failure("could not start booking transaction")
	}

	ownerID, err := tx.ResolveOwner(req.OwnerDetails, userID)
	if err != nil {
		return s.abort(tx, "failed to save owner details", err)
	}

	start, end, err := serviceDateSpan(req.Pets)
	if err != nil {
		return s.abort(tx, "invalid service dates", err)
	}

	b := domain.Booking{
		PublicID:         uuid.NewString(),
		OwnerID:          ownerID,
		ServiceDateStart: start,
		ServiceDateEnd:   end,
		Status:           domain.BookingPending,
		TotalAmount:      sum(req.TotalAmounts),
		DiscountApplied:  sum(req.DiscountsApplied),
		ServiceSummary:   domain.SummarizeServices(req.Pets),
	}
	if err := tx.InsertBooking(&b); err != nil {
		return s.abort(tx, "failed to save booking", err)
	}

	for i, pet := range req.Pets {
		petID, err := tx.InsertPet(b.ID, pet, amountAt(req.TotalAmounts, i), amountAt(req.DiscountsApplied, i))
		if err != nil {
			return s.abort(tx, "failed to save pet details", err)
		}

		switch pet.ServiceType {
		case domain.ServiceBoarding:
			boardingID, err := tx.InsertBoardingPet(b.ID, petID, *pet.Boarding)
			if err != nil {
				return s.abort(tx, "failed to save boarding details", err)
			}
			if err := insertMeals(tx, boardingID, pet.Boarding.Meals); err != nil {
				return s.abort(tx, "failed to save meal instructions", err)
			}
		case domain.ServiceGrooming:
			if err := tx.InsertGroomingPet(b.ID, petID, *pet.Grooming); err != nil {
				return s.abort(tx, "failed to save grooming details", err)
			}
		default:
			return s.abort(tx, "unknown service type", errors.New("pet without a service type"))
		}
	}

	if err := tx.Commit(); err != nil {
		s.log.Error().Err(err).Str("booking_id", b.PublicID).Msg("booking commit failed")
		return failure("failed to finalize booking")
	}

	s.history.invalidate(userID)
	s.log.Info().
		Str("booking_id", b.PublicID).
		Int("pets", len(req.Pets)).
		Float64("total", b.TotalAmount).
		Msg("booking created")

	return domain.BookingResult{Success: true, BookingID: b.PublicID}
}

// ListOwnerBookings serves the history listing through the cache.
func (s *Service) ListOwnerBookings(ctx context.Context, userID int64) ([]repository.OwnerBookingRow, error) {
	if rows, ok := s.history.get(userID); ok {
		return rows, nil
	}

	rows, err := s.store.ListByOwnerUser(ctx, userID, 0, 0)
	if err != nil {
		return nil, err
	}
	s.history.set(userID, rows)
	return rows, nil
}

// abort rolls the unit of work back and shapes the failure result. A
// storage constraint hit (the authoritative no-double-booking rule) is
// reported as a room conflict rather than a generic write failure.
func (s *Service) abort(tx repository.Tx, msg string, cause error) domain.BookingResult {
	if rbErr := tx.Rollback(); rbErr != nil {
		s.log.Error().Err(rbErr).Msg("booking rollback failed")
	}

	if isRoomConflict(cause) {
		s.log.Warn().Err(cause).Msg("booking lost the room to a concurrent submission")
		return failure(ErrRoomConflict.Error())
	}

	s.log.Error().Err(cause).Msg(msg)
	return failure(msg)
}

func insertMeals(tx repository.Tx, boardingID int64, meals domain.MealInstructions) error {
	slots := []struct {
		name string
		meal domain.MealSlot
	}{
		{"breakfast", meals.Breakfast},
		{"lunch", meals.Lunch},
		{"dinner", meals.Dinner},
	}
	for _, s := range slots {
		if s.meal.Time == "" && s.meal.Food == "" && s.meal.Notes == "" {
			continue
		}
		if err := tx.InsertMealInstruction(boardingID, s.name, s.meal); err != nil {
			return err
		}
	}
	return nil
}

// serviceDateSpan finds the min and max of each pet's relevant service
// date: check-in for boarding, appointment date for grooming.
func serviceDateSpan(pets []domain.Pet) (time.Time, time.Time, error) {
	var start, end time.Time
	for _, p := range pets {
		var raw string
		switch p.ServiceType {
		case domain.ServiceBoarding:
			if p.Boarding == nil {
				return start, end, errors.New("boarding pet without boarding details")
			}
			raw = p.Boarding.CheckInDate
		case domain.ServiceGrooming:
			if p.Grooming == nil {
				return start, end, errors.New("grooming pet without grooming details")
			}
			raw = p.Grooming.ServiceDate
		default:
			return start, end, errors.New("pet without a service type")
		}

		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return start, end, err
		}
		if start.IsZero() || d.Before(start) {
			start = d
		}
		if end.IsZero() || d.After(end) {
			end = d
		}
	}
	return start, end, nil
}

func isRoomConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// 23505 unique violation, 23P01 exclusion violation
	return pgErr.Code == "23505" || pgErr.Code == "23P01"
}

func amountAt(amounts []float64, i int) float64 {
	if i < len(amounts) {
		return amounts[i]
	}
	return 0
}

func sum(amounts []float64) float64 {
	var total float64
	for _, a := range amounts {
		total += a
	}
	return total
}

func failure(msg string) domain.BookingResult {
	return domain.BookingResult{Success: false, Error: msg}
}
