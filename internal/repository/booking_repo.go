package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pawspace/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type ownerModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        int64     `gorm:"column:user_id;index"`
	Name          string    `gorm:"column:name"`
	Email         string    `gorm:"column:email;index"`
	Address       string    `gorm:"column:address"`
	ContactNumber string    `gorm:"column:contact_number"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (ownerModel) TableName() string { return "owners" }

type bookingModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	PublicID         string    `gorm:"column:public_id;uniqueIndex"`
	OwnerID          int64     `gorm:"column:owner_id;index"`
	ServiceDateStart time.Time `gorm:"column:service_date_start"`
	ServiceDateEnd   time.Time `gorm:"column:service_date_end"`
	Status           string    `gorm:"column:status;index"`
	TotalAmount      float64   `gorm:"column:total_amount"`
	DiscountApplied  float64   `gorm:"column:discount_applied"`
	ServiceSummary   string    `gorm:"column:service_summary"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

type petModel struct {
	ID                    int64     `gorm:"column:id;primaryKey"`
	BookingID             int64     `gorm:"column:booking_id;index"`
	Name                  string    `gorm:"column:name"`
	Age                   string    `gorm:"column:age"`
	PetType               string    `gorm:"column:pet_type"`
	Breed                 string    `gorm:"column:breed"`
	Vaccinated            string    `gorm:"column:vaccinated"`
	Size                  string    `gorm:"column:size"`
	VitaminsOrMedications *string   `gorm:"column:vitamins_or_medications"`
	Allergies             *string   `gorm:"column:allergies"`
	SpecialRequests       *string   `gorm:"column:special_requests"`
	ServiceType           string    `gorm:"column:service_type"`
	TotalAmount           float64   `gorm:"column:total_amount"`
	DiscountApplied       float64   `gorm:"column:discount_applied"`
	CreatedAt             time.Time `gorm:"column:created_at"`
}

func (petModel) TableName() string { return "pets" }

type boardingPetModel struct {
	ID                    int64     `gorm:"column:id;primaryKey"`
	BookingID             int64     `gorm:"column:booking_id;index"`
	PetID                 int64     `gorm:"column:pet_id;index"`
	RoomID                *int64    `gorm:"column:room_id;index"`
	RoomSize              string    `gorm:"column:room_size"`
	BoardingType          string    `gorm:"column:boarding_type"`
	CheckIn               time.Time `gorm:"column:check_in"`
	CheckOut              time.Time `gorm:"column:check_out"`
	SpecialFeedingRequest *string   `gorm:"column:special_feeding_request"`
	CreatedAt             time.Time `gorm:"column:created_at"`
}

func (boardingPetModel) TableName() string { return "boarding_pets" }

type groomingPetModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	BookingID      int64     `gorm:"column:booking_id;index"`
	PetID          int64     `gorm:"column:pet_id;index"`
	ServiceVariant string    `gorm:"column:service_variant"`
	ServiceAt      time.Time `gorm:"column:service_at"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (groomingPetModel) TableName() string { return "grooming_pets" }

type mealInstructionModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	BoardingPetID int64     `gorm:"column:boarding_pet_id;index"`
	Slot          string    `gorm:"column:slot"`
	Time          string    `gorm:"column:time"`
	Food          string    `gorm:"column:food"`
	Notes         *string   `gorm:"column:notes"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (mealInstructionModel) TableName() string { return "meal_instructions" }

// Tx is one booking submission's unit of work. The orchestrator calls
// the inserts strictly in sequence and finishes with exactly one of
// Commit or Rollback.
type Tx interface {
	ResolveOwner(owner domain.OwnerDetails, userID int64) (int64, error)
	InsertBooking(b *domain.Booking) error
	InsertPet(bookingID int64, p domain.Pet, total, discount float64) (int64, error)
	InsertBoardingPet(bookingID, petID int64, d domain.BoardingDetails) (int64, error)
	InsertGroomingPet(bookingID, petID int64, d domain.GroomingDetails) error
	InsertMealInstruction(boardingPetID int64, slot string, m domain.MealSlot) error
	Commit() error
	Rollback() error
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Begin opens the unit of work for one submission.
func (r *BookingRepository) Begin(ctx context.Context) (Tx, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &bookingTx{tx: tx}, nil
}

type bookingTx struct {
	tx *gorm.DB
}

// ResolveOwner finds the owner by ID, then by email, and inserts a new
// row when neither matches. Owner rows are immutable once persisted;
// an existing match is returned as-is.
func (t *bookingTx) ResolveOwner(owner domain.OwnerDetails, userID int64) (int64, error) {
	var m ownerModel

	if owner.ID > 0 {
		if err := t.tx.First(&m, owner.ID).Error; err != nil {
			return 0, fmt.Errorf("look up owner %d: %w", owner.ID, err)
		}
		return m.ID, nil
	}

	email := strings.ToLower(strings.TrimSpace(owner.Email))
	err := t.tx.Where("LOWER(email) = ?", email).First(&m).Error
	if err == nil {
		return m.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("look up owner by email: %w", err)
	}

	m = ownerModel{
		UserID:        userID,
		Name:          strings.TrimSpace(owner.Name),
		Email:         email,
		Address:       strings.TrimSpace(owner.Address),
		ContactNumber: strings.TrimSpace(owner.ContactNumber),
	}
	if err := t.tx.Create(&m).Error; err != nil {
		return 0, fmt.Errorf("insert owner: %w", err)
	}
	return m.ID, nil
}

func (t *bookingTx) InsertBooking(b *domain.Booking) error {
	m := bookingModel{
		PublicID:         b.PublicID,
		OwnerID:          b.OwnerID,
		ServiceDateStart: b.ServiceDateStart,
		ServiceDateEnd:   b.ServiceDateEnd,
		Status:           string(b.Status),
		TotalAmount:      b.TotalAmount,
		DiscountApplied:  b.DiscountApplied,
		ServiceSummary:   string(b.ServiceSummary),
	}
	if err := t.tx.Create(&m).Error; err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	b.ID = m.ID
	b.CreatedAt = m.CreatedAt
	b.UpdatedAt = m.UpdatedAt
	return nil
}

func (t *bookingTx) InsertPet(bookingID int64, p domain.Pet, total, discount float64) (int64, error) {
	m := petModel{
		BookingID:             bookingID,
		Name:                  p.Name,
		Age:                   p.Age,
		PetType:               string(p.PetType),
		Breed:                 p.Breed,
		Vaccinated:            string(p.Vaccinated),
		Size:                  string(p.Size),
		VitaminsOrMedications: optional(p.VitaminsOrMedications),
		Allergies:             optional(p.Allergies),
		SpecialRequests:       optional(p.SpecialRequests),
		ServiceType:           string(p.ServiceType),
		TotalAmount:           total,
		DiscountApplied:       discount,
	}
	if err := t.tx.Create(&m).Error; err != nil {
		return 0, fmt.Errorf("insert pet %q: %w", p.Name, err)
	}
	return m.ID, nil
}

func (t *bookingTx) InsertBoardingPet(bookingID, petID int64, d domain.BoardingDetails) (int64, error) {
	checkIn, err := combineDateTime(d.CheckInDate, d.CheckInTime)
	if err != nil {
		return 0, fmt.Errorf("boarding check-in: %w", err)
	}
	checkOut, err := combineDateTime(d.CheckOutDate, d.CheckOutTime)
	if err != nil {
		return 0, fmt.Errorf("boarding check-out: %w", err)
	}

	m := boardingPetModel{
		BookingID:             bookingID,
		PetID:                 petID,
		RoomSize:              string(d.RoomSize),
		BoardingType:          string(d.BoardingType),
		CheckIn:               checkIn,
		CheckOut:              checkOut,
		SpecialFeedingRequest: optional(d.SpecialFeedingRequest),
	}
	if err := t.tx.Create(&m).Error; err != nil {
		return 0, fmt.Errorf("insert boarding details: %w", err)
	}
	return m.ID, nil
}

func (t *bookingTx) InsertGroomingPet(bookingID, petID int64, d domain.GroomingDetails) error {
	at, err := combineDateTime(d.ServiceDate, d.ServiceTime)
	if err != nil {
		return fmt.Errorf("grooming schedule: %w", err)
	}

	m := groomingPetModel{
		BookingID:      bookingID,
		PetID:          petID,
		ServiceVariant: string(d.ServiceVariant),
		ServiceAt:      at,
	}
	if err := t.tx.Create(&m).Error; err != nil {
		return fmt.Errorf("insert grooming details: %w", err)
	}
	return nil
}

func (t *bookingTx) InsertMealInstruction(boardingPetID int64, slot string, meal domain.MealSlot) error {
	m := mealInstructionModel{
		BoardingPetID: boardingPetID,
		Slot:          slot,
		Time:          meal.Time,
		Food:          meal.Food,
		Notes:         optional(meal.Notes),
	}
	if err := t.tx.Create(&m).Error; err != nil {
		return fmt.Errorf("insert %s meal instruction: %w", slot, err)
	}
	return nil
}

func (t *bookingTx) Commit() error {
	return t.tx.Commit().Error
}

func (t *bookingTx) Rollback() error {
	return t.tx.Rollback().Error
}

// CountConfirmedOverlapping counts distinct rooms of the given size
// class held by confirmed bookings whose stay overlaps [start, end).
// Half-open comparison, so back-to-back stays sharing a boundary
// instant do not collide. Stays without an assigned room each hold
// one room of their size class.
func (r *BookingRepository) CountConfirmedOverlapping(ctx context.Context, size domain.RoomSize, start, end time.Time) (int, error) {
	var cnt int64
	q := `
SELECT COUNT(*) FROM (
  SELECT DISTINCT COALESCE(bp.room_id, -bp.id) AS held_room
  FROM boarding_pets bp
  JOIN bookings b ON b.id = bp.booking_id
  WHERE bp.room_size = ?
    AND b.status = 'confirmed'
    AND bp.check_in < ?
    AND bp.check_out > ?
) held
`
	tx := r.db.WithContext(ctx).Raw(q, string(size), end, start).Scan(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return int(cnt), nil
}

// OwnerBookingRow is one line of the booking-history listing.
type OwnerBookingRow struct {
	PublicID         string    `gorm:"column:public_id" json:"booking_id"`
	Status           string    `gorm:"column:status" json:"status"`
	ServiceDateStart time.Time `gorm:"column:service_date_start" json:"service_date_start"`
	ServiceDateEnd   time.Time `gorm:"column:service_date_end" json:"service_date_end"`
	TotalAmount      float64   `gorm:"column:total_amount" json:"total_amount"`
	ServiceSummary   string    `gorm:"column:service_summary" json:"service_summary"`
	PetCount         int       `gorm:"column:pet_count" json:"pet_count"`
}

func (r *BookingRepository) ListByOwnerUser(ctx context.Context, userID int64, limit, offset int) ([]OwnerBookingRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows []OwnerBookingRow
	q := `
SELECT
  b.public_id,
  b.status,
  b.service_date_start,
  b.service_date_end,
  b.total_amount,
  b.service_summary,
  (SELECT COUNT(1) FROM pets p WHERE p.booking_id = b.id) AS pet_count
FROM bookings b
JOIN owners o ON o.id = b.owner_id
WHERE o.user_id = ?
ORDER BY b.created_at DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, userID, limit, offset).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// UpdateStatus moves a booking along pending→confirmed→completed or
// to cancelled. Administrative surface; bookings are never deleted.
func (r *BookingRepository) UpdateStatus(ctx context.Context, publicID string, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("public_id = ?", publicID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func combineDateTime(date, hhmm string) (time.Time, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", date)
	}
	t, err := time.Parse(timeLayout, hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q", hhmm)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// isDuplicateConstraint lets Migrate be re-run against a database that
// already carries the exclusion constraint.
func isDuplicateConstraint(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42710"
}
