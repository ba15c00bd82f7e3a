package repository

import "gorm.io/gorm"

// Migrate creates the schema. On PostgreSQL it also installs the
// exclusion constraint that keeps two assigned boarding stays out of
// the same room for overlapping intervals — the authoritative
// admission gate; the in-app availability estimate is advisory only.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&ownerModel{},
		&roomModel{},
		&bookingModel{},
		&petModel{},
		&boardingPetModel{},
		&groomingPetModel{},
		&mealInstructionModel{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
			return err
		}
		err := db.Exec(`
ALTER TABLE boarding_pets
  ADD CONSTRAINT idx_no_room_overlap
  EXCLUDE USING gist (
    room_id WITH =,
    tstzrange(check_in, check_out, '[)') WITH &&
  )
  WHERE (room_id IS NOT NULL)
`).Error
		if err != nil && !isDuplicateConstraint(err) {
			return err
		}
	}

	return nil
}
