package domain

type PetType string

const (
	PetDog PetType = "dog"
	PetCat PetType = "cat"
)

type PetSize string

const (
	SizeSmall  PetSize = "small"
	SizeMedium PetSize = "medium"
	SizeLarge  PetSize = "large"
)

type VaccinationStatus string

const (
	VaccinatedYes     VaccinationStatus = "yes"
	VaccinatedNo      VaccinationStatus = "no"
	VaccinatedUnknown VaccinationStatus = "unknown"
)

type ServiceType string

const (
	ServiceBoarding ServiceType = "boarding"
	ServiceGrooming ServiceType = "grooming"
)

type BoardingType string

const (
	BoardingDay       BoardingType = "day"
	BoardingOvernight BoardingType = "overnight"
)

type ServiceVariant string

const (
	VariantBasic  ServiceVariant = "basic"
	VariantDeluxe ServiceVariant = "deluxe"
	VariantCatSpa ServiceVariant = "cat_spa"
)

// Pet is a discriminated union keyed by ServiceType: exactly one of
// Boarding or Grooming is non-nil for a completed pet. Consumers switch
// on ServiceType rather than probing the pointers.
type Pet struct {
	Name                  string            `json:"name"`
	Age                   string            `json:"age"`
	PetType               PetType           `json:"pet_type"`
	Breed                 string            `json:"breed"`
	Vaccinated            VaccinationStatus `json:"vaccinated"`
	Size                  PetSize           `json:"size"`
	VitaminsOrMedications string            `json:"vitamins_or_medications,omitempty"`
	Allergies             string            `json:"allergies,omitempty"`
	SpecialRequests       string            `json:"special_requests,omitempty"`
	Completed             bool              `json:"completed"`

	ServiceType ServiceType      `json:"service_type"`
	Boarding    *BoardingDetails `json:"boarding,omitempty"`
	Grooming    *GroomingDetails `json:"grooming,omitempty"`
}

// MealSlot is one named feeding entry. Time and Food are set together
// or not at all; a fully blank slot is simply skipped at persist time.
type MealSlot struct {
	Time  string `json:"time,omitempty"`
	Food  string `json:"food,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type MealInstructions struct {
	Breakfast MealSlot `json:"breakfast"`
	Lunch     MealSlot `json:"lunch"`
	Dinner    MealSlot `json:"dinner"`
}

// BoardingDetails carries the form's raw date ("2006-01-02") and time
// ("15:04") strings; parsing happens in validation and pricing so the
// same value can be re-checked without mutation.
type BoardingDetails struct {
	RoomSize              RoomSize         `json:"room_size"`
	BoardingType          BoardingType     `json:"boarding_type"`
	CheckInDate           string           `json:"check_in_date"`
	CheckInTime           string           `json:"check_in_time"`
	CheckOutDate          string           `json:"check_out_date"`
	CheckOutTime          string           `json:"check_out_time"`
	Meals                 MealInstructions `json:"meal_instructions"`
	SpecialFeedingRequest string           `json:"special_feeding_request,omitempty"`
}

type GroomingDetails struct {
	ServiceVariant ServiceVariant `json:"service_variant"`
	ServiceDate    string         `json:"service_date"`
	ServiceTime    string         `json:"service_time"`
}

// VariantAllowed reports whether a grooming variant can be booked for
// the given pet type. Cats take the fixed spa package only.
func VariantAllowed(pt PetType, v ServiceVariant) bool {
	switch pt {
	case PetDog:
		return v == VariantBasic || v == VariantDeluxe
	case PetCat:
		return v == VariantCatSpa
	}
	return false
}
