// Package validation holds the pure form-rule checks. Every function
// returns a field→message map; an empty map means valid, and a missing
// key means that field has no error. Nothing here touches I/O, so the
// form can re-run checks on every edit.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"pawspace/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	minNameLen    = 5
	maxNameLen    = 25
	minAddressLen = 10

	maxSpecialRequestsLen = 500

	businessOpen  = "09:00"
	businessClose = "17:00"
)

var (
	contactNumberRe = regexp.MustCompile(`^09\d{9}$`)
	petAgeRe        = regexp.MustCompile(`(?i)^\d+\s+(month|months|year|years)$`)
)

// ValidateCustomerDetails checks one owner record.
func ValidateCustomerDetails(o domain.OwnerDetails) map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(o.Name)
	switch {
	case name == "":
		errs["name"] = "name is required"
	case len(strings.Fields(name)) < 2:
		errs["name"] = "please enter your full name"
	case len(name) < minNameLen || len(name) > maxNameLen:
		errs["name"] = fmt.Sprintf("name must be %d-%d characters", minNameLen, maxNameLen)
	}

	address := strings.TrimSpace(o.Address)
	switch {
	case address == "":
		errs["address"] = "address is required"
	case len(address) < minAddressLen:
		errs["address"] = fmt.Sprintf("address must be at least %d characters", minAddressLen)
	}

	email := strings.TrimSpace(o.Email)
	switch {
	case email == "":
		errs["email"] = "email is required"
	case !plausibleEmail(email):
		errs["email"] = "enter a valid email address"
	}

	contact := strings.TrimSpace(o.ContactNumber)
	switch {
	case contact == "":
		errs["contact_number"] = "contact number is required"
	case !contactNumberRe.MatchString(contact):
		errs["contact_number"] = "enter a valid mobile number (09XXXXXXXXX)"
	}

	return errs
}

// plausibleEmail wants exactly one @ with non-empty halves and a
// domain of at least two segments of two chars each.
func plausibleEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	segments := strings.Split(parts[1], ".")
	if len(segments) < 2 {
		return false
	}
	for _, seg := range segments {
		if len(seg) < 2 {
			return false
		}
	}
	return true
}

// ValidatePetDetails checks the shared pet fields plus the rules for
// the pet's declared service type.
func ValidatePetDetails(p domain.Pet) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(p.Name) == "" {
		errs["name"] = "pet name is required"
	}
	if strings.TrimSpace(p.Breed) == "" {
		errs["breed"] = "breed is required"
	}
	if p.Vaccinated == "" {
		errs["vaccinated"] = "vaccination status is required"
	}
	if p.Size == "" {
		errs["size"] = "size is required"
	}

	age := strings.TrimSpace(p.Age)
	switch {
	case age == "":
		errs["age"] = "age is required"
	case !petAgeRe.MatchString(age):
		errs["age"] = `age must look like "2 years" or "8 months"`
	}

	if len(p.SpecialRequests) > maxSpecialRequestsLen {
		errs["special_requests"] = fmt.Sprintf("special requests must be at most %d characters", maxSpecialRequestsLen)
	}

	switch p.ServiceType {
	case domain.ServiceBoarding:
		if p.Boarding == nil {
			errs["service_type"] = "boarding details are required"
			break
		}
		validateBoarding(p, *p.Boarding, errs)
	case domain.ServiceGrooming:
		if p.Grooming == nil {
			errs["service_type"] = "grooming details are required"
			break
		}
		validateGrooming(p, *p.Grooming, errs)
	default:
		errs["service_type"] = "service type is required"
	}

	return errs
}

func validateBoarding(p domain.Pet, b domain.BoardingDetails, errs map[string]string) {
	if b.RoomSize == "" {
		errs["room_size"] = "room size is required"
	} else if p.Size != "" && !domain.RoomFits(p.Size, b.RoomSize) {
		errs["room_size"] = "selected room is too small for this pet"
	}

	if b.CheckInDate == "" {
		errs["check_in_date"] = "check-in date is required"
	}
	if b.CheckInTime == "" {
		errs["check_in_time"] = "check-in time is required"
	}
	if b.CheckOutDate == "" {
		errs["check_out_date"] = "check-out date is required"
	}
	if b.CheckOutTime == "" {
		errs["check_out_time"] = "check-out time is required"
	}

	if b.CheckInDate != "" && b.CheckOutDate != "" {
		switch b.BoardingType {
		case domain.BoardingDay:
			if b.CheckInDate != b.CheckOutDate {
				errs["check_out_date"] = "day boarding must end on the same day"
			} else if b.CheckInTime != "" && b.CheckOutTime != "" && !timeAfter(b.CheckOutTime, b.CheckInTime) {
				errs["check_out_time"] = "check-out time must be after check-in time"
			}
		case domain.BoardingOvernight:
			if b.CheckInDate == b.CheckOutDate {
				errs["check_out_date"] = "overnight boarding must end on a different day"
			}
		default:
			errs["boarding_type"] = "boarding type is required"
		}
	}

	validateMealSlot("breakfast", b.Meals.Breakfast, errs)
	validateMealSlot("lunch", b.Meals.Lunch, errs)
	validateMealSlot("dinner", b.Meals.Dinner, errs)
}

// A meal slot may be left entirely blank, but a time without food or
// food without a time is rejected.
func validateMealSlot(slot string, m domain.MealSlot, errs map[string]string) {
	hasTime := strings.TrimSpace(m.Time) != ""
	hasFood := strings.TrimSpace(m.Food) != ""
	if hasTime != hasFood {
		errs["meal_instructions."+slot] = "meal time and food must be set together"
	}
}

func validateGrooming(p domain.Pet, g domain.GroomingDetails, errs map[string]string) {
	if g.ServiceVariant == "" {
		errs["service_variant"] = "service package is required"
	} else if p.PetType != "" && !domain.VariantAllowed(p.PetType, g.ServiceVariant) {
		errs["service_variant"] = fmt.Sprintf("package %q is not offered for %ss", g.ServiceVariant, p.PetType)
	}

	if g.ServiceDate == "" {
		errs["service_date"] = "service date is required"
	}

	switch {
	case g.ServiceTime == "":
		errs["service_time"] = "service time is required"
	case !WithinBusinessHours(g.ServiceTime):
		errs["service_time"] = "grooming is available between 09:00 and 17:00"
	}
}

// WithinBusinessHours reports whether an HH:mm time falls inside
// grooming hours, bounds included.
func WithinBusinessHours(hhmm string) bool {
	t, err := time.Parse(timeLayout, hhmm)
	if err != nil {
		return false
	}
	open, _ := time.Parse(timeLayout, businessOpen)
	close, _ := time.Parse(timeLayout, businessClose)
	return !t.Before(open) && !t.After(close)
}

func timeAfter(a, b string) bool {
	ta, errA := time.Parse(timeLayout, a)
	tb, errB := time.Parse(timeLayout, b)
	if errA != nil || errB != nil {
		return false
	}
	return ta.After(tb)
}
