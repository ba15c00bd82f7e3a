// Package pricing computes boarding and grooming prices. Every
// function is pure: the review screen and the booking validator call
// them repeatedly on identical input and must get identical output.
package pricing

import (
	"math"
	"time"

	"pawspace/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	// Flat penalty per out-of-hours end; both can apply to one stay.
	earlyCheckInSurcharge = 200
	lateCheckOutSurcharge = 200

	earlyCheckInHour = 9
	lateCheckOutHour = 19
)

// PriceDetails is derived per pet and never stored as-is. Discount is
// a percentage figure: 20 means 20% off Base. The surcharge portion is
// never discounted.
type PriceDetails struct {
	Base      float64 `json:"base_price"`
	Total     float64 `json:"total"`
	Discount  float64 `json:"discount"`
	Surcharge float64 `json:"surcharge"`
	Nights    int     `json:"nights,omitempty"`
	Hours     int     `json:"hours,omitempty"`
}

var overnightRatePerNight = map[domain.RoomSize]float64{
	domain.RoomSmall:  500,
	domain.RoomMedium: 600,
	domain.RoomLarge:  800,
}

var dayRatePerHour = map[domain.RoomSize]float64{
	domain.RoomSmall:  60,
	domain.RoomMedium: 75,
	domain.RoomLarge:  100,
}

const catSpaPrice = 450

var dogGroomingPrice = map[domain.ServiceVariant]map[domain.PetSize]float64{
	domain.VariantBasic: {
		domain.SizeSmall:  400,
		domain.SizeMedium: 500,
		domain.SizeLarge:  600,
	},
	domain.VariantDeluxe: {
		domain.SizeSmall:  650,
		domain.SizeMedium: 750,
		domain.SizeLarge:  850,
	},
}

// GroomingPrice returns the price for one grooming session. Cats have
// a single fixed price regardless of size. An unmapped combination
// returns 0, which callers must treat as "price unknown", not free.
func GroomingPrice(petType domain.PetType, variant domain.ServiceVariant, size domain.PetSize) float64 {
	switch petType {
	case domain.PetCat:
		if variant == domain.VariantCatSpa {
			return catSpaPrice
		}
		return 0
	case domain.PetDog:
		bySize, ok := dogGroomingPrice[variant]
		if !ok {
			return 0
		}
		return bySize[size]
	}
	return 0
}

// BoardingPrice prices one boarding stay from its raw form fields.
// Unparseable dates or times degrade to zero-valued components rather
// than erroring: the field validator owns rejecting malformed input.
func BoardingPrice(b domain.BoardingDetails) PriceDetails {
	switch b.BoardingType {
	case domain.BoardingDay:
		return dayBoardingPrice(b)
	case domain.BoardingOvernight:
		return overnightBoardingPrice(b)
	}
	return PriceDetails{}
}

func dayBoardingPrice(b domain.BoardingDetails) PriceDetails {
	hours := hourOf(b.CheckOutTime) - hourOf(b.CheckInTime)
	if hours < 0 {
		hours = 0
	}
	base := dayRatePerHour[b.RoomSize] * float64(hours)
	d := PriceDetails{
		Base:      base,
		Hours:     hours,
		Surcharge: surchargeFor(b),
	}
	d.Total = base + d.Surcharge
	return d
}

func overnightBoardingPrice(b domain.BoardingDetails) PriceDetails {
	nights := Nights(b.CheckInDate, b.CheckOutDate)
	base := overnightRatePerNight[b.RoomSize] * float64(nights)
	d := PriceDetails{
		Base:      base,
		Nights:    nights,
		Discount:  DiscountPercent(nights),
		Surcharge: surchargeFor(b),
	}
	d.Total = base*(1-d.Discount/100) + d.Surcharge
	return d
}

// Nights counts whole nights between two calendar dates, rounding any
// partial day up and never going below zero.
func Nights(checkInDate, checkOutDate string) int {
	in, err := time.Parse(dateLayout, checkInDate)
	if err != nil {
		return 0
	}
	out, err := time.Parse(dateLayout, checkOutDate)
	if err != nil {
		return 0
	}
	n := int(math.Ceil(out.Sub(in).Hours() / 24))
	if n < 0 {
		return 0
	}
	return n
}

// DiscountPercent is the long-stay tier: 15+ nights 20%, 7+ nights
// 10%, otherwise none.
func DiscountPercent(nights int) float64 {
	switch {
	case nights >= 15:
		return 20
	case nights >= 7:
		return 10
	}
	return 0
}

func surchargeFor(b domain.BoardingDetails) float64 {
	var s float64
	if b.CheckInTime != "" && hourOf(b.CheckInTime) < earlyCheckInHour {
		s += earlyCheckInSurcharge
	}
	if b.CheckOutTime != "" && hourOf(b.CheckOutTime) > lateCheckOutHour {
		s += lateCheckOutSurcharge
	}
	return s
}

func hourOf(hhmm string) int {
	t, err := time.Parse(timeLayout, hhmm)
	if err != nil {
		return 0
	}
	return t.Hour()
}
