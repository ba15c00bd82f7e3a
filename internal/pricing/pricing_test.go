package pricing

import (
	"testing"

	"pawspace/internal/domain"

	"github.com/stretchr/testify/assert"
)

func overnightStay(roomSize domain.RoomSize, inDate, inTime, outDate, outTime string) domain.BoardingDetails {
	return domain.BoardingDetails{
		RoomSize:     roomSize,
		BoardingType: domain.BoardingOvernight,
		CheckInDate:  inDate,
		CheckInTime:  inTime,
		CheckOutDate: outDate,
		CheckOutTime: outTime,
	}
}

func TestBoardingPrice_TwoNightStay(t *testing.T) {
	d := BoardingPrice(overnightStay(domain.RoomMedium, "2025-06-10", "09:00", "2025-06-12", "17:00"))

	assert.Equal(t, 2, d.Nights)
	assert.Equal(t, 1200.0, d.Base)
	assert.Equal(t, 0.0, d.Discount)
	assert.Equal(t, 0.0, d.Surcharge)
	assert.Equal(t, 1200.0, d.Total)
}

func TestBoardingPrice_LongStayDiscount(t *testing.T) {
	d := BoardingPrice(overnightStay(domain.RoomMedium, "2025-06-10", "09:00", "2025-06-25", "17:00"))

	assert.Equal(t, 15, d.Nights)
	assert.Equal(t, 9000.0, d.Base)
	assert.Equal(t, 20.0, d.Discount)
	assert.Equal(t, 7200.0, d.Total)
}

func TestDiscountPercent_TierSplit(t *testing.T) {
	cases := []struct {
		nights int
		want   float64
	}{
		{0, 0},
		{1, 0},
		{6, 0},
		{7, 10},
		{10, 10},
		{14, 10},
		{15, 20},
		{20, 20},
		{60, 20},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DiscountPercent(tc.nights), "nights=%d", tc.nights)
	}
}

func TestNights_NeverNegative(t *testing.T) {
	assert.Equal(t, 0, Nights("2025-06-12", "2025-06-10"))
	assert.Equal(t, 0, Nights("2025-06-10", "2025-06-10"))
	assert.Equal(t, 0, Nights("not-a-date", "2025-06-10"))
}

func TestBoardingPrice_SurchargesAreAdditive(t *testing.T) {
	d := BoardingPrice(overnightStay(domain.RoomSmall, "2025-06-10", "06:00", "2025-06-11", "20:00"))
	assert.Equal(t, 400.0, d.Surcharge)

	earlyOnly := BoardingPrice(overnightStay(domain.RoomSmall, "2025-06-10", "06:00", "2025-06-11", "17:00"))
	assert.Equal(t, 200.0, earlyOnly.Surcharge)

	lateOnly := BoardingPrice(overnightStay(domain.RoomSmall, "2025-06-10", "09:00", "2025-06-11", "20:00"))
	assert.Equal(t, 200.0, lateOnly.Surcharge)
}

func TestBoardingPrice_SurchargeNotDiscounted(t *testing.T) {
	d := BoardingPrice(overnightStay(domain.RoomMedium, "2025-06-01", "06:00", "2025-06-16", "17:00"))

	assert.Equal(t, 15, d.Nights)
	assert.Equal(t, 20.0, d.Discount)
	assert.Equal(t, 200.0, d.Surcharge)
	// 9000 * 0.8 + 200, the 200 stays whole
	assert.Equal(t, 7400.0, d.Total)
}

func TestBoardingPrice_DayBoarding(t *testing.T) {
	b := domain.BoardingDetails{
		RoomSize:     domain.RoomMedium,
		BoardingType: domain.BoardingDay,
		CheckInDate:  "2025-06-10",
		CheckInTime:  "09:00",
		CheckOutDate: "2025-06-10",
		CheckOutTime: "15:00",
	}
	d := BoardingPrice(b)

	assert.Equal(t, 6, d.Hours)
	assert.Equal(t, 450.0, d.Base)
	assert.Equal(t, 450.0, d.Total)
}

func TestBoardingPrice_DayBoardingHoursFloorAtZero(t *testing.T) {
	b := domain.BoardingDetails{
		RoomSize:     domain.RoomSmall,
		BoardingType: domain.BoardingDay,
		CheckInDate:  "2025-06-10",
		CheckInTime:  "15:00",
		CheckOutDate: "2025-06-10",
		CheckOutTime: "10:00",
	}
	d := BoardingPrice(b)

	assert.Equal(t, 0, d.Hours)
	assert.Equal(t, 0.0, d.Base)
}

func TestGroomingPrice_CatIsFlatRate(t *testing.T) {
	assert.Equal(t, 450.0, GroomingPrice(domain.PetCat, domain.VariantCatSpa, domain.SizeSmall))
	assert.Equal(t, 450.0, GroomingPrice(domain.PetCat, domain.VariantCatSpa, domain.SizeLarge))
}

func TestGroomingPrice_DogByVariantAndSize(t *testing.T) {
	assert.Equal(t, 500.0, GroomingPrice(domain.PetDog, domain.VariantBasic, domain.SizeMedium))
	assert.Equal(t, 850.0, GroomingPrice(domain.PetDog, domain.VariantDeluxe, domain.SizeLarge))
}

func TestGroomingPrice_UnmappedComboIsZero(t *testing.T) {
	// zero means "price unknown", never "free"
	assert.Equal(t, 0.0, GroomingPrice(domain.PetDog, domain.VariantCatSpa, domain.SizeMedium))
	assert.Equal(t, 0.0, GroomingPrice(domain.PetCat, domain.VariantDeluxe, domain.SizeSmall))
	assert.Equal(t, 0.0, GroomingPrice(domain.PetDog, domain.VariantBasic, domain.PetSize("giant")))
}

func TestPricing_Idempotent(t *testing.T) {
	stay := overnightStay(domain.RoomLarge, "2025-07-01", "08:00", "2025-07-12", "20:00")

	first := BoardingPrice(stay)
	second := BoardingPrice(stay)
	assert.Equal(t, first, second)

	assert.Equal(t,
		GroomingPrice(domain.PetDog, domain.VariantDeluxe, domain.SizeSmall),
		GroomingPrice(domain.PetDog, domain.VariantDeluxe, domain.SizeSmall),
	)
}
