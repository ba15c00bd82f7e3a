package domain

import "time"

type RoomSize string

const (
	RoomSmall  RoomSize = "small"
	RoomMedium RoomSize = "medium"
	RoomLarge  RoomSize = "large"
)

// Room is one physical boarding room. Capacity planning counts rooms
// per size class; the no-double-booking rule lives in the database.
type Room struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Size      RoomSize  `json:"size"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

var roomSizeRank = map[RoomSize]int{
	RoomSmall:  1,
	RoomMedium: 2,
	RoomLarge:  3,
}

var petSizeRank = map[PetSize]int{
	SizeSmall:  1,
	SizeMedium: 2,
	SizeLarge:  3,
}

// RoomFits reports whether a room size class can hold a pet of the
// given size. The rank tables make the policy extensible (an xlarge
// tier is one entry per table), instead of enumerating pairs.
func RoomFits(pet PetSize, room RoomSize) bool {
	pr, ok := petSizeRank[pet]
	if !ok {
		return false
	}
	rr, ok := roomSizeRank[room]
	if !ok {
		return false
	}
	return rr >= pr
}
