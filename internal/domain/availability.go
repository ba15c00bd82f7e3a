package domain

// AvailabilitySource tags how trustworthy a capacity figure is. The
// overlap estimate read outside a transaction is advisory UX only; the
// database exclusion constraint is the admission-control gate.
type AvailabilitySource string

const (
	SourceEstimate      AvailabilitySource = "estimate"
	SourceAuthoritative AvailabilitySource = "authoritative"
)

type AvailabilityEstimate struct {
	RoomSize       RoomSize           `json:"room_size"`
	TotalRooms     int                `json:"total_rooms"`
	OccupiedCount  int                `json:"occupied_count"`
	AvailableRooms int                `json:"available_rooms"`
	Source         AvailabilitySource `json:"source"`
}
