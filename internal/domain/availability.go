package domain

// BookingStatus classifies one (entrepreneur, time slot) cell of the grid.
type BookingStatus string

const (
	StatusAvailable   BookingStatus = "available"
	StatusBooked      BookingStatus = "booked"
	StatusUnavailable BookingStatus = "unavailable"
)

// SlotAvailability is one cell of the availability grid. Booking is set
// only when Status is StatusBooked.
type SlotAvailability struct {
	TimeSlot TimeSlot        `json:"time_slot"`
	Status   BookingStatus   `json:"status"`
	Booking  *MeetingBooking `json:"booking,omitempty"`
}

// EntrepreneurAvailability is one row of the grid: an entrepreneur and the
// status of every time slot, always in canonical slot order.
type EntrepreneurAvailability struct {
	Entrepreneur *Entrepreneur      `json:"entrepreneur"`
	TimeSlots    []SlotAvailability `json:"time_slots"`
}

// AvailabilityGrid is the entrepreneur x time-slot matrix for one event.
// swagger:model AvailabilityGrid
type AvailabilityGrid struct {
	EventID       string                     `json:"event_id"`
	Entrepreneurs []EntrepreneurAvailability `json:"entrepreneurs"`
}

// SlotOverrides marks slots as unavailable per entrepreneur id. The
// unavailable status cannot be derived from the booking set; it always
// comes in as an explicit override (e.g. an entrepreneur opted out of a
// window).
type SlotOverrides map[string][]TimeSlot

// Blocks reports whether the override set blocks the given entrepreneur and slot.
func (o SlotOverrides) Blocks(entrepreneurID string, slot TimeSlot) bool {
	for _, s := range o[entrepreneurID] {
		if s == slot {
			return true
		}
	}
	return false
}
