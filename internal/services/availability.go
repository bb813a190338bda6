package services

import "bizmeet/internal/domain"

// DeriveAvailability computes the entrepreneur x time-slot grid for one
// event. It is a pure function: entrepreneurs come out in caller order,
// slots always in canonical enumeration order regardless of booking order.
//
// A cell is booked when a booking matches the (entrepreneur, slot) pair
// (the booking record is attached), unavailable when the overrides block
// the pair, and available otherwise. A booked slot stays booked even if an
// override also blocks it, since the meeting already exists.
func DeriveAvailability(eventID string, entrepreneurs []*domain.Entrepreneur, bookings []*domain.MeetingBooking, overrides domain.SlotOverrides) *domain.AvailabilityGrid {
	type cell struct {
		entrepreneurID string
		slot           domain.TimeSlot
	}
	booked := make(map[cell]*domain.MeetingBooking, len(bookings))
	for _, b := range bookings {
		booked[cell{b.EntrepreneurID, b.TimeSlot}] = b
	}

	grid := &domain.AvailabilityGrid{
		EventID:       eventID,
		Entrepreneurs: make([]domain.EntrepreneurAvailability, 0, len(entrepreneurs)),
	}
	for _, e := range entrepreneurs {
		row := domain.EntrepreneurAvailability{
			Entrepreneur: e,
			TimeSlots:    make([]domain.SlotAvailability, 0, len(domain.TimeSlots)),
		}
		for _, slot := range domain.TimeSlots {
			sa := domain.SlotAvailability{TimeSlot: slot, Status: domain.StatusAvailable}
			if b, ok := booked[cell{e.ID, slot}]; ok {
				sa.Status = domain.StatusBooked
				sa.Booking = b
			} else if overrides.Blocks(e.ID, slot) {
				sa.Status = domain.StatusUnavailable
			}
			row.TimeSlots = append(row.TimeSlots, sa)
		}
		grid.Entrepreneurs = append(grid.Entrepreneurs, row)
	}
	return grid
}
