package domain

// TimeSlot is one of five fixed one-hour meeting windows in a single
// business day. The set is closed; anything outside it is rejected at
// validation time.
type TimeSlot string

const (
	Slot1000 TimeSlot = "10:00-11:00"
	Slot1100 TimeSlot = "11:00-12:00"
	Slot1300 TimeSlot = "13:00-14:00"
	Slot1400 TimeSlot = "14:00-15:00"
	Slot1500 TimeSlot = "15:00-16:00"
)

// TimeSlots lists every slot in canonical order. Availability grids always
// iterate this slice so rendered output stays visually stable.
var TimeSlots = []TimeSlot{Slot1000, Slot1100, Slot1300, Slot1400, Slot1500}

// TimeSlotInfo is display metadata for a slot. It is a static lookup,
// never computed from the slot string at runtime.
type TimeSlotInfo struct {
	Slot        TimeSlot `json:"slot"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	DisplayName string   `json:"display_name"`
	IsMorning   bool     `json:"is_morning"`
	IsAfternoon bool     `json:"is_afternoon"`
}

var timeSlotInfos = map[TimeSlot]TimeSlotInfo{
	Slot1000: {Slot: Slot1000, StartTime: "10:00", EndTime: "11:00", DisplayName: "10:00 AM - 11:00 AM", IsMorning: true},
	Slot1100: {Slot: Slot1100, StartTime: "11:00", EndTime: "12:00", DisplayName: "11:00 AM - 12:00 PM", IsMorning: true},
	Slot1300: {Slot: Slot1300, StartTime: "13:00", EndTime: "14:00", DisplayName: "1:00 PM - 2:00 PM", IsAfternoon: true},
	Slot1400: {Slot: Slot1400, StartTime: "14:00", EndTime: "15:00", DisplayName: "2:00 PM - 3:00 PM", IsAfternoon: true},
	Slot1500: {Slot: Slot1500, StartTime: "15:00", EndTime: "16:00", DisplayName: "3:00 PM - 4:00 PM", IsAfternoon: true},
}

// IsValid reports whether s is one of the five enumerated slots.
func (s TimeSlot) IsValid() bool {
	_, ok := timeSlotInfos[s]
	return ok
}

// Info returns the static display metadata for the slot.
// The second return is false for values outside the enumeration.
func (s TimeSlot) Info() (TimeSlotInfo, bool) {
	info, ok := timeSlotInfos[s]
	return info, ok
}
