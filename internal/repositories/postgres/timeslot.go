package postgres

import "time"

// TimeSlot is a service period of the day in the restaurant's local time.
// EndHour may be smaller than StartHour for slots that wrap past midnight.
type TimeSlot struct {
	Name      string
	StartHour int
	EndHour   int
}

var timeSlots = []TimeSlot{
	{Name: "breakfast", StartHour: 6, EndHour: 11},
	{Name: "lunch", StartHour: 11, EndHour: 15},
	{Name: "afternoon", StartHour: 15, EndHour: 18},
	{Name: "dinner", StartHour: 18, EndHour: 22},
	{Name: "late", StartHour: 22, EndHour: 6},
}

func (s TimeSlot) Contains(hour int) bool {
	if s.StartHour < s.EndHour {
		return hour >= s.StartHour && hour < s.EndHour
	}
	return hour >= s.StartHour || hour < s.EndHour
}

// TimeSlotAt returns the slot t falls in, evaluated in loc.
func TimeSlotAt(t time.Time, loc *time.Location) TimeSlot {
	hour := t.In(loc).Hour()
	for _, slot := range timeSlots {
		if slot.Contains(hour) {
			return slot
		}
	}
	return timeSlots[len(timeSlots)-1]
}
