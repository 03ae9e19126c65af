package ledger

import (
	"math"
	"sort"

	"BoatHire/internal/model"
)

// Ledger tracks the fleet for a single trading day.
//
// A hired boat stays unavailable for the rest of the day: nothing moves a
// clock forward, so availability is never re-derived from ReturnHour.
type Ledger struct {
	rules Rules
	boats []model.Boat
}

// New creates a Ledger with every boat available from opening time.
func New(rules Rules) *Ledger {
	boats := make([]model.Boat, rules.FleetSize)
	for i := range boats {
		boats[i] = model.Boat{
			Number:     i + 1,
			ReturnHour: rules.OpeningHour,
			Available:  true,
		}
	}
	return &Ledger{rules: rules, boats: boats}
}

// Rules returns the rules the ledger was built with.
func (l *Ledger) Rules() Rules {
	return l.rules
}

// Boats returns a copy of the fleet in boat-number order.
func (l *Ledger) Boats() []model.Boat {
	out := make([]model.Boat, len(l.boats))
	copy(out, l.boats)
	return out
}

// Cost prices a hire. Anything under an hour pays (duration+0.5) half-hour
// units, so a 0.5h hire costs one full half-hour rate.
func (l *Ledger) Cost(duration float64) float64 {
	if duration >= 1 {
		return duration * l.rules.HourlyRate
	}
	return (duration + 0.5) * l.rules.HalfHourRate
}

// FindNextAvailable returns the first available boat in fleet order.
func (l *Ledger) FindNextAvailable() (model.Boat, bool) {
	for _, b := range l.boats {
		if b.Available {
			return b, true
		}
	}
	return model.Boat{}, false
}

// FindNextAvailableTime returns the first hour in [fromHour, closing) at
// which some boat is due back.
func (l *Ledger) FindNextAvailableTime(fromHour int) (int, bool) {
	sorted := l.byReturnHour()
	for hour := fromHour; hour < l.rules.ClosingHour; hour++ {
		for _, b := range sorted {
			if b.ReturnHour <= hour {
				return hour, true
			}
		}
	}
	return 0, false
}

// byReturnHour returns a copy of the fleet ordered by return hour; boats due
// back at the same hour keep boat-number order.
func (l *Ledger) byReturnHour() []model.Boat {
	sorted := l.Boats()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReturnHour < sorted[j].ReturnHour
	})
	return sorted
}

// CheckFleet returns a *NoBoatsError when every boat is out.
func (l *Ledger) CheckFleet() error {
	if _, ok := l.FindNextAvailable(); ok {
		return nil
	}
	next, known := l.FindNextAvailableTime(l.rules.OpeningHour)
	return &NoBoatsError{NextHour: next, Known: known}
}

// CheckBoat reports whether boatID can be hired right now.
func (l *Ledger) CheckBoat(boatID int) error {
	if err := l.CheckFleet(); err != nil {
		return err
	}
	if boatID < 1 || boatID > len(l.boats) {
		return newHireError(ErrInvalidBoatID, "Invalid boat number. Must be between 1 and %d.", len(l.boats))
	}
	if b := l.boats[boatID-1]; !b.Available {
		return newHireError(ErrBoatUnavailable, "Boat %d is not available at this time.", b.Number)
	}
	return nil
}

// CheckStart reports whether a hire may begin at startHour.
func (l *Ledger) CheckStart(startHour int) error {
	if startHour < l.rules.OpeningHour || startHour >= l.rules.ClosingHour {
		return newHireError(ErrInvalidStartHour, "Invalid start time. Must be between %d and %d.",
			l.rules.OpeningHour, l.rules.ClosingHour)
	}
	return nil
}

func (l *Ledger) checkDuration(startHour int, duration float64) error {
	if math.IsNaN(duration) || duration <= 0 || float64(startHour)+duration > float64(l.rules.ClosingHour) {
		return newHireError(ErrInvalidDuration, "Invalid hire duration or return time exceeds %d:00.",
			l.rules.ClosingHour)
	}
	return nil
}

// Hire books boatID from startHour for duration hours and returns the
// payment taken. A rejected hire leaves the fleet untouched.
func (l *Ledger) Hire(boatID, startHour int, duration float64) (float64, error) {
	if err := l.CheckBoat(boatID); err != nil {
		return 0, err
	}
	if err := l.CheckStart(startHour); err != nil {
		return 0, err
	}
	if err := l.checkDuration(startHour, duration); err != nil {
		return 0, err
	}

	payment := l.Cost(duration)
	b := &l.boats[boatID-1]
	b.MoneyTaken += payment
	b.HoursHired += duration
	b.ReturnHour = int(math.Floor(float64(startHour) + duration))
	b.Available = false
	return payment, nil
}

// ListAvailability reports every boat in boat-number order. The return
// minute reads 30 only when the boat's total hired hours end in exactly a
// half hour.
func (l *Ledger) ListAvailability() []model.Availability {
	out := make([]model.Availability, len(l.boats))
	for i, b := range l.boats {
		row := model.Availability{
			Number:     b.Number,
			Available:  b.Available,
			ReturnHour: b.ReturnHour,
		}
		if b.HoursHired-math.Trunc(b.HoursHired) == 0.5 {
			row.ReturnMinute = 30
		}
		out[i] = row
	}
	return out
}

// DailyReport summarises the day. Ties for most used go to the lowest
// boat number.
func (l *Ledger) DailyReport() model.DailyReport {
	var r model.DailyReport
	most := 0
	for i, b := range l.boats {
		r.TotalMoneyTaken += b.MoneyTaken
		r.TotalHoursHired += b.HoursHired
		if b.HoursHired == 0 {
			r.UnusedBoats++
		}
		if b.HoursHired > l.boats[most].HoursHired {
			most = i
		}
	}
	if len(l.boats) > 0 {
		r.MostUsedBoat = l.boats[most].Number
		r.MostUsedHours = l.boats[most].HoursHired
	}
	return r
}
