package ledger

import "fmt"

// Rules holds the fixed parameters of a trading day.
type Rules struct {
	FleetSize    int
	OpeningHour  int
	ClosingHour  int
	HourlyRate   float64
	HalfHourRate float64
}

// DefaultRules returns ten boats hired between 10:00 and 17:00.
func DefaultRules() Rules {
	return Rules{
		FleetSize:    10,
		OpeningHour:  10,
		ClosingHour:  17,
		HourlyRate:   20.0,
		HalfHourRate: 12.0,
	}
}

// Validate checks that the rules describe a usable day.
func (r Rules) Validate() error {
	if r.FleetSize <= 0 {
		return fmt.Errorf("fleet size must be positive, got %d", r.FleetSize)
	}
	if r.OpeningHour < 0 || r.OpeningHour > 24 {
		return fmt.Errorf("opening hour %d out of range 0..24", r.OpeningHour)
	}
	if r.ClosingHour < 0 || r.ClosingHour > 24 {
		return fmt.Errorf("closing hour %d out of range 0..24", r.ClosingHour)
	}
	if r.OpeningHour >= r.ClosingHour {
		return fmt.Errorf("opening hour %d must be before closing hour %d", r.OpeningHour, r.ClosingHour)
	}
	if r.HourlyRate < 0 || r.HalfHourRate < 0 {
		return fmt.Errorf("rates must not be negative")
	}
	return nil
}
