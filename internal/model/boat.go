package model

// Boat is one rentable boat in the fleet.
type Boat struct {
	Number     int
	MoneyTaken float64
	HoursHired float64 // cumulative, may be fractional
	ReturnHour int
	Available  bool
}

// Availability is one row of the fleet availability listing.
type Availability struct {
	Number       int
	Available    bool
	ReturnHour   int
	ReturnMinute int // 0 or 30
}
