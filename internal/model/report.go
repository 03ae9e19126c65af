package model

// DailyReport aggregates the fleet at the end of the day.
type DailyReport struct {
	TotalMoneyTaken float64
	TotalHoursHired float64
	UnusedBoats     int
	MostUsedBoat    int
	MostUsedHours   float64
}
