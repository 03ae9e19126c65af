package console

import (
	"fmt"
	"strconv"
	"strings"

	"BoatHire/internal/model"
)

// Menu is printed before every choice.
const Menu = "\nMenu:\n1. Hire a boat\n2. Check for available boats\n3. Exit\nEnter your choice: "

// FormatAmount prints a number with six significant digits and no trailing
// zeros, so 40.0 reads "40" and 17.88 reads "17.88".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// FormatPayment confirms a successful hire.
func FormatPayment(boatNumber int, payment float64) string {
	return fmt.Sprintf("Boat %d hired successfully. Payment: $%s\n", boatNumber, FormatAmount(payment))
}

// FormatAvailability renders the availability table.
func FormatAvailability(rows []model.Availability) string {
	var b strings.Builder
	b.WriteString("\nAvailable Boats:\n")
	for _, r := range rows {
		if r.Available {
			b.WriteString(fmt.Sprintf("Boat %d: Available\n", r.Number))
			continue
		}
		b.WriteString(fmt.Sprintf("Boat %d: Not Available (Return time: %d:%02d)\n", r.Number, r.ReturnHour, r.ReturnMinute))
	}
	return b.String()
}

// FormatDailyReport renders the end-of-day summary.
func FormatDailyReport(r *model.DailyReport) string {
	var b strings.Builder
	b.WriteString("\n--- Daily Report ---\n")
	b.WriteString(fmt.Sprintf("Total Money Taken: $%s\n", FormatAmount(r.TotalMoneyTaken)))
	b.WriteString(fmt.Sprintf("Total Hours Hired: %s hours\n", FormatAmount(r.TotalHoursHired)))
	b.WriteString(fmt.Sprintf("Number of Boats Not Used: %d\n", r.UnusedBoats))
	b.WriteString(fmt.Sprintf("Boat Used the Most: Boat %d (Total Hours: %s)\n", r.MostUsedBoat, FormatAmount(r.MostUsedHours)))
	return b.String()
}

// FormatError renders an operator-facing error line.
func FormatError(err error) string {
	return fmt.Sprintf("Error: %v\n", err)
}
