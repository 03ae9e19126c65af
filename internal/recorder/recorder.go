package recorder

import "BoatHire/internal/model"

// HireEvent records one hire attempt, accepted or not.
type HireEvent struct {
	BoatNumber int
	StartHour  int
	Duration   float64
	Payment    float64
	ReturnHour int
	Accepted   bool
	Reason     string // rejection code, empty when accepted
}

// ReportEvent records the end-of-day report.
type ReportEvent struct {
	Report *model.DailyReport
}

// Recorder journals the day's activity for later analysis. Nothing is ever
// read back into the ledger.
type Recorder interface {
	RecordHire(evt *HireEvent) error
	RecordReport(evt *ReportEvent) error
	Close() error
}
