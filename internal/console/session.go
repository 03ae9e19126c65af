package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"BoatHire/internal/ledger"
	"BoatHire/internal/recorder"
)

// errBadInput aborts the current prompt sequence after a non-numeric token.
var errBadInput = errors.New("bad input")

// Session drives the operator menu against a ledger.
type Session struct {
	Ledger   *ledger.Ledger
	Recorder recorder.Recorder

	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
}

// NewSession reads whitespace-separated tokens from in. Prompts and results
// go to out, operator errors to errOut.
func NewSession(l *ledger.Ledger, rec recorder.Recorder, in io.Reader, out, errOut io.Writer) *Session {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Session{
		Ledger:   l,
		Recorder: rec,
		in:       sc,
		out:      out,
		errOut:   errOut,
	}
}

// Run loops over the menu until the operator exits or input runs out. Both
// end the day with the daily report.
func (s *Session) Run() error {
	for {
		fmt.Fprint(s.out, Menu)
		choice, err := s.readInt()
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			s.closeDay()
			return nil
		case errors.Is(err, errBadInput):
			continue
		case err != nil:
			return err
		}

		done, err := s.HandleChoice(choice)
		if errors.Is(err, io.EOF) {
			s.closeDay()
			return nil
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// HandleChoice runs one menu entry and reports whether the session is over.
func (s *Session) HandleChoice(choice int) (bool, error) {
	switch choice {
	case 1:
		err := s.hire()
		if errors.Is(err, errBadInput) {
			return false, nil
		}
		return false, err
	case 2:
		fmt.Fprint(s.out, FormatAvailability(s.Ledger.ListAvailability()))
		return false, nil
	case 3:
		s.closeDay()
		return true, nil
	default:
		fmt.Fprintln(s.out, "Invalid choice. Please enter a valid option.")
		return false, nil
	}
}

func (s *Session) hire() error {
	rules := s.Ledger.Rules()
	evt := &recorder.HireEvent{}

	if err := s.Ledger.CheckFleet(); err != nil {
		s.reject(evt, err)
		return nil
	}

	fmt.Fprintf(s.out, "Enter boat number (1 to %d): ", rules.FleetSize)
	boat, err := s.readInt()
	if err != nil {
		return err
	}
	evt.BoatNumber = boat
	if err := s.Ledger.CheckBoat(boat); err != nil {
		s.reject(evt, err)
		return nil
	}

	fmt.Fprintf(s.out, "Enter start time (between %d and %d): ", rules.OpeningHour, rules.ClosingHour)
	start, err := s.readInt()
	if err != nil {
		return err
	}
	evt.StartHour = start
	if err := s.Ledger.CheckStart(start); err != nil {
		s.reject(evt, err)
		return nil
	}

	fmt.Fprint(s.out, "Enter hire duration (in hours, e.g., 1 or 0.5 for half-hour): ")
	duration, err := s.readFloat()
	if err != nil {
		return err
	}
	evt.Duration = duration

	payment, err := s.Ledger.Hire(boat, start, duration)
	if err != nil {
		s.reject(evt, err)
		return nil
	}

	evt.Accepted = true
	evt.Payment = payment
	evt.ReturnHour = s.Ledger.Boats()[boat-1].ReturnHour
	s.record(evt)
	fmt.Fprint(s.out, FormatPayment(boat, payment))
	return nil
}

func (s *Session) reject(evt *recorder.HireEvent, err error) {
	fmt.Fprint(s.errOut, FormatError(err))
	evt.Reason = ledger.Reason(err)
	s.record(evt)
}

func (s *Session) record(evt *recorder.HireEvent) {
	if err := s.Recorder.RecordHire(evt); err != nil {
		log.Printf("[ERROR] record hire: %v", err)
	}
}

func (s *Session) closeDay() {
	report := s.Ledger.DailyReport()
	fmt.Fprint(s.out, FormatDailyReport(&report))
	if err := s.Recorder.RecordReport(&recorder.ReportEvent{Report: &report}); err != nil {
		log.Printf("[ERROR] record daily report: %v", err)
	}
	fmt.Fprintln(s.out, "Exiting program.")
}

func (s *Session) next() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", io.EOF
}

func (s *Session) readInt() (int, error) {
	tok, err := s.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		fmt.Fprintf(s.errOut, "Error: Invalid input %q. Please enter a whole number.\n", tok)
		return 0, errBadInput
	}
	return n, nil
}

func (s *Session) readFloat() (float64, error) {
	tok, err := s.next()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		fmt.Fprintf(s.errOut, "Error: Invalid input %q. Please enter a number of hours.\n", tok)
		return 0, errBadInput
	}
	return f, nil
}
