package core

import (
	"fmt"
	"math"
	"time"

	"westsiderising.org/timeclock/utils"
)

// Pay periods are contiguous 14-day windows anchored at a fixed epoch date in
// the organizational timezone. The epoch is a deployment constant: changing it
// invalidates every stored payPeriodId.
const PayPeriodDays = 14

var payPeriodEpoch = time.Date(2026, time.January, 6, 0, 0, 0, 0, utils.Chicago)

type PayPeriod struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"` // last day of the window, Start + 13 days
}

func (p PayPeriod) Display() string {
	return fmt.Sprintf("%s - %s", utils.FormatDisplayDate(p.Start), utils.FormatDisplayDate(p.End))
}

// Contains reports whether t falls inside the half-open window [Start, Start+14d).
func (p PayPeriod) Contains(t time.Time) bool {
	day := chicagoMidnight(t)
	return !day.Before(p.Start) && day.Before(p.Start.AddDate(0, 0, PayPeriodDays))
}

// PayPeriodFor maps an instant to its containing pay period.
func PayPeriodFor(t time.Time) PayPeriod {
	day := chicagoMidnight(t)

	// Calendar days since the epoch. DST shifts make some days 23 or 25 hours
	// long, so round rather than truncate the hour delta.
	days := int(math.Round(day.Sub(payPeriodEpoch).Hours() / 24))
	index := floorDiv(days, PayPeriodDays)

	return periodAt(index)
}

// CurrentPayPeriod returns the period containing now.
func CurrentPayPeriod() PayPeriod {
	return PayPeriodFor(utils.ChicagoNow())
}

// PayPeriodByID parses a YYYY-MM-DD period id and returns its window. Dates
// that are not a period start are normalized to the containing period.
func PayPeriodByID(id string) (PayPeriod, error) {
	start, err := time.ParseInLocation("2006-01-02", id, utils.Chicago)
	if err != nil {
		return PayPeriod{}, fmt.Errorf("invalid pay period id %q: %w", id, err)
	}
	return PayPeriodFor(start), nil
}

// PayPeriods enumerates every period from the epoch through the one containing
// now, oldest first. The sequence is recomputed from the epoch on each call.
func PayPeriods(now time.Time) []PayPeriod {
	last := PayPeriodFor(now)

	var periods []PayPeriod
	for i := 0; ; i++ {
		p := periodAt(i)
		if p.Start.After(last.Start) {
			break
		}
		periods = append(periods, p)
	}
	return periods
}

func periodAt(index int) PayPeriod {
	start := payPeriodEpoch.AddDate(0, 0, index*PayPeriodDays)
	return PayPeriod{
		ID:    start.Format("2006-01-02"),
		Start: start,
		End:   start.AddDate(0, 0, PayPeriodDays-1),
	}
}

func chicagoMidnight(t time.Time) time.Time {
	c := t.In(utils.Chicago)
	return time.Date(c.Year(), c.Month(), c.Day(), 0, 0, 0, 0, utils.Chicago)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// RoundHours converts an elapsed duration to decimal hours rounded to 2 places.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
