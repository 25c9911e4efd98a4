package helper

import (
	"strings"
	"testing"
	"time"

	timeclock "westsiderising.org/timeclock/timeclock/core"
	"westsiderising.org/timeclock/utils"
)

func TestBuildAlertMessage(t *testing.T) {
	event := timeclock.ClockInEvent{
		EntryID:      "entry-1",
		EmployeeID:   "emp-1",
		EmployeeName: "Maria Lopez",
		ClockIn:      time.Date(2026, time.January, 12, 9, 5, 0, 0, utils.Chicago),
	}

	message := BuildAlertMessage(event, "westsiderising.org/time-clock.html")

	if !strings.HasPrefix(message, "CLOCK IN ALERT") {
		t.Errorf("unexpected message header: %q", message)
	}
	for _, want := range []string{
		"Employee: Maria Lopez",
		"Time: 9:05 AM",
		"Date: Mon, Jan 12",
		"westsiderising.org/time-clock.html",
	} {
		if !strings.Contains(message, want) {
			t.Errorf("message missing %q:\n%s", want, message)
		}
	}
}
