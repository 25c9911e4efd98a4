package helper

import (
	"fmt"

	timeclock "westsiderising.org/timeclock/timeclock/core"
	"westsiderising.org/timeclock/utils"
)

// BuildAlertMessage renders the superadmin notification body for a clock-in.
func BuildAlertMessage(event timeclock.ClockInEvent, dashboardURL string) string {
	at := event.ClockIn.In(utils.Chicago)
	return fmt.Sprintf(`CLOCK IN ALERT

Employee: %s
Time: %s
Date: %s

View timesheets at:
%s`,
		event.EmployeeName,
		utils.FormatClockTime(at),
		at.Format("Mon, Jan 2"),
		dashboardURL)
}
