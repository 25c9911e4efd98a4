package core

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"westsiderising.org/timeclock/timeclock/model"
	"westsiderising.org/timeclock/utils"
)

// The exports reproduce the interactive view exactly: same date/time
// formatting, same grouping, one subtotal row per employee.

const reportTitle = "WESTSIDE RISING - Time Clock Report"

var exportHeader = []string{"Employee", "Date", "Clock In", "Clock Out", "Hours"}

func ReportFileName(periodID, ext string) string {
	return fmt.Sprintf("westside-rising-timesheet-%s.%s", periodID, ext)
}

func exportRow(employeeName string, entry model.TimeEntry) []string {
	clockOut := "-"
	if entry.ClockOut != nil {
		clockOut = utils.FormatClockTime(*entry.ClockOut)
	}
	hours := "-"
	if entry.Status == model.EntryStatusCompleted {
		hours = fmt.Sprintf("%.2f", entry.TotalHours)
	}
	return []string{
		employeeName,
		utils.FormatDisplayDate(entry.ClockIn),
		utils.FormatClockTime(entry.ClockIn),
		clockOut,
		hours,
	}
}

func subtotalRow(emp EmployeeTimesheet) []string {
	return []string{
		fmt.Sprintf("%s - Subtotal", emp.EmployeeName),
		"", "", "",
		fmt.Sprintf("%.2f", emp.TotalHours),
	}
}

// WriteCSV renders the period as the delimited export: a title line, the pay
// period display line, then the entry table with per-employee subtotals.
func WriteCSV(w io.Writer, ts *PeriodTimesheet) error {
	if _, err := fmt.Fprintf(w, "%s\nPay Period: %s\n\n", reportTitle, ts.Period.Display()); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, emp := range ts.Employees {
		for _, entry := range emp.Entries {
			if err := cw.Write(exportRow(emp.EmployeeName, entry)); err != nil {
				return err
			}
		}
		if err := cw.Write(subtotalRow(emp)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// BuildWorkbook renders the period as the printable report: same rows as the
// CSV on a styled sheet, subtotal rows in bold.
func BuildWorkbook(ts *PeriodTimesheet) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Timesheet"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	setRow := func(row int, values []string, style int) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		if style != 0 {
			end, err := excelize.CoordinatesToCellName(len(values), row)
			if err != nil {
				return err
			}
			return f.SetCellStyle(sheet, cell, end, style)
		}
		return nil
	}

	if err := setRow(1, []string{reportTitle}, bold); err != nil {
		return nil, err
	}
	if err := setRow(2, []string{fmt.Sprintf("Pay Period: %s", ts.Period.Display())}, 0); err != nil {
		return nil, err
	}
	if err := setRow(4, exportHeader, bold); err != nil {
		return nil, err
	}

	row := 5
	for _, emp := range ts.Employees {
		for _, entry := range emp.Entries {
			if err := setRow(row, exportRow(emp.EmployeeName, entry), 0); err != nil {
				return nil, err
			}
			row++
		}
		if err := setRow(row, subtotalRow(emp), bold); err != nil {
			return nil, err
		}
		row++
	}

	return f, nil
}
