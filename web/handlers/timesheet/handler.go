package timesheet

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	timeclock "westsiderising.org/timeclock/timeclock/core"
	"westsiderising.org/timeclock/utils"
	web "westsiderising.org/timeclock/web/common"
)

type Endpoint struct {
	engine  *timeclock.Engine
	archive Archiver
}

// Register mounts the administrator timesheet routes. The caller is expected
// to gate the group to manager/superadmin roles. archive may be nil.
func Register(r *gin.RouterGroup, engine *timeclock.Engine, archive Archiver) {
	endpoint := &Endpoint{engine: engine, archive: archive}
	r.GET("/timesheets/periods", endpoint.Periods)
	r.GET("/timesheets/periods/:periodId", endpoint.Load)
	r.GET("/timesheets/periods/:periodId/export", endpoint.Export)
	r.GET("/timesheets/resolve", endpoint.Resolve)
	r.POST("/timesheets/search", endpoint.Search)
	r.GET("/timesheets/clocked-in", endpoint.ClockedIn)
	r.GET("/timesheets/clocked-in/stream", endpoint.StreamClockedIn)
	r.GET("/timesheets/reports", endpoint.Reports)
	r.GET("/timesheets/reports/:name", endpoint.DownloadReport)
	r.POST("/timesheets/entries", endpoint.CreateManualEntry)
	r.PUT("/timesheets/entries/:id", endpoint.Update)
	r.DELETE("/timesheets/entries/:id", endpoint.Delete)
	r.GET("/timesheets/entries/:id/history", endpoint.AuditTrail)
}

type PeriodDTO struct {
	ID      string `json:"id"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Display string `json:"display"`
	Current bool   `json:"current"`
}

func periodDTO(p timeclock.PayPeriod, currentID string) PeriodDTO {
	return PeriodDTO{
		ID:      p.ID,
		Start:   p.Start.Format("2006-01-02"),
		End:     p.End.Format("2006-01-02"),
		Display: p.Display(),
		Current: p.ID == currentID,
	}
}

// Periods lists every pay period from the epoch through today, oldest first.
func (ep *Endpoint) Periods(c *gin.Context) {
	currentID := timeclock.CurrentPayPeriod().ID
	periods := utils.Map(timeclock.PayPeriods(utils.ChicagoNow()), func(p timeclock.PayPeriod) PeriodDTO {
		return periodDTO(p, currentID)
	})
	c.JSON(http.StatusOK, web.NewSearchResponse(periods, int64(len(periods))))
}

// Resolve returns the pay period containing the given date, defaulting to now.
func (ep *Endpoint) Resolve(c *gin.Context) {
	at := utils.ChicagoNow()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, utils.Chicago)
		if err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid date, expected yyyy-MM-dd"))
			return
		}
		at = parsed
	}

	period := timeclock.PayPeriodFor(at)
	c.JSON(http.StatusOK, web.NewSuccessResponse(periodDTO(period, timeclock.CurrentPayPeriod().ID)))
}

type SearchParams struct {
	StartDate *web.DateOnly `json:"startDate" binding:"required"`
	EndDate   *web.DateOnly `json:"endDate" binding:"required"`
	Employees []string      `json:"employees"`
}

// Search lists entries whose clock-in falls in a custom date range, newest
// first, regardless of pay period boundaries.
func (ep *Endpoint) Search(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	entries, err := ep.engine.SearchEntries(c.Request.Context(), timeclock.SearchParams{
		Start:       params.StartDate.Time,
		End:         params.EndDate.Time.AddDate(0, 0, 1), // inclusive end date
		EmployeeIDs: params.Employees,
	})
	if errors.Is(err, timeclock.ErrInvalidTimeRange) {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("End date must not be before start date"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(entries, int64(len(entries))))
}

// Load returns the grouped timesheet for a period. The optional employeeId
// query narrows the view to one employee.
func (ep *Endpoint) Load(c *gin.Context) {
	periodID := c.Param("periodId")

	timesheet, err := ep.engine.LoadPeriod(c.Request.Context(), periodID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	if employeeID := c.Query("employeeId"); employeeID != "" {
		timesheet = timesheet.Filter(employeeID)
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(timesheet))
}
