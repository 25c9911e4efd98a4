package timesheet

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	timeclock "westsiderising.org/timeclock/timeclock/core"
	"westsiderising.org/timeclock/utils"
	web "westsiderising.org/timeclock/web/common"
	"westsiderising.org/timeclock/web/middlewares"
)

type EditDTO struct {
	ClockIn  *web.LocalDateTime `json:"clockIn" binding:"required"`
	ClockOut *web.LocalDateTime `json:"clockOut"`
	Reason   string             `json:"reason" binding:"required"`
}

// Update corrects an entry's times. An omitted or empty clockOut reopens the
// entry.
func (ep *Endpoint) Update(c *gin.Context) {
	var dto EditDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	params := timeclock.EditParams{
		ClockIn: dto.ClockIn.Time,
		Reason:  dto.Reason,
		Editor:  editorFrom(c),
	}
	if dto.ClockOut != nil && !dto.ClockOut.Time.IsZero() {
		params.ClockOut = utils.Ptr(dto.ClockOut.Time)
	}

	entry, err := ep.engine.EditEntry(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(entry))
}

type ManualEntryDTO struct {
	EmployeeID   string             `json:"employeeId" binding:"required"`
	EmployeeName string             `json:"employeeName" binding:"required"`
	ClockIn      *web.LocalDateTime `json:"clockIn" binding:"required"`
	ClockOut     *web.LocalDateTime `json:"clockOut" binding:"required"`
	Reason       string             `json:"reason" binding:"required"`
}

// CreateManualEntry back-fills a completed session for an employee who never
// clocked through the live flow.
func (ep *Endpoint) CreateManualEntry(c *gin.Context) {
	var dto ManualEntryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	entry, err := ep.engine.CreateManualEntry(c.Request.Context(), timeclock.ManualEntryParams{
		EmployeeID:   dto.EmployeeID,
		EmployeeName: dto.EmployeeName,
		ClockIn:      dto.ClockIn.Time,
		ClockOut:     dto.ClockOut.Time,
		Reason:       dto.Reason,
		Editor:       editorFrom(c),
	})
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(entry))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	if err := ep.engine.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		respondEntryError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(nil))
}

func (ep *Endpoint) AuditTrail(c *gin.Context) {
	history, err := ep.engine.AuditTrail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondEntryError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewSearchResponse(history, int64(len(history))))
}

func editorFrom(c *gin.Context) timeclock.Editor {
	identity := middlewares.GetIdentity(c)
	name := identity.Name
	if name == "" {
		name = strings.SplitN(identity.Email, "@", 2)[0]
	}
	return timeclock.Editor{ID: identity.EmployeeID, Name: name}
}

func respondEntryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, timeclock.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Time entry not found"))
	case errors.Is(err, timeclock.ErrMissingReason):
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("A reason for the change is required"))
	case errors.Is(err, timeclock.ErrClockInRequired):
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("A clock-in time is required"))
	case errors.Is(err, timeclock.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Clock-out must be after clock-in"))
	default:
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
	}
}
