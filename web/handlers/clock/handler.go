package clock

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	timeclock "westsiderising.org/timeclock/timeclock/core"
	web "westsiderising.org/timeclock/web/common"
	"westsiderising.org/timeclock/web/middlewares"
)

type Endpoint struct {
	engine *timeclock.Engine
}

func Register(r *gin.RouterGroup, engine *timeclock.Engine) {
	endpoint := &Endpoint{engine: engine}
	r.POST("/clock/in", endpoint.ClockIn)
	r.POST("/clock/out", endpoint.ClockOut)
	r.GET("/clock/status", endpoint.Status)
	r.GET("/clock/summary", endpoint.Summary)
	r.GET("/clock/entries", endpoint.RecentEntries)
}

func (ep *Endpoint) ClockIn(c *gin.Context) {
	identity := middlewares.GetIdentity(c)

	name := identity.Name
	if name == "" {
		name = strings.SplitN(identity.Email, "@", 2)[0]
	}

	entry, err := ep.engine.ClockIn(c.Request.Context(), identity.EmployeeID, name)
	if err != nil {
		if errors.Is(err, timeclock.ErrAlreadyClockedIn) {
			c.JSON(http.StatusConflict, web.NewErrorResponse("You are already clocked in"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(entry))
}

func (ep *Endpoint) ClockOut(c *gin.Context) {
	identity := middlewares.GetIdentity(c)

	entry, err := ep.engine.ClockOut(c.Request.Context(), identity.EmployeeID)
	if err != nil {
		if errors.Is(err, timeclock.ErrNotClockedIn) {
			c.JSON(http.StatusConflict, web.NewErrorResponse("You are not clocked in"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(entry))
}

func (ep *Endpoint) Status(c *gin.Context) {
	identity := middlewares.GetIdentity(c)

	status, err := ep.engine.Status(c.Request.Context(), identity.EmployeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(status))
}

// Summary returns today/week/period hour totals. A store failure degrades to
// a zeroed display rather than an error.
func (ep *Endpoint) Summary(c *gin.Context) {
	identity := middlewares.GetIdentity(c)

	summary, err := ep.engine.HoursSummary(c.Request.Context(), identity.EmployeeID)
	if err != nil {
		summary = timeclock.HoursSummary{}
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(summary))
}

func (ep *Endpoint) RecentEntries(c *gin.Context) {
	identity := middlewares.GetIdentity(c)

	limit := 10
	if val, err := strconv.Atoi(c.Query("limit")); err == nil && val > 0 {
		limit = val
	}

	entries, err := ep.engine.RecentEntries(c.Request.Context(), identity.EmployeeID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(entries, int64(len(entries))))
}
