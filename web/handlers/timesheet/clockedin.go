package timesheet

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	web "westsiderising.org/timeclock/web/common"
)

const streamInterval = 5 * time.Second

// ClockedIn returns everyone currently on the clock with elapsed durations.
func (ep *Endpoint) ClockedIn(c *gin.Context) {
	rows, err := ep.engine.ClockedIn(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSearchResponse(rows, int64(len(rows))))
}

// StreamClockedIn pushes the clocked-in snapshot as server-sent events until
// the client disconnects.
func (ep *Endpoint) StreamClockedIn(c *gin.Context) {
	feed := ep.engine.WatchClockedIn(c.Request.Context(), streamInterval)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	c.Stream(func(w io.Writer) bool {
		rows, ok := <-feed
		if !ok {
			return false
		}
		c.SSEvent("clocked-in", rows)
		return true
	})
}
