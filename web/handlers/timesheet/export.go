package timesheet

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	timeclock "westsiderising.org/timeclock/timeclock/core"
	web "westsiderising.org/timeclock/web/common"
)

// Archiver keeps a copy of every generated report, typically on S3, and
// serves them back for the report history view. A nil archiver disables
// archival.
type Archiver interface {
	WriteFile(ctx context.Context, name string, data []byte) error
	ReadFile(ctx context.Context, name string, out io.Writer) error
	ListFiles(ctx context.Context) ([]string, error)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export downloads the period report. format=csv (default) or format=xlsx;
// the optional employeeId query narrows the report to one employee.
func (ep *Endpoint) Export(c *gin.Context) {
	periodID := c.Param("periodId")

	timesheet, err := ep.engine.LoadPeriod(c.Request.Context(), periodID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	if employeeID := c.Query("employeeId"); employeeID != "" {
		timesheet = timesheet.Filter(employeeID)
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		var buf bytes.Buffer
		if err := timeclock.WriteCSV(&buf, timesheet); err != nil {
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
			return
		}
		ep.deliver(c, timeclock.ReportFileName(periodID, "csv"), "text/csv", buf.Bytes())

	case "xlsx":
		workbook, err := timeclock.BuildWorkbook(timesheet)
		if err != nil {
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
			return
		}
		buf, err := workbook.WriteToBuffer()
		if err != nil {
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
			return
		}
		ep.deliver(c, timeclock.ReportFileName(periodID, "xlsx"), xlsxContentType, buf.Bytes())

	default:
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Unsupported format, expected csv or xlsx"))
	}
}

// Reports lists previously archived report files.
func (ep *Endpoint) Reports(c *gin.Context) {
	if ep.archive == nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Report archival is not configured"))
		return
	}

	names, err := ep.archive.ListFiles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSearchResponse(names, int64(len(names))))
}

// DownloadReport re-downloads an archived report by file name.
func (ep *Endpoint) DownloadReport(c *gin.Context) {
	if ep.archive == nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Report archival is not configured"))
		return
	}

	name := c.Param("name")

	var buf bytes.Buffer
	if err := ep.archive.ReadFile(c.Request.Context(), name, &buf); err != nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Report not found"))
		return
	}

	contentType := "text/csv"
	if strings.HasSuffix(name, ".xlsx") {
		contentType = xlsxContentType
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (ep *Endpoint) deliver(c *gin.Context, name, contentType string, data []byte) {
	if ep.archive != nil {
		if err := ep.archive.WriteFile(c.Request.Context(), name, data); err != nil {
			fmt.Printf("failed to archive report %s: %v\n", name, err)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, contentType, data)
}
