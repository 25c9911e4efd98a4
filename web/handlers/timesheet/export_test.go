package timesheet

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	timeclock "westsiderising.org/timeclock/timeclock/core"
	"westsiderising.org/timeclock/timeclock/store"
)

type stubArchive struct {
	files map[string][]byte
}

func newStubArchive() *stubArchive {
	return &stubArchive{files: make(map[string][]byte)}
}

func (s *stubArchive) WriteFile(_ context.Context, name string, data []byte) error {
	s.files[name] = data
	return nil
}

func (s *stubArchive) ReadFile(_ context.Context, name string, out io.Writer) error {
	data, ok := s.files[name]
	if !ok {
		return errors.New("no such key")
	}
	_, err := out.Write(data)
	return err
}

func (s *stubArchive) ListFiles(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func newRouter(archive Archiver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r.Group(""), timeclock.NewEngine(store.NewMemory(), nil), archive)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestExportArchivesReport(t *testing.T) {
	archive := newStubArchive()
	r := newRouter(archive)

	w := get(r, "/timesheets/periods/2026-01-06/export")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "westside-rising-timesheet-2026-01-06.csv")

	archived, ok := archive.files["westside-rising-timesheet-2026-01-06.csv"]
	require.True(t, ok, "export did not archive the report")
	assert.Equal(t, w.Body.Bytes(), archived)
}

func TestReports(t *testing.T) {
	archive := newStubArchive()
	archive.files["westside-rising-timesheet-2026-01-06.csv"] = []byte("a")
	archive.files["westside-rising-timesheet-2026-01-20.xlsx"] = []byte("b")
	r := newRouter(archive)

	w := get(r, "/timesheets/reports")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "westside-rising-timesheet-2026-01-06.csv")
	assert.Contains(t, w.Body.String(), "westside-rising-timesheet-2026-01-20.xlsx")
}

func TestDownloadReport(t *testing.T) {
	archive := newStubArchive()
	archive.files["westside-rising-timesheet-2026-01-06.csv"] = []byte("report body")
	r := newRouter(archive)

	w := get(r, "/timesheets/reports/westside-rising-timesheet-2026-01-06.csv")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "report body", w.Body.String())
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "westside-rising-timesheet-2026-01-06.csv")

	w = get(r, "/timesheets/reports/no-such-report.csv")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReportsWithoutArchive(t *testing.T) {
	r := newRouter(nil)

	assert.Equal(t, http.StatusNotFound, get(r, "/timesheets/reports").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/timesheets/reports/x.csv").Code)
}
