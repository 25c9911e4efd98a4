package helper

import (
	"fmt"
	"strings"
)

// BuildUnclosedMessage renders the end-of-day reminder listing employees who
// forgot to clock out.
func BuildUnclosedMessage(names []string, dashboardURL string) string {
	return fmt.Sprintf(`UNCLOSED TIME ENTRIES

%d employee(s) forgot to clock out:
%s

Please review and close manually:
%s`,
		len(names),
		strings.Join(names, ", "),
		dashboardURL)
}
