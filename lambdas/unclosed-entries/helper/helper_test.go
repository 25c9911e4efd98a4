package helper

import (
	"strings"
	"testing"
)

func TestBuildUnclosedMessage(t *testing.T) {
	message := BuildUnclosedMessage([]string{"Maria Lopez", "James Carter"}, "westsiderising.org/time-clock.html")

	if !strings.HasPrefix(message, "UNCLOSED TIME ENTRIES") {
		t.Errorf("unexpected message header: %q", message)
	}
	if !strings.Contains(message, "2 employee(s) forgot to clock out:") {
		t.Errorf("message missing count line:\n%s", message)
	}
	if !strings.Contains(message, "Maria Lopez, James Carter") {
		t.Errorf("message missing names:\n%s", message)
	}
}
