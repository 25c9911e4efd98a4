package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"westsiderising.org/timeclock/utils"
)

func TestLocalDateTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "with seconds",
			input: `"2026-01-15T14:30:45"`,
			want:  time.Date(2026, time.January, 15, 14, 30, 45, 0, utils.Chicago),
		},
		{
			name:  "without seconds",
			input: `"2026-01-15T14:30"`,
			want:  time.Date(2026, time.January, 15, 14, 30, 0, 0, utils.Chicago),
		},
		{
			name:  "empty",
			input: `""`,
			want:  time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dt LocalDateTime
			require.NoError(t, json.Unmarshal([]byte(tt.input), &dt))
			assert.True(t, tt.want.Equal(dt.Time), "got %v, want %v", dt.Time, tt.want)
		})
	}

	var dt LocalDateTime
	assert.Error(t, json.Unmarshal([]byte(`"15/01/2026"`), &dt))
}

func TestLocalDateTimeMarshal(t *testing.T) {
	dt := LocalDateTime{Time: time.Date(2026, time.January, 15, 14, 30, 0, 0, utils.Chicago)}
	out, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2026-01-15T14:30:00"`, string(out))

	out, err = json.Marshal(LocalDateTime{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(out))
}

func TestDateOnlyUnmarshal(t *testing.T) {
	var d DateOnly
	require.NoError(t, json.Unmarshal([]byte(`"2026-01-15"`), &d))
	assert.True(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, utils.Chicago).Equal(d.Time))

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.Time.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"Jan 15"`), &d))
}
