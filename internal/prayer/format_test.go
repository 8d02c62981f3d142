package prayer

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTo12Hour(t *testing.T) {
	cases := map[string]string{
		"00:05": "12:05 AM",
		"00:00": "12:00 AM",
		"01:30": "1:30 AM",
		"11:59": "11:59 AM",
		"12:00": "12:00 PM",
		"12:30": "12:30 PM",
		"13:07": "1:07 PM",
		"23:45": "11:45 PM",
	}
	for in, want := range cases {
		got, err := To12Hour(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestTo12HourEveryMinute(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			in := fmt.Sprintf("%02d:%02d", h, m)
			got, err := To12Hour(in)
			require.NoError(t, err, in)

			clock, period, ok := strings.Cut(got, " ")
			require.True(t, ok, got)
			hour, minutes, _ := strings.Cut(clock, ":")
			h12, err := strconv.Atoi(hour)
			require.NoError(t, err, got)

			assert.GreaterOrEqual(t, h12, 1, in)
			assert.LessOrEqual(t, h12, 12, in)
			assert.Equal(t, fmt.Sprintf("%02d", m), minutes, in)
			if h >= 12 {
				assert.Equal(t, "PM", period, in)
			} else {
				assert.Equal(t, "AM", period, in)
			}
		}
	}
}

func TestTo12HourRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "5", "24:00", "-1:00", "ab:cd", "05:5", "05:60", "05:123", "+5:30", "+05:30", " 5:30", "005:30", "05:+3", "5:-1"} {
		_, err := To12Hour(in)
		assert.Error(t, err, in)
	}
}

func TestStripZone(t *testing.T) {
	assert.Equal(t, "05:12", StripZone("05:12 (PKT)"))
	assert.Equal(t, "05:12", StripZone("05:12"))
	assert.Equal(t, "05:12", StripZone("  05:12   (+05)"))
	assert.Equal(t, "", StripZone("   "))
}

func TestFormatTimeStripsZone(t *testing.T) {
	got, err := FormatTime("05:12 (PKT)")
	require.NoError(t, err)
	assert.Equal(t, "5:12 AM", got)

	got, err = FormatTime("17:48 (PKT)")
	require.NoError(t, err)
	assert.Equal(t, "5:48 PM", got)
}
