package prayer

import (
	"fmt"
	"strconv"
	"strings"
)

// StripZone drops a trailing timezone annotation such as " (PKT)" and
// returns only the "HH:MM" part.
func StripZone(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// To12Hour converts "HH:MM" to "h:MM AM|PM". The minutes are passed through
// exactly as received.
func To12Hour(t string) (string, error) {
	hours, minutes, ok := strings.Cut(t, ":")
	if !ok || len(hours) < 1 || len(hours) > 2 || len(minutes) != 2 || !digits(hours) || !digits(minutes) {
		return "", fmt.Errorf("malformed time %q", t)
	}
	h24, err := strconv.Atoi(hours)
	if err != nil || h24 < 0 || h24 > 23 {
		return "", fmt.Errorf("malformed hour in %q", t)
	}
	if m, err := strconv.Atoi(minutes); err != nil || m < 0 || m > 59 {
		return "", fmt.Errorf("malformed minutes in %q", t)
	}

	period := "AM"
	if h24 >= 12 {
		period = "PM"
	}
	h12 := h24 % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%s %s", h12, minutes, period), nil
}

// FormatTime is To12Hour applied to a raw service value.
func FormatTime(raw string) (string, error) {
	return To12Hour(StripZone(raw))
}

// digits reports whether s is made only of ASCII digits. strconv alone
// would also take a sign.
func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
