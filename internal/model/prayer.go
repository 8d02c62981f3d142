package model

// Prayer is one row of the daily schedule.
type Prayer struct {
	Name string // "Fajr", "Dhuhr", ...
	Raw  string // "05:12", 24-hour as received with any zone stripped
	Time string // "5:12 AM"
}

// PrayerSchedule always holds the five canonical prayers in order.
type PrayerSchedule []Prayer

// CalendarContext is the date header shown above the schedule.
type CalendarContext struct {
	Gregorian  string // "Friday, October 16, 2026"
	HijriDay   string
	HijriMonth string
	HijriYear  string
}

// Hijri returns the Hijri date as "DD Month YYYY".
func (c CalendarContext) Hijri() string {
	return c.HijriDay + " " + c.HijriMonth + " " + c.HijriYear
}

type WidgetStatus int

const (
	WidgetLoading WidgetStatus = iota
	WidgetLoaded
	WidgetFailed
)

func (s WidgetStatus) String() string {
	switch s {
	case WidgetLoading:
		return "loading"
	case WidgetLoaded:
		return "loaded"
	case WidgetFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// WidgetState is everything the prayer-times container renders from.
// Schedule and Calendar are only meaningful when Status is WidgetLoaded.
type WidgetState struct {
	Status   WidgetStatus
	Schedule PrayerSchedule
	Calendar CalendarContext
}
