package aladhan

// Response is the envelope returned by the timingsByCity endpoint.
// Data is nil when the service omits it, which callers treat as failure.
type Response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   *Data  `json:"data"`
}

type Data struct {
	// keyed by prayer name; values look like "05:12" or "05:12 (PKT)"
	Timings map[string]string `json:"timings"`
	Date    *DateInfo         `json:"date"`
}

type DateInfo struct {
	Readable string     `json:"readable"`
	Hijri    *HijriDate `json:"hijri"`
}

type HijriDate struct {
	Date  string     `json:"date"`
	Day   string     `json:"day"`
	Month HijriMonth `json:"month"`
	Year  string     `json:"year"`
}

type HijriMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
	Ar     string `json:"ar"`
}

// Location is the fixed place the schedule is computed for.
type Location struct {
	City    string
	Country string
}

// Calculation selects the astronomical convention used server-side.
// Method 1 is University of Islamic Sciences, Karachi; School 1 is Hanafi.
type Calculation struct {
	Method int
	School int
}
