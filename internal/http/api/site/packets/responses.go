package packets

// RESPONSES FOR /api/site/* and /contact

type PrayerResponse struct {
	Name string `json:"name"`
	Time string `json:"time"`
	Raw  string `json:"raw"`
}

type PrayerTimesResponse struct {
	City      string           `json:"city"`
	Country   string           `json:"country"`
	Gregorian string           `json:"gregorian"`
	Hijri     string           `json:"hijri"`
	Prayers   []PrayerResponse `json:"prayers"`
}

type PreferencesResponse struct {
	Language string `json:"preferredLanguage"`
	Theme    string `json:"theme"`
}

// ContactResponse is read by the contact page script as-is.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
