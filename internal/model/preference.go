package model

// Preferences is the resolved per-visitor UI state.
type Preferences struct {
	Language string `json:"preferredLanguage"`
	Theme    string `json:"theme"`
}
