package prefs

// ResolveTheme picks the theme to show: an explicit "light" wins, no saved
// value defers to the system preference, and everything else is dark.
func ResolveTheme(saved string, systemPrefersLight bool) string {
	if saved == ThemeLight || (saved == "" && systemPrefersLight) {
		return ThemeLight
	}
	return ThemeDark
}

// ToggleTheme returns the opposite of current.
func ToggleTheme(current string) string {
	if current == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ResolveLanguage falls back to English for anything unset or unknown.
func ResolveLanguage(saved string) string {
	if saved == LanguageUrdu {
		return LanguageUrdu
	}
	return LanguageEnglish
}
