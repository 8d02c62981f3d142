// Package prefs stores the per-visitor UI choices that the site used to keep
// in browser local storage.
package prefs

import (
	"context"
	"errors"
	"fmt"
)

type Key string

const (
	KeyLanguage Key = "preferredLanguage"
	KeyTheme    Key = "theme"
)

const (
	LanguageEnglish = "en"
	LanguageUrdu    = "ur"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

var (
	ErrUnknownKey   = errors.New("unknown preference key")
	ErrInvalidValue = errors.New("invalid preference value")
)

var allowed = map[Key][]string{
	KeyLanguage: {LanguageEnglish, LanguageUrdu},
	KeyTheme:    {ThemeLight, ThemeDark},
}

// Validate checks that key is known and value is one of its options.
func Validate(key Key, value string) error {
	opts, ok := allowed[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	for _, o := range opts {
		if o == value {
			return nil
		}
	}
	return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
}

// Store persists preferences per visitor.
type Store interface {
	Get(ctx context.Context, visitor string, key Key) (string, bool, error)
	Set(ctx context.Context, visitor string, key Key, value string) error
}
