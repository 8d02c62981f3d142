package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(KeyLanguage, "ur"))
	assert.NoError(t, Validate(KeyTheme, "dark"))
	assert.ErrorIs(t, Validate(KeyTheme, "sepia"), ErrInvalidValue)
	assert.ErrorIs(t, Validate(Key("fontSize"), "large"), ErrUnknownKey)
}

func TestResolveTheme(t *testing.T) {
	assert.Equal(t, ThemeLight, ResolveTheme("light", false))
	assert.Equal(t, ThemeLight, ResolveTheme("", true))
	assert.Equal(t, ThemeDark, ResolveTheme("dark", true))
	assert.Equal(t, ThemeDark, ResolveTheme("", false))
}

func TestToggleTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, ToggleTheme(ThemeLight))
	assert.Equal(t, ThemeLight, ToggleTheme(ThemeDark))
	assert.Equal(t, ThemeLight, ToggleTheme(""))
}

func TestResolveLanguage(t *testing.T) {
	assert.Equal(t, LanguageUrdu, ResolveLanguage("ur"))
	assert.Equal(t, LanguageEnglish, ResolveLanguage(""))
	assert.Equal(t, LanguageEnglish, ResolveLanguage("fr"))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, found, err := s.Get(ctx, "visitor-1", KeyTheme)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "visitor-1", KeyTheme, ThemeLight))
	v, found, err := s.Get(ctx, "visitor-1", KeyTheme)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, ThemeLight, v)

	_, found, _ = s.Get(ctx, "visitor-2", KeyTheme)
	assert.False(t, found, "preferences are per visitor")

	assert.ErrorIs(t, s.Set(ctx, "visitor-1", KeyLanguage, "de"), ErrInvalidValue)
	_, _, err = s.Get(ctx, "visitor-1", Key("nope"))
	assert.ErrorIs(t, err, ErrUnknownKey)
}
