package main

import (
	"bytes"
	"database/sql"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	siteapi "github.com/Nixie-Tech-LLC/minaret/internal/http/api/site/endpoints"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
	"github.com/Nixie-Tech-LLC/minaret/internal/site"
)

func TestLoadTemplates(t *testing.T) {
	tmpl, err := LoadTemplates("../../web/templates")
	require.NoError(t, err)

	for _, name := range []string{"index.html", "contact.html", "head", "foot"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "index.html", siteapi.PageData{
		Page:        "index.html",
		Nav:         site.NavFor("/"),
		Preferences: model.Preferences{Language: "ur", Theme: "light"},
		ContainerID: prayer.ContainerID,
		Namaz:       "<div class=\"namaz-list\"></div>",
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `<html lang="ur" data-theme="light">`)
	assert.Contains(t, out, `id="namaz-container" data-src="/api/site/namaz"><div class="namaz-list"></div>`)
	assert.Contains(t, out, `rel="noopener noreferrer"`)
}

func TestEveryNavEntryHasATemplate(t *testing.T) {
	tmpl, err := LoadTemplates("../../web/templates")
	require.NoError(t, err)

	for _, link := range site.Navigation {
		name := strings.TrimPrefix(link.Href, "/")
		assert.NotNil(t, tmpl.Lookup(name), "%s links to %s", link.Label, link.Href)
	}
}

func TestSameSectionAnchorsResolve(t *testing.T) {
	tmpl, err := LoadTemplates("../../web/templates")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "index.html", siteapi.PageData{
		Nav:         site.NavFor("/"),
		Preferences: model.Preferences{Language: "en", Theme: "dark"},
		ContainerID: prayer.ContainerID,
	}))
	out := buf.String()

	anchors := regexp.MustCompile(`class="nav-link" href="#([a-z-]+)"`).FindAllStringSubmatch(out, -1)
	require.NotEmpty(t, anchors)
	for _, a := range anchors {
		section := regexp.MustCompile(`<section class="section[^"]*" id="` + a[1] + `"`)
		assert.Regexp(t, section, out, "anchor #%s has no section", a[1])
	}
}

func TestLoadTemplatesMissingDir(t *testing.T) {
	_, err := LoadTemplates(t.TempDir())
	assert.Error(t, err)
}

type accounts struct {
	byEmail map[string]*model.User
}

func (a *accounts) CreateUser(email, hashedPassword string, name *string) (int, error) {
	id := len(a.byEmail) + 1
	a.byEmail[email] = &model.User{ID: id, Email: email, HashedPassword: hashedPassword, Name: name}
	return id, nil
}

func (a *accounts) GetUserByEmail(email string) (*model.User, error) {
	if u, ok := a.byEmail[email]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func TestBootstrapAdmin(t *testing.T) {
	store := &accounts{byEmail: map[string]*model.User{}}

	require.NoError(t, bootstrapAdmin(store, "", ""))
	assert.Empty(t, store.byEmail)

	require.NoError(t, bootstrapAdmin(store, "imam@example.com", "bismillah"))
	require.Len(t, store.byEmail, 1)
	first := store.byEmail["imam@example.com"]
	assert.True(t, middleware.CheckPassword(first.HashedPassword, "bismillah"))

	// a second start leaves the existing account alone
	require.NoError(t, bootstrapAdmin(store, "imam@example.com", "changed"))
	assert.Same(t, first, store.byEmail["imam@example.com"])
}
