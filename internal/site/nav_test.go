package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive("/", "index.html"))
	assert.True(t, IsActive("", "/index.html"))
	assert.True(t, IsActive("/index.html", "/"))
	assert.True(t, IsActive("/about.html", "about.html"))
	assert.True(t, IsActive("/pages/about.html", "/about.html?ref=nav"))
	assert.False(t, IsActive("/about.html", "/contact.html"))
	assert.False(t, IsActive("/", "#contact"))
}

func TestLinkAttrs(t *testing.T) {
	assert.Equal(t, `target="_blank" rel="noopener noreferrer"`, string(LinkAttrs("https://wa.me/923001234567")))
	assert.Equal(t, `target="_blank" rel="noopener noreferrer"`, string(LinkAttrs("whatsapp://send?phone=923001234567")))
	assert.Equal(t, "", string(LinkAttrs("/donate.html")))
	assert.Equal(t, "", string(LinkAttrs("#contact")))
	assert.Equal(t, "", string(LinkAttrs("mailto:info@example.org")))
}

func TestNavFor(t *testing.T) {
	nav := NavFor("/news.html")
	active := 0
	for _, l := range nav {
		if l.Active {
			active++
			assert.Equal(t, "News", l.Label)
		}
	}
	assert.Equal(t, 1, active)
	assert.False(t, Navigation[5].Active, "NavFor must not mutate Navigation")
}
