package site

import (
	"html/template"
	"net/url"
	"strings"
)

const indexPage = "index.html"

// pageName is the last path segment, or index.html for the site root.
func pageName(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if i := strings.LastIndex(p, "/"); i >= 0 {
		p = p[i+1:]
	}
	if p == "" {
		return indexPage
	}
	return p
}

// IsActive reports whether a nav link points at the page being served.
// Same-page anchors are never active here; the page script highlights
// them from the scroll position.
func IsActive(currentPath, href string) bool {
	if strings.HasPrefix(href, "#") {
		return false
	}
	return pageName(currentPath) == pageName(href)
}

// IsExternal reports whether href leaves the site. WhatsApp links count.
func IsExternal(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	if u.Scheme == "whatsapp" {
		return true
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// LinkAttrs returns the extra anchor attributes for href: external links
// open in a new tab without handing the opener to the target.
func LinkAttrs(href string) template.HTMLAttr {
	if IsExternal(href) {
		return `target="_blank" rel="noopener noreferrer"`
	}
	return ""
}

// NavLink is one entry in the top navigation.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// Navigation is the site menu in display order.
var Navigation = []NavLink{
	{Label: "Home", Href: "/index.html"},
	{Label: "About", Href: "/about.html"},
	{Label: "Education", Href: "/education.html"},
	{Label: "Centres", Href: "/centres.html"},
	{Label: "Donate", Href: "/donate.html"},
	{Label: "News", Href: "/news.html"},
	{Label: "Contact", Href: "/contact.html"},
}

// NavFor marks the active entry of Navigation for currentPath.
func NavFor(currentPath string) []NavLink {
	out := make([]NavLink, len(Navigation))
	for i, l := range Navigation {
		l.Active = IsActive(currentPath, l.Href)
		out[i] = l
	}
	return out
}

// FuncMap exposes the helpers to page templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"linkAttrs": LinkAttrs,
		"isActive":  IsActive,
	}
}
