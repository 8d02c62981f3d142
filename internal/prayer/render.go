package prayer

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"github.com/Nixie-Tech-LLC/minaret/internal/model"
)

// ContainerID is the element the widget owns on every page.
const ContainerID = "namaz-container"

var icons = map[string]string{
	"Fajr":    "fa-cloud-sun",
	"Dhuhr":   "fa-sun",
	"Asr":     "fa-cloud-sun",
	"Maghrib": "fa-cloud-moon",
	"Isha":    "fa-moon",
}

var fragments = template.Must(template.New("namaz").Funcs(template.FuncMap{
	"icon": func(name string) string { return icons[name] },
}).Parse(`
{{- define "loading" -}}
<div class="loading-namaz">
    <i class="fas fa-spinner fa-spin"></i> Loading Prayer Times...
</div>
{{- end -}}

{{- define "failed" -}}
<div class="loading-namaz namaz-error">
    <i class="fas fa-exclamation-circle"></i> Unable to load prayer times.<br>
    <small>Please check your internet connection.</small>
</div>
{{- end -}}

{{- define "loaded" -}}
<div class="namaz-card-header">
    <img src="{{.LogoDark}}" class="namaz-logo logo-dark" alt="">
    <img src="{{.LogoLight}}" class="namaz-logo logo-light" alt="">
    <div class="namaz-date">{{.State.Calendar.Gregorian}}</div>
    <div class="namaz-hijri">{{.State.Calendar.Hijri}}</div>
</div>
<div class="namaz-list">
{{- range .State.Schedule}}
    <div class="namaz-row">
        <div class="namaz-name"><i class="fas {{icon .Name}}"></i> {{.Name}}</div>
        <div class="namaz-time">{{.Time}}</div>
    </div>
{{- end}}
</div>
{{- end -}}
`))

// Logos are the two header images, swapped by the theme stylesheet.
type Logos struct {
	Dark  string
	Light string
}

var DefaultLogos = Logos{Dark: "/static/logo.png", Light: "/static/whitelogobg.png"}

// Fragment renders the container body for a state.
func Fragment(state model.WidgetState, logos Logos) (template.HTML, error) {
	var name string
	switch state.Status {
	case model.WidgetLoading:
		name = "loading"
	case model.WidgetLoaded:
		name = "loaded"
	case model.WidgetFailed:
		name = "failed"
	default:
		return "", fmt.Errorf("unknown widget status %d", state.Status)
	}

	var buf bytes.Buffer
	err := fragments.ExecuteTemplate(&buf, name, struct {
		State     model.WidgetState
		LogoDark  string
		LogoLight string
	}{state, logos.Dark, logos.Light})
	if err != nil {
		return "", fmt.Errorf("render %s fragment: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// Container is a Renderer that keeps the current content of the widget's
// element, replacing it wholesale on each Render.
type Container struct {
	logos Logos

	mu      sync.Mutex
	content template.HTML
	states  []model.WidgetStatus
}

func NewContainer(logos Logos) *Container {
	return &Container{logos: logos}
}

func (c *Container) Render(state model.WidgetState) error {
	html, err := Fragment(state, c.logos)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = html
	c.states = append(c.states, state.Status)
	return nil
}

// Content is what the element currently shows.
func (c *Container) Content() template.HTML {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}

// Transitions lists every status rendered so far, oldest first.
func (c *Container) Transitions() []model.WidgetStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.WidgetStatus, len(c.states))
	copy(out, c.states)
	return out
}
