package endpoints

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
	"github.com/Nixie-Tech-LLC/minaret/internal/prefs"
	"github.com/Nixie-Tech-LLC/minaret/internal/site"
)

// PageData is what every page template receives.
type PageData struct {
	Page        string
	Nav         []site.NavLink
	Preferences model.Preferences
	ContainerID string
	// Loading card filled in by the page script from /api/site/namaz;
	// empty on pages without the prayer-times card
	Namaz template.HTML
}

type PagesController struct {
	tmpl   *template.Template
	prayer *PrayerController
	prefs  *PreferencesController
	// pages that carry the prayer-times card
	namazPages map[string]bool
}

func NewPagesController(tmpl *template.Template, pc *PrayerController, prefs *PreferencesController, namazPages ...string) *PagesController {
	set := make(map[string]bool, len(namazPages))
	for _, p := range namazPages {
		set[p] = true
	}
	return &PagesController{tmpl: tmpl, prayer: pc, prefs: prefs, namazPages: set}
}

// PagesModule mounts "/" plus one route per "*.html" template.
func PagesModule(ctl *PagesController) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.RAW(http.MethodGet, "/", ctl.servePage("index.html"))
		for _, t := range ctl.tmpl.Templates() {
			if name := t.Name(); strings.HasSuffix(name, ".html") {
				c.RAW(http.MethodGet, "/"+name, ctl.servePage(name))
			}
		}
	})
}

func (p *PagesController) servePage(page string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		p.render(ctx, page)
	}
}

func (p *PagesController) render(ctx *gin.Context, page string) {
	if p.tmpl.Lookup(page) == nil {
		ctx.String(http.StatusNotFound, "page not found")
		return
	}

	data := PageData{
		Page:        page,
		Nav:         site.NavFor(ctx.Request.URL.Path),
		ContainerID: prayer.ContainerID,
	}
	if visitor, ok := middleware.GetVisitorID(ctx); ok {
		data.Preferences = p.prefs.Resolve(ctx.Request.Context(), visitor, systemPrefersLight(ctx))
	} else {
		data.Preferences = model.Preferences{
			Language: prefs.ResolveLanguage(""),
			Theme:    prefs.ResolveTheme("", systemPrefersLight(ctx)),
		}
	}
	// the page never waits on the timings service
	if p.namazPages[page] {
		loading, err := p.prayer.loadingFragment()
		if err != nil {
			log.Error().Err(err).Str("page", page).Msg("failed to render prayer card")
		}
		data.Namaz = loading
	}

	ctx.HTML(http.StatusOK, page, data)
}
