package endpoints

import (
	"context"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/minaret/internal/aladhan"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api/site/packets"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

// PrayerController builds a fresh widget per request, so nothing is shared
// or cached between page views.
type PrayerController struct {
	fetcher  prayer.Fetcher
	location aladhan.Location
	calc     aladhan.Calculation
	logos    prayer.Logos
	opts     []prayer.Option
}

func NewPrayerController(f prayer.Fetcher, loc aladhan.Location, calc aladhan.Calculation, logos prayer.Logos, opts ...prayer.Option) *PrayerController {
	return &PrayerController{fetcher: f, location: loc, calc: calc, logos: logos, opts: opts}
}

func PrayerModule(ctl *PrayerController) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.RAW(http.MethodGet, "/namaz", ctl.namazFragment)
		c.PUBLIC_GET("/prayer-times", ctl.prayerTimes)
	})
}

// load runs the widget once against a new container.
func (p *PrayerController) load(ctx context.Context) (*prayer.Container, model.WidgetState) {
	container := prayer.NewContainer(p.logos)
	state := prayer.NewWidget(p.fetcher, container, p.location, p.calc, p.opts...).LoadAndRender(ctx)
	return container, state
}

// loadingFragment is the card a page ships with before the fragment
// endpoint answers.
func (p *PrayerController) loadingFragment() (template.HTML, error) {
	return prayer.Fragment(model.WidgetState{Status: model.WidgetLoading}, p.logos)
}

// GET /api/site/namaz
// Always 200: the failed state is itself a rendering.
func (p *PrayerController) namazFragment(ctx *gin.Context) {
	container, _ := p.load(ctx.Request.Context())
	ctx.Header("Cache-Control", "no-store")
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(container.Content()))
}

// GET /api/site/prayer-times
func (p *PrayerController) prayerTimes(ctx *gin.Context) (any, *api.APIError) {
	_, state := p.load(ctx.Request.Context())
	if state.Status != model.WidgetLoaded {
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "unable to load prayer times"}
	}

	prayers := make([]packets.PrayerResponse, 0, len(state.Schedule))
	for _, pr := range state.Schedule {
		prayers = append(prayers, packets.PrayerResponse{Name: pr.Name, Time: pr.Time, Raw: pr.Raw})
	}
	return packets.PrayerTimesResponse{
		City:      p.location.City,
		Country:   p.location.Country,
		Gregorian: state.Calendar.Gregorian,
		Hijri:     state.Calendar.Hijri(),
		Prayers:   prayers,
	}, nil
}
