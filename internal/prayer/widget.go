package prayer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/aladhan"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
)

// Order is the fixed display order of the schedule.
var Order = []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

const gregorianLayout = "Monday, January 2, 2006"

// Fetcher retrieves the raw timings payload. *aladhan.Client satisfies it.
type Fetcher interface {
	FetchTimings(ctx context.Context, loc aladhan.Location, calc aladhan.Calculation) (*aladhan.Response, error)
}

// Renderer receives every state the widget passes through and owns the
// container's content.
type Renderer interface {
	Render(state model.WidgetState) error
}

type Option func(*Widget)

// WithClock overrides time.Now for the Gregorian date header.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) { w.now = now }
}

// Widget loads today's prayer times and renders them.
type Widget struct {
	fetcher  Fetcher
	renderer Renderer
	location aladhan.Location
	calc     aladhan.Calculation
	now      func() time.Time
}

func NewWidget(f Fetcher, r Renderer, loc aladhan.Location, calc aladhan.Calculation, opts ...Option) *Widget {
	w := &Widget{
		fetcher:  f,
		renderer: r,
		location: loc,
		calc:     calc,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// LoadAndRender renders Loading, makes one request, then renders either
// Loaded or Failed. Failures are logged and never returned; the terminal
// state is handed back for callers that also want the data.
func (w *Widget) LoadAndRender(ctx context.Context) model.WidgetState {
	w.render(model.WidgetState{Status: model.WidgetLoading})

	state, err := w.load(ctx)
	if err != nil {
		log.Error().
			Err(err).
			Str("kind", FailureKind(err)).
			Str("city", w.location.City).
			Msg("failed to load prayer times")
		state = model.WidgetState{Status: model.WidgetFailed}
	}

	w.render(state)
	return state
}

func (w *Widget) load(ctx context.Context) (model.WidgetState, error) {
	resp, err := w.fetcher.FetchTimings(ctx, w.location, w.calc)
	if err != nil {
		return model.WidgetState{}, classifyFetchError(err)
	}

	schedule, calendar, err := Extract(resp)
	if err != nil {
		return model.WidgetState{}, err
	}
	calendar.Gregorian = w.now().Format(gregorianLayout)

	return model.WidgetState{
		Status:   model.WidgetLoaded,
		Schedule: schedule,
		Calendar: calendar,
	}, nil
}

func (w *Widget) render(state model.WidgetState) {
	if err := w.renderer.Render(state); err != nil {
		log.Error().Err(err).Str("state", state.Status.String()).Msg("failed to render prayer widget")
	}
}

// Extract validates a service response and turns it into a display-ready
// schedule plus the Hijri half of the calendar header.
func Extract(resp *aladhan.Response) (model.PrayerSchedule, model.CalendarContext, error) {
	if resp == nil {
		return nil, model.CalendarContext{}, fmt.Errorf("%w: empty response", ErrInvalidResponse)
	}
	if resp.Code != 200 {
		return nil, model.CalendarContext{}, fmt.Errorf("%w: code %d", ErrInvalidResponse, resp.Code)
	}
	if resp.Data == nil {
		return nil, model.CalendarContext{}, fmt.Errorf("%w: no data", ErrInvalidResponse)
	}

	schedule := make(model.PrayerSchedule, 0, len(Order))
	for _, name := range Order {
		raw, ok := resp.Data.Timings[name]
		if !ok || StripZone(raw) == "" {
			return nil, model.CalendarContext{}, fmt.Errorf("%w: timings.%s", ErrMissingField, name)
		}
		display, err := FormatTime(raw)
		if err != nil {
			return nil, model.CalendarContext{}, fmt.Errorf("%w: timings.%s: %v", ErrInvalidResponse, name, err)
		}
		schedule = append(schedule, model.Prayer{Name: name, Raw: StripZone(raw), Time: display})
	}

	if resp.Data.Date == nil || resp.Data.Date.Hijri == nil {
		return nil, model.CalendarContext{}, fmt.Errorf("%w: date.hijri", ErrMissingField)
	}
	hijri := resp.Data.Date.Hijri
	if hijri.Day == "" || hijri.Month.En == "" || hijri.Year == "" {
		return nil, model.CalendarContext{}, fmt.Errorf("%w: date.hijri day/month/year", ErrMissingField)
	}

	return schedule, model.CalendarContext{
		HijriDay:   hijri.Day,
		HijriMonth: hijri.Month.En,
		HijriYear:  hijri.Year,
	}, nil
}
