package endpoints

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api/site/packets"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/prefs"
)

// colour-scheme client hint sent by browsers that opt in
const prefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

type PreferencesController struct {
	store prefs.Store
}

func NewPreferencesController(store prefs.Store) *PreferencesController {
	return &PreferencesController{store: store}
}

func PreferencesModule(ctl *PreferencesController) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/preferences", ctl.getPreferences)
		c.PUBLIC_PUT("/preferences", ctl.setPreference)
		c.PUBLIC_POST("/preferences/theme/toggle", ctl.toggleTheme)
	})
}

func systemPrefersLight(ctx *gin.Context) bool {
	return ctx.GetHeader(prefersColorSchemeHeader) == "light"
}

// Resolve reads the visitor's saved values and applies the defaults.
// A store error is logged and treated as "nothing saved".
func (p *PreferencesController) Resolve(ctx context.Context, visitor string, systemLight bool) model.Preferences {
	lang, _, err := p.store.Get(ctx, visitor, prefs.KeyLanguage)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to default language")
		lang = ""
	}
	theme, _, err := p.store.Get(ctx, visitor, prefs.KeyTheme)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to default theme")
		theme = ""
	}
	return model.Preferences{
		Language: prefs.ResolveLanguage(lang),
		Theme:    prefs.ResolveTheme(theme, systemLight),
	}
}

func toResponse(p model.Preferences) packets.PreferencesResponse {
	return packets.PreferencesResponse{Language: p.Language, Theme: p.Theme}
}

func visitorOrError(ctx *gin.Context) (string, *api.APIError) {
	visitor, ok := middleware.GetVisitorID(ctx)
	if !ok {
		return "", &api.APIError{Code: http.StatusBadRequest, Message: "missing visitor id"}
	}
	return visitor, nil
}

// GET /api/site/preferences
func (p *PreferencesController) getPreferences(ctx *gin.Context) (any, *api.APIError) {
	visitor, apiErr := visitorOrError(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	return toResponse(p.Resolve(ctx.Request.Context(), visitor, systemPrefersLight(ctx))), nil
}

// PUT /api/site/preferences
func (p *PreferencesController) setPreference(ctx *gin.Context) (any, *api.APIError) {
	visitor, apiErr := visitorOrError(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.SetPreferenceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	err := p.store.Set(ctx.Request.Context(), visitor, prefs.Key(request.Key), request.Value)
	switch {
	case errors.Is(err, prefs.ErrUnknownKey), errors.Is(err, prefs.ErrInvalidValue):
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	case err != nil:
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save preference"}
	}

	log.Debug().Str("visitor", visitor).Str("key", request.Key).Str("value", request.Value).Msg("preference saved")
	return toResponse(p.Resolve(ctx.Request.Context(), visitor, systemPrefersLight(ctx))), nil
}

// POST /api/site/preferences/theme/toggle
func (p *PreferencesController) toggleTheme(ctx *gin.Context) (any, *api.APIError) {
	visitor, apiErr := visitorOrError(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	current := p.Resolve(ctx.Request.Context(), visitor, systemPrefersLight(ctx))
	next := prefs.ToggleTheme(current.Theme)
	if err := p.store.Set(ctx.Request.Context(), visitor, prefs.KeyTheme, next); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save preference"}
	}

	current.Theme = next
	return toResponse(current), nil
}
