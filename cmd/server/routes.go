package main

import (
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/minaret/internal/aladhan"
	"github.com/Nixie-Tech-LLC/minaret/internal/config"
	"github.com/Nixie-Tech-LLC/minaret/internal/contact"
	"github.com/Nixie-Tech-LLC/minaret/internal/db"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	adminapi "github.com/Nixie-Tech-LLC/minaret/internal/http/api/admin/endpoints"
	authapi "github.com/Nixie-Tech-LLC/minaret/internal/http/api/admin/auth/endpoints"
	siteapi "github.com/Nixie-Tech-LLC/minaret/internal/http/api/site/endpoints"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
	"github.com/Nixie-Tech-LLC/minaret/internal/prefs"
)

// Services are the backends the routes are built on.
type Services struct {
	Store       db.Store
	Preferences prefs.Store
	Contact     *contact.Service
}

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svc Services, tmpl *template.Template) {
	r.SetHTMLTemplate(tmpl)
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
			"Sec-CH-Prefers-Color-Scheme",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))
	r.Use(middleware.Visitor(cfg.IsProduction()))

	timings := aladhan.NewClient(cfg.Prayer.TimingsURL, cfg.Prayer.Timeout)
	prayerCtl := siteapi.NewPrayerController(
		timings,
		aladhan.Location{City: cfg.Prayer.City, Country: cfg.Prayer.Country},
		aladhan.Calculation{Method: cfg.Prayer.Method, School: cfg.Prayer.School},
		prayer.DefaultLogos,
	)
	prefsCtl := siteapi.NewPreferencesController(svc.Preferences)
	limiter := middleware.NewRateLimiter(cfg.ContactRatePerMinute, 2)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/site",
	},
		siteapi.PrayerModule(prayerCtl),
		siteapi.PreferencesModule(prefsCtl),
	)

	api.MountGroup(r, api.GroupConfig{},
		siteapi.ContactModule(siteapi.NewContactController(svc.Contact), limiter.Middleware()),
		siteapi.PagesModule(siteapi.NewPagesController(tmpl, prayerCtl, prefsCtl, "index.html")),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
	},
		authapi.AuthPublicModule(cfg.JWTSecret, svc.Store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: cfg.JWTSecret,
		Users:     svc.Store,
	},
		authapi.AuthSessionModule(cfg.JWTSecret, svc.Store),
		adminapi.MessagesModule(svc.Store),
		attachmentsModule(cfg),
	)

	// Static content
	r.Static("/static", cfg.StaticPath)
}

// attachmentsModule serves locally stored contact attachments to signed-in staff.
func attachmentsModule(cfg *config.Config) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		if cfg.UseSpaces {
			return
		}
		c.Group.Static("/attachments", cfg.UploadDir)
	})
}
