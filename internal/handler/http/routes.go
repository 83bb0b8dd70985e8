package http

import (
	"github.com/MKhiriev/go-motors/internal/view"
	"github.com/MKhiriev/go-motors/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withIdentity)

	// must be set before any sub-router is mounted so they inherit them
	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(h.notFound))

	if static, err := view.Static(); err != nil {
		h.logger.Err(err).Msg("static assets are not served")
	} else {
		router.Handle("/css/*", static)
		router.Handle("/js/*", static)
	}

	router.Get("/", h.home)
	router.Get("/version", h.getServerVersion)

	router.Route("/account", func(r chi.Router) {
		r.Get("/login", h.loginPage)
		r.With(h.validate(h.forms.login, loginForm)).Post("/login", h.login)
		r.Get("/registration", h.registrationPage)
		r.With(h.validate(h.forms.registration, registrationForm)).Post("/registration", h.register)
		r.Get("/logout", h.logout)
		r.Get("/trigger-error", h.triggerError)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.requireLogin)
			r.Get("/", h.accounts)
			r.Get("/accounts", h.accounts)
			r.Get("/update", h.accountUpdatePage)
			r.With(h.validate(h.forms.accountUpdate, accountUpdateForm)).Post("/update", h.updateAccount)
			r.With(h.validate(h.forms.passwordUpdate, passwordUpdateForm)).Post("/update-password", h.updatePassword)
			r.Put("/dark-mode", h.darkMode)
		})
	})

	router.Route("/inv", func(r chi.Router) {
		r.Get("/type/{classificationId}", h.classification)
		r.Get("/detail/{invId}", h.vehicleDetail)
		r.Get("/trigger-error", h.triggerError)

		// staff only
		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(models.RoleEmployee, models.RoleAdmin))
			r.Get("/", h.management)
			r.Get("/add-classification", h.addClassificationPage)
			r.With(h.validate(h.forms.addClassification, addClassificationForm)).Post("/add-classification", h.addClassification)
			r.Get("/add-inventory", h.addInventoryPage)
			r.With(h.validate(h.forms.addInventory, addInventoryForm)).Post("/add-inventory", h.addInventory)
		})
	})

	return router
}

