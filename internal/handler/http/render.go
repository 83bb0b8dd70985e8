package http

import (
	"net/http"

	"github.com/MKhiriev/go-motors/internal/app"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/utils"
	"github.com/MKhiriev/go-motors/internal/view"
)

// render completes page with the parts every view shares and writes it.
// Navigation is rebuilt from the store on every call.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, page view.Page) {
	nav, err := h.services.InventoryService.GetClassifications(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	page.Nav = nav

	h.writePage(w, r, status, name, page)
}

// renderError logs err and writes the generic error view. A failing
// navigation lookup does not prevent the error page from being shown.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	page := view.Page{Title: "Server Error", Message: app.MsgServerError}
	if status == http.StatusNotFound {
		page = view.Page{Title: "404", Message: app.MsgNotFound}
		log.Info().Err(err).Str("path", r.URL.Path).Msg("page not found")
	} else {
		log.Err(err).Str("path", r.URL.Path).Int("status", status).Msg("request failed")
	}

	if nav, navErr := h.services.InventoryService.GetClassifications(r.Context()); navErr == nil {
		page.Nav = nav
	}

	h.writePage(w, r, status, view.PageError, page)
}

func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, status int, name string, page view.Page) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page.Version = h.services.AppInfoService.GetAppVersion(ctx)

	if identity, ok := utils.GetIdentityFromContext(ctx); ok {
		page.Identity = &identity
		if page.Account != nil {
			page.DarkMode = page.Account.DarkMode
		} else if account, err := h.services.AccountService.GetAccount(ctx, identity.AccountID); err == nil {
			page.DarkMode = account.DarkMode
		} else {
			log.Warn().Err(err).Int64("account_id", identity.AccountID).Msg("could not load theme preference")
		}
	}

	if notices := h.flashes.pop(w, r); len(notices) > 0 {
		page.Notices = append(notices, page.Notices...)
	}

	if err := h.views.Render(w, status, name, page); err != nil {
		log.Err(err).Str("page", name).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// notFound answers unknown routes and disallowed methods.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, errPageNotFound)
}
