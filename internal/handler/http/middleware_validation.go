package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/validators"
	"github.com/MKhiriev/go-motors/internal/view"
)

const maxFormBodySize = 1 << 20

// formPage identifies the view a form is re-rendered into on failure.
type formPage struct {
	name  string
	title string
}

// validate runs v against the submitted form. Sanitized values replace the
// submitted ones in r.PostForm. On validation failure the originating form is
// rendered again with status 200, every message and the entered values
// except sensitive ones. Any other error goes to the generic error page.
func (h *Handler) validate(v validators.FormValidator, page formPage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			r.Body = http.MaxBytesReader(w, r.Body, maxFormBodySize)
			if err := r.ParseForm(); err != nil {
				h.renderError(w, r, fmt.Errorf("%w: %w", errInvalidForm, err))
				return
			}

			err := v.Validate(r.Context(), r)
			if err == nil {
				next.ServeHTTP(w, r)
				return
			}

			errs, ok := validators.AsErrors(err)
			if !ok {
				h.renderError(w, r, err)
				return
			}

			log.Debug().Str("form", page.name).Int("errors", len(errs)).Msg("form rejected")
			h.render(w, r, http.StatusOK, page.name, view.Page{
				Title:  page.title,
				Errors: errs.Messages(),
				Form:   v.Echo(r.PostForm),
			})
		})
	}
}
