// Package view renders the server-side HTML pages of the site.
//
// Every page template defines a "content" block that is executed inside the
// shared layout together with the header, navigation, notices and footer
// partials. Templates and static assets are embedded into the binary.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by [Renderer.Render].
const (
	PageHome              = "index"
	PageLogin             = "account/login"
	PageRegistration      = "account/registration"
	PageAccounts          = "account/accounts"
	PageAccountUpdate     = "account/update"
	PageClassification    = "inventory/classification"
	PageVehicleDetail     = "inventory/detail"
	PageManagement        = "inventory/management"
	PageAddClassification = "inventory/add-classification"
	PageAddInventory      = "inventory/add-inventory"
	PageError             = "errors/error"
)

var pages = []string{
	PageHome,
	PageLogin,
	PageRegistration,
	PageAccounts,
	PageAccountUpdate,
	PageClassification,
	PageVehicleDetail,
	PageManagement,
	PageAddClassification,
	PageAddInventory,
	PageError,
}

var funcs = template.FuncMap{
	"formatNumber": formatNumber,
	"selected":     selected,
}

// Renderer holds the parsed page templates. It is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the layout and partials.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}

	for _, name := range pages {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.gohtml",
			"templates/partials/*.gohtml",
			"templates/"+name+".gohtml",
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrParsingTemplate, name, err)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

// Render executes the named page into a buffer and, only if that succeeds,
// writes it to w with the given status code.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExecutingTemplate, name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded stylesheets and scripts rooted at "/".
func Static() (http.Handler, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("error opening static assets: %w", err)
	}
	return http.FileServer(http.FS(sub)), nil
}

// selected reports whether the form value under key names the given id.
func selected(form url.Values, key string, id int64) bool {
	return form.Get(key) == strconv.FormatInt(id, 10)
}
