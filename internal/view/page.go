package view

import (
	"net/url"

	"github.com/MKhiriev/go-motors/models"
)

// Page is the data contract shared by every template.
type Page struct {
	Title   string
	Version string

	// Nav lists the classifications for the navigation bar and the
	// add-inventory select. It is rebuilt from the store on every render.
	Nav []models.Classification

	// Identity is nil for anonymous visitors.
	Identity *models.Identity
	DarkMode bool

	Notices []string
	Errors  []string

	// Form holds values to write back into a re-rendered form.
	Form url.Values

	Account  *models.Account
	Vehicles []models.Vehicle
	Vehicle  *models.Vehicle

	// Message is the text of the error page.
	Message string
}
