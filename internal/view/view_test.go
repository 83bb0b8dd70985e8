package view

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-motors/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

var testNav = []models.Classification{
	{ClassificationID: 1, Name: "Custom"},
	{ClassificationID: 2, Name: "Sport"},
}

func TestNew_ParsesAllPages(t *testing.T) {
	r := newRenderer(t)
	for _, name := range pages {
		assert.Contains(t, r.pages, name)
	}
}

func TestRender_LayoutAndNav(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, PageHome, Page{Title: "Home", Nav: testNav, Version: "1.0.0"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Home | CSE Motors</title>")
	assert.Contains(t, body, `href="/inv/type/2"`)
	assert.Contains(t, body, "See our inventory of Sport vehicles")
	assert.Contains(t, body, "My Account")
	assert.Contains(t, body, "v1.0.0")
}

func TestRender_LoggedInHeaderAndDarkMode(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()
	identity := &models.Identity{AccountID: 4, FirstName: "Happy", Role: models.RoleEmployee}

	err := r.Render(rec, http.StatusOK, PageAccounts, Page{
		Title:    "Account Management",
		Identity: identity,
		DarkMode: true,
		Account:  &models.Account{AccountID: 4, FirstName: "Happy", DarkMode: true},
	})

	require.NoError(t, err)
	body := rec.Body.String()
	assert.Contains(t, body, `<body class="dark">`)
	assert.Contains(t, body, "Welcome Happy")
	assert.Contains(t, body, "/account/logout")
	assert.Contains(t, body, `href="/inv"`)
	assert.Contains(t, body, `id="dark-mode" checked`)
}

func TestRender_ClientHasNoManagementLink(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, PageAccounts, Page{
		Title:    "Account Management",
		Identity: &models.Identity{AccountID: 7, FirstName: "Basic", Role: models.RoleClient},
		Account:  &models.Account{AccountID: 7, FirstName: "Basic"},
	})

	require.NoError(t, err)
	assert.NotContains(t, rec.Body.String(), "Manage inventory")
}

func TestRender_NoticesErrorsAndStickyValues(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, PageRegistration, Page{
		Title:   "Registration",
		Notices: []string{"Sorry, the registration failed."},
		Errors:  []string{"Password does not meet requirements."},
		Form:    url.Values{"account_firstname": {"Basic"}, "account_email": {"client@example.com"}},
	})

	require.NoError(t, err)
	body := rec.Body.String()
	assert.Contains(t, body, "Sorry, the registration failed.")
	assert.Contains(t, body, "<li>Password does not meet requirements.</li>")
	assert.Contains(t, body, `value="Basic"`)
	assert.Contains(t, body, `value="client@example.com"`)
}

func TestRender_EscapedValuesAreEscapedAgain(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, PageRegistration, Page{
		Title: "Registration",
		Form:  url.Values{"account_firstname": {"&lt;b&gt;"}},
	})

	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `value="&amp;lt;b&amp;gt;"`)
}

func TestRender_ClassificationGrid(t *testing.T) {
	r := newRenderer(t)

	rec := httptest.NewRecorder()
	err := r.Render(rec, http.StatusOK, PageClassification, Page{
		Title: "Sport vehicles",
		Vehicles: []models.Vehicle{
			{InvID: 12, Make: "Chevy", Model: "Camaro", Price: 25000, Thumbnail: "/images/vehicles/camaro-tn.jpg"},
		},
	})
	require.NoError(t, err)
	body := rec.Body.String()
	assert.Contains(t, body, `href="/inv/detail/12"`)
	assert.Contains(t, body, "Chevy Camaro")
	assert.Contains(t, body, "$25,000")

	rec = httptest.NewRecorder()
	err = r.Render(rec, http.StatusOK, PageClassification, Page{Title: "Truck vehicles"})
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), "Sorry, no matching vehicles could be found.")
}

func TestRender_VehicleDetail(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, PageVehicleDetail, Page{
		Title:   "Chevy Camaro",
		Vehicle: &models.Vehicle{InvID: 12, Make: "Chevy", Model: "Camaro", Year: 2018, Price: 25000, Miles: 101222, Color: "Silver"},
	})

	require.NoError(t, err)
	body := rec.Body.String()
	assert.Contains(t, body, "$25,000")
	assert.Contains(t, body, "101,222 miles")
	assert.Contains(t, body, "2018")
}

func TestRender_AddInventoryStickySelect(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, PageAddInventory, Page{
		Title: "Add Inventory",
		Nav:   testNav,
		Form:  url.Values{"classification_id": {"2"}, "inv_make": {"Chevy"}},
	})

	require.NoError(t, err)
	body := rec.Body.String()
	assert.Contains(t, body, `<option value="2" selected>Sport</option>`)
	assert.Contains(t, body, `<option value="1">Custom</option>`)
	assert.Contains(t, body, `value="Chevy"`)
}

func TestRender_StatusCode(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusInternalServerError, PageError, Page{Title: "Server Error", Message: "Oh no!"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oh no!")
}

func TestRender_UnknownPage(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, "nope", Page{})

	assert.True(t, errors.Is(err, ErrUnknownPage))
	assert.Equal(t, 0, rec.Body.Len())
}

func TestStatic(t *testing.T) {
	h, err := Static()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/js/dark-mode.js", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/account/dark-mode")
}
