package http

import (
	"context"
	"html"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-motors/internal/app"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/mock"
	"github.com/MKhiriev/go-motors/internal/service"
	"github.com/MKhiriev/go-motors/internal/store"
	"github.com/MKhiriev/go-motors/internal/validators"
	"github.com/MKhiriev/go-motors/internal/view"
	"github.com/MKhiriev/go-motors/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// accountTable backs the mocked account repository for the flow test.
type accountTable struct {
	mu       sync.Mutex
	byEmail  map[string]models.Account
	nextID   int64
	creates  int
	darkMode map[int64]bool
}

func newFlowServer(t *testing.T) (*httptest.Server, *accountTable) {
	t.Helper()

	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountRepository(ctrl)
	inventory := mock.NewMockInventoryRepository(ctrl)
	table := &accountTable{byEmail: map[string]models.Account{}, darkMode: map[int64]bool{}}

	accounts.EXPECT().EmailExists(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, email string) (bool, error) {
			table.mu.Lock()
			defer table.mu.Unlock()
			_, ok := table.byEmail[email]
			return ok, nil
		}).AnyTimes()
	accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, account models.Account) (models.Account, error) {
			table.mu.Lock()
			defer table.mu.Unlock()
			table.creates++
			table.nextID++
			account.AccountID = table.nextID
			table.byEmail[account.Email] = account
			return account, nil
		}).AnyTimes()
	accounts.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, email string) (models.Account, error) {
			table.mu.Lock()
			defer table.mu.Unlock()
			account, ok := table.byEmail[email]
			if !ok {
				return models.Account{}, store.ErrNoAccountWasFound
			}
			return account, nil
		}).AnyTimes()
	accounts.EXPECT().FindAccountByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64) (models.Account, error) {
			table.mu.Lock()
			defer table.mu.Unlock()
			for _, account := range table.byEmail {
				if account.AccountID == id {
					account.DarkMode = table.darkMode[id]
					return account, nil
				}
			}
			return models.Account{}, store.ErrNoAccountWasFound
		}).AnyTimes()
	accounts.EXPECT().UpdateDarkMode(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64, darkMode bool) error {
			table.mu.Lock()
			defer table.mu.Unlock()
			table.darkMode[id] = darkMode
			return nil
		}).AnyTimes()
	inventory.EXPECT().GetClassifications(gomock.Any()).
		Return([]models.Classification{{ClassificationID: 1, Name: "Custom"}}, nil).AnyTimes()

	cfg := newTestConfig()
	cfg.Auth.PasswordHashCost = bcrypt.MinCost

	services, err := service.NewServices(&store.Storages{
		AccountRepository:   accounts,
		InventoryRepository: inventory,
		RevocationStore:     store.NewMemoryRevocationStore(),
	}, cfg, logger.Nop())
	require.NoError(t, err)

	views, err := view.New()
	require.NoError(t, err)

	server := httptest.NewServer(NewHandler(services, views, cfg, logger.Nop()).Init())
	t.Cleanup(server.Close)

	return server, table
}

func newFlowClient(server *httptest.Server) *resty.Client {
	return resty.New().
		SetBaseURL(server.URL).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))
}

func TestFlow_RegisterLoginDashboardLogout(t *testing.T) {
	server, table := newFlowServer(t)
	client := newFlowClient(server)

	registration := map[string]string{
		validators.FieldFirstName: "Basic",
		validators.FieldLastName:  "Client",
		validators.FieldEmail:     "client@example.com",
		validators.FieldPassword:  "I@mABas1cCl!ent",
	}

	// dashboard without a session
	resp, err := client.R().Get("/account/accounts")
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode())
	assert.Equal(t, loginPath, resp.Header().Get("Location"))

	resp, err = client.R().Get(loginPath)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), app.MsgPleaseLogIn)

	// registration
	resp, err = client.R().SetFormData(registration).Post("/account/registration")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.Contains(t, html.UnescapeString(resp.String()), "Congratulations, you're registered Basic. Please log in.")
	assert.Contains(t, resp.String(), `id="loginForm"`)

	// duplicate email never reaches the store
	resp, err = client.R().SetFormData(registration).Post("/account/registration")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), validators.MsgEmailExists)
	table.mu.Lock()
	creates, stored := table.creates, table.byEmail["client@example.com"]
	table.mu.Unlock()
	assert.Equal(t, 1, creates)
	assert.NotEqual(t, registration[validators.FieldPassword], stored.Password, "password must be stored hashed")
	assert.Equal(t, models.RoleClient, stored.AccountType)

	// wrong password
	resp, err = client.R().SetFormData(map[string]string{
		validators.FieldEmail:    "client@example.com",
		validators.FieldPassword: "wrong-password",
	}).Post(loginPath)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

	// login
	resp, err = client.R().SetFormData(map[string]string{
		validators.FieldEmail:    "client@example.com",
		validators.FieldPassword: "I@mABas1cCl!ent",
	}).Post(loginPath)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode())
	assert.Equal(t, accountsPath, resp.Header().Get("Location"))

	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	resp, err = client.R().Get(accountsPath)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), "Welcome Basic")

	// clients cannot manage inventory
	resp, err = client.R().Get("/inv")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())

	// dark mode
	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(models.DarkModeRequest{AccountID: "1", DarkMode: true}).
		Put("/account/dark-mode")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"success":true}`, resp.String())

	resp, err = client.R().Get(accountsPath)
	require.NoError(t, err)
	assert.Contains(t, resp.String(), `<body class="dark">`)

	// logout revokes the token
	resp, err = client.R().Get("/account/logout")
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode())

	replay := newFlowClient(server)
	resp, err = replay.R().SetCookie(session).Get(accountsPath)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode())
	assert.Equal(t, loginPath, resp.Header().Get("Location"))
}
