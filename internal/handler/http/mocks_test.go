package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-motors/internal/config"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/service"
	"github.com/MKhiriev/go-motors/internal/utils"
	"github.com/MKhiriev/go-motors/internal/view"
	"github.com/MKhiriev/go-motors/models"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey  = "test-sign-key"
	testIssuer   = "go-motors-test"
	testFlashKey = "test-flash-key"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService issues and verifies real tokens unless a function field
// overrides the behaviour.
type mockAuthService struct {
	registerAccountFn func(ctx context.Context, account models.Account) (models.Account, error)
	loginFn           func(ctx context.Context, email, password string) (models.Account, error)
	createTokenFn     func(ctx context.Context, account models.Account) (models.Token, error)
	parseTokenFn      func(ctx context.Context, token string) (models.Token, error)
	revokeTokenFn     func(ctx context.Context, token models.Token) error

	registered []models.Account
	revoked    []string
}

func (m *mockAuthService) RegisterAccount(ctx context.Context, account models.Account) (models.Account, error) {
	m.registered = append(m.registered, account)
	if m.registerAccountFn != nil {
		return m.registerAccountFn(ctx, account)
	}
	account.AccountID = int64(len(m.registered))
	account.AccountType = models.RoleClient
	return account, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Account, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.Account{}, service.ErrWrongPassword
}

func (m *mockAuthService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, account)
	}
	return utils.GenerateJWTToken(testIssuer, account.Identity(), time.Hour, testSignKey)
}

func (m *mockAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, token)
	}
	parsed, err := utils.ValidateAndParseJWTToken(token, testSignKey, testIssuer)
	if err != nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return parsed, nil
}

func (m *mockAuthService) RevokeToken(ctx context.Context, token models.Token) error {
	m.revoked = append(m.revoked, token.Claims.ID)
	if m.revokeTokenFn != nil {
		return m.revokeTokenFn(ctx, token)
	}
	return nil
}

type mockAccountService struct {
	emailExistsFn    func(ctx context.Context, email string) (bool, error)
	getAccountFn     func(ctx context.Context, accountID int64) (models.Account, error)
	updateAccountFn  func(ctx context.Context, account models.Account) (models.Account, error)
	updatePasswordFn func(ctx context.Context, accountID int64, password string) error
	setDarkModeFn    func(ctx context.Context, accountID int64, darkMode bool) error
}

func (m *mockAccountService) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.emailExistsFn != nil {
		return m.emailExistsFn(ctx, email)
	}
	return false, nil
}

func (m *mockAccountService) GetAccount(ctx context.Context, accountID int64) (models.Account, error) {
	if m.getAccountFn != nil {
		return m.getAccountFn(ctx, accountID)
	}
	return models.Account{AccountID: accountID, FirstName: "Basic", LastName: "Client", Email: "client@example.com"}, nil
}

func (m *mockAccountService) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	if m.updateAccountFn != nil {
		return m.updateAccountFn(ctx, account)
	}
	return account, nil
}

func (m *mockAccountService) UpdatePassword(ctx context.Context, accountID int64, password string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, accountID, password)
	}
	return nil
}

func (m *mockAccountService) SetDarkMode(ctx context.Context, accountID int64, darkMode bool) error {
	if m.setDarkModeFn != nil {
		return m.setDarkModeFn(ctx, accountID, darkMode)
	}
	return nil
}

type mockInventoryService struct {
	getClassificationsFn        func(ctx context.Context) ([]models.Classification, error)
	addClassificationFn         func(ctx context.Context, name string) (models.Classification, error)
	getClassificationVehiclesFn func(ctx context.Context, id int64) (models.Classification, []models.Vehicle, error)
	getVehicleFn                func(ctx context.Context, invID int64) (models.Vehicle, error)
	addVehicleFn                func(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
}

func (m *mockInventoryService) GetClassifications(ctx context.Context) ([]models.Classification, error) {
	if m.getClassificationsFn != nil {
		return m.getClassificationsFn(ctx)
	}
	return []models.Classification{{ClassificationID: 1, Name: "Custom"}, {ClassificationID: 2, Name: "Sport"}}, nil
}

func (m *mockInventoryService) AddClassification(ctx context.Context, name string) (models.Classification, error) {
	if m.addClassificationFn != nil {
		return m.addClassificationFn(ctx, name)
	}
	return models.Classification{ClassificationID: 3, Name: name}, nil
}

func (m *mockInventoryService) GetClassificationVehicles(ctx context.Context, id int64) (models.Classification, []models.Vehicle, error) {
	if m.getClassificationVehiclesFn != nil {
		return m.getClassificationVehiclesFn(ctx, id)
	}
	return models.Classification{ClassificationID: id, Name: "Sport"}, nil, nil
}

func (m *mockInventoryService) GetVehicle(ctx context.Context, invID int64) (models.Vehicle, error) {
	if m.getVehicleFn != nil {
		return m.getVehicleFn(ctx, invID)
	}
	return models.Vehicle{InvID: invID, Make: "Chevy", Model: "Camaro", Year: 2018}, nil
}

func (m *mockInventoryService) AddVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	if m.addVehicleFn != nil {
		return m.addVehicleFn(ctx, vehicle)
	}
	vehicle.InvID = 99
	return vehicle, nil
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler returns a Handler carrying only a nop logger.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

type testServices struct {
	auth      *mockAuthService
	accounts  *mockAccountService
	inventory *mockInventoryService
	appInfo   *mockAppInfoService
}

func newTestConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App:    config.App{Mode: config.ModeDevelopment, Version: "1.2.3"},
		Auth:   config.Auth{TokenSignKey: testSignKey, TokenIssuer: testIssuer, TokenDuration: time.Hour, FlashSignKey: testFlashKey},
		Server: config.Server{HTTPAddress: ":0", RequestTimeout: 5 * time.Second},
	}
}

// newRouterHandler builds a fully wired Handler backed by service mocks.
func newRouterHandler(t *testing.T) (*Handler, *testServices) {
	t.Helper()

	views, err := view.New()
	require.NoError(t, err)

	svcs := &testServices{
		auth:      &mockAuthService{},
		accounts:  &mockAccountService{},
		inventory: &mockInventoryService{},
		appInfo:   &mockAppInfoService{version: "1.2.3"},
	}

	h := NewHandler(&service.Services{
		AuthService:      svcs.auth,
		AccountService:   svcs.accounts,
		InventoryService: svcs.inventory,
		AppInfoService:   svcs.appInfo,
	}, views, newTestConfig(), logger.Nop())

	return h, svcs
}

// injectNopLogger puts a discarding logger into the request context the way
// withTraceID does.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

func sessionFor(t *testing.T, identity models.Identity) models.Token {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, identity, time.Hour, testSignKey)
	require.NoError(t, err)
	return token
}

var (
	clientIdentity   = models.Identity{AccountID: 7, FirstName: "Basic", LastName: "Client", Email: "client@example.com", Role: models.RoleClient}
	employeeIdentity = models.Identity{AccountID: 8, FirstName: "Happy", LastName: "Employee", Email: "emp@example.com", Role: models.RoleEmployee}
	adminIdentity    = models.Identity{AccountID: 9, FirstName: "Manager", LastName: "Admin", Email: "admin@example.com", Role: models.RoleAdmin}
)

// serve runs a request through the full router. A non-nil identity is sent
// as a valid session cookie.
func serve(t *testing.T, h *Handler, method, target string, form url.Values, identity *models.Identity) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if identity != nil {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionFor(t, *identity).SignedString})
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
