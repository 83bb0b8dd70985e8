package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-motors/internal/app"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/service"
	"github.com/MKhiriev/go-motors/internal/store"
	"github.com/MKhiriev/go-motors/internal/utils"
	"github.com/MKhiriev/go-motors/internal/validators"
	"github.com/MKhiriev/go-motors/internal/view"
	"github.com/MKhiriev/go-motors/models"
)

const (
	accountsPath = "/account/accounts"

	titleLogin         = "Login"
	titleRegistration  = "Register"
	titleAccounts      = "Account Management"
	titleAccountUpdate = "Edit Account"
)

var (
	loginForm          = formPage{name: view.PageLogin, title: titleLogin}
	registrationForm   = formPage{name: view.PageRegistration, title: titleRegistration}
	accountUpdateForm  = formPage{name: view.PageAccountUpdate, title: titleAccountUpdate}
	passwordUpdateForm = formPage{name: view.PageAccountUpdate, title: titleAccountUpdate}
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageLogin, view.Page{Title: titleLogin})
}

func (h *Handler) registrationPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageRegistration, view.Page{Title: titleRegistration})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account := models.Account{
		FirstName: r.PostForm.Get(validators.FieldFirstName),
		LastName:  r.PostForm.Get(validators.FieldLastName),
		Email:     r.PostForm.Get(validators.FieldEmail),
		Password:  r.PostForm.Get(validators.FieldPassword),
	}
	echo := h.forms.registration.Echo(r.PostForm)

	registered, err := h.services.AuthService.RegisterAccount(r.Context(), account)
	switch {
	case err == nil:
		log.Info().Int64("account_id", registered.AccountID).Msg("account registered")
		h.render(w, r, http.StatusCreated, view.PageLogin, view.Page{
			Title:   titleLogin,
			Notices: []string{fmt.Sprintf(app.MsgRegistered, account.FirstName)},
		})
	case errors.Is(err, service.ErrPasswordHashing):
		log.Err(err).Msg("error hashing password during registration")
		h.render(w, r, http.StatusInternalServerError, view.PageRegistration, view.Page{
			Title:   titleRegistration,
			Notices: []string{app.MsgRegistrationError},
			Form:    echo,
		})
	case errors.Is(err, store.ErrEmailAlreadyExists):
		// lost the race against a concurrent registration
		h.render(w, r, http.StatusOK, view.PageRegistration, view.Page{
			Title:  titleRegistration,
			Errors: []string{validators.MsgEmailExists},
			Form:   echo,
		})
	default:
		log.Err(err).Msg("registration failed")
		h.render(w, r, http.StatusNotImplemented, view.PageRegistration, view.Page{
			Title:   titleRegistration,
			Notices: []string{app.MsgRegistrationFailed},
			Form:    echo,
		})
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.PostForm.Get(validators.FieldEmail)

	account, err := h.services.AuthService.Login(ctx, email, r.PostForm.Get(validators.FieldPassword))
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) || errors.Is(err, store.ErrNoAccountWasFound) || errors.Is(err, service.ErrInvalidDataProvided) {
			log.Info().Err(err).Msg("login rejected")
			h.render(w, r, http.StatusBadRequest, view.PageLogin, view.Page{
				Title:   titleLogin,
				Notices: []string{app.MsgCheckCredentials},
				Form:    url.Values{validators.FieldEmail: {email}},
			})
			return
		}
		h.renderError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.setSessionCookie(w, token)
	log.Info().Int64("account_id", account.AccountID).Msg("logged in")
	http.Redirect(w, r, accountsPath, http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if session, ok := utils.GetSessionFromContext(r.Context()); ok {
		if err := h.services.AuthService.RevokeToken(r.Context(), session); err != nil {
			log.Err(err).Msg("error revoking session token on logout")
		}
	}

	h.clearSessionCookie(w)
	h.flashes.set(w, app.MsgLoggedOut)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) accounts(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())

	account, err := h.services.AccountService.GetAccount(r.Context(), identity.AccountID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageAccounts, view.Page{Title: titleAccounts, Account: &account})
}

func (h *Handler) accountUpdatePage(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())

	account, err := h.services.AccountService.GetAccount(r.Context(), identity.AccountID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageAccountUpdate, view.Page{
		Title:   titleAccountUpdate,
		Account: &account,
		Form:    accountForm(account),
	})
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	identity, _ := utils.GetIdentityFromContext(ctx)

	updated, err := h.services.AccountService.UpdateAccount(ctx, models.Account{
		AccountID: identity.AccountID,
		FirstName: r.PostForm.Get(validators.FieldFirstName),
		LastName:  r.PostForm.Get(validators.FieldLastName),
		Email:     r.PostForm.Get(validators.FieldEmail),
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Info().Msg("account update rejected, email belongs to another account")
		h.render(w, r, http.StatusOK, view.PageAccountUpdate, view.Page{
			Title:  titleAccountUpdate,
			Errors: []string{validators.MsgEmailExists},
			Form:   h.forms.accountUpdate.Echo(r.PostForm),
		})
		return
	}
	if err != nil {
		log.Err(err).Msg("account update failed")
		h.render(w, r, http.StatusNotImplemented, view.PageAccountUpdate, view.Page{
			Title:   titleAccountUpdate,
			Notices: []string{app.MsgAccountUpdateFailed},
			Form:    h.forms.accountUpdate.Echo(r.PostForm),
		})
		return
	}

	// the session carries the names shown in the header
	if token, err := h.services.AuthService.CreateToken(ctx, updated); err != nil {
		log.Err(err).Msg("error re-issuing session token after account update")
	} else {
		if old, ok := utils.GetSessionFromContext(ctx); ok {
			if err = h.services.AuthService.RevokeToken(ctx, old); err != nil {
				log.Err(err).Msg("error revoking replaced session token")
			}
		}
		h.setSessionCookie(w, token)
		r = r.WithContext(utils.WithSession(ctx, token))
	}

	h.render(w, r, http.StatusOK, view.PageAccounts, view.Page{
		Title:   titleAccounts,
		Account: &updated,
		Notices: []string{app.MsgAccountUpdated},
	})
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	identity, _ := utils.GetIdentityFromContext(ctx)

	if err := h.services.AccountService.UpdatePassword(ctx, identity.AccountID, r.PostForm.Get(validators.FieldPassword)); err != nil {
		log.Err(err).Msg("password update failed")
		h.render(w, r, http.StatusNotImplemented, view.PageAccountUpdate, view.Page{
			Title:   titleAccountUpdate,
			Notices: []string{app.MsgPasswordFailed},
			Form: accountForm(models.Account{
				FirstName: identity.FirstName,
				LastName:  identity.LastName,
				Email:     identity.Email,
			}),
		})
		return
	}

	h.flashes.set(w, app.MsgPasswordUpdated)
	http.Redirect(w, r, accountsPath, http.StatusSeeOther)
}

// darkMode stores the theme preference of the logged in account. The body is
// JSON and so is the answer.
func (h *Handler) darkMode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	identity, _ := utils.GetIdentityFromContext(ctx)

	var req models.DarkModeRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Info().Err(err).Msg("malformed dark mode request")
		h.writeJSON(w, r, models.DarkModeResponse{Success: false}, http.StatusBadRequest)
		return
	}

	if req.AccountID != "" && req.AccountID != strconv.FormatInt(identity.AccountID, 10) {
		log.Warn().Str("requested_account_id", req.AccountID).Msg("dark mode requested for another account")
		h.writeJSON(w, r, models.DarkModeResponse{Success: false}, http.StatusForbidden)
		return
	}

	if err := h.services.AccountService.SetDarkMode(ctx, identity.AccountID, req.DarkMode); err != nil {
		log.Err(err).Msg("error storing dark mode preference")
		h.writeJSON(w, r, models.DarkModeResponse{Success: false}, http.StatusNotImplemented)
		return
	}

	h.writeJSON(w, r, models.DarkModeResponse{Success: true}, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing JSON response")
	}
}

func (h *Handler) triggerError(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, errIntentional)
}

func accountForm(account models.Account) url.Values {
	return url.Values{
		validators.FieldFirstName: {account.FirstName},
		validators.FieldLastName:  {account.LastName},
		validators.FieldEmail:     {account.Email},
	}
}
