package handler

import (
	"errors"
	"net/http"
	"portfolio/internal/core"
	"portfolio/internal/http/handler/middleware"
	"portfolio/internal/http/payload"
	"portfolio/internal/http/view"
	"portfolio/internal/session"
)

func (h *PortfolioHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	_, loggedIn := h.sessions.Current(r)
	h.render(w, view.PageIndex, view.IndexPage{
		Portfolio: h.portfolio,
		Flashes:   h.sessions.Flashes(w, r),
		LoggedIn:  loggedIn,
	}, http.StatusOK, Home, requestId)
}

func (h *PortfolioHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	h.render(w, view.PageLogin, view.LoginPage{
		Flashes: h.sessions.Flashes(w, r),
	}, http.StatusOK, LoginPage, requestId)
}

// HandleLogin binds the session and redirects to the dashboard. Any failure
// re-renders the form with an error instead of redirecting.
func (h *PortfolioHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var login payload.LoginRequest
	if err := h.decoder.DecodeFormPayload(r, &login); err != nil {
		h.logs.Infow("incomplete login form",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		h.renderLoginError(w, r, login.Username, msgLoginIncomplete, requestId)
		return
	}

	account, err := h.service.Authenticate(r.Context(), login.Username, login.Password)
	if err != nil {
		message := msgLoginFailed
		if !errors.Is(err, core.ErrInvalidCredentials) {
			message = msgStoreUnavailable + "!"
		}

		h.logs.Errorw("authentication failed",
			"error", err,
			"username", login.Username,
			"handler", Login,
			"request_id", requestId)
		h.renderLoginError(w, r, login.Username, message, requestId)
		return
	}

	err = h.sessions.Bind(w, session.Identity{UserID: account.ID, Username: account.Username})
	if err != nil {
		h.logs.Errorw("failed to bind session",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		h.renderLoginError(w, r, login.Username, oopsErr, requestId)
		return
	}

	h.logs.Infow("user logged in",
		"username", account.Username,
		"handler", Login,
		"request_id", requestId)

	h.redirectWithFlash(w, r, "/admin",
		session.Flash{Category: session.FlashSuccess, Message: msgLoginSuccess},
		Login, requestId)
}

func (h *PortfolioHandler) renderLoginError(w http.ResponseWriter, r *http.Request, username, message, requestId string) {
	flashes := append(h.sessions.Flashes(w, r), session.Flash{Category: session.FlashError, Message: message})
	h.render(w, view.PageLogin, view.LoginPage{
		Flashes:  flashes,
		Username: username,
	}, http.StatusOK, Login, requestId)
}

func (h *PortfolioHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	h.sessions.Clear(w)
	h.redirectWithFlash(w, r, "/",
		session.Flash{Category: session.FlashInfo, Message: msgLoggedOut},
		Logout, requestId)
}

func (h *PortfolioHandler) HandleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	identity, _ := middleware.IdentityFromContext(r.Context())

	messages, err := h.service.ListMessages(r.Context())
	if err != nil {
		h.logs.Errorw("failed to list messages",
			"error", err,
			"handler", AdminDashboard,
			"request_id", requestId)
		h.redirectWithFlash(w, r, "/",
			session.Flash{Category: session.FlashError, Message: storeErrorMessage(err, msgMessagesNotRead) + "!"},
			AdminDashboard, requestId)
		return
	}

	h.render(w, view.PageAdmin, view.AdminPage{
		Username: identity.Username,
		Messages: messages,
		Flashes:  h.sessions.Flashes(w, r),
	}, http.StatusOK, AdminDashboard, requestId)
}

// storeErrorMessage picks the user facing text for a store failure. Details
// of the failure stay in the logs.
func storeErrorMessage(err error, fallback string) string {
	if errors.Is(err, core.ErrStoreUnavailable) {
		return msgStoreUnavailable
	}
	return fallback
}
