package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"portfolio/internal/content"
	"portfolio/internal/http/handler/middleware"
	"portfolio/internal/http/view"
	"portfolio/internal/session"

	"go.uber.org/zap"
)

var (
	Home           = "GET /{$}"
	Static         = "GET /static/"
	LoginPage      = "GET /login"
	Login          = "POST /login"
	Logout         = "GET /logout"
	AdminDashboard = "GET /admin"
	GetSkills      = "GET /api/skills"
	GetProjects    = "GET /api/projects"
	ToggleTheme    = "POST /api/theme"
	SubmitContact  = "POST /api/contact"
	GetMessages    = "GET /api/messages"
	DeleteMessage  = "DELETE /api/messages/{id}"
)

type PortfolioHandler struct {
	logs      *zap.SugaredLogger
	decoder   RequestDecoder
	service   PortfolioService
	sessions  *session.Manager
	renderer  *view.Renderer
	portfolio content.Portfolio
}

func NewPortfolioHandler(
	logger *zap.SugaredLogger,
	decoder RequestDecoder,
	service PortfolioService,
	sessions *session.Manager,
	renderer *view.Renderer,
	portfolio content.Portfolio,
) *PortfolioHandler {
	return &PortfolioHandler{
		logs:      logger,
		decoder:   decoder,
		service:   service,
		sessions:  sessions,
		renderer:  renderer,
		portfolio: portfolio,
	}
}

// Register mounts every route on mux. Protected routes are wrapped by the
// gate here and nowhere else.
func (h *PortfolioHandler) Register(mux *http.ServeMux, gate *middleware.Gate) {
	mux.HandleFunc(Home, h.HandleHome)
	mux.Handle(Static, view.Static())
	mux.HandleFunc(LoginPage, h.HandleLoginPage)
	mux.HandleFunc(Login, h.HandleLogin)
	mux.HandleFunc(Logout, h.HandleLogout)
	mux.HandleFunc(GetSkills, h.HandleGetSkills)
	mux.HandleFunc(GetProjects, h.HandleGetProjects)
	mux.HandleFunc(ToggleTheme, h.HandleToggleTheme)
	mux.HandleFunc(SubmitContact, h.HandleSubmitContact)

	mux.Handle(AdminDashboard, gate.RequireLogin(http.HandlerFunc(h.HandleAdminDashboard)))
	mux.Handle(GetMessages, gate.RequireLoginAPI(http.HandlerFunc(h.HandleGetMessages)))
	mux.Handle(DeleteMessage, gate.RequireLoginAPI(http.HandlerFunc(h.HandleDeleteMessage)))
}

func (h *PortfolioHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

// render buffers the page so a template error can still become a 500.
func (h *PortfolioHandler) render(w http.ResponseWriter, page string, data any, code int, handler, requestId string) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to render page",
			"error", err,
			"page", page,
			"handler", handler,
			"request_id", requestId)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		h.logs.Errorw("failed to write page",
			"error", err,
			"handler", handler,
			"request_id", requestId)
	}
}

func (h *PortfolioHandler) redirectWithFlash(w http.ResponseWriter, r *http.Request, target string, flash session.Flash, handler, requestId string) {
	if err := h.sessions.AddFlash(w, r, flash); err != nil {
		h.logs.Errorw("failed to queue flash message",
			"error", err,
			"handler", handler,
			"request_id", requestId)
	}
	http.Redirect(w, r, target, http.StatusFound)
}
