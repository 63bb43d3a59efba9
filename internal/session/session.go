package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"portfolio/pkg/token"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	flashSubject = "flash"
	flashClaim   = "flashes"
	flashTTL     = 5 * time.Minute
)

const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Identity is the user bound to a client session.
type Identity struct {
	UserID   uint
	Username string
}

type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type Options struct {
	TTL    time.Duration
	Cookie CookieOptions
}

// Manager keeps the session state on the client in sealed cookies. Nothing
// is held in memory between requests.
type Manager struct {
	logs   *zap.SugaredLogger
	tokens TokenIssuer
	ttl    time.Duration
	cookie CookieOptions
}

func NewManager(logger *zap.SugaredLogger, tokens TokenIssuer, opts Options) *Manager {
	return &Manager{
		logs:   logger,
		tokens: tokens,
		ttl:    opts.TTL,
		cookie: opts.Cookie,
	}
}

// Current returns the identity carried by the request, if any. Missing,
// tampered and expired tokens all read as anonymous.
func (m *Manager) Current(r *http.Request) (Identity, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return Identity{}, false
	}

	claims, err := m.tokens.Validate(cookie.Value)
	if err != nil {
		m.logs.Debugw("session token rejected", "error", err)
		return Identity{}, false
	}

	subject, _ := claims["sub"].(string)
	userID, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		m.logs.Debugw("session token without user id", "subject", subject)
		return Identity{}, false
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return Identity{}, false
	}

	return Identity{
		UserID:   uint(userID),
		Username: username,
	}, true
}

// Bind authenticates the client as id, replacing any previous identity.
func (m *Manager) Bind(w http.ResponseWriter, id Identity) error {
	signed, err := m.sign(token.TokenInfo{
		UserName:   id.Username,
		Subject:    strconv.FormatUint(uint64(id.UserID), 10),
		Expiration: m.ttl,
	})
	if err != nil {
		return fmt.Errorf("bind session: %w", err)
	}

	setCookie(w, SessionCookieName, signed, token.TimeNow().Add(m.ttl), m.cookie)
	return nil
}

// Clear returns the client to anonymous.
func (m *Manager) Clear(w http.ResponseWriter) {
	clearCookie(w, SessionCookieName, m.cookie)
}

// AddFlash queues messages for the next rendered page, keeping those
// already pending on the request.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, flashes ...Flash) error {
	pending := append(m.pendingFlashes(r), flashes...)

	encoded, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("encode flashes: %w", err)
	}

	signed, err := m.sign(token.TokenInfo{
		Subject:    flashSubject,
		Expiration: flashTTL,
		Extra:      map[string]any{flashClaim: string(encoded)},
	})
	if err != nil {
		return fmt.Errorf("add flash: %w", err)
	}

	setCookie(w, FlashCookieName, signed, token.TimeNow().Add(flashTTL), m.cookie)
	return nil
}

// Flashes consumes the pending messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	if _, err := r.Cookie(FlashCookieName); err != nil {
		return nil
	}

	clearCookie(w, FlashCookieName, m.cookie)
	return m.pendingFlashes(r)
}

func (m *Manager) pendingFlashes(r *http.Request) []Flash {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	claims, err := m.tokens.Validate(cookie.Value)
	if err != nil || claims["sub"] != flashSubject {
		return nil
	}

	raw, _ := claims[flashClaim].(string)
	var flashes []Flash
	if err := json.Unmarshal([]byte(raw), &flashes); err != nil {
		m.logs.Debugw("flash cookie unreadable", "error", err)
		return nil
	}

	return flashes
}

func (m *Manager) sign(info token.TokenInfo) (string, error) {
	signed, err := m.tokens.Sign(m.tokens.Generate(info))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
