package session

import (
	"net/http"
)

// Flash categories used by the templates.
const (
	CategoryPrimary = "primary"
	CategoryInfo    = "info"
	CategorySuccess = "success"
	CategoryWarning = "warning"
	CategoryDanger  = "danger"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// Session is the per-request state carried between requests: the principal's
// user id (zero when anonymous) and pending flashes.
type Session struct {
	ID      string  `json:"-"`
	UserID  uint    `json:"user_id,omitempty"`
	Flashes []Flash `json:"flashes,omitempty"`
}

// Store loads and persists sessions across requests.
type Store interface {
	// Load never fails on a missing, expired or tampered session; it returns
	// an empty one. Errors are reserved for backend failures.
	Load(r *http.Request) (*Session, error)
	Save(w http.ResponseWriter, r *http.Request, s *Session) error
}

// AddFlash queues a message for the next rendered page.
func (s *Session) AddFlash(message, category string) {
	s.Flashes = append(s.Flashes, Flash{Message: message, Category: category})
}

// PopFlashes returns the queued messages and clears them.
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// Login makes userID the principal.
func (s *Session) Login(userID uint) {
	s.UserID = userID
}

// Logout drops the principal. Pending flashes survive.
func (s *Session) Logout() {
	s.UserID = 0
}

// IsAuthenticated reports whether a principal id is set.
func (s *Session) IsAuthenticated() bool {
	return s.UserID != 0
}

// IsEmpty reports whether there is nothing worth persisting.
func (s *Session) IsEmpty() bool {
	return s.UserID == 0 && len(s.Flashes) == 0
}

// CookieOptions control the session cookie.
type CookieOptions struct {
	Name   string
	MaxAge int
	Secure bool
}

func (o CookieOptions) write(w http.ResponseWriter, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     o.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   o.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (o CookieOptions) clear(w http.ResponseWriter) {
	o.write(w, "", -1)
}
