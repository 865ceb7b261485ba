package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed payload of the session cookie.
type Claims struct {
	UserID  uint    `json:"user_id,omitempty"`
	Flashes []Flash `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

// CookieStore keeps the whole session client side in an HS256-signed JWT.
type CookieStore struct {
	secret  []byte
	options CookieOptions
	now     func() time.Time
}

// NewCookieStore creates a CookieStore signing with secret.
func NewCookieStore(secret string, options CookieOptions) *CookieStore {
	return &CookieStore{secret: []byte(secret), options: options, now: time.Now}
}

func (s *CookieStore) Load(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(s.options.Name)
	if err != nil || cookie.Value == "" {
		return &Session{}, nil
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return &Session{}, nil
	}

	return &Session{UserID: claims.UserID, Flashes: claims.Flashes}, nil
}

func (s *CookieStore) Save(w http.ResponseWriter, r *http.Request, sess *Session) error {
	if sess.IsEmpty() {
		if _, err := r.Cookie(s.options.Name); err == nil {
			s.options.clear(w)
		}
		return nil
	}

	now := s.now()
	claims := &Claims{
		UserID:  sess.UserID,
		Flashes: sess.Flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.options.MaxAge) * time.Second)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}
	s.options.write(w, signed, s.options.MaxAge)
	return nil
}
