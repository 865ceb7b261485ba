package middleware

import (
	"context"
	"errors"
	"net/http"

	"hospital-management-server/internal/logger"
	"hospital-management-server/internal/models"
	"hospital-management-server/internal/repository"
	"hospital-management-server/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey   = "session"
	storeKey     = "sessionStore"
	principalKey = "principal"
)

// UserLoader restores a principal from the id kept in the session.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// SessionMiddleware loads the request's session from store and, when it names a
// user, restores that user as the principal. A user id that no longer resolves is
// dropped from the session.
func SessionMiddleware(store session.Store, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Load(c.Request)
		if err != nil {
			logger.WithError(err).Error("failed to load session")
			sess = &session.Session{}
		}
		c.Set(sessionKey, sess)
		c.Set(storeKey, store)

		if sess.IsAuthenticated() {
			user, err := users.FindByID(c.Request.Context(), sess.UserID)
			switch {
			case err == nil:
				c.Set(principalKey, user)
			case errors.Is(err, repository.ErrNotFound):
				sess.Logout()
			default:
				logger.WithError(err).WithField("user_id", sess.UserID).Error("failed to load session user")
			}
		}

		c.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page.
// It should be used *after* SessionMiddleware.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetPrincipal(c); ok {
			c.Next()
			return
		}

		sess := GetSession(c)
		sess.AddFlash("Please log in to access this page.", session.CategoryInfo)
		if err := SaveSession(c); err != nil {
			logger.WithError(err).Error("failed to save session")
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

// GetSession returns the request's session. Outside SessionMiddleware it
// returns a fresh empty session that is remembered for the rest of the request.
func GetSession(c *gin.Context) *session.Session {
	if v, exists := c.Get(sessionKey); exists {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	sess := &session.Session{}
	c.Set(sessionKey, sess)
	return sess
}

// GetPrincipal returns the authenticated user of the request, if any.
func GetPrincipal(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// SetPrincipal makes user the principal for the rest of the request and the session.
func SetPrincipal(c *gin.Context, user *models.User) {
	GetSession(c).Login(user.ID)
	c.Set(principalKey, user)
}

// ClearPrincipal logs the request out.
func ClearPrincipal(c *gin.Context) {
	GetSession(c).Logout()
	c.Set(principalKey, (*models.User)(nil))
}
