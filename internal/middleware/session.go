package middleware

import (
	"errors"

	"hospital-management-server/internal/session"

	"github.com/gin-gonic/gin"
)

// SaveSession persists the request's session. It must run before the response
// body is written because it sets a cookie.
func SaveSession(c *gin.Context) error {
	v, exists := c.Get(storeKey)
	if !exists {
		return errors.New("session store not configured")
	}
	store, ok := v.(session.Store)
	if !ok {
		return errors.New("session store in context is not of expected type")
	}
	return store.Save(c.Writer, c.Request, GetSession(c))
}
