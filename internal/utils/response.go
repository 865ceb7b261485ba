package utils

import (
	"net/http"

	"hospital-management-server/internal/logger"
	"hospital-management-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Render renders an HTML page. Pending flashes are moved from the session into
// the page data, the principal is exposed as current_user, and the session is
// saved before the body is written.
func Render(c *gin.Context, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = middleware.GetSession(c).PopFlashes()
	if user, ok := middleware.GetPrincipal(c); ok {
		data["current_user"] = user
	}
	saveSession(c)
	c.HTML(http.StatusOK, page, data)
}

// Redirect saves the session, keeping its flashes for the next page, and
// redirects to location.
func Redirect(c *gin.Context, location string) {
	saveSession(c)
	c.Redirect(http.StatusFound, location)
}

// Text sends a plain text response.
func Text(c *gin.Context, statusCode int, body string) {
	c.String(statusCode, body)
}

// NotFound sends a 404 Not Found plain text response.
func NotFound(c *gin.Context) {
	Text(c, http.StatusNotFound, "Not Found")
}

// InternalServerError logs err and sends a 500 Internal Server Error plain text response.
func InternalServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	logger.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	Text(c, http.StatusInternalServerError, "Internal Server Error")
}

func saveSession(c *gin.Context) {
	if err := middleware.SaveSession(c); err != nil {
		logger.WithError(err).Error("failed to save session")
	}
}
