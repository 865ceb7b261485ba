package handlers

import (
	"errors"
	"net/http"

	"hospital-management-server/internal/middleware"
	"hospital-management-server/internal/repository"
	"hospital-management-server/internal/session"
	"hospital-management-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	Users UserStore
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users UserStore) *AuthHandler {
	return &AuthHandler{Users: users}
}

// Signup creates an account unless the email is already registered.
func (h *AuthHandler) Signup(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		utils.Render(c, "signup.html", nil)
		return
	}

	var form SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	sess := middleware.GetSession(c)
	_, err := h.Users.FindByEmail(c.Request.Context(), form.Email)
	switch {
	case err == nil:
		sess.AddFlash("Email Already Exists", session.CategoryWarning)
		utils.Render(c, "signup.html", nil)
		return
	case !errors.Is(err, repository.ErrNotFound):
		utils.InternalServerError(c, err)
		return
	}

	user := form.User()
	if err := h.Users.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			sess.AddFlash("Email Already Exists", session.CategoryWarning)
			utils.Render(c, "signup.html", nil)
			return
		}
		utils.InternalServerError(c, err)
		return
	}

	sess.AddFlash("Signup Successful, Please Login", session.CategorySuccess)
	utils.Redirect(c, "/login")
}

// Login starts a session when the password matches the stored one exactly.
// Unknown email and wrong password get the same answer.
func (h *AuthHandler) Login(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		utils.Render(c, "login.html", nil)
		return
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	sess := middleware.GetSession(c)
	user, err := h.Users.FindByEmail(c.Request.Context(), form.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		utils.InternalServerError(c, err)
		return
	}
	if user == nil || !user.CheckPassword(form.Password) {
		sess.AddFlash("Invalid credentials", session.CategoryDanger)
		utils.Render(c, "login.html", nil)
		return
	}

	middleware.SetPrincipal(c, user)
	sess.AddFlash("Login Success", session.CategoryPrimary)
	utils.Redirect(c, "/")
}

// Logout ends the session's login.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearPrincipal(c)
	middleware.GetSession(c).AddFlash("Logout Successful", session.CategoryWarning)
	utils.Redirect(c, "/login")
}
