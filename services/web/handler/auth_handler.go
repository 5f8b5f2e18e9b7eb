package handler

import (
	"context"
	"net/http"

	"rbay-web/internal/backend"
	"rbay-web/services/web/helpers"
	"rbay-web/utils"

	"github.com/gin-gonic/gin"
)

// SignUpPageHandler handles GET /auth/signup
func (h *WebHandler) SignUpPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", helpers.PageData(c, nil))
}

// SignInPageHandler handles GET /auth/signin
func (h *WebHandler) SignInPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "signin.html", helpers.PageData(c, nil))
}

// SignUpSubmitHandler handles POST /auth/signup
func (h *WebHandler) SignUpSubmitHandler(c *gin.Context) {
	h.submitCredentials(c, "signup.html", h.client.SignUp)
}

// SignInSubmitHandler handles POST /auth/signin
func (h *WebHandler) SignInSubmitHandler(c *gin.Context) {
	h.submitCredentials(c, "signin.html", h.client.SignIn)
}

// submitCredentials drives one auth form submission: bind, call the
// backend, relay the session cookie and send the browser home. Failures
// re-render the form with the server-supplied error text.
func (h *WebHandler) submitCredentials(c *gin.Context, page string, call func(ctx context.Context, creds backend.Credentials) (*backend.AuthResult, error)) {
	var form helpers.CredentialsForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, page, helpers.PageData(c, gin.H{
			"Error":    "Username and password are required",
			"Username": c.PostForm("username"),
		}))
		utils.Warn("auth form binding error", map[string]any{"page": page, "error": err.Error()})
		return
	}

	result, err := call(c.Request.Context(), backend.Credentials{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		c.HTML(http.StatusOK, page, helpers.PageData(c, gin.H{
			"Error":    err.Error(),
			"Username": form.Username,
		}))
		utils.Warn("auth submission rejected", map[string]any{"page": page, "error": err.Error()})
		return
	}

	// The backend set the auth cookie; relaying it signs the browser in.
	helpers.RelayCookies(c, result)
	helpers.LogSuccess("submitCredentials", "viewer authenticated", map[string]any{"page": page})
	c.Redirect(http.StatusSeeOther, "/")
}

// SignOutHandler handles POST /auth/signout. The home redirect happens
// whether or not the backend call succeeded.
func (h *WebHandler) SignOutHandler(c *gin.Context) {
	result, err := h.client.SignOut(c.Request.Context(), helpers.AuthCookieValue(c))
	if err != nil {
		utils.Warn("SignOutHandler: signout call failed", map[string]any{"error": err.Error()})
	} else {
		helpers.RelayCookies(c, result)
	}

	c.Redirect(http.StatusSeeOther, "/")
}
