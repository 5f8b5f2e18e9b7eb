package helpers

import (
	"fmt"
	"net/http"
	"strings"

	"rbay-web/internal/backend"
	"rbay-web/internal/models"
	"rbay-web/utils"

	"github.com/gin-gonic/gin"
)

// SessionContextKey is where the session middleware stores the resolved
// viewer session for the duration of one request.
const SessionContextKey = "viewerSession"

// CurrentSession returns the viewer session resolved for this request, or
// nil for anonymous viewers.
func CurrentSession(c *gin.Context) *models.Session {
	value, ok := c.Get(SessionContextKey)
	if !ok {
		return nil
	}
	session, _ := value.(*models.Session)
	return session
}

// AuthCookieValue returns the raw auth cookie value from the incoming
// request, empty when absent.
func AuthCookieValue(c *gin.Context) string {
	cookie, err := c.Request.Cookie(backend.AuthCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// PageData builds the base template data every page shares and merges the
// page-specific values over it.
func PageData(c *gin.Context, extra gin.H) gin.H {
	data := gin.H{
		"Session": CurrentSession(c),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// RelayCookies copies backend-set cookies onto the browser response. This
// is how sign-up, sign-in and sign-out move the auth credential.
func RelayCookies(c *gin.Context, result *backend.AuthResult) {
	if result == nil {
		return
	}
	for _, cookie := range result.Cookies {
		http.SetCookie(c.Writer, cookie)
	}
}

// RenderNotFound renders the terminal not-found page
func RenderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", PageData(c, nil))
}

// RenderError renders the fatal error page for this request
func RenderError(c *gin.Context, err error) {
	c.HTML(http.StatusInternalServerError, "error.html", PageData(c, gin.H{
		"Error": err.Error(),
	}))
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// FormatCurrency renders a USD amount with comma grouping, e.g. $1,234.56
func FormatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	out := "$" + grouped.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// FormatTimestamp renders a bid history timestamp for display. Invalid
// values render as an empty string.
func FormatTimestamp(ft models.FlexTime) string {
	if !ft.Valid() {
		return ""
	}
	return ft.Time().Format("Jan 2, 2006 3:04:05 PM")
}
