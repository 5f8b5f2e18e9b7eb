package handler

import (
	"errors"
	"net/http"
	"net/url"

	"rbay-web/internal/backend"
	"rbay-web/internal/weberrors"
	"rbay-web/services/web/helpers"
	"rbay-web/utils"

	"github.com/gin-gonic/gin"
)

// HomeHandler handles GET /
func (h *WebHandler) HomeHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", helpers.PageData(c, nil))
}

// DashboardHandler handles GET /dashboard/items. Anonymous viewers are sent
// to the sign-in page.
func (h *WebHandler) DashboardHandler(c *gin.Context) {
	if !helpers.CurrentSession(c).LoggedIn() {
		c.Redirect(http.StatusSeeOther, "/auth/signin")
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", helpers.PageData(c, nil))
}

// NewItemPageHandler handles GET /dashboard/items/new
func (h *WebHandler) NewItemPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "newitem.html", helpers.PageData(c, gin.H{
		"Form":            defaultNewItemForm(),
		"DurationOptions": helpers.DurationOptions,
	}))
}

// NewItemSubmitHandler handles POST /dashboard/items/new. Length and
// duration constraints are checked before the backend sees the form.
func (h *WebHandler) NewItemSubmitHandler(c *gin.Context) {
	var form helpers.NewItemForm
	_ = c.ShouldBind(&form)

	if err := helpers.ValidateNewItem(form); err != nil {
		utils.Warn("NewItemSubmitHandler: validation failed", map[string]any{"error": err.Error()})
		h.renderNewItem(c, form, err.Error())
		return
	}

	created, err := h.client.CreateItem(c.Request.Context(), helpers.AuthCookieValue(c), backend.NewItemRequest{
		Name:        form.Name,
		Description: form.Description,
		Duration:    form.Duration,
	})
	if err != nil {
		utils.Warn("NewItemSubmitHandler: creation rejected", map[string]any{"error": err.Error()})
		h.renderNewItem(c, form, err.Error())
		return
	}

	helpers.LogSuccess("NewItemSubmitHandler", "item created", map[string]any{"item_id": created.ID})
	c.Redirect(http.StatusSeeOther, "/items/"+url.PathEscape(created.ID))
}

// ProfileHandler handles GET /users/:user_id
func (h *WebHandler) ProfileHandler(c *gin.Context) {
	userID := c.Param("user_id")

	profile, err := h.client.GetProfile(c.Request.Context(), helpers.AuthCookieValue(c), userID)
	if err != nil {
		if errors.Is(err, weberrors.ErrProfileNotFound) {
			utils.Info("profile not found", map[string]any{"user_id": userID})
			helpers.RenderNotFound(c)
			return
		}
		utils.Error("failed to load profile", map[string]any{"user_id": userID, "error": err.Error()})
		helpers.RenderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "profile.html", helpers.PageData(c, gin.H{
		"Profile": profile,
	}))
}

// NotFoundHandler renders the catch-all not-found page
func (h *WebHandler) NotFoundHandler(c *gin.Context) {
	helpers.RenderNotFound(c)
}

func (h *WebHandler) renderNewItem(c *gin.Context, form helpers.NewItemForm, errText string) {
	c.HTML(http.StatusOK, "newitem.html", helpers.PageData(c, gin.H{
		"Form":            form,
		"DurationOptions": helpers.DurationOptions,
		"Error":           errText,
	}))
}

// defaultNewItemForm carries the form's pre-filled example listing
func defaultNewItemForm() helpers.NewItemForm {
	return helpers.NewItemForm{
		Name:        "Chair",
		Description: "This is a fantastic chair that you would be quite happy with!",
		Duration:    helpers.DurationOptions[0].Seconds,
	}
}
