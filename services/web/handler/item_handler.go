package handler

import (
	"errors"
	"net/http"
	"net/url"

	"rbay-web/internal/countdown"
	"rbay-web/internal/models"
	"rbay-web/internal/weberrors"
	"rbay-web/internal/widget"
	"rbay-web/services/web/helpers"
	"rbay-web/utils"

	"github.com/gin-gonic/gin"
)

// ItemDetailHandler handles GET /items/:item_id. The fetch forwards the
// viewer's cookie so userLikes and userHasHighBid reflect their session.
func (h *WebHandler) ItemDetailHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	data, err := h.client.GetItem(c.Request.Context(), helpers.AuthCookieValue(c), itemID)
	if err != nil {
		h.renderItemError(c, itemID, err)
		return
	}

	extra := gin.H{}
	if c.Query("bid") == "success" {
		extra["BidMessage"] = widget.BidSuccessMessage
	}
	if likeErr := c.Query("like_error"); likeErr != "" {
		extra["LikeError"] = likeErr
	}

	h.renderItem(c, data, extra)
}

// PlaceBidHandler handles POST /items/:item_id/bids. An invalid amount is
// rejected locally without a backend call; an accepted bid redirects so the
// re-rendered page carries the authoritative price and history.
func (h *WebHandler) PlaceBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	authCookie := helpers.AuthCookieValue(c)

	var req helpers.BidFormRequest
	_ = c.ShouldBind(&req)

	form := widget.NewBidForm(h.client, itemID, authCookie)
	form.Submit(c.Request.Context(), req.Amount)

	if form.Message() != "" {
		helpers.LogSuccess("PlaceBidHandler", "bid accepted", map[string]any{"item_id": itemID})
		c.Redirect(http.StatusSeeOther, "/items/"+url.PathEscape(itemID)+"?bid=success")
		return
	}

	utils.Warn("PlaceBidHandler: bid rejected", map[string]any{
		"item_id": itemID,
		"error":   form.Err(),
	})

	data, err := h.client.GetItem(c.Request.Context(), authCookie, itemID)
	if err != nil {
		h.renderItemError(c, itemID, err)
		return
	}

	h.renderItem(c, data, gin.H{
		"BidError":  form.Err(),
		"BidAmount": form.Amount(),
	})
}

// ToggleLikeHandler handles POST /items/:item_id/likes. The current liked
// flag from the viewer's item snapshot decides between like and unlike.
func (h *WebHandler) ToggleLikeHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	authCookie := helpers.AuthCookieValue(c)

	data, err := h.client.GetItem(c.Request.Context(), authCookie, itemID)
	if err != nil {
		h.renderItemError(c, itemID, err)
		return
	}

	toggle := widget.NewLikeToggle(h.client, itemID, authCookie, data.Item.Likes, data.UserLikes)
	toggle.Toggle(c.Request.Context())

	target := "/items/" + url.PathEscape(itemID)
	if msg := toggle.Err(); msg != "" {
		utils.Warn("ToggleLikeHandler: toggle rejected", map[string]any{
			"item_id": itemID,
			"error":   msg,
		})
		target += "?like_error=" + url.QueryEscape(msg)
	} else {
		liked, count, _ := toggle.State()
		helpers.LogSuccess("ToggleLikeHandler", "like toggled", map[string]any{
			"item_id": itemID,
			"liked":   liked,
			"count":   count,
		})
	}

	c.Redirect(http.StatusSeeOther, target)
}

// renderItem renders the item detail page with the derived display values
func (h *WebHandler) renderItem(c *gin.Context, data *models.ItemResponse, extra gin.H) {
	page := gin.H{
		"Data":       data,
		"Item":       data.Item,
		"EndingIn":   countdown.Label(data.Item.EndingAt, h.now()),
		"MinimumBid": data.Item.MinimumBid(),
		"Liked":      data.UserLikes,
		"LikeCount":  data.Item.Likes,
	}
	for k, v := range extra {
		page[k] = v
	}
	c.HTML(http.StatusOK, "item.html", helpers.PageData(c, page))
}

// renderItemError distinguishes the terminal not-found outcome from a
// fatal fetch failure.
func (h *WebHandler) renderItemError(c *gin.Context, itemID string, err error) {
	if errors.Is(err, weberrors.ErrItemNotFound) {
		utils.Info("item not found", map[string]any{"item_id": itemID})
		helpers.RenderNotFound(c)
		return
	}
	utils.Error("failed to load item", map[string]any{"item_id": itemID, "error": err.Error()})
	helpers.RenderError(c, err)
}
