package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/FariaSara/Restaurent-Management-Suit/initializers"
	"github.com/FariaSara/Restaurent-Management-Suit/services"
	"github.com/FariaSara/Restaurent-Management-Suit/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const sessionCookieName = "cart_session"
const sessionCookieMaxAge = 60 * 60 * 24 * 30

// sessionKey returns the caller's cart session key, minting a new cookie if
// the caller has none. The key is the only cart identity handlers pass into
// the services layer.
func sessionKey(ctx *gin.Context) (string, error) {
	key, err := ctx.Cookie(sessionCookieName)
	if err == nil && key != "" {
		return key, nil
	}
	key, err = utils.GenerateSessionKey()
	if err != nil {
		return "", err
	}
	ctx.SetCookie(sessionCookieName, key, sessionCookieMaxAge, "/", "", false, true)
	return key, nil
}

// isXHR mirrors the X-Requested-With convention the cart page uses to decide
// between JSON and redirects.
func isXHR(ctx *gin.Context) bool {
	return ctx.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

// handleServiceError maps service errors onto responses: validation and
// not-found messages go to the client, anything else is logged and reported
// as a generic failure.
func handleServiceError(ctx *gin.Context, err error) {
	var validationErr services.ValidationError
	if errors.As(err, &validationErr) {
		sendErrorResponse(ctx, http.StatusBadRequest, validationErr.Error())
		return
	}
	var notFoundErr services.NotFoundError
	if errors.As(err, &notFoundErr) {
		sendErrorResponse(ctx, http.StatusNotFound, notFoundErr.Error())
		return
	}
	logrus.Errorf("Internal error handling %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
}

// GetCart returns the session's cart with live-priced lines and totals.
func GetCart(ctx *gin.Context) {
	key, err := sessionKey(ctx)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	cart, err := services.GetOrCreateCart(initializers.DB, key)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	summary, err := services.Summarize(initializers.DB, cart.CartID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"cart":       cart,
		"cart_count": summary.ItemCount,
		"cart_total": summary.TotalAmount,
	})
}

// AddCartItem adds a menu item to the session's cart.
func AddCartItem(ctx *gin.Context) {
	var input struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid data")
		return
	}

	key, err := sessionKey(ctx)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	cart, err := services.GetOrCreateCart(initializers.DB, key)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	result, err := services.AddItem(initializers.DB, cart, input.MenuItemID, input.Quantity)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":    true,
		"message":    result.MenuItem.Name + " added to cart",
		"cart_count": result.Summary.ItemCount,
		"cart_total": result.Summary.TotalAmount,
	})
}

// UpdateCartItem sets a line's quantity; zero or less removes the line.
func UpdateCartItem(ctx *gin.Context) {
	itemID, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid data")
		return
	}

	var input struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid data")
		return
	}

	key, err := sessionKey(ctx)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	cart, err := services.GetOrCreateCart(initializers.DB, key)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	result, err := services.UpdateItemQuantity(initializers.DB, cart.CartID, uint(itemID), *input.Quantity)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	message := "Cart updated"
	if result.Removed {
		message = "Item removed from cart"
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":       true,
		"message":       message,
		"cart_count":    result.Summary.ItemCount,
		"cart_total":    result.Summary.TotalAmount,
		"item_subtotal": result.ItemSubtotal,
	})
}

// RemoveCartItem deletes a line. XHR callers get JSON; plain navigation gets
// a redirect back to the cart page.
func RemoveCartItem(ctx *gin.Context) {
	itemID, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid data")
		return
	}

	key, err := sessionKey(ctx)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	cart, err := services.GetOrCreateCart(initializers.DB, key)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	summary, err := services.RemoveItem(initializers.DB, cart.CartID, uint(itemID))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	if isXHR(ctx) {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"success":    true,
			"message":    "Item removed from cart",
			"cart_count": summary.ItemCount,
			"cart_total": summary.TotalAmount,
		})
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/cart")
}
