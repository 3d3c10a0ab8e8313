package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the restaurant ordering API.

The following are the endpoints for this API:

MENU
- GET "/menu" - Browse available items grouped by category
- GET "/menu/search?q=" - Search menu items
- GET "/menu/:id" - Get menu item by ID
- POST "/menu" - Create menu item (staff)
- PUT "/menu/:id" - Update menu item (staff)
- POST "/menu-images" - Upload menu item image (staff)
- POST "/categories" - Create category (staff)

CART
- GET "/cart" - View the session cart
- POST "/cart/items" - Add an item to the cart
- POST "/cart/items/:itemId" - Update a cart line's quantity
- DELETE "/cart/items/:itemId" - Remove a cart line

ORDERS
- POST "/checkout" - Place an order from the session cart
- GET "/order/:orderNumber" - Order tracking data
- GET "/api/order/:orderNumber/status" - Poll order status
- PATCH "/order/:orderNumber/status" - Update order status (staff)
- GET "/order" - List orders (staff)

AUTH
- POST "/auth/signup" - Create staff account
- POST "/auth/login" - Staff login`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
