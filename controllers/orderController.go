package controllers

import (
	"net/http"
	"strconv"

	"github.com/FariaSara/Restaurent-Management-Suit/initializers"
	"github.com/FariaSara/Restaurent-Management-Suit/services"
	"github.com/gin-gonic/gin"
)

// Checkout converts the session's cart into an order. Form posts are
// redirected to the tracking page; XHR callers get the order number as JSON.
func Checkout(ctx *gin.Context) {
	var req services.CheckoutRequest
	if err := ctx.ShouldBind(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid data")
		return
	}

	key, err := sessionKey(ctx)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	order, err := services.Checkout(initializers.DB, key, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	if isXHR(ctx) {
		sendJSONResponse(ctx, http.StatusCreated, gin.H{
			"success":      true,
			"message":      "Order placed successfully! Order number: " + order.OrderNumber,
			"order_number": order.OrderNumber,
		})
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/order/"+order.OrderNumber)
}

// GetOrderTracking returns the tracking page data: the order, its items and
// the progress bar percentage for its status.
func GetOrderTracking(ctx *gin.Context) {
	order, err := services.GetOrderByNumber(initializers.DB, ctx.Param("orderNumber"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"order":            order,
		"status_display":   order.Status.Display(),
		"progress_percent": services.ProgressPercent(order.Status),
	})
}

// GetOrderStatus is the polling endpoint behind the tracking page.
func GetOrderStatus(ctx *gin.Context) {
	info, err := services.GetOrderStatus(initializers.DB, ctx.Param("orderNumber"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, info)
}

// UpdateOrderStatus lets staff move an order through the workflow.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	order, err := services.SetOrderStatus(initializers.DB, ctx.Param("orderNumber"), orderStatusData.Status)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
		"status":  order.Status,
	})
}

// GetOrders lists orders newest first for staff, with pagination and search
// by order number.
func GetOrders(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))

	orders, metadata, err := services.ListOrders(initializers.DB, page, limit, ctx.Query("search"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders":   orders,
		"metadata": metadata,
	})
}
