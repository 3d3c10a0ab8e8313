package services

import (
	"errors"
	"time"

	"github.com/FariaSara/Restaurent-Management-Suit/models"
	"gorm.io/gorm"
)

var statusProgress = map[models.OrderStatus]int{
	models.OrderStatusPending:   0,
	models.OrderStatusConfirmed: 25,
	models.OrderStatusPreparing: 50,
	models.OrderStatusReady:     75,
	models.OrderStatusCompleted: 100,
	models.OrderStatusCancelled: 0,
}

// ProgressPercent maps a status onto the tracking page progress bar.
func ProgressPercent(status models.OrderStatus) int {
	return statusProgress[status]
}

// OrderStatusInfo is the payload of the customer-facing status poll.
type OrderStatusInfo struct {
	OrderNumber   string `json:"order_number"`
	Status        string `json:"status"`
	StatusDisplay string `json:"status_display"`
	UpdatedAt     string `json:"updated_at"`
}

// GetOrderByNumber loads an order and its items by order number.
func GetOrderByNumber(db *gorm.DB, orderNumber string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("OrderItems").Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("order not found")
		}
		return nil, err
	}
	return &order, nil
}

// GetOrderStatus is the cheap read behind the polling endpoint: no items are
// loaded, just the order row.
func GetOrderStatus(db *gorm.DB, orderNumber string) (*OrderStatusInfo, error) {
	var order models.Order
	err := db.Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("order not found")
		}
		return nil, err
	}
	return &OrderStatusInfo{
		OrderNumber:   order.OrderNumber,
		Status:        string(order.Status),
		StatusDisplay: order.Status.Display(),
		UpdatedAt:     order.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// SetOrderStatus moves an order to a new workflow state. The new status must
// be one of the six enumerated values, and orders in a terminal state
// (completed, cancelled) cannot be moved again.
func SetOrderStatus(db *gorm.DB, orderNumber string, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ValidationError("invalid order status")
	}
	newStatus := models.OrderStatus(status)

	var order models.Order
	err := db.Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("order not found")
		}
		return nil, err
	}

	if order.Status.IsTerminal() && newStatus != order.Status {
		return nil, ValidationError("order is already " + string(order.Status))
	}

	if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListMetadata mirrors the pagination envelope used across list endpoints.
type ListMetadata struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
	HasPrevPage bool  `json:"hasPrevPage"`
	HasNextPage bool  `json:"hasNextPage"`
}

// ListOrders returns orders newest first, optionally filtered by order number
// prefix, with page/limit pagination.
func ListOrders(db *gorm.DB, page, limit int, search string) ([]models.Order, *ListMetadata, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 15
	}
	offset := (page - 1) * limit

	query := db.Preload("OrderItems").Order("created_at desc")
	countQuery := db.Model(&models.Order{})
	if search != "" {
		query = query.Where("order_number LIKE ?", search+"%")
		countQuery = countQuery.Where("order_number LIKE ?", search+"%")
	}

	var orders []models.Order
	if err := query.Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		return nil, nil, err
	}

	var count int64
	if err := countQuery.Count(&count).Error; err != nil {
		return nil, nil, err
	}

	meta := &ListMetadata{
		Total:       count,
		CurrentPage: page,
		Limit:       limit,
		HasPrevPage: page > 1,
		HasNextPage: int64(page*limit) < count,
	}
	return orders, meta, nil
}
