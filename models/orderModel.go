package models

import "gorm.io/gorm"

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeaway OrderType = "takeaway"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // accepted by staff
	OrderStatusPreparing OrderStatus = "preparing" // kitchen is working on it
	OrderStatusReady     OrderStatus = "ready"     // ready for pickup / serving
	OrderStatusCompleted OrderStatus = "completed" // handed over to the customer
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before completion
)

var orderStatusDisplay = map[OrderStatus]string{
	OrderStatusPending:   "Pending",
	OrderStatusConfirmed: "Confirmed",
	OrderStatusPreparing: "Preparing",
	OrderStatusReady:     "Ready",
	OrderStatusCompleted: "Completed",
	OrderStatusCancelled: "Cancelled",
}

// ValidOrderStatus reports whether s is one of the six workflow states.
func ValidOrderStatus(s string) bool {
	_, ok := orderStatusDisplay[OrderStatus(s)]
	return ok
}

// Display returns the human-readable form of the status.
func (s OrderStatus) Display() string {
	return orderStatusDisplay[s]
}

// IsTerminal reports whether the status admits no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Order is the immutable-priced record produced by checkout. TotalAmount is
// snapshotted at creation and never recomputed from the items.
type Order struct {
	gorm.Model
	OrderNumber   string      `json:"orderNumber" gorm:"size:20;uniqueIndex"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	CustomerPhone string      `json:"customerPhone"`
	OrderType     OrderType   `json:"orderType" gorm:"type:varchar(10);default:'dine_in'"`
	TableNumber   *int        `json:"tableNumber"`
	Status        OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	TotalAmount   float64     `json:"totalAmount"`
	Notes         string      `json:"notes"`
	OrderItems    []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots name and price at checkout time; PriceAtTime never
// changes even if the menu item's price does.
type OrderItem struct {
	gorm.Model
	OrderID     uint    `json:"orderId" gorm:"index"`
	MenuItemID  uint    `json:"menuItemId"`
	Name        string  `json:"name"`
	PriceAtTime float64 `json:"priceAtTime"`
	Quantity    int     `json:"quantity"`
}

// Subtotal prices the line at the snapshotted price.
func (oi OrderItem) Subtotal() float64 {
	return oi.PriceAtTime * float64(oi.Quantity)
}
