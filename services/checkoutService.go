package services

import (
	"errors"
	"strings"

	"github.com/FariaSara/Restaurent-Management-Suit/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// How many times checkout retries order creation when the generated order
// number collides with an existing one.
const maxOrderNumberAttempts = 5

// CheckoutRequest carries the customer details collected by the checkout form.
type CheckoutRequest struct {
	CustomerName  string `form:"customer_name" json:"customer_name" binding:"required"`
	CustomerEmail string `form:"customer_email" json:"customer_email" binding:"required,email"`
	CustomerPhone string `form:"customer_phone" json:"customer_phone" binding:"required"`
	OrderType     string `form:"order_type" json:"order_type"`
	TableNumber   *int   `form:"table_number" json:"table_number"`
	Notes         string `form:"notes" json:"notes"`
}

// Checkout converts the session's cart into a persisted order and deletes the
// cart, all inside one transaction. Order item prices are snapshotted from the
// menu at this instant. If a concurrent checkout for the same session commits
// first, the cart delete affects zero rows and the whole transaction rolls
// back, so exactly one order is ever produced per cart.
func Checkout(db *gorm.DB, sessionKey string, req CheckoutRequest) (*models.Order, error) {
	orderType, err := parseOrderType(req.OrderType)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items.MenuItem").Where("session_key = ?", sessionKey).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ValidationError("cart is empty")
			}
			return err
		}
		if len(cart.Items) == 0 {
			return ValidationError("cart is empty")
		}

		var total float64
		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			total += line.Subtotal()
			items = append(items, models.OrderItem{
				MenuItemID:  line.MenuItemID,
				Name:        line.MenuItem.Name,
				PriceAtTime: line.MenuItem.Price,
				Quantity:    line.Quantity,
			})
		}

		order = models.Order{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			OrderType:     orderType,
			TableNumber:   req.TableNumber,
			Notes:         req.Notes,
			Status:        models.OrderStatusPending,
			TotalAmount:   total,
		}
		for attempt := 1; ; attempt++ {
			order.OrderNumber = NewOrderNumber()
			err := tx.Create(&order).Error
			if err == nil {
				break
			}
			if !errors.Is(err, gorm.ErrDuplicatedKey) || attempt >= maxOrderNumberAttempts {
				return err
			}
		}

		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		order.OrderItems = items

		// Remove the cart and its lines. Zero rows affected on the cart
		// row means another checkout for this session committed first.
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Cart{}, cart.CartID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ValidationError("cart is empty")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// NewOrderNumber derives a short, human-shareable order number from a random
// UUID. Uniqueness is enforced by the order_number index; Checkout retries on
// collision rather than trusting the truncation.
func NewOrderNumber() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(token[:8])
}

func parseOrderType(s string) (models.OrderType, error) {
	switch models.OrderType(strings.ToLower(s)) {
	case models.OrderTypeDineIn, "":
		return models.OrderTypeDineIn, nil
	case models.OrderTypeTakeaway:
		return models.OrderTypeTakeaway, nil
	default:
		return "", ValidationError("invalid order type")
	}
}
