package services

import (
	"errors"
	"time"

	"github.com/FariaSara/Restaurent-Management-Suit/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartSummary is returned by every cart mutation so handlers can refresh the
// client-side cart badge without a second round trip. Both fields are computed
// live from the current lines and current menu prices.
type CartSummary struct {
	ItemCount   int     `json:"cart_count"`
	TotalAmount float64 `json:"cart_total"`
}

// AddItemResult carries the menu item that was added alongside the refreshed
// summary, so handlers can build a "<name> added to cart" message.
type AddItemResult struct {
	MenuItem models.MenuItem
	Summary  CartSummary
}

// UpdateItemResult reports the outcome of a quantity update. Removed is true
// when a non-positive quantity deleted the line.
type UpdateItemResult struct {
	Removed      bool
	ItemSubtotal float64
	Summary      CartSummary
}

// GetOrCreateCart returns the cart for a session, creating an empty one if
// absent. Safe under concurrent calls for the same key: the loser of the
// insert race re-reads the winner's row.
func GetOrCreateCart(db *gorm.DB, sessionKey string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items.MenuItem").Where("session_key = ?", sessionKey).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{SessionKey: sessionKey}
	if err := db.Create(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.Cart
			if err := db.Preload("Items.MenuItem").Where("session_key = ?", sessionKey).First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}
	return &cart, nil
}

// AddItem adds quantity of a menu item to the cart. If a line for that item
// already exists its quantity is incremented atomically in the database, so
// concurrent adds from duplicate tabs cannot lose updates.
func AddItem(db *gorm.DB, cart *models.Cart, menuItemID uint, quantity int) (*AddItemResult, error) {
	if quantity < 1 {
		return nil, ValidationError("quantity must be at least 1")
	}

	var item models.MenuItem
	if err := db.First(&item, menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ValidationError("menu item does not exist")
		}
		return nil, err
	}
	if !item.IsAvailable {
		return nil, ValidationError(item.Name + " is currently unavailable")
	}

	line := models.CartItem{
		CartID:     cart.CartID,
		MenuItemID: item.ID,
		Quantity:   quantity,
		AddedAt:    time.Now(),
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cart_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("quantity + ?", quantity)}),
	}).Create(&line).Error
	if err != nil {
		return nil, err
	}
	touchCart(db, cart.CartID)

	summary, err := Summarize(db, cart.CartID)
	if err != nil {
		return nil, err
	}
	return &AddItemResult{MenuItem: item, Summary: *summary}, nil
}

// UpdateItemQuantity sets a line's quantity exactly. A quantity of zero or
// less removes the line instead of failing.
func UpdateItemQuantity(db *gorm.DB, cartID uint, itemID uint, quantity int) (*UpdateItemResult, error) {
	var line models.CartItem
	err := db.Preload("MenuItem").Where("cart_id = ? AND id = ?", cartID, itemID).First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("cart item not found")
		}
		return nil, err
	}

	result := &UpdateItemResult{}
	if quantity <= 0 {
		if err := db.Delete(&models.CartItem{}, line.ID).Error; err != nil {
			return nil, err
		}
		result.Removed = true
	} else {
		if err := db.Model(&line).Update("quantity", quantity).Error; err != nil {
			return nil, err
		}
		result.ItemSubtotal = line.MenuItem.Price * float64(quantity)
	}
	touchCart(db, cartID)

	summary, err := Summarize(db, cartID)
	if err != nil {
		return nil, err
	}
	result.Summary = *summary
	return result, nil
}

// RemoveItem deletes a line unconditionally.
func RemoveItem(db *gorm.DB, cartID uint, itemID uint) (*CartSummary, error) {
	res := db.Where("cart_id = ? AND id = ?", cartID, itemID).Delete(&models.CartItem{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, NotFoundError("cart item not found")
	}
	touchCart(db, cartID)
	return Summarize(db, cartID)
}

// Summarize computes item count and total from the cart's current lines at
// current menu prices.
func Summarize(db *gorm.DB, cartID uint) (*CartSummary, error) {
	var lines []models.CartItem
	if err := db.Preload("MenuItem").Where("cart_id = ?", cartID).Find(&lines).Error; err != nil {
		return nil, err
	}
	summary := &CartSummary{}
	for _, line := range lines {
		summary.ItemCount += line.Quantity
		summary.TotalAmount += line.Subtotal()
	}
	return summary, nil
}

func touchCart(db *gorm.DB, cartID uint) {
	db.Model(&models.Cart{}).Where("cart_id = ?", cartID).Update("updated_at", time.Now())
}
