package models

import "time"

// Cart is scoped to a browser session. The unique index enforces one cart
// per session key; carts are created lazily and deleted at checkout.
type Cart struct {
	CartID     uint       `json:"cartId" gorm:"primaryKey"`
	SessionKey string     `json:"sessionKey" gorm:"size:64;uniqueIndex"`
	Items      []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// CartItem is one line in a cart. The composite unique index keeps at most
// one line per (cart, menu item) pair; repeated adds increment the quantity.
type CartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CartID     uint      `json:"cartId" gorm:"uniqueIndex:idx_cart_menu_item"`
	MenuItemID uint      `json:"menuItemId" gorm:"uniqueIndex:idx_cart_menu_item"`
	MenuItem   MenuItem  `json:"menuItem" gorm:"foreignKey:MenuItemID"`
	Quantity   int       `json:"quantity"`
	AddedAt    time.Time `json:"addedAt"`
}

// Subtotal prices the line at the menu item's current price. Only meaningful
// when MenuItem has been preloaded.
func (ci CartItem) Subtotal() float64 {
	return ci.MenuItem.Price * float64(ci.Quantity)
}
