package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/FariaSara/Restaurent-Management-Suit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- Setup ---

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache database keeps every pooled connection on the
	// same in-memory store for the duration of the test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.MenuItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedMenu(t *testing.T, db *gorm.DB) (burger, salad models.MenuItem) {
	t.Helper()

	category := models.Category{Name: "Main Course"}
	require.NoError(t, db.Create(&category).Error)

	burger = models.MenuItem{Name: "Burger", Price: 10.50, IsAvailable: true, CategoryID: int(category.ID)}
	salad = models.MenuItem{Name: "Salad", Price: 6.25, IsAvailable: true, CategoryID: int(category.ID)}
	require.NoError(t, db.Create(&burger).Error)
	require.NoError(t, db.Create(&salad).Error)
	return burger, salad
}

// --- Tests ---

func TestGetOrCreateCartReturnsSameCartForSession(t *testing.T) {
	db := setupTestDB(t)

	first, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)
	second, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)
	assert.Equal(t, first.CartID, second.CartID)

	other, err := GetOrCreateCart(db, "session-b")
	require.NoError(t, err)
	assert.NotEqual(t, first.CartID, other.CartID)
}

func TestAddItemAccumulatesQuantityOnOneLine(t *testing.T) {
	db := setupTestDB(t)
	burger, _ := seedMenu(t, db)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)

	_, err = AddItem(db, cart, burger.ID, 2)
	require.NoError(t, err)
	result, err := AddItem(db, cart, burger.ID, 3)
	require.NoError(t, err)

	var lines []models.CartItem
	require.NoError(t, db.Where("cart_id = ?", cart.CartID).Find(&lines).Error)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5, result.Summary.ItemCount)
	assert.InDelta(t, 5*burger.Price, result.Summary.TotalAmount, 1e-9)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	db := setupTestDB(t)
	burger, _ := seedMenu(t, db)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)

	_, err = AddItem(db, cart, burger.ID, 0)
	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAddItemRejectsUnavailableItem(t *testing.T) {
	db := setupTestDB(t)
	burger, _ := seedMenu(t, db)
	require.NoError(t, db.Model(&burger).Update("is_available", false).Error)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)

	_, err = AddItem(db, cart, burger.ID, 1)
	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAddItemRejectsUnknownItem(t *testing.T) {
	db := setupTestDB(t)
	seedMenu(t, db)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)

	_, err = AddItem(db, cart, 9999, 1)
	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestUpdateItemQuantitySetsExactValue(t *testing.T) {
	db := setupTestDB(t)
	burger, _ := seedMenu(t, db)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)
	_, err = AddItem(db, cart, burger.ID, 2)
	require.NoError(t, err)

	var line models.CartItem
	require.NoError(t, db.Where("cart_id = ?", cart.CartID).First(&line).Error)

	result, err := UpdateItemQuantity(db, cart.CartID, line.ID, 7)
	require.NoError(t, err)
	assert.False(t, result.Removed)
	assert.InDelta(t, 7*burger.Price, result.ItemSubtotal, 1e-9)
	assert.Equal(t, 7, result.Summary.ItemCount)

	require.NoError(t, db.First(&line, line.ID).Error)
	assert.Equal(t, 7, line.Quantity)
}

func TestUpdateItemQuantityNonPositiveRemovesLine(t *testing.T) {
	db := setupTestDB(t)
	burger, _ := seedMenu(t, db)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)
	_, err = AddItem(db, cart, burger.ID, 2)
	require.NoError(t, err)

	var line models.CartItem
	require.NoError(t, db.Where("cart_id = ?", cart.CartID).First(&line).Error)

	result, err := UpdateItemQuantity(db, cart.CartID, line.ID, 0)
	require.NoError(t, err)
	assert.True(t, result.Removed)
	assert.Equal(t, 0, result.Summary.ItemCount)

	var count int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.CartID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestUpdateItemQuantityMissingLine(t *testing.T) {
	db := setupTestDB(t)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)

	_, err = UpdateItemQuantity(db, cart.CartID, 1234, 3)
	var notFoundErr NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestRemoveItem(t *testing.T) {
	db := setupTestDB(t)
	burger, salad := seedMenu(t, db)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)
	_, err = AddItem(db, cart, burger.ID, 1)
	require.NoError(t, err)
	_, err = AddItem(db, cart, salad.ID, 2)
	require.NoError(t, err)

	var line models.CartItem
	require.NoError(t, db.Where("cart_id = ? AND menu_item_id = ?", cart.CartID, burger.ID).First(&line).Error)

	summary, err := RemoveItem(db, cart.CartID, line.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.ItemCount)
	assert.InDelta(t, 2*salad.Price, summary.TotalAmount, 1e-9)

	_, err = RemoveItem(db, cart.CartID, line.ID)
	var notFoundErr NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestCartTotalFollowsCurrentMenuPrice(t *testing.T) {
	db := setupTestDB(t)
	burger, _ := seedMenu(t, db)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)
	_, err = AddItem(db, cart, burger.ID, 2)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.MenuItem{}).Where("id = ?", burger.ID).Update("price", 12.00).Error)

	summary, err := Summarize(db, cart.CartID)
	require.NoError(t, err)
	assert.InDelta(t, 24.00, summary.TotalAmount, 1e-9)
}
