package services

import (
	"testing"
	"time"

	"github.com/FariaSara/Restaurent-Management-Suit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createOrder(t *testing.T, db *gorm.DB, status models.OrderStatus) models.Order {
	t.Helper()
	order := models.Order{
		OrderNumber:   NewOrderNumber(),
		CustomerName:  "Ada Jones",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "0700000000",
		OrderType:     models.OrderTypeTakeaway,
		Status:        status,
		TotalAmount:   27.25,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestProgressPercentTable(t *testing.T) {
	expected := map[models.OrderStatus]int{
		models.OrderStatusPending:   0,
		models.OrderStatusConfirmed: 25,
		models.OrderStatusPreparing: 50,
		models.OrderStatusReady:     75,
		models.OrderStatusCompleted: 100,
		models.OrderStatusCancelled: 0,
	}
	for status, percent := range expected {
		assert.Equal(t, percent, ProgressPercent(status), "status %s", status)
	}
}

func TestGetOrderStatusReturnsDisplayAndTimestamp(t *testing.T) {
	db := setupTestDB(t)
	order := createOrder(t, db, models.OrderStatusReady)

	info, err := GetOrderStatus(db, order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, info.OrderNumber)
	assert.Equal(t, "ready", info.Status)
	assert.Equal(t, "Ready", info.StatusDisplay)

	_, err = time.Parse(time.RFC3339, info.UpdatedAt)
	assert.NoError(t, err)
}

func TestGetOrderStatusNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := GetOrderStatus(db, "NOPE1234")
	var notFoundErr NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestGetOrderByNumberLoadsItems(t *testing.T) {
	db := setupTestDB(t)
	cartWithItems(t, db, "session-a")
	placed, err := Checkout(db, "session-a", checkoutRequest())
	require.NoError(t, err)

	order, err := GetOrderByNumber(db, placed.OrderNumber)
	require.NoError(t, err)
	assert.Len(t, order.OrderItems, 2)
}

func TestSetOrderStatusMovesThroughWorkflow(t *testing.T) {
	db := setupTestDB(t)
	order := createOrder(t, db, models.OrderStatusPending)

	for _, status := range []string{"confirmed", "preparing", "ready", "completed"} {
		updated, err := SetOrderStatus(db, order.OrderNumber, status)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatus(status), updated.Status)
	}
}

func TestSetOrderStatusRejectsUnknownValue(t *testing.T) {
	db := setupTestDB(t)
	order := createOrder(t, db, models.OrderStatusPending)

	_, err := SetOrderStatus(db, order.OrderNumber, "on_the_moon")
	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestSetOrderStatusTerminalStatesAreFinal(t *testing.T) {
	db := setupTestDB(t)

	completed := createOrder(t, db, models.OrderStatusCompleted)
	_, err := SetOrderStatus(db, completed.OrderNumber, "pending")
	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)

	cancelled := createOrder(t, db, models.OrderStatusCancelled)
	_, err = SetOrderStatus(db, cancelled.OrderNumber, "confirmed")
	require.ErrorAs(t, err, &validationErr)

	// Setting the same terminal value again is a no-op, not an error.
	_, err = SetOrderStatus(db, completed.OrderNumber, "completed")
	assert.NoError(t, err)
}

func TestSetOrderStatusAllowsCancellationFromAnyActiveState(t *testing.T) {
	db := setupTestDB(t)

	for _, from := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
	} {
		order := createOrder(t, db, from)
		updated, err := SetOrderStatus(db, order.OrderNumber, "cancelled")
		require.NoError(t, err, "cancelling from %s", from)
		assert.Equal(t, models.OrderStatusCancelled, updated.Status)
	}
}

func TestSetOrderStatusNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := SetOrderStatus(db, "NOPE1234", "confirmed")
	var notFoundErr NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)

	older := createOrder(t, db, models.OrderStatusPending)
	require.NoError(t, db.Model(&older).Update("created_at", time.Now().Add(-time.Hour)).Error)
	newer := createOrder(t, db, models.OrderStatusPending)

	orders, meta, err := ListOrders(db, 1, 10, "")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.OrderNumber, orders[0].OrderNumber)
	assert.Equal(t, older.OrderNumber, orders[1].OrderNumber)
	assert.EqualValues(t, 2, meta.Total)
	assert.False(t, meta.HasNextPage)
}

func TestListOrdersSearchByNumber(t *testing.T) {
	db := setupTestDB(t)

	target := createOrder(t, db, models.OrderStatusPending)
	createOrder(t, db, models.OrderStatusPending)

	orders, meta, err := ListOrders(db, 1, 10, target.OrderNumber)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, target.OrderNumber, orders[0].OrderNumber)
	assert.EqualValues(t, 1, meta.Total)
}
