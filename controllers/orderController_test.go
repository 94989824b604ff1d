package controllers

import (
	"path/filepath"
	"testing"

	"github.com/fabihanawal/98hns/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.MenuItem{},
		&models.Cart{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedCartWithLines(t *testing.T, db *gorm.DB, sessionID string) models.Cart {
	t.Helper()
	cart := models.Cart{SessionID: sessionID}
	require.NoError(t, db.Create(&cart).Error)

	lines := []models.CartLine{
		{CartID: int(cart.ID), ItemID: 1, Name: "কম্বো-০১", FinalPrice: 150, Quantity: 1},
		{CartID: int(cart.ID), ItemID: 8, Name: "নাচোস", SelectedOptionLabel: "ফুল", FinalPrice: 50, Quantity: 2},
	}
	for i := range lines {
		require.NoError(t, db.Create(&lines[i]).Error)
	}
	cart.Lines = lines
	return cart
}

func testBookingDetails() models.BookingDetails {
	return models.BookingDetails{
		CustomerName:  "রাহিম",
		Phone:         "01712345678",
		HouseNumber:   "১২",
		Address:       "রোড ৫, খুলনা",
		Timing:        "রাত ৮টা",
		PaymentMethod: "Nagad",
	}
}

func cartLineCount(t *testing.T, db *gorm.DB, cartID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.CartLine{}).Where("cart_id = ?", cartID).Count(&count).Error)
	return count
}

func TestSubmitBookingClearsCartOnSuccess(t *testing.T) {
	db := testDB(t)
	cart := seedCartWithLines(t, db, "sess-success")

	order, err := models.NewOrderFromCart(testBookingDetails(), cart)
	require.NoError(t, err)
	require.NoError(t, submitBooking(db, &order, cart.ID))

	assert.EqualValues(t, 0, cartLineCount(t, db, cart.ID))

	var saved models.Order
	require.NoError(t, db.Preload("OrderItems").First(&saved, order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, saved.Status)
	assert.Equal(t, 250.0, saved.Total)
	assert.Len(t, saved.OrderItems, 2)
}

func TestSubmitBookingKeepsCartWhenPersistFails(t *testing.T) {
	db := testDB(t)
	cart := seedCartWithLines(t, db, "sess-failure")

	order, err := models.NewOrderFromCart(testBookingDetails(), cart)
	require.NoError(t, err)

	// Force the order insert to fail mid-transaction.
	require.NoError(t, db.Migrator().DropTable(&models.Order{}))

	require.Error(t, submitBooking(db, &order, cart.ID))
	assert.EqualValues(t, 2, cartLineCount(t, db, cart.ID))
}
