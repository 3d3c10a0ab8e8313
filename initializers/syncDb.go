package initializers

import (
	"github.com/FariaSara/Restaurent-Management-Suit/models"
	"github.com/sirupsen/logrus"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.StaffUser{},
		&models.Category{},
		&models.MenuItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		logrus.Fatalf("AutoMigrate failed: %v", err)
	}
	logrus.Info("Database synced successfully.")
}
