package initializers

import (
	"log"

	"github.com/fabihanawal/98hns/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.MenuItem{},
		&models.Category{},
		&models.HeroImage{},
		&models.Cart{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderItem{},
	)
	log.Println("Database synced successfully.")
}
