package initializers

import (
	"log"

	"github.com/buyolex/buyolex-api/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.CustomerProfile{},
		&models.CustomerAddress{},
		&models.Category{},
		&models.Brand{},
		&models.Product{},
		&models.ProductVariant{},
		&models.ProductMedia{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.EmailConfig{},
		&models.MarketingIntegration{},
		&models.MarketingEventLog{},
		&models.SiteSettings{},
		&models.WhyBuyolex{},
		&models.DeliveryReturnPolicy{},
		&models.HomePageLandingPage{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database synced successfully.")
}
