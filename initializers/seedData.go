package initializers

import (
	"log"

	"github.com/fabihanawal/98hns/models"
	"gorm.io/datatypes"
)

func scalarPrice(value float64) *float64 {
	return &value
}

var defaultMenu = []models.MenuItem{
	{
		Name:         "কম্বো-০১ (চুই হাঁস + রুটি)",
		Description:  "১ প্লেট চুই ঝালের হাঁসের মাংস (১:১) এবং ৩টি চালের আটার রুটি।",
		Price:        scalarPrice(150),
		Category:     "কম্বো অফার",
		IsSpicy:      true,
		IsBestSeller: true,
	},
	{
		Name:        "কম্বো-০২ (থাই সুপ + অনথন)",
		Description: "মাশরুম অথবা প্রন থাই সুপ (১:১) এবং ২ পিস অনথন।",
		Price:       scalarPrice(100),
		Category:    "কম্বো অফার",
	},
	{
		Name:        "কম্বো-০৩ (সুপ + অনথন + মোমো)",
		Description: "থাই সুপ (১:১), ২ পিস অনথন এবং ২ পিস মোমো।",
		Price:       scalarPrice(150),
		Category:    "কম্বো অফার",
	},
	{
		Name:        "মোমো (চিকেন রেগুলার)",
		Description: "চিকেন স্টাফড মোমো (রেগুলার)।",
		Price:       scalarPrice(100),
		Category:    "মোমো ও পাস্তা",
	},
	{
		Name:         "মোমো (হোয়াইট সস)",
		Description:  "ক্রিমি হোয়াইট সসে ডুবানো বিশেষ মোমো।",
		Price:        scalarPrice(130),
		Category:     "মোমো ও পাস্তা",
		IsBestSeller: true,
	},
	{
		Name:         "নাচোস",
		DisplayPrice: "৩০/৫০",
		Category:     "স্ন্যাকস ও সাইডস",
		Options: datatypes.NewJSONSlice([]models.MenuItemOption{
			{Label: "হাফ", Price: 30},
			{Label: "ফুল", Price: 50},
		}),
	},
	{
		Name:         "চিকেন চিজ বল (৪ পিস)",
		Description:  "চিজ এবং চিকেন ভরা মচমচে বল।",
		Price:        scalarPrice(100),
		Category:     "স্ন্যাকস ও সাইডস",
		IsBestSeller: true,
	},
}

var defaultCategories = []string{"কম্বো অফার", "মোমো ও পাস্তা", "স্ন্যাকস ও সাইডস", "পানীয়"}

var defaultHeroImages = []string{
	"https://images.unsplash.com/photo-1544333346-64e4fe18274b?q=80&w=2000&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1563245372-f21724e3856d?q=80&w=2000&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?q=80&w=2000&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1626074353765-517a681e40be?q=80&w=2000&auto=format&fit=crop",
}

// SeedDefaults fills empty catalog tables with the built-in menu so a
// fresh install serves content immediately. Collections that already
// hold rows are left alone.
func SeedDefaults() {
	var count int64

	DB.Model(&models.Category{}).Count(&count)
	if count == 0 {
		for _, name := range defaultCategories {
			if err := DB.Create(&models.Category{Name: name}).Error; err != nil {
				log.Println("Failed to seed category:", err)
			}
		}
	}

	DB.Model(&models.MenuItem{}).Count(&count)
	if count == 0 {
		for _, item := range defaultMenu {
			if err := DB.Create(&item).Error; err != nil {
				log.Println("Failed to seed menu item:", err)
			}
		}
	}

	DB.Model(&models.HeroImage{}).Count(&count)
	if count == 0 {
		for position, url := range defaultHeroImages {
			if err := DB.Create(&models.HeroImage{Url: url, Position: position}).Error; err != nil {
				log.Println("Failed to seed hero image:", err)
			}
		}
	}
}
