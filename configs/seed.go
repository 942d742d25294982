package configs

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielessuu/backend-sd3/entity"
)

// SeedStaff creates the staff login from env on first boot.
func SeedStaff(cfg *Config) error {
	db := DB()
	if cfg.StaffUsername == "" || cfg.StaffPassword == "" {
		logrus.Warn("skip seeding staff: missing STAFF_USERNAME/STAFF_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", cfg.StaffUsername).Count(&count)
	if count > 0 {
		logrus.Info("staff account already exists: ", cfg.StaffUsername)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.StaffPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	staff := entity.User{
		Username: cfg.StaffUsername,
		Password: string(hash),
	}
	return db.Create(&staff).Error
}

// SeedDishes loads the initial menu. Dishes have no create endpoint, so an
// empty table on first boot would leave nothing to order.
func SeedDishes() error {
	db := DB()

	dishes := []entity.Dish{
		{Name: "Bandeja Paisa", Category: "Main", Description: "Beans, rice, ground beef, chicharron, egg and plantain", Price: decimal.NewFromFloat(12.50), ImageURL: "https://images.santodomingo.example/bandeja-paisa.jpg"},
		{Name: "Sancocho de Gallina", Category: "Main", Description: "Hen soup with corn, yuca and potato", Price: decimal.NewFromFloat(10.00), ImageURL: "https://images.santodomingo.example/sancocho.jpg"},
		{Name: "Empanadas", Category: "Starter", Description: "Three corn empanadas with aji sauce", Price: decimal.NewFromFloat(4.75), ImageURL: "https://images.santodomingo.example/empanadas.jpg"},
		{Name: "Arepa con Queso", Category: "Starter", Description: "Grilled arepa with melted cheese", Price: decimal.NewFromFloat(3.50), ImageURL: "https://images.santodomingo.example/arepa.jpg"},
		{Name: "Jugo de Lulo", Category: "Drink", Description: "Fresh lulo juice", Price: decimal.NewFromFloat(2.95), ImageURL: "https://images.santodomingo.example/lulo.jpg"},
		{Name: "Tres Leches", Category: "Dessert", Description: "Sponge cake soaked in three milks", Price: decimal.NewFromFloat(5.25), ImageURL: "https://images.santodomingo.example/tres-leches.jpg"},
	}

	for _, d := range dishes {
		if err := db.FirstOrCreate(&d, entity.Dish{Name: d.Name}).Error; err != nil {
			return err
		}
	}

	logrus.Info("dish menu seeded")
	return nil
}
