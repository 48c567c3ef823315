package main

import (
	"errors"
	"fmt"
	"log"

	"food_ordering/internal/config"
	"food_ordering/internal/database"
	"food_ordering/internal/models"
	"food_ordering/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the database with an admin account, a demo restaurant and its menu.
func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database (runs AutoMigrate)
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	userRepo := repository.NewUserRepository(db)

	// Create default admin user if missing
	if _, err := userRepo.GetByEmail("admin@example.com"); err == nil {
		fmt.Println("Admin user already exists")
		return
	} else if !errors.Is(err, models.ErrNotFound) {
		log.Fatal("Failed to check admin user:", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("changeme123"), 12)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := &models.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: string(hashed),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	owner := &models.User{
		Name:     "Damascus Gate",
		Email:    "owner@damascus-gate.example.com",
		Password: string(hashed),
		Role:     models.RoleRestaurant,
		IsActive: true,
	}
	if err := userRepo.Create(owner); err != nil {
		log.Fatal("Failed to create restaurant owner:", err)
	}

	restaurant := &models.Restaurant{
		UserID:      owner.ID,
		Name:        "بوابة دمشق",
		Description: "Traditional Levantine kitchen",
		Phone:       "+966500000000",
		Address:     "King Fahd Road, Riyadh",
		DeliveryFee: 10,
		MinOrder:    20,
		Status:      models.RestaurantActive,
	}
	if err := db.Create(restaurant).Error; err != nil {
		log.Fatal("Failed to create restaurant:", err)
	}

	categories := []models.Category{
		{RestaurantID: restaurant.ID, Name: "المقبلات", SortOrder: 1},
		{RestaurantID: restaurant.ID, Name: "الشوربات", SortOrder: 2},
		{RestaurantID: restaurant.ID, Name: "الأطباق الرئيسية", SortOrder: 3},
		{RestaurantID: restaurant.ID, Name: "الحلويات", SortOrder: 4},
		{RestaurantID: restaurant.ID, Name: "المشروبات", SortOrder: 5},
	}
	if err := db.Create(&categories).Error; err != nil {
		log.Fatal("Failed to create categories:", err)
	}

	items := []models.MenuItem{
		{RestaurantID: restaurant.ID, CategoryID: &categories[0].ID, Name: "حمص بالطحينة", Description: "حمص تقليدي مع زيت الزيتون والبقدونس", Price: 12, Available: true, SortOrder: 1},
		{RestaurantID: restaurant.ID, CategoryID: &categories[0].ID, Name: "ورق عنب بالزيت", Description: "ورق عنب محشي بالأرز والتوابل", Price: 20, Available: true, SortOrder: 2},
		{RestaurantID: restaurant.ID, CategoryID: &categories[1].ID, Name: "شوربة عدس", Description: "شوربة عدس مع الليمون والخبز المحمص", Price: 10, Available: true, SortOrder: 1},
		{RestaurantID: restaurant.ID, CategoryID: &categories[2].ID, Name: "كبسة دجاج", Description: "أرز بسمتي مع دجاج مشوي وتوابل", Price: 38, Available: true, IsFeatured: true, SortOrder: 1},
		{RestaurantID: restaurant.ID, CategoryID: &categories[3].ID, Name: "كنافة نابلسية", Description: "كنافة بالجبنة والقطر", Price: 18, Available: true, SortOrder: 1},
		{RestaurantID: restaurant.ID, CategoryID: &categories[4].ID, Name: "عصير ليمون بالنعناع", Description: "عصير طازج", Price: 8, Available: true, SortOrder: 1},
	}
	if err := db.Create(&items).Error; err != nil {
		log.Fatal("Failed to create menu items:", err)
	}

	fmt.Println("Database initialized successfully")
}
