package main

import (
	"flag"
	"log"

	"auto360_server/internal/db"
	"auto360_server/internal/models"
	"auto360_server/pkg/colors"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Bootstraps a store and its first SUPER_ADMIN user. Safe to re-run: an
// existing store code or email is reused instead of duplicated.
func main() {
	name := flag.String("name", "Administrator", "admin user display name")
	email := flag.String("email", "", "admin user email (required)")
	password := flag.String("password", "", "admin user password (required)")
	storeName := flag.String("store-name", "", "store name (required)")
	storeCode := flag.String("store-code", "", "short unique store code (required)")
	flag.Parse()

	if *email == "" || *password == "" || *storeName == "" || *storeCode == "" {
		flag.Usage()
		log.Fatal("email, password, store-name and store-code are required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	if err := db.Initialize(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	conn := db.GetDB()

	var store models.Store
	err := conn.Where("store_code = ?", *storeCode).First(&store).Error
	if err == gorm.ErrRecordNotFound {
		store = models.Store{Name: *storeName, StoreCode: *storeCode}
		if err := conn.Create(&store).Error; err != nil {
			log.Fatalf("Failed to create store: %v", err)
		}
		colors.PrintSuccess("Created store %s (%s)", store.Name, store.StoreCode)
	} else if err != nil {
		log.Fatalf("Failed to look up store: %v", err)
	} else {
		colors.PrintInfo("Store %s already exists, reusing", store.StoreCode)
	}

	var user models.User
	err = conn.Where("email = ?", *email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{Name: *name, Email: *email, Password: *password}
		if err := conn.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		colors.PrintSuccess("Created user %s", user.Email)
	} else if err != nil {
		log.Fatalf("Failed to look up user: %v", err)
	} else {
		colors.PrintInfo("User %s already exists, reusing", user.Email)
	}

	var membership models.StoreUser
	err = conn.Where("store_id = ? AND user_id = ?", store.ID, user.ID).First(&membership).Error
	if err == gorm.ErrRecordNotFound {
		membership = models.StoreUser{StoreID: store.ID, UserID: user.ID, Role: models.StoreRoleSuperAdmin}
		if err := conn.Create(&membership).Error; err != nil {
			log.Fatalf("Failed to create membership: %v", err)
		}
		colors.PrintSuccess("Granted %s SUPER_ADMIN on %s", user.Email, store.StoreCode)
	} else if err != nil {
		log.Fatalf("Failed to look up membership: %v", err)
	} else if membership.Role != models.StoreRoleSuperAdmin {
		membership.Role = models.StoreRoleSuperAdmin
		if err := conn.Save(&membership).Error; err != nil {
			log.Fatalf("Failed to update membership: %v", err)
		}
		colors.PrintSuccess("Promoted %s to SUPER_ADMIN on %s", user.Email, store.StoreCode)
	} else {
		colors.PrintInfo("%s is already SUPER_ADMIN on %s", user.Email, store.StoreCode)
	}
}
