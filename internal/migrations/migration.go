package migrations

import (
	"errors"
	"log"

	"coal-erp/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations creates the schema and seeds the reference data the app
// needs on first boot. Seeding is idempotent.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Supplier{},
		&models.Customer{},
		&models.CoalGrade{},
		&models.Warehouse{},
		&models.Stock{},
		&models.StockMovement{},
		&models.PurchaseOrder{},
		&models.PurchaseOrderItem{},
		&models.SalesOrder{},
		&models.SalesOrderItem{},
		&models.Vehicle{},
		&models.Trip{},
		&models.Invoice{},
		&models.Payment{},
		&models.Expense{},
	)
	if err != nil {
		return err
	}

	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedCoalGrades(db); err != nil {
		return err
	}
	if err := seedUsers(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func seedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{RoleName: string(models.RoleAdmin), Description: "System administrator with full access"},
		{RoleName: string(models.RoleWarehouseManager), Description: "Manages warehouse operations and stock"},
		{RoleName: string(models.RoleTransportManager), Description: "Manages vehicles and transportation"},
		{RoleName: string(models.RoleAccounts), Description: "Handles finance and accounts"},
		{RoleName: string(models.RoleManagement), Description: "Top management for approvals and reports"},
	}

	for _, role := range roles {
		err := db.Where(models.Role{RoleName: role.RoleName}).FirstOrCreate(&role).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCoalGrades(db *gorm.DB) error {
	grades := []models.CoalGrade{
		{GradeName: "G5", Description: "High grade, GCV 5801-6100 kcal/kg"},
		{GradeName: "G8", Description: "Mid grade, GCV 4901-5200 kcal/kg"},
		{GradeName: "G11", Description: "Low grade, GCV 4001-4300 kcal/kg"},
	}

	for _, grade := range grades {
		err := db.Where(models.CoalGrade{GradeName: grade.GradeName}).FirstOrCreate(&grade).Error
		if err != nil {
			return err
		}
	}
	return nil
}

type seedUser struct {
	name     string
	email    string
	role     models.RoleName
	password string
}

func seedUsers(db *gorm.DB) error {
	users := []seedUser{
		{"System Admin", "admin@coalcorp.com", models.RoleAdmin, "admin123"},
		{"Rajesh Kumar", "rajesh.kumar@coalcorp.com", models.RoleAdmin, "password123"},
		{"Priya Sharma", "priya.sharma@coalcorp.com", models.RoleWarehouseManager, "password123"},
		{"Amit Singh", "amit.singh@coalcorp.com", models.RoleTransportManager, "password123"},
		{"Neha Gupta", "neha.gupta@coalcorp.com", models.RoleAccounts, "password123"},
		{"Vikram Patel", "vikram.patel@coalcorp.com", models.RoleManagement, "password123"},
	}

	for _, seed := range users {
		var existing models.User
		err := db.Where("email = ?", seed.email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var role models.Role
		if err := db.Where("role_name = ?", string(seed.role)).First(&role).Error; err != nil {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			Name:     seed.name,
			Email:    seed.email,
			Password: string(hashed),
			RoleID:   role.ID,
			Status:   models.UserActive,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("Seeded user %s (%s)", seed.name, seed.role)
	}
	return nil
}
