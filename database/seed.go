package database

import (
	"log"
	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	adminEmail := config.String("ADMIN_EMAIL", "admin@restaurant.local")
	adminPassword := config.String("ADMIN_PASSWORD", "admin12345")

	bytes, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		log.Println("failed to hash seed admin password:", err)
		return
	}
	admin := model.Staff{Name: "Administrator", Email: adminEmail, Password: string(bytes), Role: constants.ROLE_ADMIN, Active: true}
	if err := db.Where(model.Staff{Email: admin.Email}).Attrs(admin).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed data for staff:", admin.Email, "error:", err)
	}

	seatingTypes := []model.SeatingType{
		{Name: "Stol", DefaultCapacity: 4},
		{Name: "Xona", DefaultCapacity: 10},
		{Name: "Divan", DefaultCapacity: 6},
	}
	for _, st := range seatingTypes {
		if err := db.Where(model.SeatingType{Name: st.Name}).FirstOrCreate(&st).Error; err != nil {
			log.Println("failed to seed data for seating type:", st.Name, "error:", err)
		}
	}
}
