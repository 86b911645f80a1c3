package database

import (
	"fmt"
	"log"
	"restaurant_manager/config"
	"restaurant_manager/model"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

// OpenSQLite opens a single-connection SQLite database; used with
// DB_DRIVER=sqlite for local runs and by tests with an in-memory DSN.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func openPostgres() (*gorm.DB, error) {
	p := config.String("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database port: %w", err)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	return gorm.Open(postgres.Open(dsn), gormConfig())
}

func ConnectDB() {
	var err error
	if config.String("DB_DRIVER", "postgres") == "sqlite" {
		DB, err = OpenSQLite(config.String("DB_NAME", "restaurant.db") + "?_foreign_keys=on")
	} else {
		DB, err = openPostgres()
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	fmt.Println("Connection Opened to Database")
	if err := Migrate(DB); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
	fmt.Println("Database Migrated")

	SeedData(DB)
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Staff{},
		&model.PasswordResetToken{},
		&model.Category{},
		&model.MenuItem{},
		&model.SeatingType{},
		&model.SeatingUnit{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderHistory{},
	)
}
