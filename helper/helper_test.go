package helper

import (
	"fmt"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"
)

var dbSeq int64

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:helper_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := database.OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func createMenuItem(t *testing.T, db *gorm.DB, item model.MenuItem) model.MenuItem {
	t.Helper()
	var category model.Category
	if err := db.Where(model.Category{Name: "Taomlar", Slug: "taomlar"}).FirstOrCreate(&category).Error; err != nil {
		t.Fatalf("category: %v", err)
	}
	item.CategoryId = category.ID
	mustCreate(t, db, &item)
	return item
}

func createSeatingType(t *testing.T, db *gorm.DB, name string, capacity int) model.SeatingType {
	t.Helper()
	st := model.SeatingType{Name: name, DefaultCapacity: capacity}
	mustCreate(t, db, &st)
	return st
}

// createUnit inserts a unit directly, keeping the type count in step.
func createUnit(t *testing.T, db *gorm.DB, seatingType string, number int) model.SeatingUnit {
	t.Helper()
	unit := model.SeatingUnit{Number: number, Type: seatingType, Seats: 4, Status: constants.SEAT_AVAILABLE}
	mustCreate(t, db, &unit)
	if err := db.Model(&model.SeatingType{}).Where("name = ?", seatingType).Update("count", gorm.Expr("count + 1")).Error; err != nil {
		t.Fatalf("bump count: %v", err)
	}
	return unit
}

func createStaff(t *testing.T, db *gorm.DB, name, role string) model.Staff {
	t.Helper()
	staff := model.Staff{Name: name, Email: fmt.Sprintf("%s@test.local", name), Password: "x", Role: role, Active: true}
	mustCreate(t, db, &staff)
	return staff
}

func session(staff model.Staff) *model.Session {
	return &model.Session{StaffId: staff.ID, Name: staff.Name, Email: staff.Email, Role: staff.Role}
}

func countRows(t *testing.T, db *gorm.DB, value any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(value).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", value, err)
	}
	return n
}

func reloadUnit(t *testing.T, db *gorm.DB, id uint) model.SeatingUnit {
	t.Helper()
	var unit model.SeatingUnit
	if err := db.First(&unit, id).Error; err != nil {
		t.Fatalf("reload unit %d: %v", id, err)
	}
	return unit
}

func tableOrder(unitId uint, signature string, items ...model.CartItemInput) model.PlaceOrderInput {
	return model.PlaceOrderInput{
		OrderType:       constants.ORDER_TYPE_TABLE,
		SeatingUnitId:   &unitId,
		Items:           items,
		ClientSignature: signature,
	}
}

var defaultOptions = PlaceOrderOptions{DeliveryFee: 15000, GraceWindow: 25 * time.Minute}
