package helper

import (
	"context"
	"errors"
	"restaurant_manager/model"
	"testing"
)

func TestSaveCategory(t *testing.T) {
	db := setupDB(t)

	salads, err := SaveCategory(db, 0, model.CategoryInput{Name: " Salatlar "})
	if err != nil {
		t.Fatalf("SaveCategory() error = %v", err)
	}
	if salads.Name != "Salatlar" || salads.Slug != "salatlar" {
		t.Errorf("category = %+v, want Salatlar/salatlar", salads)
	}
	if _, err := SaveCategory(db, 0, model.CategoryInput{Name: "SALATLAR"}); !errors.Is(err, ErrCategoryExists) {
		t.Errorf("duplicate error = %v, want ErrCategoryExists", err)
	}

	drinks, err := SaveCategory(db, 0, model.CategoryInput{Name: "Salatlar!"})
	if err != nil {
		t.Fatalf("SaveCategory() error = %v", err)
	}
	if drinks.Slug != "salatlar-1" {
		t.Errorf("Slug = %q, want salatlar-1", drinks.Slug)
	}

	renamed, err := SaveCategory(db, drinks.ID, model.CategoryInput{Name: "Ichimliklar"})
	if err != nil {
		t.Fatalf("rename error = %v", err)
	}
	if renamed.ID != drinks.ID || renamed.Slug != "ichimliklar" {
		t.Errorf("renamed = %+v", renamed)
	}
}

func TestGenerateUniqueCategorySlugQueryError(t *testing.T) {
	db := setupDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got, err := GenerateUniqueCategorySlug(db.WithContext(ctx), "Salatlar", 0); err == nil {
		t.Errorf("GenerateUniqueCategorySlug() = %q, want error on a failed count", got)
	}
}

func TestDeleteCategoryInUse(t *testing.T) {
	db := setupDB(t)
	item := createMenuItem(t, db, model.MenuItem{Name: "Osh", Price: 25000, IsAvailable: true})

	if err := DeleteCategory(db, item.CategoryId); !errors.Is(err, ErrCategoryInUse) {
		t.Errorf("DeleteCategory() error = %v, want ErrCategoryInUse", err)
	}
	db.Delete(&model.MenuItem{}, item.ID)
	if err := DeleteCategory(db, item.CategoryId); err != nil {
		t.Errorf("DeleteCategory() after emptying error = %v", err)
	}
}

func TestRestock(t *testing.T) {
	db := setupDB(t)
	item := createMenuItem(t, db, model.MenuItem{Name: "Somsa", Price: 8000, IsAvailable: true, ServesCount: 40, RemainingServings: 3})

	restocked, err := Restock(db, item.ID, model.ServingsInput{ServesCount: 50})
	if err != nil {
		t.Fatalf("Restock() error = %v", err)
	}
	if restocked.ServesCount != 50 || restocked.RemainingServings != 50 {
		t.Errorf("restocked = %d/%d, want 50/50", restocked.RemainingServings, restocked.ServesCount)
	}

	ten := 10
	if restocked, err = Restock(db, item.ID, model.ServingsInput{ServesCount: 50, RemainingServings: &ten}); err != nil || restocked.RemainingServings != 10 {
		t.Errorf("partial restock = %+v, %v", restocked, err)
	}
	over := 60
	if _, err := Restock(db, item.ID, model.ServingsInput{ServesCount: 50, RemainingServings: &over}); err == nil {
		t.Error("remaining above servesCount accepted")
	}
}

func TestPublicMenu(t *testing.T) {
	db := setupDB(t)
	createMenuItem(t, db, model.MenuItem{Name: "Osh", Price: 25000, IsAvailable: true})
	createMenuItem(t, db, model.MenuItem{Name: "Manti", Price: 20000, IsAvailable: false})
	createMenuItem(t, db, model.MenuItem{Name: "Somsa", Price: 8000, IsAvailable: true, ServesCount: 10, RemainingServings: 0})

	menu, err := PublicMenu(db, nil)
	if err != nil {
		t.Fatalf("PublicMenu() error = %v", err)
	}
	if len(menu) != 1 || len(menu[0].Items) != 2 {
		t.Fatalf("menu = %+v, want one category with 2 items", menu)
	}
	osh, somsa := menu[0].Items[0], menu[0].Items[1]
	if osh.Name != "Osh" || osh.SoldOut {
		t.Errorf("Osh = %+v, want available", osh)
	}
	if somsa.Name != "Somsa" || !somsa.SoldOut {
		t.Errorf("Somsa = %+v, want sold out", somsa)
	}
}
