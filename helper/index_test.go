package helper

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"strings"
	"testing"
)

func TestTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupDB(t)
	staff := createStaff(t, db, "malika", constants.ROLE_CHEF)

	tokens, err := GenerateTokens(&staff)
	if err != nil {
		t.Fatalf("GenerateTokens() error = %v", err)
	}

	id, err := StaffIdFromToken(tokens.AccessToken, "access")
	if err != nil || id != staff.ID {
		t.Errorf("StaffIdFromToken(access) = %d, %v, want %d", id, err, staff.ID)
	}
	if _, err := StaffIdFromToken(tokens.RefreshToken, "access"); err == nil {
		t.Error("refresh token accepted as access token")
	}
	if id, err := StaffIdFromToken(tokens.RefreshToken, "refresh"); err != nil || id != staff.ID {
		t.Errorf("StaffIdFromToken(refresh) = %d, %v", id, err)
	}

	session, err := LoadSession(db, tokens.AccessToken)
	if err != nil {
		t.Fatalf("LoadSession() error = %v", err)
	}
	if session.Role != constants.ROLE_CHEF || session.Screen() != "kitchen" {
		t.Errorf("session = %+v", session)
	}

	db.Model(&staff).Update("active", false)
	if _, err := LoadSession(db, tokens.AccessToken); !errors.Is(err, ErrStaffInactive) {
		t.Errorf("inactive LoadSession() error = %v, want ErrStaffInactive", err)
	}

	t.Setenv("JWT_SECRET", "rotated")
	if _, err := LoadSession(db, tokens.AccessToken); err == nil {
		t.Error("token signed with the old secret accepted")
	}
}

func TestPasswordReset(t *testing.T) {
	db := setupDB(t)
	staff := createStaff(t, db, "nodira", constants.ROLE_WAITER)

	if token, err := CreatePasswordResetToken(db, "nobody@test.local"); err != nil || token != "" {
		t.Errorf("unknown email = %q, %v, want empty", token, err)
	}

	token, err := CreatePasswordResetToken(db, "NODIRA@test.local")
	if err != nil || token == "" {
		t.Fatalf("CreatePasswordResetToken() = %q, %v", token, err)
	}
	if err := ResetPassword(db, token, "newpass123"); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}
	var reloaded model.Staff
	db.First(&reloaded, staff.ID)
	if !CheckPasswordHash("newpass123", reloaded.Password) {
		t.Error("password was not changed")
	}
	if err := ResetPassword(db, token, "another123"); !errors.Is(err, ErrResetTokenInvalid) {
		t.Errorf("reused token error = %v, want ErrResetTokenInvalid", err)
	}
}

func TestNormalizeRole(t *testing.T) {
	tests := map[string]string{
		"ADMIN":     constants.ROLE_ADMIN,
		"chef":      constants.ROLE_CHEF,
		"Oshpaz":    constants.ROLE_CHEF,
		"ofitsiant": constants.ROLE_WAITER,
		" waiter ":  constants.ROLE_WAITER,
		"cashier":   "",
	}
	for in, want := range tests {
		if got := NormalizeRole(in); got != want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := map[int64]string{
		0:        "0 so'm",
		500:      "500 so'm",
		5000:     "5 000 so'm",
		50000:    "50 000 so'm",
		1234567:  "1 234 567 so'm",
		-15000:   "-15 000 so'm",
		10000000: "10 000 000 so'm",
	}
	for in, want := range tests {
		if got := FormatMoney(in); got != want {
			t.Errorf("FormatMoney(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderReceipt(t *testing.T) {
	table := 4
	html, err := RenderReceipt(model.Order{
		PublicCode:  "A1B2C3D4E5",
		OrderType:   constants.ORDER_TYPE_TABLE,
		SeatingType: "Stol",
		TableNumber: &table,
		Subtotal:    50000,
		Total:       50000,
		WaiterName:  "Aziz",
		Notes:       "<b>achchiq</b>",
		Items:       []model.OrderItem{{Name: "Osh", Price: 25000, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("RenderReceipt() error = %v", err)
	}
	for _, want := range []string{"A1B2C3D4E5", "Stol 4", "Osh x2", "50 000 so&#39;m", "Ofitsiant: Aziz", "data:image/png;base64,", "&lt;b&gt;achchiq&lt;/b&gt;"} {
		if !strings.Contains(html, want) {
			t.Errorf("receipt missing %q", want)
		}
	}
	if strings.Contains(html, "Yetkazib berish</td>") {
		t.Error("table receipt shows a delivery fee")
	}
}

func TestExtractPublicID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345678/restaurant/menu/menu_3_99.jpg", "restaurant/menu/menu_3_99"},
		{"https://res.cloudinary.com/demo/image/upload/restaurant/menu/osh.png", "restaurant/menu/osh"},
		{"https://res.cloudinary.com/demo/image/upload/sample.jpg", "sample"},
		{"https://example.com/upload/osh.png", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExtractPublicID(tt.url); got != tt.want {
			t.Errorf("ExtractPublicID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
