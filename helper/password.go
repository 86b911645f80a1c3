package helper

import (
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"restaurant_manager/config"
	"restaurant_manager/model"
	"time"

	"github.com/google/uuid"
	"github.com/jordan-wright/email"
	"gorm.io/gorm"
)

const resetTokenTTL = time.Hour

// CreatePasswordResetToken issues a one hour token for an active staff
// member. Unknown or inactive emails yield ("", nil).
func CreatePasswordResetToken(db *gorm.DB, address string) (string, error) {
	staff, err := GetStaffByEmail(db, address)
	if err != nil {
		return "", err
	}
	if staff == nil || !staff.Active {
		return "", nil
	}
	token := model.PasswordResetToken{
		StaffId:   staff.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := db.Create(&token).Error; err != nil {
		return "", err
	}
	return token.Token, nil
}

func ResetPassword(db *gorm.DB, token, newPassword string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var reset model.PasswordResetToken
		if err := tx.Where("token = ? AND used = ? AND expires_at > ?", token, false, time.Now()).First(&reset).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResetTokenInvalid
			}
			return err
		}
		hash, err := HashPassword(newPassword)
		if err != nil {
			return err
		}
		if err := tx.Model(&model.Staff{}).Where("id = ?", reset.StaffId).Update("password", hash).Error; err != nil {
			return err
		}
		return tx.Model(&reset).Update("used", true).Error
	})
}

func SendPasswordResetEmail(to, token string) error {
	host := config.Config("SMTP_HOST")
	if host == "" {
		return errors.New("SMTP_HOST is not configured")
	}
	username := config.Config("SMTP_USERNAME")
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", config.String("PUBLIC_MENU_URL", "http://localhost:3000"), token)

	e := email.NewEmail()
	e.From = config.String("SMTP_FROM", username)
	e.To = []string{to}
	e.Subject = "Parolni tiklash"
	e.Text = []byte(fmt.Sprintf("Parolni tiklash uchun havolani bosing (1 soat amal qiladi): %s", resetLink))
	addr := fmt.Sprintf("%s:%d", host, config.Int("SMTP_PORT", 587))
	if err := e.Send(addr, smtp.PlainAuth("", username, config.Config("SMTP_PASSWORD"), host)); err != nil {
		log.Printf("Send reset email to %s failed: %v", to, err)
		return err
	}
	return nil
}
