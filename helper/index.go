package helper

import (
	"errors"
	"fmt"
	"net/mail"
	"restaurant_manager/config"
	"restaurant_manager/model"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Now is the clock used by order placement and seat handling.
var Now = time.Now

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetStaffByEmail(db *gorm.DB, email string) (*model.Staff, error) {
	var staff model.Staff
	if err := db.Where("LOWER(email) = LOWER(?)", email).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func Valid(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["staffId"] = tokenClaim.StaffId
	claims["name"] = tokenClaim.Name
	claims["role"] = tokenClaim.Role
	claims["typ"] = "access"
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(jwtSecret())
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["staffId"] = tokenClaim.StaffId
	claims["typ"] = "refresh"
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(jwtSecret())
}

func GenerateTokens(staff *model.Staff) (model.TokenData, error) {
	claim := model.TokenClaim{StaffId: staff.ID, Name: staff.Name, Role: staff.Role}
	access, err := GenerateAccessToken(claim)
	if err != nil {
		return model.TokenData{}, err
	}
	refresh, err := GenerateRefreshToken(claim)
	if err != nil {
		return model.TokenData{}, err
	}
	return model.TokenData{AccessToken: access, RefreshToken: refresh}, nil
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})

	return token, err
}

// StaffIdFromToken returns the staff id carried by a token of the given type.
func StaffIdFromToken(tokenString, typ string) (uint, error) {
	token, err := ParseToken(tokenString)
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, errors.New("token is not valid")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	if t, _ := claims["typ"].(string); t != typ {
		return 0, fmt.Errorf("expected %s token", typ)
	}
	id, ok := claims["staffId"].(float64)
	if !ok || id <= 0 {
		return 0, errors.New("missing staffId")
	}
	return uint(id), nil
}

// LoadSession resolves an access token to the active staff member behind it.
// Role and name come from the database so deactivation and role changes apply
// to tokens already issued.
func LoadSession(db *gorm.DB, tokenString string) (*model.Session, error) {
	staffId, err := StaffIdFromToken(tokenString, "access")
	if err != nil {
		return nil, err
	}
	var staff model.Staff
	if err := db.First(&staff, staffId).Error; err != nil {
		return nil, err
	}
	if !staff.Active {
		return nil, ErrStaffInactive
	}
	return &model.Session{StaffId: staff.ID, Name: staff.Name, Email: staff.Email, Role: staff.Role}, nil
}

func CurrentSession(c *fiber.Ctx) *model.Session {
	session, _ := c.Locals("session").(*model.Session)
	return session
}
