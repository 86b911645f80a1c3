package model

import (
	"restaurant_manager/constants"
	"time"
)

type Staff struct {
	DTO
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;index" json:"role"`
	Active   bool   `gorm:"not null" json:"active"`
}

type Staffs []Staff

// Session is the authenticated caller, resolved once per request by the
// Protected middleware and handed to every helper that needs it.
type Session struct {
	StaffId uint   `json:"staffId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

func (s *Session) IsAdmin() bool  { return s != nil && s.Role == constants.ROLE_ADMIN }
func (s *Session) IsChef() bool   { return s != nil && s.Role == constants.ROLE_CHEF }
func (s *Session) IsWaiter() bool { return s != nil && s.Role == constants.ROLE_WAITER }

// Screen names the staff screen this session lands on after login.
func (s *Session) Screen() string {
	switch {
	case s.IsAdmin():
		return "admin"
	case s.IsChef():
		return "kitchen"
	case s.IsWaiter():
		return "waiter"
	}
	return ""
}

type PasswordResetToken struct {
	DTO
	StaffId   uint      `gorm:"index;not null" json:"staffId"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `gorm:"default:false" json:"used"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateStaffInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"required"`
	Active   *bool  `json:"active"`
}

type EditStaffInput struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
}

type FilterStaff struct {
	Pagination
	SearchKey string `query:"searchKey"`
	Role      string `query:"role"`
	Active    *bool  `query:"active"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"`
}
