package helper

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStaffInactive        = errors.New("staff account is not active")
	ErrNotPermitted         = errors.New("role is not permitted")
	ErrWaiterNotFound       = errors.New("waiter not found")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrOrderTypeInvalid     = errors.New("unknown order type")
	ErrSeatRequired         = errors.New("seating unit is required for table orders")
	ErrDeliveryInfoRequired = errors.New("address and phone number are required for delivery")
	ErrItemNotFound         = errors.New("menu item not found")
	ErrItemUnavailable      = errors.New("menu item is not available")
	ErrInsufficientServings = errors.New("not enough servings")
	ErrSeatNotFound         = errors.New("seating unit not found")
	ErrSeatUnavailable      = errors.New("seating unit is not available")
	ErrSeatInUse            = errors.New("seating unit has unpaid orders")
	ErrDuplicateSeating     = errors.New("seating unit already exists")
	ErrBatchRangeInvalid    = errors.New("range end is before range start")
	ErrBatchRangeTooLarge   = errors.New("range is too large")
	ErrSeatingTypeNotFound  = errors.New("seating type not found")
	ErrSeatingTypeExists    = errors.New("seating type already exists")
	ErrSeatingTypeInUse     = errors.New("seating type has units")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderPaid            = errors.New("order is already paid")
	ErrStatusInvalid        = errors.New("unknown order status")
	ErrStatusBackward       = errors.New("order status can only move forward")
	ErrStatusConflict       = errors.New("order status changed concurrently")
	ErrCategoryExists       = errors.New("category already exists")
	ErrCategoryInUse        = errors.New("category has menu items")
	ErrResetTokenInvalid    = errors.New("reset token is invalid or expired")
)

// ServingsError names the cart line that failed the stock check. It unwraps
// to ErrItemNotFound, ErrItemUnavailable or ErrInsufficientServings.
type ServingsError struct {
	ItemId    uint
	Name      string
	Requested int
	Remaining int
	Err       error
}

func (e *ServingsError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("item %d: %v", e.ItemId, e.Err)
	}
	return fmt.Sprintf("%s: %v (requested %d, remaining %d)", e.Name, e.Err, e.Requested, e.Remaining)
}

func (e *ServingsError) Unwrap() error { return e.Err }

// RangeConflictError lists the numbers of a batch that already exist.
type RangeConflictError struct {
	Type    string
	Numbers []int
}

func (e *RangeConflictError) Error() string {
	nums := make([]string, len(e.Numbers))
	for i, n := range e.Numbers {
		nums[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("%s %s already exist", e.Type, strings.Join(nums, ", "))
}

func (e *RangeConflictError) Unwrap() error { return ErrDuplicateSeating }
