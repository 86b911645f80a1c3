package helper

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"strings"

	"gorm.io/gorm"
)

const (
	ScopeMine = "mine"
	ScopeAll  = "all"
)

func newBoard(orders []model.Order, statuses ...string) *model.OrderBoard {
	counts := make(map[string]int, len(statuses))
	for _, s := range statuses {
		counts[s] = 0
	}
	for _, o := range orders {
		counts[o.Status]++
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return &model.OrderBoard{Orders: orders, Counts: counts}
}

// KitchenBoard lists the orders the kitchen still has to cook, oldest first.
// A non-nil waiterId narrows the board to that waiter's orders.
func KitchenBoard(db *gorm.DB, waiterId *uint) (*model.OrderBoard, error) {
	statuses := []string{constants.ORDER_PENDING, constants.ORDER_PREPARING}
	var orders []model.Order
	if err := db.Preload("Items").
		Where("status IN ?", statuses).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	if waiterId != nil {
		filtered, err := filterByWaiter(db, orders, *waiterId)
		if err != nil {
			return nil, err
		}
		orders = filtered
	}
	return newBoard(orders, statuses...), nil
}

// WaiterBoard lists unpaid orders that are ready to serve or waiting for
// payment. ScopeMine keeps only the session's own orders.
func WaiterBoard(db *gorm.DB, session *model.Session, scope string) (*model.OrderBoard, error) {
	statuses := []string{constants.ORDER_READY, constants.ORDER_COMPLETED}
	var orders []model.Order
	if err := db.Preload("Items").
		Where("status IN ? AND is_paid = ?", statuses, false).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	if scope == ScopeMine && session != nil {
		filtered, err := filterByWaiter(db, orders, session.StaffId)
		if err != nil {
			return nil, err
		}
		orders = filtered
	}
	return newBoard(orders, statuses...), nil
}

type seatKey struct {
	seatingType string
	number      int
}

// filterByWaiter keeps orders owned by the waiter. Orders placed before the
// unit had a waiter carry no waiterId; those match on the unit id, or on the
// table or room number of a unit assigned to the waiter.
func filterByWaiter(db *gorm.DB, orders []model.Order, waiterId uint) ([]model.Order, error) {
	var units []model.SeatingUnit
	if err := db.Where("waiter_id = ?", waiterId).Find(&units).Error; err != nil {
		return nil, err
	}
	unitIds := make(map[uint]bool, len(units))
	keys := make(map[seatKey]bool, len(units))
	numbers := make(map[int]bool, len(units))
	for _, u := range units {
		unitIds[u.ID] = true
		keys[seatKey{strings.ToLower(u.Type), u.Number}] = true
		numbers[u.Number] = true
	}

	result := []model.Order{}
	for _, o := range orders {
		if o.WaiterId != nil {
			if *o.WaiterId == waiterId {
				result = append(result, o)
			}
			continue
		}
		if o.SeatingUnitId != nil && unitIds[*o.SeatingUnitId] {
			result = append(result, o)
			continue
		}
		number := o.TableNumber
		if number == nil {
			number = o.RoomNumber
		}
		if number == nil {
			continue
		}
		if o.SeatingType != "" {
			if keys[seatKey{strings.ToLower(o.SeatingType), *number}] {
				result = append(result, o)
			}
		} else if numbers[*number] {
			result = append(result, o)
		}
	}
	return result, nil
}
