package helper

import (
	"errors"
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaceOrderOptions struct {
	DeliveryFee int64
	GraceWindow time.Duration
}

type Totals struct {
	Subtotal      int64
	DeliveryFee   int64
	ContainerCost int64
	Total         int64
}

// ComputeTotals prices a cart snapshot. Delivery adds the flat fee and the
// container cost of every item that needs one; table orders pay the subtotal.
func ComputeTotals(items []model.OrderItem, orderType string, deliveryFee int64) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += it.Price * int64(it.Quantity)
		if orderType == constants.ORDER_TYPE_DELIVERY && it.NeedsContainer {
			t.ContainerCost += it.ContainerPrice * int64(it.Quantity)
		}
	}
	if orderType == constants.ORDER_TYPE_DELIVERY {
		t.DeliveryFee = deliveryFee
	}
	t.Total = t.Subtotal + t.DeliveryFee + t.ContainerCost
	return t
}

// ValidateCart checks the request shape before anything is written.
func ValidateCart(input model.PlaceOrderInput) error {
	if len(input.Items) == 0 {
		return ErrCartEmpty
	}
	for _, it := range input.Items {
		if it.Quantity < 1 {
			return &ServingsError{ItemId: it.Id, Requested: it.Quantity, Err: ErrInsufficientServings}
		}
	}
	switch input.OrderType {
	case constants.ORDER_TYPE_TABLE:
		if input.SeatingUnitId == nil || *input.SeatingUnitId == 0 {
			return ErrSeatRequired
		}
	case constants.ORDER_TYPE_DELIVERY:
		if strings.TrimSpace(input.Address) == "" || strings.TrimSpace(input.PhoneNumber) == "" {
			return ErrDeliveryInfoRequired
		}
	default:
		return ErrOrderTypeInvalid
	}
	return nil
}

type cartLine struct {
	id       uint
	quantity int
}

// mergeCart folds repeated item ids into one line, keeping first-seen order.
func mergeCart(items []model.CartItemInput) []cartLine {
	index := make(map[uint]int, len(items))
	var lines []cartLine
	for _, it := range items {
		if i, ok := index[it.Id]; ok {
			lines[i].quantity += it.Quantity
			continue
		}
		index[it.Id] = len(lines)
		lines = append(lines, cartLine{id: it.Id, quantity: it.Quantity})
	}
	return lines
}

func NewPublicCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// PlaceOrder validates the cart, claims the seating unit, creates the order
// and decrements servings in a single transaction.
func PlaceOrder(db *gorm.DB, input model.PlaceOrderInput, opts PlaceOrderOptions) (*model.PlaceOrderResult, error) {
	if err := ValidateCart(input); err != nil {
		return nil, err
	}
	signature := strings.TrimSpace(input.ClientSignature)
	if signature == "" {
		signature = uuid.NewString()
	}
	lines := mergeCart(input.Items)
	now := Now()

	result := &model.PlaceOrderResult{ClientSignature: signature}
	err := db.Transaction(func(tx *gorm.DB) error {
		ids := make([]uint, len(lines))
		for i, l := range lines {
			ids[i] = l.id
		}
		var menuItems []model.MenuItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id IN ?", ids).Find(&menuItems).Error; err != nil {
			return err
		}
		byId := make(map[uint]model.MenuItem, len(menuItems))
		for _, m := range menuItems {
			byId[m.ID] = m
		}

		orderItems := make([]model.OrderItem, 0, len(lines))
		for _, l := range lines {
			m, ok := byId[l.id]
			if !ok {
				return &ServingsError{ItemId: l.id, Requested: l.quantity, Err: ErrItemNotFound}
			}
			if !m.IsAvailable {
				return &ServingsError{ItemId: m.ID, Name: m.Name, Requested: l.quantity, Err: ErrItemUnavailable}
			}
			if m.TracksServings() && l.quantity > m.RemainingServings {
				return &ServingsError{ItemId: m.ID, Name: m.Name, Requested: l.quantity, Remaining: m.RemainingServings, Err: ErrInsufficientServings}
			}
			orderItems = append(orderItems, model.OrderItem{
				MenuItemId:     m.ID,
				Name:           m.Name,
				Price:          m.Price,
				Quantity:       l.quantity,
				NeedsContainer: m.NeedsContainer,
				ContainerPrice: m.ContainerPrice,
			})
		}

		totals := ComputeTotals(orderItems, input.OrderType, opts.DeliveryFee)
		order := model.Order{
			PublicCode:      NewPublicCode(),
			OrderType:       input.OrderType,
			Items:           orderItems,
			Subtotal:        totals.Subtotal,
			DeliveryFee:     totals.DeliveryFee,
			ContainerCost:   totals.ContainerCost,
			Total:           totals.Total,
			Status:          constants.ORDER_PENDING,
			Notes:           strings.TrimSpace(input.Notes),
			ClientSignature: signature,
		}

		if input.OrderType == constants.ORDER_TYPE_TABLE {
			unit, reused, err := claimSeat(tx, *input.SeatingUnitId, signature, opts.GraceWindow, now)
			if err != nil {
				return err
			}
			order.SeatingUnitId = &unit.ID
			order.SeatingType = unit.Type
			if IsRoomType(unit.Type) {
				order.RoomNumber = utils.Ptr(unit.Number)
			} else {
				order.TableNumber = utils.Ptr(unit.Number)
			}
			if unit.WaiterId != nil {
				var waiter model.Staff
				if err := tx.First(&waiter, *unit.WaiterId).Error; err == nil {
					order.WaiterId = &waiter.ID
					order.WaiterName = waiter.Name
				}
			}
			result.ReusedSeat = reused
		} else {
			order.Address = strings.TrimSpace(input.Address)
			order.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, it := range orderItems {
			m := byId[it.MenuItemId]
			if !m.TracksServings() {
				continue
			}
			res := tx.Model(&model.MenuItem{}).
				Where("id = ? AND remaining_servings >= ?", m.ID, it.Quantity).
				Update("remaining_servings", gorm.Expr("remaining_servings - ?", it.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &ServingsError{ItemId: m.ID, Name: m.Name, Requested: it.Quantity, Remaining: m.RemainingServings, Err: ErrInsufficientServings}
			}
		}

		result.Order = order
		result.Memo = model.OrderMemo{
			SeatingUnitId: order.SeatingUnitId,
			WaiterId:      order.WaiterId,
			ExpiresAt:     now.Add(opts.GraceWindow),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// claimSeat flips an available unit to occupied. An occupied unit is only
// accepted again for the same client signature inside the grace window.
func claimSeat(tx *gorm.DB, unitId uint, signature string, grace time.Duration, now time.Time) (model.SeatingUnit, bool, error) {
	var unit model.SeatingUnit
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&unit, unitId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return unit, false, ErrSeatNotFound
		}
		return unit, false, err
	}

	res := tx.Model(&model.SeatingUnit{}).
		Where("id = ? AND status = ?", unitId, constants.SEAT_AVAILABLE).
		Updates(map[string]any{"status": constants.SEAT_OCCUPIED, "occupied_at": now})
	if res.Error != nil {
		return unit, false, res.Error
	}
	if res.RowsAffected == 1 {
		unit.Status = constants.SEAT_OCCUPIED
		unit.OccupiedAt = &now
		return unit, false, nil
	}

	if unit.Status == constants.SEAT_OCCUPIED && grace > 0 {
		var count int64
		if err := tx.Model(&model.Order{}).
			Where("seating_unit_id = ? AND client_signature = ? AND is_paid = ? AND created_at >= ?", unitId, signature, false, now.Add(-grace)).
			Count(&count).Error; err != nil {
			return unit, false, err
		}
		if count > 0 {
			return unit, true, nil
		}
	}
	return unit, false, ErrSeatUnavailable
}

func IsRoomType(seatingType string) bool {
	return utils.IsValidValueOfConstant(strings.ToLower(strings.TrimSpace(seatingType)), constants.ROOM_TYPES)
}

// NormalizeStatus maps alternate status words onto the canonical vocabulary.
func NormalizeStatus(status string) (string, error) {
	s := strings.ToLower(utils.Normalize(status, constants.ORDER_STATUS_ALIASES))
	if !utils.IsValidValueOfConstant(s, constants.ORDER_STATUS) {
		return "", ErrStatusInvalid
	}
	return s, nil
}

func StatusRank(status string) int {
	for i, s := range constants.ORDER_STATUS {
		if s == status {
			return i
		}
	}
	return -1
}

var roleStatuses = map[string][]string{
	constants.ROLE_CHEF:   {constants.ORDER_PREPARING, constants.ORDER_READY},
	constants.ROLE_WAITER: {constants.ORDER_COMPLETED, constants.ORDER_PAID},
}

func CanSetStatus(session *model.Session, status string) bool {
	if session == nil {
		return false
	}
	if session.IsAdmin() {
		return StatusRank(status) > 0
	}
	return utils.IsValidValueOfConstant(status, roleStatuses[session.Role])
}

func findOrder(tx *gorm.DB, orderId uint) (*model.Order, error) {
	var order model.Order
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// AdvanceOrder moves an order forward along the lifecycle. The write is
// conditional on the status read, so a concurrent change makes it fail with
// ErrStatusConflict instead of overwriting. The second return value is the
// seating unit released by a payment, if any.
func AdvanceOrder(db *gorm.DB, session *model.Session, orderId uint, status string) (*model.Order, *model.SeatingUnit, error) {
	target, err := NormalizeStatus(status)
	if err != nil {
		return nil, nil, err
	}
	if !CanSetStatus(session, target) {
		return nil, nil, ErrNotPermitted
	}

	var order *model.Order
	var released *model.SeatingUnit
	err = db.Transaction(func(tx *gorm.DB) error {
		current, err := findOrder(tx, orderId)
		if err != nil {
			return err
		}
		if current.IsPaid || current.Status == constants.ORDER_PAID {
			return ErrOrderPaid
		}
		if StatusRank(target) <= StatusRank(current.Status) {
			return ErrStatusBackward
		}

		updates := map[string]any{"status": target}
		if target == constants.ORDER_PAID {
			updates["is_paid"] = true
			updates["paid_at"] = Now()
		}
		res := tx.Model(&model.Order{}).Where("id = ? AND status = ?", current.ID, current.Status).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusConflict
		}

		if target == constants.ORDER_PAID && current.SeatingUnitId != nil {
			released, err = ReleaseSeatIfIdle(tx, *current.SeatingUnitId)
			if err != nil {
				return err
			}
		}

		order = &model.Order{}
		return tx.Preload("Items").First(order, current.ID).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return order, released, nil
}

// ReleaseSeatIfIdle frees an occupied unit once no unpaid order references
// it. It returns the unit when it was released.
func ReleaseSeatIfIdle(tx *gorm.DB, unitId uint) (*model.SeatingUnit, error) {
	var open int64
	if err := tx.Model(&model.Order{}).Where("seating_unit_id = ? AND is_paid = ?", unitId, false).Count(&open).Error; err != nil {
		return nil, err
	}
	if open > 0 {
		return nil, nil
	}
	res := tx.Model(&model.SeatingUnit{}).
		Where("id = ? AND status = ?", unitId, constants.SEAT_OCCUPIED).
		Updates(map[string]any{"status": constants.SEAT_AVAILABLE, "occupied_at": nil})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	var unit model.SeatingUnit
	if err := tx.First(&unit, unitId).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func UpdateOrderNotes(db *gorm.DB, orderId uint, notes string) (*model.Order, error) {
	var order *model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		current, err := findOrder(tx, orderId)
		if err != nil {
			return err
		}
		if current.IsPaid {
			return ErrOrderPaid
		}
		res := tx.Model(&model.Order{}).Where("id = ? AND is_paid = ?", current.ID, false).Update("notes", strings.TrimSpace(notes))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOrderPaid
		}
		order = &model.Order{}
		return tx.Preload("Items").First(order, current.ID).Error
	})
	return order, err
}

// DeleteOrder removes an unpaid order together with its items.
func DeleteOrder(db *gorm.DB, orderId uint) (*model.Order, *model.SeatingUnit, error) {
	var order *model.Order
	var released *model.SeatingUnit
	err := db.Transaction(func(tx *gorm.DB) error {
		current, err := findOrder(tx, orderId)
		if err != nil {
			return err
		}
		if current.IsPaid {
			return ErrOrderPaid
		}
		if err := tx.Where("order_id = ?", current.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND is_paid = ?", current.ID, false).Delete(&model.Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOrderPaid
		}
		if current.SeatingUnitId != nil {
			released, err = ReleaseSeatIfIdle(tx, *current.SeatingUnitId)
			if err != nil {
				return err
			}
		}
		order = current
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return order, released, nil
}

func GetOrderByCode(db *gorm.DB, code string) (*model.Order, error) {
	var order model.Order
	if err := db.Preload("Items").Where("public_code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// LookupOrders returns the orders matching the public codes a client kept,
// newest first. Unknown codes are skipped.
func LookupOrders(db *gorm.DB, codes []string) ([]model.Order, error) {
	normalized := make([]string, 0, len(codes))
	for _, c := range codes {
		if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
			normalized = append(normalized, c)
		}
	}
	orders := []model.Order{}
	if len(normalized) == 0 {
		return orders, nil
	}
	err := db.Preload("Items").Where("public_code IN ?", normalized).Order("created_at desc").Find(&orders).Error
	return orders, err
}

func PendingCount(db *gorm.DB) int64 {
	var count int64
	if err := db.Model(&model.Order{}).Where("status = ?", constants.ORDER_PENDING).Count(&count).Error; err != nil {
		log.Printf("Count pending orders failed: %v", err)
	}
	return count
}
