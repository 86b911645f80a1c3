package helper

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"sync"
	"testing"
	"time"
)

func TestComputeTotals(t *testing.T) {
	osh := model.OrderItem{Name: "Osh", Price: 25000, Quantity: 2, NeedsContainer: true, ContainerPrice: 2000}
	tea := model.OrderItem{Name: "Choy", Price: 5000, Quantity: 1}

	tests := []struct {
		name      string
		items     []model.OrderItem
		orderType string
		want      Totals
	}{
		{"table pays subtotal", []model.OrderItem{osh}, constants.ORDER_TYPE_TABLE, Totals{Subtotal: 50000, Total: 50000}},
		{"delivery adds fee and containers", []model.OrderItem{osh}, constants.ORDER_TYPE_DELIVERY, Totals{Subtotal: 50000, DeliveryFee: 15000, ContainerCost: 4000, Total: 69000}},
		{"delivery without containers", []model.OrderItem{tea}, constants.ORDER_TYPE_DELIVERY, Totals{Subtotal: 5000, DeliveryFee: 15000, Total: 20000}},
		{"mixed table cart", []model.OrderItem{osh, tea}, constants.ORDER_TYPE_TABLE, Totals{Subtotal: 55000, Total: 55000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeTotals(tt.items, tt.orderType, 15000); got != tt.want {
				t.Errorf("ComputeTotals() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestValidateCart(t *testing.T) {
	unit := uint(1)
	item := []model.CartItemInput{{Id: 1, Quantity: 1}}
	tests := []struct {
		name  string
		input model.PlaceOrderInput
		want  error
	}{
		{"empty cart", model.PlaceOrderInput{OrderType: constants.ORDER_TYPE_TABLE, SeatingUnitId: &unit}, ErrCartEmpty},
		{"table without seat", model.PlaceOrderInput{OrderType: constants.ORDER_TYPE_TABLE, Items: item}, ErrSeatRequired},
		{"delivery without address", model.PlaceOrderInput{OrderType: constants.ORDER_TYPE_DELIVERY, PhoneNumber: "+998901234567", Items: item}, ErrDeliveryInfoRequired},
		{"delivery without phone", model.PlaceOrderInput{OrderType: constants.ORDER_TYPE_DELIVERY, Address: "Chilonzor 5", Items: item}, ErrDeliveryInfoRequired},
		{"zero quantity", model.PlaceOrderInput{OrderType: constants.ORDER_TYPE_TABLE, SeatingUnitId: &unit, Items: []model.CartItemInput{{Id: 1}}}, ErrInsufficientServings},
		{"unknown type", model.PlaceOrderInput{OrderType: "takeaway", Items: item}, ErrOrderTypeInvalid},
		{"valid table", model.PlaceOrderInput{OrderType: constants.ORDER_TYPE_TABLE, SeatingUnitId: &unit, Items: item}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateCart(tt.input); !errors.Is(err, tt.want) {
				t.Errorf("ValidateCart() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPlaceOrderTable(t *testing.T) {
	db := setupDB(t)
	createSeatingType(t, db, "Stol", 4)
	unit := createUnit(t, db, "Stol", 4)
	osh := createMenuItem(t, db, model.MenuItem{Name: "Osh", Price: 25000, IsAvailable: true})

	result, err := PlaceOrder(db, tableOrder(unit.ID, "browser-a", model.CartItemInput{Id: osh.ID, Quantity: 2}), defaultOptions)
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	order := result.Order
	if order.Subtotal != 50000 || order.Total != 50000 || order.DeliveryFee != 0 {
		t.Errorf("totals = %d/%d/%d, want 50000/50000/0", order.Subtotal, order.Total, order.DeliveryFee)
	}
	if order.Status != constants.ORDER_PENDING {
		t.Errorf("Status = %q, want pending", order.Status)
	}
	if order.TableNumber == nil || *order.TableNumber != 4 || order.RoomNumber != nil {
		t.Errorf("TableNumber = %v RoomNumber = %v, want 4 and nil", order.TableNumber, order.RoomNumber)
	}
	if len(order.Items) != 1 || order.Items[0].Name != "Osh" || order.Items[0].Price != 25000 {
		t.Errorf("Items = %+v, want Osh snapshot", order.Items)
	}
	if result.ClientSignature != "browser-a" {
		t.Errorf("ClientSignature = %q, want browser-a", result.ClientSignature)
	}
	if result.Memo.SeatingUnitId == nil || *result.Memo.SeatingUnitId != unit.ID {
		t.Errorf("Memo.SeatingUnitId = %v, want %d", result.Memo.SeatingUnitId, unit.ID)
	}
	if got := reloadUnit(t, db, unit.ID); got.Status != constants.SEAT_OCCUPIED || got.OccupiedAt == nil {
		t.Errorf("unit status = %q occupiedAt = %v, want occupied", got.Status, got.OccupiedAt)
	}
	if n := countRows(t, db, &model.OrderItem{}); n != 1 {
		t.Errorf("order items = %d, want 1", n)
	}
}

func TestPlaceOrderDelivery(t *testing.T) {
	db := setupDB(t)
	osh := createMenuItem(t, db, model.MenuItem{Name: "Osh", Price: 25000, IsAvailable: true, NeedsContainer: true, ContainerPrice: 2000})

	result, err := PlaceOrder(db, model.PlaceOrderInput{
		OrderType:   constants.ORDER_TYPE_DELIVERY,
		Address:     "Yunusobod 12",
		PhoneNumber: "+998901112233",
		Items:       []model.CartItemInput{{Id: osh.ID, Quantity: 2}},
	}, defaultOptions)
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	order := result.Order
	if order.ContainerCost != 4000 || order.DeliveryFee != 15000 || order.Total != 69000 {
		t.Errorf("container/fee/total = %d/%d/%d, want 4000/15000/69000", order.ContainerCost, order.DeliveryFee, order.Total)
	}
	if order.SeatingUnitId != nil {
		t.Errorf("SeatingUnitId = %v, want nil", *order.SeatingUnitId)
	}
	if result.ClientSignature == "" {
		t.Error("ClientSignature is empty, want a minted signature")
	}
}

func TestPlaceOrderRejectsOverQuantity(t *testing.T) {
	db := setupDB(t)
	createSeatingType(t, db, "Stol", 4)
	unit := createUnit(t, db, "Stol", 1)
	somsa := createMenuItem(t, db, model.MenuItem{Name: "Somsa", Price: 8000, IsAvailable: true, ServesCount: 10, RemainingServings: 1})

	_, err := PlaceOrder(db, tableOrder(unit.ID, "sig", model.CartItemInput{Id: somsa.ID, Quantity: 2}), defaultOptions)
	if !errors.Is(err, ErrInsufficientServings) {
		t.Fatalf("PlaceOrder() error = %v, want ErrInsufficientServings", err)
	}
	var servingsErr *ServingsError
	if !errors.As(err, &servingsErr) || servingsErr.ItemId != somsa.ID || servingsErr.Remaining != 1 {
		t.Errorf("ServingsError = %+v, want item %d remaining 1", servingsErr, somsa.ID)
	}
	if n := countRows(t, db, &model.Order{}); n != 0 {
		t.Errorf("orders = %d, want 0", n)
	}
	if got := reloadUnit(t, db, unit.ID); got.Status != constants.SEAT_AVAILABLE {
		t.Errorf("unit status = %q, want available", got.Status)
	}
	var item model.MenuItem
	db.First(&item, somsa.ID)
	if item.RemainingServings != 1 {
		t.Errorf("RemainingServings = %d, want 1", item.RemainingServings)
	}
}

func TestPlaceOrderDecrementsServings(t *testing.T) {
	db := setupDB(t)
	lagmon := createMenuItem(t, db, model.MenuItem{Name: "Lag'mon", Price: 30000, IsAvailable: true, ServesCount: 3, RemainingServings: 3})
	free := createMenuItem(t, db, model.MenuItem{Name: "Non", Price: 4000, IsAvailable: true})
	delivery := func(items ...model.CartItemInput) model.PlaceOrderInput {
		return model.PlaceOrderInput{OrderType: constants.ORDER_TYPE_DELIVERY, Address: "Sergeli", PhoneNumber: "+998900000000", Items: items}
	}

	if _, err := PlaceOrder(db, delivery(
		model.CartItemInput{Id: lagmon.ID, Quantity: 1},
		model.CartItemInput{Id: free.ID, Quantity: 50},
		model.CartItemInput{Id: lagmon.ID, Quantity: 1},
	), defaultOptions); err != nil {
		t.Fatalf("first PlaceOrder() error = %v", err)
	}
	var item model.MenuItem
	db.First(&item, lagmon.ID)
	if item.RemainingServings != 1 {
		t.Fatalf("RemainingServings = %d, want 1", item.RemainingServings)
	}

	_, err := PlaceOrder(db, delivery(model.CartItemInput{Id: lagmon.ID, Quantity: 2}), defaultOptions)
	if !errors.Is(err, ErrInsufficientServings) {
		t.Fatalf("second PlaceOrder() error = %v, want ErrInsufficientServings", err)
	}
	db.First(&item, lagmon.ID)
	if item.RemainingServings != 1 {
		t.Errorf("RemainingServings after rejection = %d, want 1", item.RemainingServings)
	}
	var untracked model.MenuItem
	db.First(&untracked, free.ID)
	if untracked.RemainingServings != 0 || untracked.ServesCount != 0 {
		t.Errorf("untracked item changed: %+v", untracked)
	}
}

func TestPlaceOrderUnavailableItem(t *testing.T) {
	db := setupDB(t)
	item := createMenuItem(t, db, model.MenuItem{Name: "Manti", Price: 20000, IsAvailable: false})

	_, err := PlaceOrder(db, model.PlaceOrderInput{
		OrderType:   constants.ORDER_TYPE_DELIVERY,
		Address:     "Olmazor",
		PhoneNumber: "+998901234567",
		Items:       []model.CartItemInput{{Id: item.ID, Quantity: 1}},
	}, defaultOptions)
	if !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("PlaceOrder() error = %v, want ErrItemUnavailable", err)
	}

	_, err = PlaceOrder(db, model.PlaceOrderInput{
		OrderType:   constants.ORDER_TYPE_DELIVERY,
		Address:     "Olmazor",
		PhoneNumber: "+998901234567",
		Items:       []model.CartItemInput{{Id: 999, Quantity: 1}},
	}, defaultOptions)
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("PlaceOrder() unknown item error = %v, want ErrItemNotFound", err)
	}
}

func TestPlaceOrderSeatClaim(t *testing.T) {
	db := setupDB(t)
	createSeatingType(t, db, "Stol", 4)
	unit := createUnit(t, db, "Stol", 7)
	osh := createMenuItem(t, db, model.MenuItem{Name: "Osh", Price: 25000, IsAvailable: true})
	line := model.CartItemInput{Id: osh.ID, Quantity: 1}

	first, err := PlaceOrder(db, tableOrder(unit.ID, "browser-a", line), defaultOptions)
	if err != nil {
		t.Fatalf("first PlaceOrder() error = %v", err)
	}

	if _, err := PlaceOrder(db, tableOrder(unit.ID, "browser-b", line), defaultOptions); !errors.Is(err, ErrSeatUnavailable) {
		t.Errorf("other browser error = %v, want ErrSeatUnavailable", err)
	}

	again, err := PlaceOrder(db, tableOrder(unit.ID, "browser-a", line), defaultOptions)
	if err != nil {
		t.Fatalf("same browser within grace error = %v", err)
	}
	if !again.ReusedSeat {
		t.Error("ReusedSeat = false, want true")
	}

	old := time.Now().Add(-time.Hour)
	db.Model(&model.Order{}).Where("id IN ?", []uint{first.Order.ID, again.Order.ID}).Update("created_at", old)
	if _, err := PlaceOrder(db, tableOrder(unit.ID, "browser-a", line), defaultOptions); !errors.Is(err, ErrSeatUnavailable) {
		t.Errorf("same browser after grace error = %v, want ErrSeatUnavailable", err)
	}

	if n := countRows(t, db, &model.Order{}); n != 2 {
		t.Errorf("orders = %d, want 2", n)
	}
}

func TestPlaceOrderConcurrentSeatClaim(t *testing.T) {
	db := setupDB(t)
	createSeatingType(t, db, "Stol", 4)
	unit := createUnit(t, db, "Stol", 7)
	osh := createMenuItem(t, db, model.MenuItem{Name: "Osh", Price: 25000, IsAvailable: true})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, sig := range []string{"browser-a", "browser-b"} {
		wg.Add(1)
		go func(i int, sig string) {
			defer wg.Done()
			_, errs[i] = PlaceOrder(db, tableOrder(unit.ID, sig, model.CartItemInput{Id: osh.ID, Quantity: 1}), defaultOptions)
		}(i, sig)
	}
	wg.Wait()

	succeeded, rejected := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSeatUnavailable):
			rejected++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 || rejected != 1 {
		t.Errorf("succeeded = %d rejected = %d, want 1 and 1", succeeded, rejected)
	}
}

func TestPlaceOrderRoomAndWaiter(t *testing.T) {
	db := setupDB(t)
	createSeatingType(t, db, "Xona", 10)
	unit := createUnit(t, db, "Xona", 3)
	waiter := createStaff(t, db, "dilshod", constants.ROLE_WAITER)
	db.Model(&unit).Update("waiter_id", waiter.ID)
	osh := createMenuItem(t, db, model.MenuItem{Name: "Osh", Price: 25000, IsAvailable: true})

	result, err := PlaceOrder(db, tableOrder(unit.ID, "sig", model.CartItemInput{Id: osh.ID, Quantity: 1}), defaultOptions)
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	order := result.Order
	if order.RoomNumber == nil || *order.RoomNumber != 3 || order.TableNumber != nil {
		t.Errorf("RoomNumber = %v TableNumber = %v, want 3 and nil", order.RoomNumber, order.TableNumber)
	}
	if order.WaiterId == nil || *order.WaiterId != waiter.ID || order.WaiterName != "dilshod" {
		t.Errorf("waiter = %v %q, want %d dilshod", order.WaiterId, order.WaiterName, waiter.ID)
	}
	if order.SeatingType != "Xona" {
		t.Errorf("SeatingType = %q, want Xona", order.SeatingType)
	}
}

func TestPlaceOrderReservedOrMissingSeat(t *testing.T) {
	db := setupDB(t)
	createSeatingType(t, db, "Stol", 4)
	unit := createUnit(t, db, "Stol", 2)
	db.Model(&unit).Update("status", constants.SEAT_RESERVED)
	osh := createMenuItem(t, db, model.MenuItem{Name: "Osh", Price: 25000, IsAvailable: true})
	line := model.CartItemInput{Id: osh.ID, Quantity: 1}

	if _, err := PlaceOrder(db, tableOrder(unit.ID, "sig", line), defaultOptions); !errors.Is(err, ErrSeatUnavailable) {
		t.Errorf("reserved unit error = %v, want ErrSeatUnavailable", err)
	}
	if _, err := PlaceOrder(db, tableOrder(404, "sig", line), defaultOptions); !errors.Is(err, ErrSeatNotFound) {
		t.Errorf("missing unit error = %v, want ErrSeatNotFound", err)
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"pending", constants.ORDER_PENDING, false},
		{" Ready ", constants.ORDER_READY, false},
		{"tayinlanmoqda", constants.ORDER_PREPARING, false},
		{"yetkazildi", constants.ORDER_COMPLETED, false},
		{"tolandi", constants.ORDER_PAID, false},
		{"To'landi", constants.ORDER_PAID, false},
		{"cancelled", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanSetStatus(t *testing.T) {
	admin := &model.Session{Role: constants.ROLE_ADMIN}
	chef := &model.Session{Role: constants.ROLE_CHEF}
	waiter := &model.Session{Role: constants.ROLE_WAITER}
	tests := []struct {
		session *model.Session
		status  string
		want    bool
	}{
		{chef, constants.ORDER_PREPARING, true},
		{chef, constants.ORDER_READY, true},
		{chef, constants.ORDER_PAID, false},
		{waiter, constants.ORDER_COMPLETED, true},
		{waiter, constants.ORDER_PAID, true},
		{waiter, constants.ORDER_PREPARING, false},
		{admin, constants.ORDER_PAID, true},
		{admin, constants.ORDER_PENDING, false},
		{nil, constants.ORDER_READY, false},
	}
	for _, tt := range tests {
		role := "nil"
		if tt.session != nil {
			role = tt.session.Role
		}
		t.Run(role+"/"+tt.status, func(t *testing.T) {
			if got := CanSetStatus(tt.session, tt.status); got != tt.want {
				t.Errorf("CanSetStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvanceOrderLifecycle(t *testing.T) {
	db := setupDB(t)
	createSeatingType(t, db, "Stol", 4)
	unit := createUnit(t, db, "Stol", 5)
	osh := createMenuItem(t, db, model.MenuItem{Name: "Osh", Price: 25000, IsAvailable: true})
	chef := session(createStaff(t, db, "chef", constants.ROLE_CHEF))
	waiter := session(createStaff(t, db, "waiter", constants.ROLE_WAITER))

	placed, err := PlaceOrder(db, tableOrder(unit.ID, "sig", model.CartItemInput{Id: osh.ID, Quantity: 1}), defaultOptions)
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	id := placed.Order.ID

	if _, _, err := AdvanceOrder(db, waiter, id, "preparing"); !errors.Is(err, ErrNotPermitted) {
		t.Errorf("waiter preparing error = %v, want ErrNotPermitted", err)
	}
	if _, _, err := AdvanceOrder(db, chef, id, "tayinlanmoqda"); err != nil {
		t.Fatalf("chef preparing error = %v", err)
	}
	if _, _, err := AdvanceOrder(db, chef, id, constants.ORDER_PREPARING); !errors.Is(err, ErrStatusBackward) {
		t.Errorf("same status error = %v, want ErrStatusBackward", err)
	}
	if _, _, err := AdvanceOrder(db, chef, id, constants.ORDER_READY); err != nil {
		t.Fatalf("chef ready error = %v", err)
	}
	if _, _, err := AdvanceOrder(db, chef, id, constants.ORDER_PREPARING); !errors.Is(err, ErrStatusBackward) {
		t.Errorf("backward error = %v, want ErrStatusBackward", err)
	}
	if _, _, err := AdvanceOrder(db, waiter, id, "yetkazildi"); err != nil {
		t.Fatalf("waiter completed error = %v", err)
	}

	order, released, err := AdvanceOrder(db, waiter, id, "tolandi")
	if err != nil {
		t.Fatalf("waiter paid error = %v", err)
	}
	if !order.IsPaid || order.PaidAt == nil || order.Status != constants.ORDER_PAID {
		t.Errorf("paid order = %+v, want isPaid with paidAt", order)
	}
	if released == nil || released.ID != unit.ID {
		t.Errorf("released = %v, want unit %d", released, unit.ID)
	}
	if got := reloadUnit(t, db, unit.ID); got.Status != constants.SEAT_AVAILABLE {
		t.Errorf("unit status = %q, want available", got.Status)
	}

	admin := &model.Session{Role: constants.ROLE_ADMIN}
	if _, _, err := AdvanceOrder(db, admin, id, constants.ORDER_PAID); !errors.Is(err, ErrOrderPaid) {
		t.Errorf("paid again error = %v, want ErrOrderPaid", err)
	}
	if _, err := UpdateOrderNotes(db, id, "late note"); !errors.Is(err, ErrOrderPaid) {
		t.Errorf("notes on paid error = %v, want ErrOrderPaid", err)
	}
	if _, _, err := DeleteOrder(db, id); !errors.Is(err, ErrOrderPaid) {
		t.Errorf("delete paid error = %v, want ErrOrderPaid", err)
	}
	if _, _, err := AdvanceOrder(db, admin, 999, constants.ORDER_READY); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("missing order error = %v, want ErrOrderNotFound", err)
	}
}

func TestPaymentKeepsSeatWithOtherOpenOrders(t *testing.T) {
	db := setupDB(t)
	createSeatingType(t, db, "Stol", 4)
	unit := createUnit(t, db, "Stol", 9)
	osh := createMenuItem(t, db, model.MenuItem{Name: "Osh", Price: 25000, IsAvailable: true})
	admin := &model.Session{Role: constants.ROLE_ADMIN}
	line := model.CartItemInput{Id: osh.ID, Quantity: 1}

	first, err := PlaceOrder(db, tableOrder(unit.ID, "sig", line), defaultOptions)
	if err != nil {
		t.Fatalf("first PlaceOrder() error = %v", err)
	}
	if _, err := PlaceOrder(db, tableOrder(unit.ID, "sig", line), defaultOptions); err != nil {
		t.Fatalf("second PlaceOrder() error = %v", err)
	}

	_, released, err := AdvanceOrder(db, admin, first.Order.ID, constants.ORDER_PAID)
	if err != nil {
		t.Fatalf("AdvanceOrder() error = %v", err)
	}
	if released != nil {
		t.Errorf("released = %+v, want nil while another order is open", released)
	}
	if got := reloadUnit(t, db, unit.ID); got.Status != constants.SEAT_OCCUPIED {
		t.Errorf("unit status = %q, want occupied", got.Status)
	}
}

func TestDeleteOrderReleasesSeat(t *testing.T) {
	db := setupDB(t)
	createSeatingType(t, db, "Stol", 4)
	unit := createUnit(t, db, "Stol", 1)
	osh := createMenuItem(t, db, model.MenuItem{Name: "Osh", Price: 25000, IsAvailable: true})

	placed, err := PlaceOrder(db, tableOrder(unit.ID, "sig", model.CartItemInput{Id: osh.ID, Quantity: 1}), defaultOptions)
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	order, released, err := DeleteOrder(db, placed.Order.ID)
	if err != nil {
		t.Fatalf("DeleteOrder() error = %v", err)
	}
	if order.ID != placed.Order.ID || released == nil {
		t.Errorf("DeleteOrder() = %v, %v, want order and released unit", order, released)
	}
	if n := countRows(t, db, &model.OrderItem{}); n != 0 {
		t.Errorf("order items = %d, want 0", n)
	}
	if got := reloadUnit(t, db, unit.ID); got.Status != constants.SEAT_AVAILABLE {
		t.Errorf("unit status = %q, want available", got.Status)
	}
}

func TestLookupOrders(t *testing.T) {
	db := setupDB(t)
	osh := createMenuItem(t, db, model.MenuItem{Name: "Osh", Price: 25000, IsAvailable: true})
	placed, err := PlaceOrder(db, model.PlaceOrderInput{
		OrderType:   constants.ORDER_TYPE_DELIVERY,
		Address:     "Mirobod",
		PhoneNumber: "+998901234567",
		Items:       []model.CartItemInput{{Id: osh.ID, Quantity: 1}},
	}, defaultOptions)
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}

	orders, err := LookupOrders(db, []string{" " + placed.Order.PublicCode + " ", "NOPE"})
	if err != nil {
		t.Fatalf("LookupOrders() error = %v", err)
	}
	if len(orders) != 1 || orders[0].ID != placed.Order.ID || len(orders[0].Items) != 1 {
		t.Errorf("LookupOrders() = %+v, want the placed order with items", orders)
	}
	if _, err := GetOrderByCode(db, "missing"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("GetOrderByCode() error = %v, want ErrOrderNotFound", err)
	}
}
