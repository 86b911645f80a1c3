package helper

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"sort"
	"testing"
	"time"
)

func TestWaiterBoardScope(t *testing.T) {
	db := setupDB(t)
	createSeatingType(t, db, "Stol", 4)
	aziz := createStaff(t, db, "aziz", constants.ROLE_WAITER)
	bobur := createStaff(t, db, "bobur", constants.ROLE_WAITER)
	mine := createUnit(t, db, "Stol", 5)
	db.Model(&mine).Update("waiter_id", aziz.ID)
	createUnit(t, db, "Stol", 6)

	ready := func(o model.Order) model.Order {
		o.Status = constants.ORDER_READY
		return insertOrder(t, db, o)
	}
	own := ready(model.Order{WaiterId: &aziz.ID, Notes: "own"})
	ready(model.Order{WaiterId: &bobur.ID, Notes: "other"})
	byUnit := ready(model.Order{SeatingUnitId: &mine.ID, Notes: "unit"})
	byKey := ready(model.Order{SeatingType: "stol", TableNumber: utils.Ptr(5), Notes: "key"})
	byNumber := ready(model.Order{TableNumber: utils.Ptr(5), Notes: "number"})
	ready(model.Order{SeatingType: "Stol", TableNumber: utils.Ptr(6), Notes: "elsewhere"})
	insertOrder(t, db, model.Order{WaiterId: &aziz.ID, Status: constants.ORDER_PAID, IsPaid: true, Notes: "paid"})

	board, err := WaiterBoard(db, session(aziz), ScopeMine)
	if err != nil {
		t.Fatalf("WaiterBoard() error = %v", err)
	}
	var got []uint
	for _, o := range board.Orders {
		got = append(got, o.ID)
	}
	want := []uint{own.ID, byUnit.ID, byKey.ID, byNumber.ID}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	if len(got) != len(want) {
		t.Fatalf("mine = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mine = %v, want %v", got, want)
			break
		}
	}
	if board.Counts[constants.ORDER_READY] != 4 || board.Counts[constants.ORDER_COMPLETED] != 0 {
		t.Errorf("Counts = %v, want ready 4 completed 0", board.Counts)
	}

	all, err := WaiterBoard(db, session(aziz), ScopeAll)
	if err != nil {
		t.Fatalf("WaiterBoard(all) error = %v", err)
	}
	if len(all.Orders) != 6 {
		t.Errorf("all = %d orders, want 6", len(all.Orders))
	}
}

func TestKitchenBoardOldestFirst(t *testing.T) {
	db := setupDB(t)
	base := time.Now().Add(-time.Hour)
	late := insertOrder(t, db, model.Order{DTO: model.DTO{CreatedAt: base.Add(20 * time.Minute)}})
	early := insertOrder(t, db, model.Order{DTO: model.DTO{CreatedAt: base}, Status: constants.ORDER_PREPARING})
	insertOrder(t, db, model.Order{DTO: model.DTO{CreatedAt: base}, Status: constants.ORDER_READY})

	board, err := KitchenBoard(db, nil)
	if err != nil {
		t.Fatalf("KitchenBoard() error = %v", err)
	}
	if len(board.Orders) != 2 || board.Orders[0].ID != early.ID || board.Orders[1].ID != late.ID {
		t.Errorf("Orders = %+v, want [%d %d]", board.Orders, early.ID, late.ID)
	}
	if board.Counts[constants.ORDER_PENDING] != 1 || board.Counts[constants.ORDER_PREPARING] != 1 {
		t.Errorf("Counts = %v", board.Counts)
	}

	empty := setupDB(t)
	board, err = KitchenBoard(empty, nil)
	if err != nil {
		t.Fatalf("KitchenBoard(empty) error = %v", err)
	}
	if board.Orders == nil || len(board.Orders) != 0 {
		t.Errorf("Orders = %v, want empty slice", board.Orders)
	}
}
