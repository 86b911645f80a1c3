package helper

import (
	"errors"
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxBatchUnits = 500

func findSeatingType(tx *gorm.DB, name string) (*model.SeatingType, error) {
	var st model.SeatingType
	if err := tx.Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeatingTypeNotFound
		}
		return nil, err
	}
	return &st, nil
}

func adjustTypeCount(tx *gorm.DB, name string, delta int) error {
	expr := gorm.Expr("count + ?", delta)
	if delta < 0 {
		expr = gorm.Expr("CASE WHEN count + ? < 0 THEN 0 ELSE count + ? END", delta, delta)
	}
	return tx.Model(&model.SeatingType{}).Where("name = ?", name).Update("count", expr).Error
}

func seatingExists(tx *gorm.DB, seatingType string, number int, excludeId uint) (bool, error) {
	var count int64
	query := tx.Model(&model.SeatingUnit{}).Where("type = ? AND number = ?", seatingType, number)
	if excludeId != 0 {
		query = query.Where("id <> ?", excludeId)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ValidateWaiter checks that id belongs to an active waiter.
func ValidateWaiter(tx *gorm.DB, id uint) (*model.Staff, error) {
	var staff model.Staff
	if err := tx.Where("id = ? AND role = ? AND active = ?", id, constants.ROLE_WAITER, true).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWaiterNotFound
		}
		return nil, err
	}
	return &staff, nil
}

func translateUnitError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSeating
	}
	return err
}

func CreateSeatingType(db *gorm.DB, input model.SeatingTypeInput) (*model.SeatingType, error) {
	name := strings.TrimSpace(input.Name)
	st := model.SeatingType{Name: name, DefaultCapacity: input.DefaultCapacity}
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := findSeatingType(tx, name); err == nil {
			return ErrSeatingTypeExists
		} else if !errors.Is(err, ErrSeatingTypeNotFound) {
			return err
		}
		var count int64
		if err := tx.Model(&model.SeatingUnit{}).Where("type = ?", name).Count(&count).Error; err != nil {
			return err
		}
		st.Count = int(count)
		if err := tx.Create(&st).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSeatingTypeExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// EditSeatingType updates a type; a rename is carried to its units in the
// same transaction.
func EditSeatingType(db *gorm.DB, id uint, input model.EditSeatingTypeInput) (*model.SeatingType, error) {
	var st model.SeatingType
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&st, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSeatingTypeNotFound
			}
			return err
		}
		if input.DefaultCapacity != nil {
			st.DefaultCapacity = *input.DefaultCapacity
		}
		if input.Name != nil {
			newName := strings.TrimSpace(*input.Name)
			if newName != st.Name {
				other, err := findSeatingType(tx, newName)
				if err != nil && !errors.Is(err, ErrSeatingTypeNotFound) {
					return err
				}
				if other != nil && other.ID != st.ID {
					return ErrSeatingTypeExists
				}
				if err := tx.Model(&model.SeatingUnit{}).Where("type = ?", st.Name).Update("type", newName).Error; err != nil {
					return translateUnitError(err)
				}
				if err := tx.Model(&model.Order{}).Where("seating_type = ? AND is_paid = ?", st.Name, false).Update("seating_type", newName).Error; err != nil {
					return err
				}
				st.Name = newName
			}
		}
		return tx.Save(&st).Error
	})
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func DeleteSeatingType(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var st model.SeatingType
		if err := tx.First(&st, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSeatingTypeNotFound
			}
			return err
		}
		var units int64
		if err := tx.Model(&model.SeatingUnit{}).Where("type = ?", st.Name).Count(&units).Error; err != nil {
			return err
		}
		if units > 0 {
			return ErrSeatingTypeInUse
		}
		return tx.Delete(&st).Error
	})
}

// CreateSeatingUnit adds one unit and bumps its type's count.
func CreateSeatingUnit(db *gorm.DB, input model.CreateSeatingUnitInput) (*model.SeatingUnit, error) {
	var unit model.SeatingUnit
	err := db.Transaction(func(tx *gorm.DB) error {
		st, err := findSeatingType(tx, input.Type)
		if err != nil {
			return err
		}
		exists, err := seatingExists(tx, st.Name, input.Number, 0)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateSeating
		}
		if input.WaiterId != nil {
			if _, err := ValidateWaiter(tx, *input.WaiterId); err != nil {
				return err
			}
		}
		seats := input.Seats
		if seats == 0 {
			seats = st.DefaultCapacity
		}
		unit = model.SeatingUnit{
			Number:   input.Number,
			Type:     st.Name,
			Seats:    seats,
			Status:   constants.SEAT_AVAILABLE,
			WaiterId: input.WaiterId,
		}
		if err := tx.Create(&unit).Error; err != nil {
			return translateUnitError(err)
		}
		return adjustTypeCount(tx, st.Name, 1)
	})
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// BatchCreateSeatingUnits inserts units numbered from..to. Nothing is written
// when any number in the range already exists.
func BatchCreateSeatingUnits(db *gorm.DB, input model.BatchSeatingUnitInput) ([]model.SeatingUnit, error) {
	if input.To < input.From {
		return nil, ErrBatchRangeInvalid
	}
	if input.To-input.From+1 > maxBatchUnits {
		return nil, ErrBatchRangeTooLarge
	}
	var units []model.SeatingUnit
	err := db.Transaction(func(tx *gorm.DB) error {
		st, err := findSeatingType(tx, input.Type)
		if err != nil {
			return err
		}
		var taken []int
		if err := tx.Model(&model.SeatingUnit{}).
			Where("type = ? AND number BETWEEN ? AND ?", st.Name, input.From, input.To).
			Order("number asc").
			Pluck("number", &taken).Error; err != nil {
			return err
		}
		if len(taken) > 0 {
			return &RangeConflictError{Type: st.Name, Numbers: taken}
		}
		seats := input.Seats
		if seats == 0 {
			seats = st.DefaultCapacity
		}
		for n := input.From; n <= input.To; n++ {
			units = append(units, model.SeatingUnit{Number: n, Type: st.Name, Seats: seats, Status: constants.SEAT_AVAILABLE})
		}
		if err := tx.Create(&units).Error; err != nil {
			return translateUnitError(err)
		}
		return adjustTypeCount(tx, st.Name, len(units))
	})
	if err != nil {
		return nil, err
	}
	return units, nil
}

func EditSeatingUnit(db *gorm.DB, id uint, input model.EditSeatingUnitInput) (*model.SeatingUnit, error) {
	var unit model.SeatingUnit
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&unit, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSeatNotFound
			}
			return err
		}
		oldType := unit.Type
		if input.Type != nil {
			st, err := findSeatingType(tx, *input.Type)
			if err != nil {
				return err
			}
			unit.Type = st.Name
		}
		if input.Number != nil {
			unit.Number = *input.Number
		}
		if input.Seats != nil {
			unit.Seats = *input.Seats
		}
		exists, err := seatingExists(tx, unit.Type, unit.Number, unit.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateSeating
		}
		if err := tx.Save(&unit).Error; err != nil {
			return translateUnitError(err)
		}
		if unit.Type != oldType {
			if err := adjustTypeCount(tx, oldType, -1); err != nil {
				return err
			}
			return adjustTypeCount(tx, unit.Type, 1)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func DeleteSeatingUnit(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var unit model.SeatingUnit
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&unit, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSeatNotFound
			}
			return err
		}
		var open int64
		if err := tx.Model(&model.Order{}).Where("seating_unit_id = ? AND is_paid = ?", unit.ID, false).Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return ErrSeatInUse
		}
		if err := tx.Delete(&unit).Error; err != nil {
			return err
		}
		return adjustTypeCount(tx, unit.Type, -1)
	})
}

func SetSeatingStatus(db *gorm.DB, id uint, status string) (*model.SeatingUnit, error) {
	var unit model.SeatingUnit
	if err := db.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	updates := map[string]any{"status": status, "occupied_at": nil}
	if status == constants.SEAT_OCCUPIED {
		updates["occupied_at"] = Now()
	}
	if err := db.Model(&unit).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Waiter").First(&unit, id).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

// AssignWaiter sets or clears (nil) the waiter serving a unit.
func AssignWaiter(db *gorm.DB, id uint, waiterId *uint) (*model.SeatingUnit, error) {
	var unit model.SeatingUnit
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&unit, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSeatNotFound
			}
			return err
		}
		if waiterId != nil {
			if _, err := ValidateWaiter(tx, *waiterId); err != nil {
				return err
			}
		}
		if err := tx.Model(&unit).Update("waiter_id", waiterId).Error; err != nil {
			return err
		}
		return tx.Preload("Waiter").First(&unit, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// ResetSeating marks every unit available and returns how many changed.
func ResetSeating(db *gorm.DB) (int64, error) {
	res := db.Model(&model.SeatingUnit{}).
		Where("status <> ?", constants.SEAT_AVAILABLE).
		Updates(map[string]any{"status": constants.SEAT_AVAILABLE, "occupied_at": nil})
	return res.RowsAffected, res.Error
}

// ReconcileSeatingTypeCounts rewrites every type's count from the unit rows
// and returns how many types were corrected.
func ReconcileSeatingTypeCounts(db *gorm.DB) (int, error) {
	type row struct {
		Type  string
		Total int
	}
	var rows []row
	if err := db.Model(&model.SeatingUnit{}).Select("type, COUNT(*) AS total").Group("type").Scan(&rows).Error; err != nil {
		return 0, err
	}
	actual := make(map[string]int, len(rows))
	for _, r := range rows {
		actual[r.Type] = r.Total
	}

	var types []model.SeatingType
	if err := db.Find(&types).Error; err != nil {
		return 0, err
	}
	corrected := 0
	known := make(map[string]bool, len(types))
	for _, st := range types {
		known[st.Name] = true
		want := actual[st.Name]
		if st.Count == want {
			continue
		}
		if err := db.Model(&model.SeatingType{}).Where("id = ?", st.ID).Update("count", want).Error; err != nil {
			return corrected, err
		}
		log.Printf("Seating type %q count corrected %d -> %d", st.Name, st.Count, want)
		corrected++
	}
	for name, n := range actual {
		if !known[name] {
			log.Printf("Seating units of unknown type %q: %d", name, n)
		}
	}
	return corrected, nil
}

// GetSeatingOverview lists units matching the filter with per-type stats.
func GetSeatingOverview(db *gorm.DB, filter model.FilterSeatingUnit) (*model.SeatingOverview, error) {
	query := db.Model(&model.SeatingUnit{}).Preload("Waiter")
	if filter.Type != "" {
		query = query.Where("LOWER(type) = LOWER(?)", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.WaiterId != nil {
		query = query.Where("waiter_id = ?", *filter.WaiterId)
	}
	units := []model.SeatingUnit{}
	if err := query.Order("type asc, number asc").Find(&units).Error; err != nil {
		return nil, err
	}
	overview := SummarizeSeating(units)
	return &overview, nil
}

func SummarizeSeating(units []model.SeatingUnit) model.SeatingOverview {
	byType := map[string]*model.SeatingTypeStat{}
	totals := model.SeatingTypeStat{Type: "all"}
	for _, u := range units {
		stat, ok := byType[u.Type]
		if !ok {
			stat = &model.SeatingTypeStat{Type: u.Type}
			byType[u.Type] = stat
		}
		for _, s := range []*model.SeatingTypeStat{stat, &totals} {
			s.Total++
			switch u.Status {
			case constants.SEAT_AVAILABLE:
				s.Available++
			case constants.SEAT_OCCUPIED:
				s.Occupied++
			case constants.SEAT_RESERVED:
				s.Reserved++
			}
		}
	}
	stats := make([]model.SeatingTypeStat, 0, len(byType))
	for _, s := range byType {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Type < stats[j].Type })
	return model.SeatingOverview{Units: units, ByType: stats, Totals: totals}
}
