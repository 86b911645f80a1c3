package helper

import (
	"encoding/json"
	"fmt"
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"time"

	"gorm.io/gorm"
)

// ArchiveStaleOrders moves unpaid orders older than the cutoff into
// order_histories, one transaction per order. A failing order is logged and
// left in place; the sweep continues with the next one.
func ArchiveStaleOrders(db *gorm.DB, now time.Time, afterDays int) (model.ArchiveResult, error) {
	result := model.ArchiveResult{Cutoff: now.AddDate(0, 0, -afterDays)}
	reason := fmt.Sprintf(constants.ARCHIVE_REASON_UNPAID, afterDays)

	var ids []uint
	if err := db.Model(&model.Order{}).
		Where("is_paid = ? AND created_at < ?", false, result.Cutoff).
		Order("created_at asc").
		Pluck("id", &ids).Error; err != nil {
		return result, err
	}

	for _, id := range ids {
		if err := archiveOrder(db, id, now, reason); err != nil {
			log.Printf("Archive order %d failed: %v", id, err)
			result.Failed++
			continue
		}
		result.Archived++
	}
	if result.Archived > 0 || result.Failed > 0 {
		log.Printf("Archived %d stale orders (%d failed), cutoff %s", result.Archived, result.Failed, result.Cutoff.Format(time.RFC3339))
	}
	return result, nil
}

func archiveOrder(db *gorm.DB, id uint, now time.Time, reason string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order model.Order
		if err := tx.Preload("Items").First(&order, id).Error; err != nil {
			return err
		}
		if order.IsPaid {
			return nil
		}
		snapshot, err := json.Marshal(order)
		if err != nil {
			return err
		}
		history := model.OrderHistory{
			OriginalOrderId: order.ID,
			PublicCode:      order.PublicCode,
			OrderType:       order.OrderType,
			Status:          order.Status,
			Total:           order.Total,
			WaiterName:      order.WaiterName,
			OrderCreatedAt:  order.CreatedAt,
			ArchivedAt:      now,
			Reason:          reason,
			Snapshot:        string(snapshot),
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Order{}, order.ID).Error; err != nil {
			return err
		}
		if order.SeatingUnitId != nil {
			if _, err := ReleaseSeatIfIdle(tx, *order.SeatingUnitId); err != nil {
				return err
			}
		}
		return nil
	})
}

// ArchiveAndRecompute runs the sweep and attaches statistics computed over
// what remains, from the cutoff up to the end of today.
func ArchiveAndRecompute(db *gorm.DB, now time.Time, afterDays int) (*model.ArchiveResult, error) {
	result, err := ArchiveStaleOrders(db, now, afterDays)
	if err != nil {
		return nil, err
	}
	report, err := LoadStatisticsSince(db, result.Cutoff, now)
	if err != nil {
		return nil, err
	}
	result.Statistics = *report
	return &result, nil
}
