package helper

import (
	"errors"
	"math"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"

	topItemsLimit = 10
)

var ErrPeriodInvalid = errors.New("period must be today, week or month")

// ResolveWindow returns the half-open window [From, To) for the period ending
// with the day of now, and the window of equal length right before it.
func ResolveWindow(period string, now time.Time) (model.StatWindow, model.StatWindow, error) {
	var days int
	switch period {
	case PeriodToday, "":
		period, days = PeriodToday, 1
	case PeriodWeek:
		days = 7
	case PeriodMonth:
		days = 30
	default:
		return model.StatWindow{}, model.StatWindow{}, ErrPeriodInvalid
	}
	end := utils.StartOfDay(now).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -days)
	current := model.StatWindow{Period: period, From: start, To: end}
	previous := model.StatWindow{Period: period, From: start.AddDate(0, 0, -days), To: start}
	return current, previous, nil
}

func inWindow(t time.Time, w model.StatWindow) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

func emptySeries(w model.StatWindow) []model.SeriesPoint {
	var points []model.SeriesPoint
	if w.Period == PeriodToday {
		for t := w.From; t.Before(w.To); t = t.Add(time.Hour) {
			points = append(points, model.SeriesPoint{Label: t.Format("15:04"), Start: t})
		}
		return points
	}
	for t := w.From; t.Before(w.To); t = t.AddDate(0, 0, 1) {
		points = append(points, model.SeriesPoint{Label: t.Format("2006-01-02"), Start: t})
	}
	return points
}

func seriesIndex(t time.Time, w model.StatWindow, points []model.SeriesPoint) int {
	for i := len(points) - 1; i >= 0; i-- {
		if !t.Before(points[i].Start) {
			return i
		}
	}
	return -1
}

// Aggregate reduces the orders falling inside w into the dashboard figures.
func Aggregate(orders []model.Order, w model.StatWindow) model.Statistics {
	stats := model.Statistics{
		Window:       w,
		TopItems:     []model.TopItem{},
		StatusCounts: make(map[string]int, len(constants.ORDER_STATUS)),
		ByType:       make(map[string]model.TypeSplit, len(constants.ORDER_TYPE)),
		Series:       emptySeries(w),
		Orders:       []model.Order{},
	}
	for _, s := range constants.ORDER_STATUS {
		stats.StatusCounts[s] = 0
	}
	for _, t := range constants.ORDER_TYPE {
		stats.ByType[t] = model.TypeSplit{}
	}

	items := map[uint]*model.TopItem{}
	for _, o := range orders {
		if !inWindow(o.CreatedAt, w) {
			continue
		}
		stats.Orders = append(stats.Orders, o)
		stats.OrderCount++
		stats.Revenue += o.Total
		if o.IsPaid {
			stats.PaidCount++
			stats.PaidRevenue += o.Total
		} else {
			stats.UnpaidCount++
			stats.UnpaidRevenue += o.Total
		}
		stats.StatusCounts[o.Status]++

		split := stats.ByType[o.OrderType]
		split.Orders++
		split.Revenue += o.Total
		stats.ByType[o.OrderType] = split

		if i := seriesIndex(o.CreatedAt, w, stats.Series); i >= 0 {
			stats.Series[i].Orders++
			stats.Series[i].Revenue += o.Total
		}

		for _, it := range o.Items {
			top, ok := items[it.MenuItemId]
			if !ok {
				top = &model.TopItem{MenuItemId: it.MenuItemId}
				items[it.MenuItemId] = top
			}
			top.Name = it.Name
			top.Quantity += it.Quantity
			top.Revenue += it.Price * int64(it.Quantity)
		}
	}

	for _, top := range items {
		stats.TopItems = append(stats.TopItems, *top)
	}
	sort.Slice(stats.TopItems, func(i, j int) bool {
		a, b := stats.TopItems[i], stats.TopItems[j]
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		return a.Name < b.Name
	})
	if len(stats.TopItems) > topItemsLimit {
		stats.TopItems = stats.TopItems[:topItemsLimit]
	}
	if stats.OrderCount > 0 {
		stats.AverageOrder = math.Round(float64(stats.Revenue)/float64(stats.OrderCount)*100) / 100
	}
	return stats
}

func loadOrders(db *gorm.DB, w model.StatWindow) ([]model.Order, error) {
	var orders []model.Order
	err := db.Preload("Items").
		Where("created_at >= ? AND created_at < ?", w.From, w.To).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

// LoadStatistics aggregates the period and compares it with the window
// before it. Both windows are read concurrently.
func LoadStatistics(db *gorm.DB, period string, now time.Time) (*model.StatisticsReport, error) {
	current, previous, err := ResolveWindow(period, now)
	if err != nil {
		return nil, err
	}
	return loadReport(db, current, previous)
}

// LoadStatisticsSince aggregates [from, end of today) as a month window and
// compares it with the span of equal length before from.
func LoadStatisticsSince(db *gorm.DB, from, now time.Time) (*model.StatisticsReport, error) {
	end := utils.StartOfDay(now).AddDate(0, 0, 1)
	span := end.Sub(from)
	current := model.StatWindow{Period: PeriodMonth, From: from, To: end}
	previous := model.StatWindow{Period: PeriodMonth, From: from.Add(-span), To: from}
	return loadReport(db, current, previous)
}

func loadReport(db *gorm.DB, current, previous model.StatWindow) (*model.StatisticsReport, error) {
	var currentOrders, previousOrders []model.Order
	var g errgroup.Group
	g.Go(func() error {
		var err error
		currentOrders, err = loadOrders(db, current)
		return err
	})
	g.Go(func() error {
		var err error
		previousOrders, err = loadOrders(db, previous)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cur := Aggregate(currentOrders, current)
	prev := Aggregate(previousOrders, previous)
	return &model.StatisticsReport{
		Current: cur,
		Comparison: model.Comparison{
			Previous:      previous,
			OrderCount:    prev.OrderCount,
			Revenue:       prev.Revenue,
			OrdersGrowth:  math.Round(utils.CalculateGrowth(float64(cur.OrderCount), float64(prev.OrderCount))*100) / 100,
			RevenueGrowth: math.Round(utils.CalculateGrowth(float64(cur.Revenue), float64(prev.Revenue))*100) / 100,
		},
	}, nil
}
