package utils

import (
	"bytes"
	"fmt"
	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/tealeg/xlsx"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func addHeader(sheet *xlsx.Sheet, headers ...string) {
	row := sheet.AddRow()
	for _, h := range headers {
		row.AddCell().SetString(h)
	}
}

func addPair(sheet *xlsx.Sheet, label string, value interface{}) {
	row := sheet.AddRow()
	row.AddCell().SetString(label)
	row.AddCell().SetValue(value)
}

// BuildStatisticsWorkbook flattens a statistics report into a workbook with
// Summary, Top items, Series, Status and Orders sheets.
func BuildStatisticsWorkbook(report model.StatisticsReport) (*xlsx.File, error) {
	file := xlsx.NewFile()
	cur := report.Current

	summary, err := file.AddSheet("Summary")
	if err != nil {
		return nil, err
	}
	addHeader(summary, "Metric", "Value")
	addPair(summary, "Period", cur.Window.Period)
	addPair(summary, "From", cur.Window.From.Format("2006-01-02 15:04"))
	addPair(summary, "To", cur.Window.To.Format("2006-01-02 15:04"))
	addPair(summary, "Orders", cur.OrderCount)
	addPair(summary, "Revenue", cur.Revenue)
	addPair(summary, "Paid orders", cur.PaidCount)
	addPair(summary, "Paid revenue", cur.PaidRevenue)
	addPair(summary, "Unpaid orders", cur.UnpaidCount)
	addPair(summary, "Unpaid revenue", cur.UnpaidRevenue)
	addPair(summary, "Average order", cur.AverageOrder)
	addPair(summary, "Previous orders", report.Comparison.OrderCount)
	addPair(summary, "Previous revenue", report.Comparison.Revenue)
	addPair(summary, "Orders growth %", report.Comparison.OrdersGrowth)
	addPair(summary, "Revenue growth %", report.Comparison.RevenueGrowth)

	top, err := file.AddSheet("Top items")
	if err != nil {
		return nil, err
	}
	addHeader(top, "Item", "Quantity", "Revenue")
	for _, it := range cur.TopItems {
		row := top.AddRow()
		row.AddCell().SetString(it.Name)
		row.AddCell().SetInt(it.Quantity)
		row.AddCell().SetInt64(it.Revenue)
	}

	series, err := file.AddSheet("Series")
	if err != nil {
		return nil, err
	}
	addHeader(series, "Period", "Orders", "Revenue")
	for _, p := range cur.Series {
		row := series.AddRow()
		row.AddCell().SetString(p.Label)
		row.AddCell().SetInt(p.Orders)
		row.AddCell().SetInt64(p.Revenue)
	}

	status, err := file.AddSheet("Status")
	if err != nil {
		return nil, err
	}
	addHeader(status, "Status", "Orders")
	for _, s := range orderedStatusKeys(cur.StatusCounts) {
		row := status.AddRow()
		row.AddCell().SetString(s)
		row.AddCell().SetInt(cur.StatusCounts[s])
	}

	orders, err := file.AddSheet("Orders")
	if err != nil {
		return nil, err
	}
	addHeader(orders, "Code", "Type", "Seat", "Address", "Phone", "Items", "Subtotal", "Delivery fee", "Container", "Total", "Status", "Paid", "Waiter", "Created at")
	for _, o := range cur.Orders {
		row := orders.AddRow()
		row.AddCell().SetString(o.PublicCode)
		row.AddCell().SetString(o.OrderType)
		row.AddCell().SetString(SeatLabel(o))
		row.AddCell().SetString(o.Address)
		row.AddCell().SetString(o.PhoneNumber)
		row.AddCell().SetString(ItemsSummary(o.Items))
		row.AddCell().SetInt64(o.Subtotal)
		row.AddCell().SetInt64(o.DeliveryFee)
		row.AddCell().SetInt64(o.ContainerCost)
		row.AddCell().SetInt64(o.Total)
		row.AddCell().SetString(o.Status)
		row.AddCell().SetBool(o.IsPaid)
		row.AddCell().SetString(o.WaiterName)
		row.AddCell().SetString(o.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return file, nil
}

func BuildHistoryWorkbook(rows []model.OrderHistory) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("History")
	if err != nil {
		return nil, err
	}
	addHeader(sheet, "Code", "Type", "Status", "Total", "Waiter", "Ordered at", "Archived at", "Reason")
	for _, h := range rows {
		row := sheet.AddRow()
		row.AddCell().SetString(h.PublicCode)
		row.AddCell().SetString(h.OrderType)
		row.AddCell().SetString(h.Status)
		row.AddCell().SetInt64(h.Total)
		row.AddCell().SetString(h.WaiterName)
		row.AddCell().SetString(h.OrderCreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetString(h.ArchivedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetString(h.Reason)
	}
	return file, nil
}

func WorkbookBytes(file *xlsx.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func SeatLabel(o model.Order) string {
	switch {
	case o.TableNumber != nil:
		return fmt.Sprintf("%s %d", o.SeatingType, *o.TableNumber)
	case o.RoomNumber != nil:
		return fmt.Sprintf("%s %d", o.SeatingType, *o.RoomNumber)
	case o.OrderType == constants.ORDER_TYPE_DELIVERY:
		return "Yetkazib berish"
	}
	return ""
}

func ItemsSummary(items []model.OrderItem) string {
	var buf bytes.Buffer
	for i, it := range items {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s x%d", it.Name, it.Quantity)
	}
	return buf.String()
}

func orderedStatusKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for _, k := range constants.ORDER_STATUS {
		if _, ok := counts[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}
