package helper

import (
	"bytes"
	"html/template"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strconv"
)

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": func(v int64) string { return FormatMoney(v) },
	"line":  func(it model.OrderItem) string { return FormatMoney(it.Price * int64(it.Quantity)) },
}).Parse(`<!DOCTYPE html>
<html lang="uz">
<head><meta charset="utf-8"><title>Chek {{.Order.PublicCode}}</title>
<style>body{font-family:monospace;width:300px;margin:auto}td.r{text-align:right}hr{border:0;border-top:1px dashed #000}</style>
</head>
<body onload="window.print()">
<h3>Buyurtma #{{.Order.PublicCode}}</h3>
<p>{{.Order.CreatedAt.Format "2006-01-02 15:04"}}<br>{{.Seat}}{{if .Order.WaiterName}}<br>Ofitsiant: {{.Order.WaiterName}}{{end}}</p>
<hr>
<table width="100%">
{{range .Order.Items}}<tr><td>{{.Name}} x{{.Quantity}}</td><td class="r">{{line .}}</td></tr>
{{end}}</table>
<hr>
<table width="100%">
<tr><td>Jami</td><td class="r">{{money .Order.Subtotal}}</td></tr>
{{if .Order.ContainerCost}}<tr><td>Idish</td><td class="r">{{money .Order.ContainerCost}}</td></tr>{{end}}
{{if .Order.DeliveryFee}}<tr><td>Yetkazib berish</td><td class="r">{{money .Order.DeliveryFee}}</td></tr>{{end}}
<tr><td><b>To'lov</b></td><td class="r"><b>{{money .Order.Total}}</b></td></tr>
</table>
{{if .Order.Notes}}<p>Izoh: {{.Order.Notes}}</p>{{end}}
{{if .QR}}<p style="text-align:center"><img src="{{.QR}}" width="160" height="160" alt="{{.Order.PublicCode}}"></p>{{end}}
</body>
</html>`))

// FormatMoney renders so'm with space separated thousands.
func FormatMoney(v int64) string {
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	digits := strconv.FormatInt(v, 10)
	var out []byte
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, digits[i])
	}
	return sign + string(out) + " so'm"
}

// RenderReceipt returns a printable HTML receipt with a QR of the order code.
func RenderReceipt(order model.Order) (string, error) {
	qr, err := utils.QRCodeDataURL(order.PublicCode, 256)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = receiptTemplate.Execute(&buf, struct {
		Order model.Order
		Seat  string
		QR    template.URL
	}{order, utils.SeatLabel(order), template.URL(qr)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
