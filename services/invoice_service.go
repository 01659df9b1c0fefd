package services

import (
	"bytes"
	"context"
	"homifyhub_server/database"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"homifyhub_server/structs/tables"
	"html/template"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/google/uuid"
)

// InvoiceService renders customer invoices and the admin sales report as PDF
// through wkhtmltopdf.
type InvoiceService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewInvoiceService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *InvoiceService {
	if cfg.Invoice.WkhtmltopdfPath != "" {
		wkhtmltopdf.SetPath(cfg.Invoice.WkhtmltopdfPath)
	}
	return &InvoiceService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
	body { font-family: Helvetica, Arial, sans-serif; color: #222; margin: 40px; }
	h1 { font-size: 22px; }
	table { width: 100%; border-collapse: collapse; margin-top: 24px; }
	th, td { text-align: left; padding: 8px 6px; border-bottom: 1px solid #ddd; }
	th { border-bottom: 2px solid #222; }
	td.num, th.num { text-align: right; }
	.totals td { border: none; }
	.meta { color: #666; font-size: 13px; }
</style>
</head>
<body>
	<h1>{{.SiteName}} — Invoice {{.Order.OrderNumber}}</h1>
	<p class="meta">
		Issued {{.IssuedAt.Format "2 January 2006"}}<br>
		{{.Contact.Address}} · {{.Contact.Phone}} · {{.Contact.Email}}
	</p>
	<p>
		Billed to: {{.Customer.Username}} ({{.Customer.Email}})<br>
		{{with .Order.BillingAddress}}{{.Street}}, {{.City}} {{.PostalCode}}, {{.Country}}{{end}}
	</p>
	<table>
		<tr><th>Item</th><th class="num">Qty</th><th class="num">Unit price</th><th class="num">Subtotal</th></tr>
		{{range .Lines}}
		<tr>
			<td>{{.Name}}</td>
			<td class="num">{{.Quantity}}</td>
			<td class="num">{{.UnitPrice}}</td>
			<td class="num">{{.Subtotal}}</td>
		</tr>
		{{end}}
	</table>
	<table class="totals">
		{{if .Discount}}<tr><td></td><td class="num">Discount ({{.CouponCode}})</td><td class="num">-{{.Discount}}</td></tr>{{end}}
		<tr><td></td><td class="num"><strong>Total</strong></td><td class="num"><strong>{{.Total}}</strong></td></tr>
	</table>
	{{if .Order.Payment}}
	<p class="meta">Paid via {{.Order.Payment.Method}}, transaction {{.Order.Payment.TransactionId}}.</p>
	{{end}}
</body>
</html>`))

var salesReportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
	body { font-family: Helvetica, Arial, sans-serif; color: #222; margin: 40px; }
	h1 { font-size: 22px; }
	table { width: 100%; border-collapse: collapse; margin-top: 24px; }
	th, td { text-align: left; padding: 8px 6px; border-bottom: 1px solid #ddd; }
	th { border-bottom: 2px solid #222; }
	td.num, th.num { text-align: right; }
	.meta { color: #666; font-size: 13px; }
</style>
</head>
<body>
	<h1>{{.SiteName}} — Sales report</h1>
	<p class="meta">{{.Period}} · generated {{.GeneratedAt.Format "2 January 2006 15:04"}}</p>
	<p>
		Delivered orders: <strong>{{.OrderCount}}</strong><br>
		Revenue: <strong>{{.Revenue}}</strong>
	</p>
	<table>
		<tr><th>Order</th><th>Date</th><th>Customer</th><th class="num">Total</th></tr>
		{{range .Rows}}
		<tr>
			<td>{{.OrderNumber}}</td>
			<td>{{.Date}}</td>
			<td>{{.Customer}}</td>
			<td class="num">{{.Total}}</td>
		</tr>
		{{end}}
	</table>
</body>
</html>`))

type invoiceLine struct {
	Name      string
	Quantity  int
	UnitPrice string
	Subtotal  string
}

type invoiceData struct {
	SiteName   string
	Contact    *structs.ContactConfig
	Order      *tables.Order
	Customer   *tables.User
	Lines      []invoiceLine
	CouponCode string
	Discount   string
	Total      string
	IssuedAt   time.Time
}

// GenerateInvoice renders the invoice PDF for a delivered order. When ownerId
// is non-nil the order must belong to that user.
func (is *InvoiceService) GenerateInvoice(ctx context.Context, orderId uuid.UUID, ownerId *uuid.UUID) ([]byte, error) {
	query := database.Query[tables.Order](is.db).
		Where("id", orderId).
		With("Items").
		With("Items.Variant").
		With("Items.Variant.Product").
		With("Items.Bundle").
		With("Payment").
		With("Coupon").
		With("BillingAddress").
		With("User")
	if ownerId != nil {
		query = query.Where("user_id", *ownerId)
	}

	order, err := query.First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	if order.Status != tables.OrderStatusDelivered {
		return nil, &lib.ValidationFailure{Field: "order_id", Message: "invoices are only available for delivered orders"}
	}

	currency := is.cfg.Site.DefaultCurrency
	data := invoiceData{
		SiteName: is.cfg.Site.SiteName,
		Contact:  is.cfg.Contact,
		Order:    order,
		Customer: order.User,
		Total:    formatCents(order.TotalAmount, currency),
		IssuedAt: time.Now(),
	}
	if order.Coupon != nil {
		data.CouponCode = order.Coupon.Code
		data.Discount = formatCents(order.Coupon.DiscountAmount, currency)
	}

	for _, item := range order.Items {
		data.Lines = append(data.Lines, invoiceLine{
			Name:      orderItemName(item),
			Quantity:  item.Quantity,
			UnitPrice: formatCents(item.PriceAtPurchase, currency),
			Subtotal:  formatCents(item.Subtotal(), currency),
		})
	}

	var html bytes.Buffer
	if err := invoiceTemplate.Execute(&html, data); err != nil {
		is.logger.Error("Failed to render invoice template",
			gecho.Field("order_number", order.OrderNumber),
			gecho.Field("error", err),
		)
		return nil, err
	}

	return is.renderPDF(html.String())
}

type salesReportRow struct {
	OrderNumber string
	Date        string
	Customer    string
	Total       string
}

type salesReportData struct {
	SiteName    string
	Period      string
	GeneratedAt time.Time
	OrderCount  int
	Revenue     string
	Rows        []salesReportRow
}

// GenerateSalesReport renders the sales report over delivered orders in the
// given window. Revenue counts delivered orders only. The report is a PDF
// when the rendering engine is available and plain HTML otherwise; the
// returned content type says which.
func (is *InvoiceService) GenerateSalesReport(ctx context.Context, opts *structs.SalesReportOptions) ([]byte, string, error) {
	query := database.Query[tables.Order](is.db).
		Where("status", tables.OrderStatusDelivered).
		With("User").
		OrderBy("created_at", database.ASC)
	if opts.From != nil {
		query = query.WhereOp("created_at", ">=", *opts.From)
	}
	if opts.To != nil {
		query = query.WhereOp("created_at", "<=", *opts.To)
	}

	orders, err := query.All(ctx)
	if err != nil {
		return nil, "", lib.MapPgError(err)
	}

	currency := is.cfg.Site.DefaultCurrency
	data := salesReportData{
		SiteName:    is.cfg.Site.SiteName,
		Period:      reportPeriod(opts),
		GeneratedAt: time.Now(),
		OrderCount:  len(orders),
	}

	var revenue int64
	for _, order := range orders {
		revenue += order.TotalAmount

		customer := ""
		if order.User != nil {
			customer = order.User.Username
		}
		data.Rows = append(data.Rows, salesReportRow{
			OrderNumber: order.OrderNumber,
			Date:        order.CreatedAt.Format("2006-01-02"),
			Customer:    customer,
			Total:       formatCents(order.TotalAmount, currency),
		})
	}
	data.Revenue = formatCents(revenue, currency)

	var html bytes.Buffer
	if err := salesReportTemplate.Execute(&html, data); err != nil {
		is.logger.Error("Failed to render sales report template", gecho.Field("error", err))
		return nil, "", err
	}

	pdf, err := is.renderPDF(html.String())
	if err != nil {
		is.logger.Warn("Serving sales report as HTML, PDF engine unavailable", gecho.Field("error", err))
		return html.Bytes(), "text/html; charset=utf-8", nil
	}

	return pdf, "application/pdf", nil
}

func (is *InvoiceService) renderPDF(html string) ([]byte, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		is.logger.Error("wkhtmltopdf unavailable", gecho.Field("error", err))
		return nil, err
	}

	pdfg.AddPage(wkhtmltopdf.NewPageReader(strings.NewReader(html)))

	if err := pdfg.Create(); err != nil {
		is.logger.Error("PDF generation failed", gecho.Field("error", err))
		return nil, err
	}

	return pdfg.Bytes(), nil
}

func orderItemName(item *tables.OrderItem) string {
	if item.Variant != nil {
		if item.Variant.Product != nil && item.Variant.Name != "Default" {
			return item.Variant.Product.Name + " (" + item.Variant.Name + ")"
		}
		if item.Variant.Product != nil {
			return item.Variant.Product.Name
		}
		return item.Variant.Name
	}
	if item.Bundle != nil {
		return item.Bundle.Name + " (bundle)"
	}
	return "Item"
}

func reportPeriod(opts *structs.SalesReportOptions) string {
	switch {
	case opts.From != nil && opts.To != nil:
		return opts.From.Format("2006-01-02") + " to " + opts.To.Format("2006-01-02")
	case opts.From != nil:
		return "from " + opts.From.Format("2006-01-02")
	case opts.To != nil:
		return "until " + opts.To.Format("2006-01-02")
	default:
		return "all time"
	}
}
