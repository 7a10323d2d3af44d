// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/order"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateInvoice generates a PDF invoice for an order
func (s *Service) GenerateInvoice(o *order.Order) (*bytes.Buffer, error) {
	data := InvoiceData{
		InvoiceNumber: fmt.Sprintf("INV-%s", o.OrderNumber),
		InvoiceDate:   time.Now().Format("January 2, 2006"),
		Order:         o,
		StatusLabel:   o.Status.DisplayName(),
		PaymentLabel:  o.PaymentType.DisplayName(),
		Company: CompanyInfo{
			Name:    s.config.Invoice.CompanyName,
			Address: s.config.Invoice.CompanyAddress,
			Email:   s.config.Invoice.CompanyEmail,
			Website: s.config.Invoice.CompanyWebsite,
		},
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data InvoiceData) (string, error) {
	tmpl := template.Must(template.New("invoice").Parse(invoiceTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// InvoiceData represents the data passed to the invoice template
type InvoiceData struct {
	InvoiceNumber string       `json:"invoice_number"`
	InvoiceDate   string       `json:"invoice_date"`
	Order         *order.Order `json:"order"`
	StatusLabel   string       `json:"status_label"`
	PaymentLabel  string       `json:"payment_label"`
	Company       CompanyInfo  `json:"company"`
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// Invoice HTML template
const invoiceTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Invoice {{.InvoiceNumber}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .company-info {
            flex: 1;
        }
        .invoice-info {
            text-align: right;
            flex: 1;
        }
        .invoice-title {
            font-size: 28px;
            font-weight: bold;
            color: #2563eb;
            margin-bottom: 10px;
        }
        .invoice-details {
            margin-bottom: 30px;
        }
        .invoice-details table {
            width: 100%;
        }
        .invoice-details td {
            padding: 5px 0;
            vertical-align: top;
        }
        .invoice-details .label {
            font-weight: bold;
            width: 150px;
        }
        .shipping-info {
            margin-bottom: 30px;
        }
        .section-title {
            font-size: 16px;
            font-weight: bold;
            margin-bottom: 10px;
            color: #374151;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .items-table th,
        .items-table td {
            border: 1px solid #ddd;
            padding: 12px 8px;
            text-align: left;
        }
        .items-table th {
            background-color: #f8f9fa;
            font-weight: bold;
        }
        .items-table .qty-col,
        .items-table .price-col,
        .items-table .total-col {
            text-align: right;
            width: 80px;
        }
        .totals {
            float: right;
            width: 300px;
        }
        .totals table {
            width: 100%;
            border-collapse: collapse;
        }
        .totals td {
            padding: 8px;
            border-bottom: 1px solid #eee;
        }
        .totals .label {
            text-align: right;
            font-weight: bold;
        }
        .totals .amount {
            text-align: right;
            width: 100px;
        }
        .total-row {
            font-size: 18px;
            font-weight: bold;
            border-top: 2px solid #333 !important;
        }
        .footer {
            margin-top: 50px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
            color: #666;
            font-size: 12px;
        }
        .status-badge {
            display: inline-block;
            padding: 4px 8px;
            border-radius: 4px;
            font-size: 12px;
            font-weight: bold;
            text-transform: uppercase;
            background-color: #fef3c7;
            color: #92400e;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="company-info">
            <h1>{{.Company.Name}}</h1>
            <p>{{.Company.Address}}</p>
            <p>Email: {{.Company.Email}}</p>
            <p>{{.Company.Website}}</p>
        </div>
        <div class="invoice-info">
            <div class="invoice-title">INVOICE</div>
            <p><strong>Invoice #:</strong> {{.InvoiceNumber}}</p>
            <p><strong>Invoice Date:</strong> {{.InvoiceDate}}</p>
            <p><strong>Order #:</strong> {{.Order.OrderNumber}}</p>
        </div>
    </div>

    <div class="invoice-details">
        <table>
            <tr>
                <td class="label">Order Date:</td>
                <td>{{.Order.CreatedAt.Format "January 2, 2006"}}</td>
                <td class="label" style="text-align: right;">Order Status:</td>
                <td style="text-align: right;">
                    <span class="status-badge">{{.StatusLabel}}</span>
                </td>
            </tr>
            <tr>
                <td class="label">Payment Method:</td>
                <td>{{.PaymentLabel}}{{if .Order.MaskedCardNumber}} ({{.Order.MaskedCardNumber}}){{end}}</td>
                {{if .Order.EstimatedDelivery}}
                <td class="label" style="text-align: right;">Estimated Delivery:</td>
                <td style="text-align: right;">{{.Order.EstimatedDelivery.Format "January 2, 2006"}}</td>
                {{end}}
            </tr>
        </table>
    </div>

    <div class="shipping-info">
        <div class="section-title">Ship To:</div>
        <p><strong>{{.Order.ShippingAddress.FullName}}</strong></p>
        <p>{{.Order.ShippingAddress.AddressLine1}}</p>
        {{if .Order.ShippingAddress.AddressLine2}}<p>{{.Order.ShippingAddress.AddressLine2}}</p>{{end}}
        <p>{{.Order.ShippingAddress.City}}, {{.Order.ShippingAddress.State}} {{.Order.ShippingAddress.ZipCode}}</p>
        <p>{{.Order.ShippingAddress.Country}}</p>
        {{if .Order.ShippingAddress.PhoneNumber}}<p>Phone: {{.Order.ShippingAddress.PhoneNumber}}</p>{{end}}
    </div>

    <table class="items-table">
        <thead>
            <tr>
                <th>Item</th>
                <th class="qty-col">Qty</th>
                <th class="price-col">Price</th>
                <th class="total-col">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Order.Items}}
            <tr>
                <td>
                    <strong>{{.ProductName}}</strong>
                    {{if .SelectedSize}}<br><small>Size: {{.SelectedSize}}</small>{{end}}
                    {{if .SelectedColor}}<br><small>Color: {{.SelectedColor}}</small>{{end}}
                </td>
                <td class="qty-col">{{.Quantity}}</td>
                <td class="price-col">${{.Price.StringFixed 2}}</td>
                <td class="total-col">${{.TotalPrice.StringFixed 2}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <table>
            <tr>
                <td class="label">Subtotal:</td>
                <td class="amount">${{.Order.Subtotal.StringFixed 2}}</td>
            </tr>
            <tr>
                <td class="label">Shipping:</td>
                <td class="amount">${{.Order.ShippingCost.StringFixed 2}}</td>
            </tr>
            <tr>
                <td class="label">Tax:</td>
                <td class="amount">${{.Order.Tax.StringFixed 2}}</td>
            </tr>
            <tr class="total-row">
                <td class="label">Total:</td>
                <td class="amount">${{.Order.Total.StringFixed 2}}</td>
            </tr>
        </table>
    </div>

    <div style="clear: both;"></div>

    <div class="footer">
        <p>Thank you for your order!</p>
        <p>If you have any questions about this invoice, please contact us at {{.Company.Email}}</p>
    </div>
</body>
</html>
`
