// Package mail sends the new-order notification to the shop owner over SMTP.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/donfermin/bakery-checkout/internal/checkout/core/domain"
	"github.com/donfermin/bakery-checkout/internal/checkout/core/ports"
)

// Notifier emails the order summary from and to the shop owner's address,
// mirroring how the shop's Gmail account notifies itself.
type Notifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(host string, port int, user, pass, owner string) *Notifier {
	return &Notifier{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
		to:     owner,
	}
}

// Send renders and delivers the order summary. Callers treat failures as
// non-fatal; this method just reports them.
func (n *Notifier) Send(_ context.Context, vo domain.ValidatedOrder) error {
	subject, body, err := renderSummary(vo, time.Now())
	if err != nil {
		return fmt.Errorf("mail: render summary for %s: %w", vo.TransactionID, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("mail: send notification for %s: %w", vo.TransactionID, err)
	}
	return nil
}

var summaryTmpl = template.Must(template.New("summary").Parse(`<h1>Detalles del Pedido #{{.TransactionID}}</h1>
<p><strong>Cliente:</strong> {{.CustomerName}}</p>
<p><strong>Email:</strong> {{.CustomerEmail}}</p>
<p><strong>Método de Pago:</strong> {{.Method}}</p>
<p><strong>Monto Total:</strong> ${{.Total}}</p>
<h2>Productos:</h2>
<ul>
{{- range .Lines}}
    <li>{{.Quantity}} x {{.Label}}</li>
{{- end}}
</ul>
`))

type summaryData struct {
	TransactionID string
	CustomerName  string
	CustomerEmail string
	Method        string
	Total         string
	Lines         []summaryLine
}

type summaryLine struct {
	Quantity int
	Label    string
}

// renderSummary builds the subject and HTML body for the owner notification.
func renderSummary(vo domain.ValidatedOrder, now time.Time) (subject, body string, err error) {
	lines := make([]summaryLine, len(vo.Lines))
	for i, l := range vo.Lines {
		label := l.Name
		if label == "" {
			label = l.ProductID
		}
		lines[i] = summaryLine{Quantity: l.Quantity, Label: label}
	}

	data := summaryData{
		TransactionID: vo.TransactionID,
		CustomerName:  vo.Customer.Name,
		CustomerEmail: vo.Customer.Email,
		Method:        string(vo.PaymentMethod),
		Total:         vo.RecomputedTotal.StringFixed(2),
		Lines:         lines,
	}

	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}

	subject = fmt.Sprintf("NUEVO PEDIDO RECIBIDO: %s - %s", vo.Customer.Name, now.Format("02/01/2006"))
	return subject, buf.String(), nil
}
