// Package domain holds the checkout domain model.
//
// Money is always a shopspring decimal, never a float: the whole point of the
// server-side validation is an exact 2-decimal comparison between what the
// client claims and what the catalog says, and binary floats cannot be
// trusted for that.
package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod labels how an order was paid.
type PaymentMethod string

// PaymentMethodCard is the only method the simulated gateway supports.
// The Spanish value is what the shop owner sees in the ledger and the email.
const PaymentMethodCard PaymentMethod = "Tarjeta"

// StatusApproved is the wire value for a successful payment.
const StatusApproved = "aprobado"

// CatalogEntry is one row of the catalog tab: a product and its current price.
type CatalogEntry struct {
	ProductID string
	UnitPrice decimal.Decimal
}

// Catalog maps product IDs to their authoritative entries. A Catalog is
// rebuilt from the store on every validation; it is never cached.
type Catalog map[string]CatalogEntry

// CartLine is a client-submitted order line. Only ProductID and Quantity
// matter for pricing; Name is carried for display in the owner notification
// and is never used to derive money.
type CartLine struct {
	ProductID string
	Name      string
	Quantity  int
}

// Customer identifies who placed the order.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// Order is the untrusted checkout payload. ClientReportedTotal is advisory:
// it is only ever compared against the recomputed total, never persisted.
type Order struct {
	Customer            Customer
	Lines               []CartLine
	ClientReportedTotal decimal.Decimal
}

// ValidatedOrder is an Order that passed the catalog and amount checks.
// RecomputedTotal is derived solely from catalog prices and quantities.
// TransactionID and PaymentMethod are filled in by the payment gateway.
type ValidatedOrder struct {
	Order
	RecomputedTotal decimal.Decimal
	TransactionID   string
	PaymentMethod   PaymentMethod
}

// Receipt confirms a finalized order back to the client.
type Receipt struct {
	TransactionID string
	Status        string
	Message       string
}

// LedgerRecord is the flattened projection of a ValidatedOrder written to the
// order ledger. Columns mirror the "Pedidos" sheet: fecha, idTransaccion,
// cliente, email, total, metodo, productos. Written once, never updated.
type LedgerRecord struct {
	Timestamp     time.Time
	TransactionID string
	CustomerName  string
	CustomerEmail string
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	ProductsJSON  string
}

type ledgerLine struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre,omitempty"`
	Cantidad int    `json:"cantidad"`
}

// NewLedgerRecord flattens a validated order into its ledger projection.
// The line items are serialized into a single JSON cell, as the original
// ledger format does.
func NewLedgerRecord(vo ValidatedOrder, now time.Time) LedgerRecord {
	lines := make([]ledgerLine, len(vo.Lines))
	for i, l := range vo.Lines {
		lines[i] = ledgerLine{ID: l.ProductID, Nombre: l.Name, Cantidad: l.Quantity}
	}
	// Marshalling a slice of plain structs cannot fail.
	products, _ := json.Marshal(lines)

	return LedgerRecord{
		Timestamp:     now,
		TransactionID: vo.TransactionID,
		CustomerName:  vo.Customer.Name,
		CustomerEmail: vo.Customer.Email,
		Total:         vo.RecomputedTotal,
		PaymentMethod: vo.PaymentMethod,
		ProductsJSON:  string(products),
	}
}
