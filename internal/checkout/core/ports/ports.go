// Package ports defines the interfaces the checkout core depends on.
// The core never talks to Google Sheets, SQLite or SMTP directly, so every
// collaborator can be swapped for a test double.
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/donfermin/bakery-checkout/internal/checkout/core/domain"
)

// CatalogSource is the read side of the spreadsheet-backed store. It must be
// consulted fresh on every validation; implementations do not cache.
type CatalogSource interface {
	LoadCatalog(ctx context.Context) (domain.Catalog, error)
}

// OrderLedger appends finalized orders to the durable, append-only ledger.
// A failed append is fatal for the whole checkout.
type OrderLedger interface {
	AppendOrder(ctx context.Context, rec domain.LedgerRecord) error
}

// Notifier delivers the order summary to the shop owner. Best-effort: callers
// log failures and move on.
type Notifier interface {
	Send(ctx context.Context, order domain.ValidatedOrder) error
}

// PaymentGateway captures a payment and returns the transaction ID.
// The shipped implementation approves unconditionally; a real processor can
// be substituted here without touching the validator or finalizer.
type PaymentGateway interface {
	Charge(ctx context.Context, token string, amount decimal.Decimal) (string, error)
}

// PaymentProcessor is the top-level checkout use case the HTTP layer calls.
type PaymentProcessor interface {
	Process(ctx context.Context, order domain.Order, token string) (domain.Receipt, error)
}
