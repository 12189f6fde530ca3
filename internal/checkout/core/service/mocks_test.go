package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/donfermin/bakery-checkout/internal/checkout/core/domain"
)

// stubCatalog implements ports.CatalogSource for testing.
type stubCatalog struct {
	catalog domain.Catalog
	err     error
	calls   int
}

func (s *stubCatalog) LoadCatalog(_ context.Context) (domain.Catalog, error) {
	s.calls++
	return s.catalog, s.err
}

// stubLedger implements ports.OrderLedger and captures appended records.
type stubLedger struct {
	records []domain.LedgerRecord
	err     error
}

func (s *stubLedger) AppendOrder(_ context.Context, rec domain.LedgerRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, rec)
	return nil
}

// stubNotifier implements ports.Notifier and captures sent orders.
type stubNotifier struct {
	sent []domain.ValidatedOrder
	err  error
}

func (s *stubNotifier) Send(_ context.Context, vo domain.ValidatedOrder) error {
	s.sent = append(s.sent, vo)
	return s.err
}

// stubGateway implements ports.PaymentGateway with a fixed outcome.
type stubGateway struct {
	txnID  string
	err    error
	calls  int
	amount decimal.Decimal
	token  string
}

func (s *stubGateway) Charge(_ context.Context, token string, amount decimal.Decimal) (string, error) {
	s.calls++
	s.token = token
	s.amount = amount
	return s.txnID, s.err
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// testCatalog is the shared pricing fixture: A at 1000.00, B at 500.00.
func testCatalog() domain.Catalog {
	return domain.Catalog{
		"A": {ProductID: "A", UnitPrice: dec("1000.00")},
		"B": {ProductID: "B", UnitPrice: dec("500.00")},
	}
}

func testOrder(total string, lines ...domain.CartLine) domain.Order {
	return domain.Order{
		Customer: domain.Customer{
			Name:  "Ana López",
			Email: "ana@example.com",
		},
		Lines:               lines,
		ClientReportedTotal: dec(total),
	}
}
