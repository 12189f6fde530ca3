package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donfermin/bakery-checkout/internal/checkout/core/domain"
)

func validatedOrder() domain.ValidatedOrder {
	return domain.ValidatedOrder{
		Order: testOrder("2500.00",
			domain.CartLine{ProductID: "A", Name: "Pan de Campo", Quantity: 2},
			domain.CartLine{ProductID: "B", Quantity: 1},
		),
		RecomputedTotal: dec("2500.00"),
		TransactionID:   "TXN_1712000000000_ab12cd34",
		PaymentMethod:   domain.PaymentMethodCard,
	}
}

func TestFinalize_WritesLedgerRecord(t *testing.T) {
	notifier := &stubNotifier{}
	ledger := &stubLedger{}
	f := NewFinalizer(notifier, ledger)

	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	f.now = func() time.Time { return fixed }

	receipt, err := f.Finalize(context.Background(), validatedOrder())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, receipt.Status)
	assert.Equal(t, "TXN_1712000000000_ab12cd34", receipt.TransactionID)

	require.Len(t, ledger.records, 1)
	rec := ledger.records[0]
	assert.Equal(t, fixed, rec.Timestamp)
	assert.Equal(t, "Ana López", rec.CustomerName)
	assert.Equal(t, "ana@example.com", rec.CustomerEmail)
	assert.Equal(t, domain.PaymentMethodCard, rec.PaymentMethod)
	assert.Equal(t, "2500.00", rec.Total.StringFixed(2))
	assert.JSONEq(t,
		`[{"id":"A","nombre":"Pan de Campo","cantidad":2},{"id":"B","cantidad":1}]`,
		rec.ProductsJSON,
	)
}

func TestFinalize_NotifierFailureDoesNotBlockLedger(t *testing.T) {
	notifier := &stubNotifier{err: assert.AnError}
	ledger := &stubLedger{}
	f := NewFinalizer(notifier, ledger)

	receipt, err := f.Finalize(context.Background(), validatedOrder())

	require.NoError(t, err)
	assert.NotEmpty(t, receipt.TransactionID)
	assert.Len(t, ledger.records, 1, "the sale must be recorded even if the email is lost")
}

func TestFinalize_LedgerFailurePropagates(t *testing.T) {
	notifier := &stubNotifier{}
	ledger := &stubLedger{err: assert.AnError}
	f := NewFinalizer(notifier, ledger)

	_, err := f.Finalize(context.Background(), validatedOrder())

	require.Error(t, err)
	assert.False(t, domain.IsClientFault(err))
	// Notification was still attempted first; there is no rollback of it.
	assert.Len(t, notifier.sent, 1)
}
