package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/donfermin/bakery-checkout/internal/checkout/core/domain"
	"github.com/donfermin/bakery-checkout/internal/checkout/core/ports"
)

// Finalizer notifies the shop owner and appends the order to the ledger.
//
// The two steps are deliberately asymmetric: a lost email must not block a
// sale, so notification failures are logged and swallowed, while a failed
// ledger append aborts the whole checkout. There is no rollback of the email
// if the append fails; the owner may receive a notification for an order that
// was never durably recorded.
type Finalizer struct {
	notifier ports.Notifier
	ledger   ports.OrderLedger
	now      func() time.Time
}

func NewFinalizer(notifier ports.Notifier, ledger ports.OrderLedger) *Finalizer {
	return &Finalizer{
		notifier: notifier,
		ledger:   ledger,
		now:      time.Now,
	}
}

// Finalize attempts the owner notification, then durably records the order.
func (f *Finalizer) Finalize(ctx context.Context, vo domain.ValidatedOrder) (domain.Receipt, error) {
	if err := f.notifier.Send(ctx, vo); err != nil {
		slog.ErrorContext(ctx, "order notification failed",
			"transaction_id", vo.TransactionID,
			"error", err,
		)
	}

	rec := domain.NewLedgerRecord(vo, f.now())
	if err := f.ledger.AppendOrder(ctx, rec); err != nil {
		return domain.Receipt{}, fmt.Errorf("append order %s to ledger: %w", vo.TransactionID, err)
	}

	slog.InfoContext(ctx, "order recorded",
		"transaction_id", vo.TransactionID,
		"total", vo.RecomputedTotal.StringFixed(2),
	)

	return domain.Receipt{
		TransactionID: vo.TransactionID,
		Status:        domain.StatusApproved,
		Message:       "Pago procesado y pedido registrado.",
	}, nil
}
