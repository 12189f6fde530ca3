// Package service implements the checkout use case: validate against the
// catalog, capture the (simulated) payment, notify the owner, record the
// order. A strict linear sequence with no retries; each checkout request is
// handled independently.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/donfermin/bakery-checkout/internal/checkout/core/domain"
	"github.com/donfermin/bakery-checkout/internal/checkout/core/ports"
)

// Processor orchestrates a checkout end to end.
type Processor struct {
	validator *Validator
	gateway   ports.PaymentGateway
	finalizer *Finalizer
}

var _ ports.PaymentProcessor = (*Processor)(nil)

func NewProcessor(validator *Validator, gateway ports.PaymentGateway, finalizer *Finalizer) *Processor {
	return &Processor{
		validator: validator,
		gateway:   gateway,
		finalizer: finalizer,
	}
}

// Process runs validation, payment capture and finalization in sequence.
// Validation failures are client faults; gateway and ledger failures are not.
func (p *Processor) Process(ctx context.Context, order domain.Order, token string) (domain.Receipt, error) {
	vo, err := p.validator.Validate(ctx, order)
	if err != nil {
		return domain.Receipt{}, err
	}

	txnID, err := p.gateway.Charge(ctx, token, vo.RecomputedTotal)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("charge payment: %w", err)
	}
	vo.TransactionID = txnID
	vo.PaymentMethod = domain.PaymentMethodCard

	slog.InfoContext(ctx, "payment approved",
		"transaction_id", txnID,
		"customer", vo.Customer.Email,
		"total", vo.RecomputedTotal.StringFixed(2),
	)

	return p.finalizer.Finalize(ctx, vo)
}
