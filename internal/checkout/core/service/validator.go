package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/donfermin/bakery-checkout/internal/checkout/core/domain"
	"github.com/donfermin/bakery-checkout/internal/checkout/core/ports"
)

// Validator recomputes an order's total against a fresh catalog snapshot and
// rejects unknown products and under- or over-reported totals.
type Validator struct {
	catalog ports.CatalogSource
}

func NewValidator(catalog ports.CatalogSource) *Validator {
	return &Validator{catalog: catalog}
}

// Validate re-derives the order total from catalog prices and quantities and
// compares it to the client-reported total at 2-decimal precision. The
// returned ValidatedOrder carries the recomputed total; transaction fields
// are filled in later by the payment gateway.
//
// Validate has no side effects beyond the catalog read, so calling it twice
// against an unchanged catalog yields the same decision.
func (v *Validator) Validate(ctx context.Context, order domain.Order) (domain.ValidatedOrder, error) {
	catalog, err := v.catalog.LoadCatalog(ctx)
	if err != nil {
		return domain.ValidatedOrder{}, fmt.Errorf("load catalog: %w", err)
	}

	recomputed := decimal.Zero
	for _, line := range order.Lines {
		entry, ok := catalog[line.ProductID]
		if !ok {
			return domain.ValidatedOrder{}, &domain.UnknownProductError{ProductID: line.ProductID}
		}
		recomputed = recomputed.Add(entry.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	recomputed = recomputed.Round(2)
	if !recomputed.Equal(order.ClientReportedTotal.Round(2)) {
		return domain.ValidatedOrder{}, &domain.AmountMismatchError{
			Reported:   order.ClientReportedTotal,
			Recomputed: recomputed,
		}
	}

	return domain.ValidatedOrder{Order: order, RecomputedTotal: recomputed}, nil
}
