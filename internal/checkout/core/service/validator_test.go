package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donfermin/bakery-checkout/internal/checkout/core/domain"
)

func TestValidate_RecomputesTotalFromCatalog(t *testing.T) {
	catalog := &stubCatalog{catalog: testCatalog()}
	v := NewValidator(catalog)

	order := testOrder("2500.00",
		domain.CartLine{ProductID: "A", Quantity: 2},
		domain.CartLine{ProductID: "B", Quantity: 1},
	)

	vo, err := v.Validate(context.Background(), order)

	require.NoError(t, err)
	assert.True(t, vo.RecomputedTotal.Equal(dec("2500.00")),
		"recomputed total is %s", vo.RecomputedTotal)
	assert.Empty(t, vo.TransactionID, "transaction id is minted by the gateway, not the validator")
}

func TestValidate_AmountMismatch(t *testing.T) {
	catalog := &stubCatalog{catalog: testCatalog()}
	v := NewValidator(catalog)

	order := testOrder("2400.00",
		domain.CartLine{ProductID: "A", Quantity: 2},
		domain.CartLine{ProductID: "B", Quantity: 1},
	)

	_, err := v.Validate(context.Background(), order)

	var mismatch *domain.AmountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.True(t, mismatch.Recomputed.Equal(dec("2500.00")))
	assert.True(t, mismatch.Reported.Equal(dec("2400.00")))
	assert.True(t, domain.IsClientFault(err))
}

func TestValidate_UnknownProduct(t *testing.T) {
	catalog := &stubCatalog{catalog: testCatalog()}
	v := NewValidator(catalog)

	// Total is irrelevant: the unknown product must be reported first.
	order := testOrder("0.00", domain.CartLine{ProductID: "C", Quantity: 1})

	_, err := v.Validate(context.Background(), order)

	var unknown *domain.UnknownProductError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "C", unknown.ProductID)
	assert.True(t, domain.IsClientFault(err))
	assert.Contains(t, err.Error(), "Producto ID C")
}

func TestValidate_IsIdempotentForFixedCatalog(t *testing.T) {
	catalog := &stubCatalog{catalog: testCatalog()}
	v := NewValidator(catalog)

	order := testOrder("2500.00",
		domain.CartLine{ProductID: "A", Quantity: 2},
		domain.CartLine{ProductID: "B", Quantity: 1},
	)

	first, err1 := v.Validate(context.Background(), order)
	second, err2 := v.Validate(context.Background(), order)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, first.RecomputedTotal.Equal(second.RecomputedTotal))
	// The catalog is re-read every call: no caching, ever.
	assert.Equal(t, 2, catalog.calls)
}

func TestValidate_RoundsToTwoDecimals(t *testing.T) {
	catalog := &stubCatalog{catalog: domain.Catalog{
		"X": {ProductID: "X", UnitPrice: dec("0.335")},
	}}
	v := NewValidator(catalog)

	// 3 × 0.335 = 1.005, which rounds to 1.01 for the comparison.
	order := testOrder("1.01", domain.CartLine{ProductID: "X", Quantity: 3})

	vo, err := v.Validate(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, "1.01", vo.RecomputedTotal.StringFixed(2))
}

func TestValidate_CatalogUnavailableIsServerFault(t *testing.T) {
	catalog := &stubCatalog{err: errors.New("spreadsheet unreachable")}
	v := NewValidator(catalog)

	order := testOrder("2500.00", domain.CartLine{ProductID: "A", Quantity: 2})

	_, err := v.Validate(context.Background(), order)

	require.Error(t, err)
	assert.False(t, domain.IsClientFault(err))
	assert.Contains(t, err.Error(), "load catalog")
}
