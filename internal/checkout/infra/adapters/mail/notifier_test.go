package mail

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donfermin/bakery-checkout/internal/checkout/core/domain"
)

func TestRenderSummary(t *testing.T) {
	vo := domain.ValidatedOrder{
		Order: domain.Order{
			Customer: domain.Customer{Name: "Ana López", Email: "ana@example.com"},
			Lines: []domain.CartLine{
				{ProductID: "PAN_DE_CAMPO", Name: "Pan de Campo Artesanal", Quantity: 2},
				{ProductID: "CHIPAS_X250G", Quantity: 1},
			},
		},
		RecomputedTotal: decimal.RequireFromString("10900.00"),
		TransactionID:   "TXN_1712000000000_ab12cd34",
		PaymentMethod:   domain.PaymentMethodCard,
	}

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	subject, body, err := renderSummary(vo, now)
	require.NoError(t, err)

	assert.Equal(t, "NUEVO PEDIDO RECIBIDO: Ana López - 14/03/2026", subject)

	assert.Contains(t, body, "Pedido #TXN_1712000000000_ab12cd34")
	assert.Contains(t, body, "Ana López")
	assert.Contains(t, body, "ana@example.com")
	assert.Contains(t, body, "Tarjeta")
	assert.Contains(t, body, "$10900.00")
	assert.Contains(t, body, "2 x Pan de Campo Artesanal")
	// Lines without a display name fall back to the product ID.
	assert.Contains(t, body, "1 x CHIPAS_X250G")
}

func TestRenderSummary_EscapesHTML(t *testing.T) {
	vo := domain.ValidatedOrder{
		Order: domain.Order{
			Customer: domain.Customer{Name: "<script>alert(1)</script>", Email: "x@example.com"},
			Lines:    []domain.CartLine{{ProductID: "A", Quantity: 1}},
		},
		RecomputedTotal: decimal.RequireFromString("1.00"),
		TransactionID:   "TXN_1",
		PaymentMethod:   domain.PaymentMethodCard,
	}

	_, body, err := renderSummary(vo, time.Now())
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}
