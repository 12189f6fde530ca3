package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donfermin/bakery-checkout/internal/checkout/core/ports"
)

// simulatedGateway approves every charge. The payment token is accepted but
// never verified against a real processor; replace this implementation behind
// ports.PaymentGateway to integrate one.
type simulatedGateway struct{}

var _ ports.PaymentGateway = simulatedGateway{}

func NewSimulatedGateway() ports.PaymentGateway {
	return simulatedGateway{}
}

// Charge mints a per-process-unique transaction ID. The timestamp keeps the
// IDs roughly sortable; the UUID fragment makes collisions within the same
// millisecond a non-issue.
func (simulatedGateway) Charge(_ context.Context, _ string, _ decimal.Decimal) (string, error) {
	return fmt.Sprintf("TXN_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8]), nil
}
