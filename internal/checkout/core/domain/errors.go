package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// clientFault marks errors caused by the submitted order rather than by this
// service or its dependencies. The HTTP layer uses the marker to choose 400
// over 500 without inspecting error text.
type clientFault interface {
	ClientFault() bool
}

// IsClientFault reports whether err (or anything it wraps) was caused by the
// client's request.
func IsClientFault(err error) bool {
	var cf clientFault
	return errors.As(err, &cf) && cf.ClientFault()
}

type missingInputError struct{}

func (missingInputError) Error() string {
	return "Datos de pedido o token de pago faltantes."
}

func (missingInputError) ClientFault() bool { return true }

// ErrMissingInput is returned when required top-level request fields are
// absent or malformed. Raised at the HTTP boundary before any store access.
var ErrMissingInput error = missingInputError{}

// UnknownProductError means a submitted line references a product that is not
// in the current catalog snapshot.
type UnknownProductError struct {
	ProductID string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("Producto ID %s no encontrado en el catálogo.", e.ProductID)
}

func (e *UnknownProductError) ClientFault() bool { return true }

// AmountMismatchError means the client-reported total does not equal the
// recomputed total at 2-decimal precision. This is the anti-fraud gate.
type AmountMismatchError struct {
	Reported   decimal.Decimal
	Recomputed decimal.Decimal
}

func (e *AmountMismatchError) Error() string {
	return "Error de validación de monto: Los precios no coinciden."
}

func (e *AmountMismatchError) ClientFault() bool { return true }
