package httpx

import "github.com/shopspring/decimal"

// Wire types keep the Spanish field names of the original storefront API so
// the existing frontend keeps working unchanged.

type paymentRequest struct {
	Pedido    *orderDTO `json:"pedido"`
	TokenPago string    `json:"tokenPago"`
}

type orderDTO struct {
	Cliente    customerDTO     `json:"cliente"`
	Carrito    []cartLineDTO   `json:"carrito"`
	MontoTotal decimal.Decimal `json:"montoTotal"`
}

type customerDTO struct {
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Notas     string `json:"notas,omitempty"`
}

type cartLineDTO struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre,omitempty"`
	Cantidad int    `json:"cantidad"`
}

type paymentResponse struct {
	IDTransaccion string `json:"idTransaccion"`
	Estado        string `json:"estado"`
	Mensaje       string `json:"mensaje"`
}

type errorResponse struct {
	Error string `json:"error"`
}
