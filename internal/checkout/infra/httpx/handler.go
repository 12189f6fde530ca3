// Package httpx exposes the checkout use case over HTTP.
package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/donfermin/bakery-checkout/internal/checkout/core/domain"
	"github.com/donfermin/bakery-checkout/internal/checkout/core/ports"
)

// Handler handles incoming HTTP requests for the checkout flow.
type Handler struct {
	processor ports.PaymentProcessor
}

func NewHandler(processor ports.PaymentProcessor) *Handler {
	return &Handler{processor: processor}
}

// ProcessPayment receives the checkout payload, parses it at the boundary and
// delegates to the payment processor. Malformed or incomplete bodies are
// rejected with a fixed 400 before any store is touched.
func (h *Handler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrMissingInput.Error())
		return
	}

	order, ok := parseOrder(req)
	if !ok {
		writeError(w, http.StatusBadRequest, domain.ErrMissingInput.Error())
		return
	}

	receipt, err := h.processor.Process(r.Context(), order, req.TokenPago)
	if err != nil {
		status := http.StatusInternalServerError
		if domain.IsClientFault(err) {
			status = http.StatusBadRequest
		}
		slog.ErrorContext(r.Context(), "payment processing failed",
			"status", status,
			"error", err,
		)
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, paymentResponse{
		IDTransaccion: receipt.TransactionID,
		Estado:        receipt.Status,
		Mensaje:       receipt.Message,
	})
}

// Health is a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseOrder validates the request shape and builds the domain order.
// Pricing is not checked here; only that the payload is structurally usable.
func parseOrder(req paymentRequest) (domain.Order, bool) {
	if req.Pedido == nil || req.TokenPago == "" {
		return domain.Order{}, false
	}
	p := req.Pedido
	if p.Cliente.Nombre == "" || p.Cliente.Email == "" || len(p.Carrito) == 0 {
		return domain.Order{}, false
	}

	lines := make([]domain.CartLine, 0, len(p.Carrito))
	for _, it := range p.Carrito {
		if it.ID == "" || it.Cantidad < 1 {
			return domain.Order{}, false
		}
		lines = append(lines, domain.CartLine{
			ProductID: it.ID,
			Name:      it.Nombre,
			Quantity:  it.Cantidad,
		})
	}

	return domain.Order{
		Customer: domain.Customer{
			Name:    p.Cliente.Nombre,
			Email:   p.Cliente.Email,
			Phone:   p.Cliente.Telefono,
			Address: p.Cliente.Direccion,
			Notes:   p.Cliente.Notas,
		},
		Lines:               lines,
		ClientReportedTotal: p.MontoTotal,
	}, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
