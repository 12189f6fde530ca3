// Package sheets backs the catalog and the order ledger with a Google
// Spreadsheet, the shop's actual source of truth: one tab holds product
// prices, another accumulates finalized orders.
package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"github.com/donfermin/bakery-checkout/internal/checkout/core/domain"
	"github.com/donfermin/bakery-checkout/internal/checkout/core/ports"
)

// Store implements ports.CatalogSource and ports.OrderLedger over the
// Sheets API. The service handle is created once at startup and held for the
// process lifetime; every LoadCatalog call still reads the sheet fresh.
type Store struct {
	svc           *sheetsv4.Service
	spreadsheetID string
	catalogSheet  string
	ordersSheet   string
}

var (
	_ ports.CatalogSource = (*Store)(nil)
	_ ports.OrderLedger   = (*Store)(nil)
)

// Connect authenticates with the service-account credentials file and
// verifies the spreadsheet is reachable. Callers treat an error here as fatal:
// the process must not serve checkouts with a broken source of truth.
func Connect(ctx context.Context, spreadsheetID, credentialsPath, catalogSheet, ordersSheet string) (*Store, error) {
	svc, err := sheetsv4.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(sheetsv4.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: create client: %w", err)
	}

	meta, err := svc.Spreadsheets.Get(spreadsheetID).Fields("properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: reach spreadsheet %q: %w", spreadsheetID, err)
	}
	slog.Info("connected to spreadsheet", "title", meta.Properties.Title)

	return &Store{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		catalogSheet:  catalogSheet,
		ordersSheet:   ordersSheet,
	}, nil
}

// LoadCatalog reads the catalog tab (columns: idProducto, precioUnitario,
// header in row 1) into a fresh Catalog map.
func (s *Store) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	readRange := fmt.Sprintf("%s!A2:B", s.catalogSheet)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: read catalog tab %q: %w", s.catalogSheet, err)
	}

	catalog := make(domain.Catalog, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) < 2 {
			continue
		}
		id, _ := row[0].(string)
		if id == "" {
			continue
		}
		price, err := decimal.NewFromString(fmt.Sprint(row[1]))
		if err != nil {
			return nil, fmt.Errorf("sheets: product %q has non-numeric price %v: %w", id, row[1], err)
		}
		catalog[id] = domain.CatalogEntry{ProductID: id, UnitPrice: price}
	}
	return catalog, nil
}

// AppendOrder appends one row to the orders tab. The columns match the sheet
// header: fecha, idTransaccion, cliente, email, total, metodo, productos.
func (s *Store) AppendOrder(ctx context.Context, rec domain.LedgerRecord) error {
	row := []interface{}{
		rec.Timestamp.UTC().Format(time.RFC3339),
		rec.TransactionID,
		rec.CustomerName,
		rec.CustomerEmail,
		rec.Total.StringFixed(2),
		string(rec.PaymentMethod),
		rec.ProductsJSON,
	}

	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.ordersSheet+"!A1", &sheetsv4.ValueRange{
			Values: [][]interface{}{row},
		}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: append order %s: %w", rec.TransactionID, err)
	}

	slog.InfoContext(ctx, "order appended to spreadsheet", "transaction_id", rec.TransactionID)
	return nil
}
