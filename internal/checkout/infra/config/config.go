// Package config loads process configuration from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config is the full environment surface of the checkout server.
// STORE_DRIVER selects the backing store: "sheets" in production, "sqlite"
// for local development and tests.
type Config struct {
	Port        string `envconfig:"PORT" default:"3000"`
	StoreDriver string `envconfig:"STORE_DRIVER" default:"sheets"`

	GoogleSheetID         string `envconfig:"GOOGLE_SHEET_ID"`
	GoogleCredentialsPath string `envconfig:"GOOGLE_CREDENTIALS_PATH"`
	CatalogSheetName      string `envconfig:"CATALOG_SHEET_NAME" default:"Catálogo"`
	OrdersSheetName       string `envconfig:"ORDERS_SHEET_NAME" default:"Pedidos"`

	SQLitePath string `envconfig:"SQLITE_PATH" default:"./data/panaderia.db"`

	SMTPHost string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser string `envconfig:"SMTP_USER"`
	SMTPPass string `envconfig:"EMAIL_PASS"`

	// OwnerEmail receives (and sends) the new-order notifications.
	OwnerEmail string `envconfig:"DON_FERMIN_EMAIL"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
