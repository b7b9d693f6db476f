// Package di provides dependency injection factories for creating application components.
package di

import (
	"metastock_backend/internal/platform/metastock"
)

// NewMarket builds a Metastock file-backed repository from environment configuration.
func NewMarket() (*metastock.Files, error) {
	cfg := metastock.LoadConfig()
	dec, err := metastock.NewTextDecoder(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	catalog, err := metastock.LoadCatalog(cfg.DataDir, dec, cfg.IncludeXMaster)
	if err != nil {
		return nil, err
	}
	return metastock.NewFiles(catalog, cfg.Precision), nil
}
