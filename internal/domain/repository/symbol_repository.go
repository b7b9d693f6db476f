package repository

import (
	"context"
	"metastock_backend/internal/domain/entity"
)

// SymbolRepository は銘柄カタログへのアクセスを抽象化します。
type SymbolRepository interface {
	// ListSymbols はカタログ内の全銘柄をファイル番号順に返します。
	ListSymbols(ctx context.Context) ([]entity.Symbol, error)

	// FindByCode は銘柄コードで1件検索します。
	FindByCode(ctx context.Context, code string) (entity.Symbol, error)
}

// SymbolStore は銘柄カタログの永続化先（アーカイブDBなど）を抽象化します。
type SymbolStore interface {
	// 銘柄コードをユニークキーとしてUpsert
	UpsertBatch(ctx context.Context, symbols []entity.Symbol) error
}
