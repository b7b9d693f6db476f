package repository

import (
	"context"
	"metastock_backend/internal/domain/entity"
)

// CandleRepository　はロウソク足の読み出しを抽象化します
type CandleRepository interface {
	// 指定コードの銘柄のロウソク足を新しい順に最大outputsize件返します。
	Find(ctx context.Context, code string, outputsize int) ([]entity.Candle, error)
}

// CandleStore はロウソク足の永続化先（アーカイブDBなど）を抽象化します。
type CandleStore interface {
	// (symbol, time) をユニークキーとしてUpsert
	UpsertBatch(ctx context.Context, candles []entity.Candle) error
}
