// Package sqlite は変換済みロウソク足のアーカイブDB（SQLite）実装を提供します。
package sqlite

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"metastock_backend/internal/domain/entity"
	"metastock_backend/internal/domain/repository"
)

type candleSQLite struct {
	db *gorm.DB
}

var _ repository.CandleStore = (*candleSQLite)(nil)

// NewCandleStore は指定されたDB接続でcandleSQLiteストアの新しいインスタンスを生成します。
func NewCandleStore(db *gorm.DB) *candleSQLite {
	return &candleSQLite{db: db}
}

// CandleModel はcandlesテーブルの1行です。
type CandleModel struct {
	ID     uint      `gorm:"primaryKey"`
	Symbol string    `gorm:"size:32;not null;uniqueIndex:candle_sym_time,priority:1"`
	Time   time.Time `gorm:"not null;uniqueIndex:candle_sym_time,priority:2"`

	Open         float64 `gorm:"not null"`
	High         float64 `gorm:"not null"`
	Low          float64 `gorm:"not null"`
	Close        float64 `gorm:"not null"`
	Volume       int64   `gorm:"not null;default:0"`
	OpenInterest int64   `gorm:"not null;default:0"`
}

func (CandleModel) TableName() string {
	return "candles"
}

func toModel(e entity.Candle) CandleModel {
	return CandleModel{
		Symbol:       e.Symbol,
		Time:         e.Time,
		Open:         e.Open,
		High:         e.High,
		Low:          e.Low,
		Close:        e.Close,
		Volume:       e.Volume,
		OpenInterest: e.OpenInterest,
	}
}

// UpsertBatch は (symbol, time) をユニークキーとしてロウソク足を一括Upsertします。
func (r *candleSQLite) UpsertBatch(ctx context.Context, candles []entity.Candle) error {
	if len(candles) == 0 {
		return nil
	}
	ms := make([]CandleModel, 0, len(candles))
	for _, e := range candles {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "time"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume", "open_interest"}),
	}).Create(&ms).Error
}

// Find はアーカイブ済みロウソク足を新しい順に最大outputsize件返します。
func (r *candleSQLite) Find(ctx context.Context, code string, outputsize int) ([]entity.Candle, error) {
	var rows []CandleModel
	q := r.db.WithContext(ctx).
		Where("symbol = ?", code).
		Order("`time` DESC")
	if outputsize > 0 {
		q = q.Limit(outputsize)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Candle, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Candle{
			Symbol:       m.Symbol,
			Time:         m.Time,
			Open:         m.Open,
			High:         m.High,
			Low:          m.Low,
			Close:        m.Close,
			Volume:       m.Volume,
			OpenInterest: m.OpenInterest,
		})
	}
	return out, nil
}
