package sqlite

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"metastock_backend/internal/domain/entity"
	"metastock_backend/internal/domain/repository"
)

type symbolSQLite struct {
	db *gorm.DB
}

var _ repository.SymbolStore = (*symbolSQLite)(nil)

// NewSymbolStore は指定されたDB接続でsymbolSQLiteストアの新しいインスタンスを生成します。
func NewSymbolStore(db *gorm.DB) *symbolSQLite {
	return &symbolSQLite{db: db}
}

// SymbolModel はsymbolsテーブルの1行です。
type SymbolModel struct {
	ID         uint   `gorm:"primaryKey"`
	Code       string `gorm:"size:32;not null;uniqueIndex"`
	Name       string `gorm:"size:64;not null"`
	FileNumber uint16 `gorm:"not null"`
	Fields     uint8  `gorm:"not null"`
	TimeFrame  string `gorm:"size:1;not null"`
	FirstDate  time.Time
	LastDate   time.Time
	Ext        string `gorm:"size:8;not null"`
}

func (SymbolModel) TableName() string {
	return "symbols"
}

// UpsertBatch は銘柄コードをユニークキーとしてカタログを一括Upsertします。
func (r *symbolSQLite) UpsertBatch(ctx context.Context, symbols []entity.Symbol) error {
	if len(symbols) == 0 {
		return nil
	}
	ms := make([]SymbolModel, 0, len(symbols))
	for _, s := range symbols {
		ms = append(ms, SymbolModel{
			Code:       s.Code,
			Name:       s.Name,
			FileNumber: s.FileNumber,
			Fields:     s.Fields,
			TimeFrame:  string(s.TimeFrame),
			FirstDate:  s.FirstDate,
			LastDate:   s.LastDate,
			Ext:        s.Ext,
		})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "file_number", "fields", "time_frame", "first_date", "last_date", "ext"}),
	}).Create(&ms).Error
}
