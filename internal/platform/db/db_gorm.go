package db

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	sqliteadapters "metastock_backend/internal/platform/sqlite"
)

// OpenDB は指定パスのSQLiteアーカイブDBを開き、必要なテーブルを
// マイグレーションします。ローカル変換ツールなので組み込みDBを使います。
func OpenDB(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB open failed: %v", err)
	}

	// マイグレーション（Candle, Symbol）
	if err := db.AutoMigrate(&sqliteadapters.CandleModel{}, &sqliteadapters.SymbolModel{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
