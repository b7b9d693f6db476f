package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"metastock_backend/internal/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&CandleModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func testCandle(symbol string, tm time.Time, close float64) entity.Candle {
	return entity.Candle{
		Symbol: symbol,
		Time:   tm,
		Open:   250.5,
		High:   260,
		Low:    240.25,
		Close:  close,
		Volume: 123456,
	}
}

func TestNewCandleStore(t *testing.T) {
	db := setupTestDB(t)

	store := NewCandleStore(db)

	assert.NotNil(t, store, "store is nil")
	assert.NotNil(t, store.db, "database connection is nil")
}

func TestCandleSQLite_UpsertBatch(t *testing.T) {
	t.Parallel()

	baseTime := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("insert new candles", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		store := NewCandleStore(db)

		err := store.UpsertBatch(ctx, []entity.Candle{
			testCandle("MSFT", baseTime, 255.75),
			testCandle("MSFT", baseTime.AddDate(0, 0, 1), 265.25),
		})
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&CandleModel{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})

	t.Run("upsert updates existing row", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		store := NewCandleStore(db)

		require.NoError(t, store.UpsertBatch(ctx, []entity.Candle{testCandle("MSFT", baseTime, 255.75)}))
		// 同じ(symbol, time)で再投入すると更新される
		require.NoError(t, store.UpsertBatch(ctx, []entity.Candle{testCandle("MSFT", baseTime, 999.5)}))

		var rows []CandleModel
		require.NoError(t, db.Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, 999.5, rows[0].Close)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		store := NewCandleStore(db)

		require.NoError(t, store.UpsertBatch(ctx, nil))

		var count int64
		require.NoError(t, db.Model(&CandleModel{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestCandleSQLite_Find(t *testing.T) {
	t.Parallel()

	baseTime := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	db := setupTestDB(t)
	store := NewCandleStore(db)
	require.NoError(t, store.UpsertBatch(ctx, []entity.Candle{
		testCandle("MSFT", baseTime, 255.75),
		testCandle("MSFT", baseTime.AddDate(0, 0, 1), 265.25),
		testCandle("MSFT", baseTime.AddDate(0, 0, 2), 275.5),
		testCandle("AAPL", baseTime, 100.5),
	}))

	t.Run("newest first with limit", func(t *testing.T) {
		candles, err := store.Find(ctx, "MSFT", 2)
		require.NoError(t, err)
		require.Len(t, candles, 2)
		assert.Equal(t, 275.5, candles[0].Close)
		assert.Equal(t, 265.25, candles[1].Close)
	})

	t.Run("filters by symbol", func(t *testing.T) {
		candles, err := store.Find(ctx, "AAPL", 10)
		require.NoError(t, err)
		require.Len(t, candles, 1)
		assert.Equal(t, "AAPL", candles[0].Symbol)
	})

	t.Run("unknown symbol returns empty", func(t *testing.T) {
		candles, err := store.Find(ctx, "NONE", 10)
		require.NoError(t, err)
		assert.Empty(t, candles)
	})
}
