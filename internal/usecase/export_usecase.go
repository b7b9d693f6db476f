package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"metastock_backend/internal/domain/entity"
	"metastock_backend/internal/domain/repository"
)

// MarketData は変換元のMetastockデータへのアクセスを定義します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketData interface {
	// ListSymbols はカタログの全銘柄を返します。
	ListSymbols(ctx context.Context) ([]entity.Symbol, error)
	// Export は1銘柄のデータファイルをテキストに変換してwに書き出します。
	Export(ctx context.Context, sym entity.Symbol, w io.Writer) error
	// Candles は1銘柄の全ロウソク足を古い順に返します。
	Candles(ctx context.Context, sym entity.Symbol) ([]entity.Candle, error)
}

// ExportUsecase はMetastockデータをテキストファイルに一括変換し、
// 必要に応じてアーカイブDBへ永続化するユースケースです。
type ExportUsecase struct {
	market MarketData
	store  repository.CandleStore // nilの場合はアーカイブしない
	outDir string
}

// NewExportUsecase は新しい ExportUsecase を作成します。
func NewExportUsecase(market MarketData, store repository.CandleStore, outDir string) *ExportUsecase {
	return &ExportUsecase{market: market, store: store, outDir: outDir}
}

// ExportAll は全銘柄（allが真）または指定コードの銘柄を変換します。
// 銘柄単位の失敗はログに残して次の銘柄へ進み、一括変換を中断しません。
// 変換に成功した銘柄数を返します。
func (eu *ExportUsecase) ExportAll(ctx context.Context, all bool, codes []string) (int, error) {
	symbols, err := eu.market.ListSymbols(ctx)
	if err != nil {
		return 0, err
	}

	want := make(map[string]bool, len(codes))
	for _, c := range codes {
		want[c] = true
	}

	exported := 0
	for _, s := range symbols {
		if !all && !want[s.Code] {
			continue
		}
		slog.Info("converting symbol", "symbol", s.Code, "file", s.DataFileName())
		if err := eu.exportOne(ctx, s); err != nil {
			// 1銘柄の失敗で一括変換全体を止めない
			slog.Error("failed to convert symbol", "symbol", s.Code, "error", err)
			continue
		}
		exported++
	}
	return exported, nil
}

// exportOne は1銘柄を<コード>.TXTに書き出し、storeがあればロウソク足を
// アーカイブDBへUpsertします。
func (eu *ExportUsecase) exportOne(ctx context.Context, sym entity.Symbol) (err error) {
	path := filepath.Join(eu.outDir, sym.Code+".TXT")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := eu.market.Export(ctx, sym, f); err != nil {
		return fmt.Errorf("export %s: %w", sym.Code, err)
	}

	if eu.store == nil {
		return nil
	}
	candles, err := eu.market.Candles(ctx, sym)
	if err != nil {
		return fmt.Errorf("read candles %s: %w", sym.Code, err)
	}
	return eu.store.UpsertBatch(ctx, candles)
}
