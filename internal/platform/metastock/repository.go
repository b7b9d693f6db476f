package metastock

import (
	"context"
	"fmt"
	"io"

	"metastock_backend/internal/domain/entity"
	"metastock_backend/internal/domain/repository"
)

// Files はMetastockディレクトリを直接読むSymbolRepository/CandleRepository実装です。
// カタログは構築済みのものを受け取り、ロウソク足は要求のたびにデータファイル
// から読み取ります。
type Files struct {
	catalog   *Catalog
	precision int // 価格カラムの小数点以下桁数
}

// Filesがリポジトリインターフェースを実装していることをコンパイル時に検証します。
var (
	_ repository.SymbolRepository = (*Files)(nil)
	_ repository.CandleRepository = (*Files)(nil)
)

// NewFiles は構築済みカタログからFilesリポジトリを生成します。
// precisionが負の場合はDefaultPrecisionを使います。
func NewFiles(catalog *Catalog, precision int) *Files {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return &Files{catalog: catalog, precision: precision}
}

// ListSymbols はカタログの全銘柄をファイル番号順に返します。
func (f *Files) ListSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return f.catalog.Symbols(), nil
}

// FindByCode は銘柄コードで1件検索します。
func (f *Files) FindByCode(ctx context.Context, code string) (entity.Symbol, error) {
	s, ok := f.catalog.ByCode(code)
	if !ok {
		return entity.Symbol{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, code)
	}
	return s, nil
}

// Find は指定コードの銘柄のロウソク足を新しい順に最大outputsize件返します。
func (f *Files) Find(ctx context.Context, code string, outputsize int) ([]entity.Candle, error) {
	sym, err := f.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	candles, err := ReadCandles(f.catalog.Dir(), sym)
	if err != nil {
		return nil, err
	}

	// データファイルは古い順なので、末尾から新しい順に並べ替える
	out := make([]entity.Candle, 0, len(candles))
	for i := len(candles) - 1; i >= 0; i-- {
		out = append(out, candles[i])
		if outputsize > 0 && len(out) == outputsize {
			break
		}
	}
	return out, nil
}

// Export は1銘柄のデータファイルをテキストに変換してwに書き出します。
func (f *Files) Export(ctx context.Context, sym entity.Symbol, w io.Writer) error {
	return ExportSymbol(f.catalog.Dir(), sym, w, f.precision)
}

// Candles は1銘柄の全ロウソク足を古い順に返します（アーカイブ用）。
func (f *Files) Candles(ctx context.Context, sym entity.Symbol) ([]entity.Candle, error) {
	return ReadCandles(f.catalog.Dir(), sym)
}
