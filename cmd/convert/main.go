package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"metastock_backend/internal/domain/repository"
	"metastock_backend/internal/platform/db"
	"metastock_backend/internal/platform/metastock"
	sqliteadapters "metastock_backend/internal/platform/sqlite"
	"metastock_backend/internal/usecase"
)

func main() {
	var (
		dataDir   = flag.String("d", ".", "Metastockデータのディレクトリ")
		outDir    = flag.String("o", ".", "TXT出力先ディレクトリ")
		list      = flag.Bool("l", false, "銘柄一覧を表示して終了")
		all       = flag.Bool("a", false, "全銘柄を変換")
		precision = flag.Int("p", -1, "価格の小数点以下桁数（負ならデフォルト）")
		encoding  = flag.String("e", "", "銘柄名のコードページ（例: cp1250）")
		xmaster   = flag.Bool("x", false, "XMASTERの銘柄もカタログに含める")
		dbPath    = flag.String("db", "", "アーカイブ先SQLiteファイル（空なら保存しない）")
	)
	flag.Parse()

	dec, err := metastock.NewTextDecoder(*encoding)
	if err != nil {
		log.Fatal(err)
	}
	catalog, err := metastock.LoadCatalog(*dataDir, dec, *xmaster)
	if err != nil {
		log.Fatal("failed to load catalog:", err)
	}
	market := metastock.NewFiles(catalog, *precision)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *list {
		symbols, err := market.ListSymbols(ctx)
		if err != nil {
			log.Fatal(err)
		}
		for _, s := range symbols {
			fmt.Printf("%-6d %-16s %s\n", s.FileNumber, s.Code, s.Name)
		}
		return
	}

	codes := flag.Args()
	if !*all && len(codes) == 0 {
		fmt.Fprintln(os.Stderr, "usage: convert [flags] CODE...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var store repository.CandleStore
	if *dbPath != "" {
		gdb := db.OpenDB(*dbPath)
		store = sqliteadapters.NewCandleStore(gdb)

		// アーカイブDBにはカタログも保存する
		if err := sqliteadapters.NewSymbolStore(gdb).UpsertBatch(ctx, catalog.Symbols()); err != nil {
			log.Fatal("failed to archive catalog:", err)
		}
	}

	uc := usecase.NewExportUsecase(market, store, *outDir)
	n, err := uc.ExportAll(ctx, *all, codes)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("converted %d symbols", n)
}
