package metastock

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"metastock_backend/internal/domain/entity"
)

// dopPattern はDOPファイルの1トークン（例: `"DATE",4,0`）からカラム名を
// 取り出します。
var dopPattern = regexp.MustCompile(`(?i)"(.+)",.+`)

// loadColumnNames は銘柄のカラム名の並びを決定します。
// F<n>.DOPサイドカーがあればそこから読み、カラム数が銘柄のフィールド数と
// 一致することを検証します。なければフィールド数に応じたデフォルトの
// 7列/8列セットを使います。どちらも満たせない場合はその銘柄のみの失敗です。
func loadColumnNames(dir string, sym entity.Symbol) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(dir, sym.DopFileName()))
	if errors.Is(err, fs.ErrNotExist) {
		return defaultColumns(sym.Fields)
	}
	if err != nil {
		return nil, err
	}

	tokens := strings.Fields(string(data))
	if len(tokens) != int(sym.Fields) {
		return nil, fmt.Errorf("%w: DOP has %d columns, symbol has %d fields",
			ErrFieldCountMismatch, len(tokens), sym.Fields)
	}
	names := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		m := dopPattern.FindStringSubmatch(tok)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedDOP, tok)
		}
		names = append(names, m[1])
	}
	return names, nil
}

// datFile は読み取り準備の済んだ1銘柄分のデータファイルです。
type datFile struct {
	sym   entity.Symbol
	names []string // カラム名（DOPまたはデフォルトの並び）
	data  []byte   // ヘッダを除いたレコード列
	count int      // レコード数（last_rec - 1）
}

// openDat はF<n>.DAT（または.MWD）を開き、ヘッダを検証します。
//
// ヘッダは2バイトのmax_recsと2バイトのlast_recの後に、(fields-1)*4 バイトの
// パディングが続きます。このパディングは経験的に必要なことが分かっている
// だけで、構造上の意味は未解明です。
func openDat(dir string, sym entity.Symbol) (*datFile, error) {
	names, err := loadColumnNames(dir, sym)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, sym.DataFileName()))
	if err != nil {
		return nil, err
	}

	headerSize := 4 + (len(names)-1)*columnWidth
	if len(data) < headerSize {
		return nil, fmt.Errorf("metastock: %s: header is truncated", sym.DataFileName())
	}
	lastRec := int(binary.LittleEndian.Uint16(data[2:4]))
	count := lastRec - 1
	if count < 0 {
		count = 0
	}

	body := data[headerSize:]
	if need := count * len(names) * columnWidth; len(body) < need {
		return nil, fmt.Errorf("metastock: %s: expected %d records, file is truncated",
			sym.DataFileName(), count)
	}

	return &datFile{sym: sym, names: names, data: body, count: count}, nil
}

// field はレコードrec・カラムcolの4バイトを返します。
func (d *datFile) field(rec, col int) []byte {
	off := (rec*len(d.names) + col) * columnWidth
	return d.data[off : off+columnWidth]
}

// ExportSymbol は1銘柄のデータファイルをテキストに変換してwに書き出します。
//
// 1行目は `"Name"` に続けて認識できたカラムの表示名を引用符付きで並べた
// ヘッダ行、以降は銘柄コードを先頭にカンマ区切りで各カラム値を並べた
// データ行です。未知のカラムは4バイト読み飛ばすだけで値は出力しません。
func ExportSymbol(dir string, sym entity.Symbol, w io.Writer, precision int) error {
	d, err := openDat(dir, sym)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(`"Name"`)
	cols := make([]*column, len(d.names))
	for i, name := range d.names {
		if c, ok := knownColumns[name]; ok {
			cols[i] = &c
			fmt.Fprintf(bw, `,"%s"`, c.label)
		}
	}
	bw.WriteByte('\n')

	for r := 0; r < d.count; r++ {
		bw.WriteString(sym.Code)
		for i, c := range cols {
			if c == nil {
				// 未知カラム。位置合わせのため読み飛ばすのみ。
				continue
			}
			bw.WriteByte(',')
			bw.WriteString(c.format(d.field(r, i), precision))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadCandles は1銘柄のデータファイルを型付きのロウソク足として読み取ります。
// APIやアーカイブDBへの出力用で、テキスト変換（ExportSymbol）と同じ
// カラム決定ロジックを使います。
func ReadCandles(dir string, sym entity.Symbol) ([]entity.Candle, error) {
	d, err := openDat(dir, sym)
	if err != nil {
		return nil, err
	}

	candles := make([]entity.Candle, 0, d.count)
	for r := 0; r < d.count; r++ {
		var (
			c     = entity.Candle{Symbol: sym.Code}
			date  msDate
			clock msClock
		)
		for i, name := range d.names {
			b := d.field(r, i)
			switch name {
			case "DATE":
				date = floatToDate(mbfToIEEE(b))
			case "TIME":
				clock = floatToClock(mbfToIEEE(b))
			case "OPEN":
				c.Open = float64(mbfToIEEE(b))
			case "HIGH":
				c.High = float64(mbfToIEEE(b))
			case "LOW":
				c.Low = float64(mbfToIEEE(b))
			case "CLOSE":
				c.Close = float64(mbfToIEEE(b))
			case "VOL":
				c.Volume = int64(mbfToIEEE(b))
			case "OI":
				c.OpenInterest = int64(mbfToIEEE(b))
			}
		}
		t := date.Time()
		c.Time = t.Add(time.Duration(clock.hour)*time.Hour + time.Duration(clock.minute)*time.Minute)
		candles = append(candles, c)
	}
	return candles, nil
}
