package metastock

import "strconv"

// columnKind はカラムのデコード＋整形方法を表す閉じた集合です。
// カラムの種類は固定かつ少数なので、ポリモーフィズムではなくタグ付きの
// 定数で表現します。
type columnKind int

const (
	colDate columnKind = iota
	colTime
	colFloat
	colInt
)

// columnWidth はDATファイルの1カラムのバイト数です。未知のカラムも
// この幅だけ読み飛ばして、レコード内の位置合わせを保ちます。
const columnWidth = 4

// DefaultPrecision は価格カラム（OPEN/HIGH/LOW/CLOSE）の小数点以下桁数の
// デフォルト値です。
const DefaultPrecision = 2

// column は既知カラム1つ分のデコード契約です。
type column struct {
	label string // 出力ヘッダに使う表示名
	kind  columnKind
}

// knownColumns はDOPファイル（またはデフォルトセット）のカラム名トークンを
// デコード方法に対応付ける読み取り専用の対応表です。ここにない名前は
// 未知カラムとして扱い、値は出力しません。
var knownColumns = map[string]column{
	"DATE":  {label: "Date", kind: colDate},
	"TIME":  {label: "Time", kind: colTime},
	"OPEN":  {label: "Open", kind: colFloat},
	"HIGH":  {label: "High", kind: colFloat},
	"LOW":   {label: "Low", kind: colFloat},
	"CLOSE": {label: "Close", kind: colFloat},
	"VOL":   {label: "Volume", kind: colInt},
	"OI":    {label: "Oi", kind: colInt},
}

// format は4バイトのカラム値をデコードし、テキスト1フィールドに整形します。
func (c column) format(b []byte, precision int) string {
	switch c.kind {
	case colDate:
		return floatToDate(mbfToIEEE(b)).String()
	case colTime:
		return floatToClock(mbfToIEEE(b)).String()
	case colFloat:
		return strconv.FormatFloat(float64(mbfToIEEE(b)), 'f', precision, 64)
	default: // colInt
		return strconv.FormatInt(int64(mbfToIEEE(b)), 10)
	}
}

// defaultColumns はDOPファイルがない場合のカラム名の並びを返します。
// 7列と8列（TIMEがDATEの直後に入る）のみをサポートします。
func defaultColumns(fields uint8) ([]string, error) {
	switch fields {
	case 7:
		return []string{"DATE", "OPEN", "HIGH", "LOW", "CLOSE", "VOL", "OI"}, nil
	case 8:
		return []string{"DATE", "TIME", "OPEN", "HIGH", "LOW", "CLOSE", "VOL", "OI"}, nil
	default:
		return nil, ErrUnsupportedFieldCount
	}
}
