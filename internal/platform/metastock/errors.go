package metastock

import "errors"

var (
	// ErrMalformedIndex はインデックスファイル（MASTER/EMASTER/XMASTER）が
	// 途中で切れている等、構造的に読めない場合に返されます。
	ErrMalformedIndex = errors.New("metastock: malformed index file")

	// ErrMalformedDOP はDOPサイドカーの行からカラム名を抽出できない場合に返されます。
	ErrMalformedDOP = errors.New("metastock: malformed DOP file")

	// ErrFieldCountMismatch はDOPファイルのカラム数が銘柄のフィールド数と
	// 一致しない場合に返されます。該当銘柄のみの失敗として扱います。
	ErrFieldCountMismatch = errors.New("metastock: DOP column count does not match field count")

	// ErrUnsupportedFieldCount はDOPファイルがなく、フィールド数が7でも8でもない
	// 場合に返されます。デフォルトのカラムセットを適用できません。
	ErrUnsupportedFieldCount = errors.New("metastock: unsupported field count without DOP file")

	// ErrEncoding は固定幅の名前フィールドを指定エンコーディングでデコード
	// できない場合に返されます。エンコーディング指定の誤りを示すため、
	// 変換処理全体を中断すべきエラーです。
	ErrEncoding = errors.New("metastock: cannot decode name field with configured encoding")

	// ErrUnknownSymbol はカタログに存在しない銘柄コードを要求した場合に返されます。
	ErrUnknownSymbol = errors.New("metastock: unknown symbol")
)
