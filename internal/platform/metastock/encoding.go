package metastock

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// TextDecoder は固定幅の名前フィールド（NUL/スペースでパディング）を
// 指定の文字エンコーディングでデコードします。銘柄コードは常にASCIIですが、
// 銘柄名はデータ提供元のコードページ（cp1250等）であることがあります。
type TextDecoder struct {
	name string
	enc  encoding.Encoding // nilはASCII（7bitのみ許容）
}

// charmaps は指定可能なエンコーディング名の対応表です。
var charmaps = map[string]encoding.Encoding{
	"cp1250":       charmap.Windows1250,
	"windows-1250": charmap.Windows1250,
	"cp1251":       charmap.Windows1251,
	"windows-1251": charmap.Windows1251,
	"cp1252":       charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"cp1254":       charmap.Windows1254,
	"windows-1254": charmap.Windows1254,
	"cp1256":       charmap.Windows1256,
	"windows-1256": charmap.Windows1256,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-2":   charmap.ISO8859_2,
	"cp850":        charmap.CodePage850,
	"cp852":        charmap.CodePage852,
}

// NewTextDecoder はエンコーディング名からデコーダを生成します。
// 空文字列と"ascii"はASCIIとして扱います。未対応の名前はエラーです。
func NewTextDecoder(name string) (*TextDecoder, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || key == "ascii" {
		return &TextDecoder{name: "ascii"}, nil
	}
	enc, ok := charmaps[key]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return &TextDecoder{name: key, enc: enc}, nil
}

// Name は正規化済みのエンコーディング名を返します。
func (d *TextDecoder) Name() string {
	return d.name
}

// paddedString は最初のNUL以降を切り捨て、エンコーディングでデコードし、
// 末尾のスペースを除去します。デコードできないバイトはErrEncodingです。
// エンコーディング指定の誤りを示すため、構造エラーとは区別して伝搬します。
func (d *TextDecoder) paddedString(b []byte) (string, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if d.enc == nil {
		for _, c := range b {
			if c >= 0x80 {
				return "", fmt.Errorf("%w: %q is not ascii", ErrEncoding, b)
			}
		}
		return strings.TrimRight(string(b), " "), nil
	}
	s, err := d.enc.NewDecoder().Bytes(b)
	if err != nil || bytes.ContainsRune(s, utf8.RuneError) {
		return "", fmt.Errorf("%w: %q (encoding %s)", ErrEncoding, b, d.name)
	}
	return strings.TrimRight(string(s), " "), nil
}

// asciiDecoder は銘柄コード用の固定ASCIIデコーダです。
var asciiDecoder = &TextDecoder{name: "ascii"}
