package metastock

import (
	"sort"

	"metastock_backend/internal/domain/entity"
)

// Catalog はMASTER/EMASTERから構築した、ファイル番号をキーとする銘柄カタログです。
// 構築後は読み取り専用です。
type Catalog struct {
	dir      string
	byNumber map[uint16]entity.Symbol
	numbers  []uint16 // ファイル番号の昇順（一覧出力を決定的にするため）
}

// LoadCatalog は指定ディレクトリのインデックスファイルからカタログを構築します。
//
// まずMASTERの全銘柄（ファイル番号>0）を登録し、次にEMASTERを重ねます。
// EMASTERのエントリは、ファイル番号>0かつ名前が空でなくかつMASTER側に同じ
// キーが存在する場合に限り、表示名だけを上書きします（他のフィールドは
// MASTERが正）。MASTERに対応キーがないEMASTERエントリは黙って捨てます。
//
// includeXMaster が真の場合はXMASTERの銘柄（ファイル番号>0）も追加で
// 登録します。元実装で意図的に無効化されていた統合のため、デフォルトでは
// 参照しません。
func LoadCatalog(dir string, dec *TextDecoder, includeXMaster bool) (*Catalog, error) {
	c := &Catalog{dir: dir, byNumber: map[uint16]entity.Symbol{}}

	masters, err := readMaster(dir, dec)
	if err != nil {
		return nil, err
	}
	for _, s := range masters {
		if s.FileNumber > 0 {
			c.byNumber[s.FileNumber] = s
		}
	}

	emasters, err := readEMaster(dir, dec)
	if err != nil {
		return nil, err
	}
	for _, s := range emasters {
		if s.FileNumber == 0 || s.Name == "" {
			continue
		}
		if existing, ok := c.byNumber[s.FileNumber]; ok {
			existing.Name = s.Name
			c.byNumber[s.FileNumber] = existing
		}
	}

	if includeXMaster {
		xmasters, err := readXMaster(dir, dec)
		if err != nil {
			return nil, err
		}
		for _, s := range xmasters {
			if s.FileNumber > 0 {
				c.byNumber[s.FileNumber] = s
			}
		}
	}

	c.numbers = make([]uint16, 0, len(c.byNumber))
	for n := range c.byNumber {
		c.numbers = append(c.numbers, n)
	}
	sort.Slice(c.numbers, func(i, j int) bool { return c.numbers[i] < c.numbers[j] })

	return c, nil
}

// Dir はカタログの元になったディレクトリを返します。
func (c *Catalog) Dir() string {
	return c.dir
}

// Len は登録済み銘柄数を返します。
func (c *Catalog) Len() int {
	return len(c.numbers)
}

// Symbols は全銘柄をファイル番号の昇順で返します。
func (c *Catalog) Symbols() []entity.Symbol {
	out := make([]entity.Symbol, 0, len(c.numbers))
	for _, n := range c.numbers {
		out = append(out, c.byNumber[n])
	}
	return out
}

// ByCode は銘柄コードで検索します。見つからない場合は false を返します。
func (c *Catalog) ByCode(code string) (entity.Symbol, bool) {
	for _, n := range c.numbers {
		if s := c.byNumber[n]; s.Code == code {
			return s, true
		}
	}
	return entity.Symbol{}, false
}
