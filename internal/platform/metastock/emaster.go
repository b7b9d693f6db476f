package metastock

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"metastock_backend/internal/domain/entity"
)

// EMASTER（拡張インデックス）のレコード構造。ヘッダはレコード数2バイト＋
// 最終ファイル番号2バイト（本実装では未使用）。スロットは192バイト固定で、
// MASTERとはフィールドの並びとパディング幅が異なります。
const emasterSlotSize = 192

// emasterSlotUsed はスロット内で実際に読み取るバイト数です。
const emasterSlotUsed = 76

// readEMaster はEMASTERインデックスの全スロットを読み取ります。
// ファイルが存在しない場合は0件を返します。ファイル番号0のスロットは
// その時点で読み取りを打ち切り、空のSymbolを返します（呼び出し側で破棄）。
func readEMaster(dir string, dec *TextDecoder) ([]entity.Symbol, error) {
	data, err := os.ReadFile(filepath.Join(dir, "EMASTER"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: EMASTER header too short", ErrMalformedIndex)
	}

	count := int(binary.LittleEndian.Uint16(data[0:2]))
	// data[2:4] は「最終ファイル番号」だが本実装では使用しない

	symbols := make([]entity.Symbol, 0, count)
	for i := 0; i < count; i++ {
		off := (i + 1) * emasterSlotSize
		if off+emasterSlotUsed > len(data) {
			return nil, fmt.Errorf("%w: EMASTER record %d is truncated", ErrMalformedIndex, i)
		}
		s, err := parseEMasterSlot(data[off:off+emasterSlotUsed], dec)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, s)
	}
	return symbols, nil
}

// parseEMasterSlot は192バイトスロットの固定オフセットから1銘柄を組み立てます。
func parseEMasterSlot(rec []byte, dec *TextDecoder) (entity.Symbol, error) {
	fileNumber := uint16(rec[2])
	if fileNumber == 0 {
		// 未使用スロット。残りのフィールドは読まない。
		return entity.Symbol{}, nil
	}

	code, err := asciiDecoder.paddedString(rec[11:25])
	if err != nil {
		return entity.Symbol{}, err
	}
	name, err := dec.paddedString(rec[32:48])
	if err != nil {
		return entity.Symbol{}, err
	}
	firstDate := floatToDate(mbfToIEEE(rec[64:68]))
	lastDate := floatToDate(mbfToIEEE(rec[72:76]))

	return entity.Symbol{
		FileNumber: fileNumber,
		Fields:     rec[6],
		Code:       code,
		Name:       name,
		FirstDate:  firstDate.Time(),
		LastDate:   lastDate.Time(),
		TimeFrame:  rec[60],
		Ext:        ".DAT",
	}, nil
}
