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

// MASTERインデックスのレコード構造。先頭2バイトがレコード数で、
// スロットiは (i+1)*53 バイト目から始まります。
const masterSlotSize = 53

// masterSlotUsed はスロット内で実際に読み取るバイト数です（残りはパディング）。
const masterSlotUsed = 50

// readMaster はMASTERインデックスの全スロットを読み取ります。
// ファイルが存在しない場合は0件を返し、エラーにはしません。
// 未使用スロット（ファイル番号0）もそのまま返し、カタログ側で捨てます。
func readMaster(dir string, dec *TextDecoder) ([]entity.Symbol, error) {
	data, err := os.ReadFile(filepath.Join(dir, "MASTER"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: MASTER header too short", ErrMalformedIndex)
	}

	count := int(binary.LittleEndian.Uint16(data[0:2]))
	symbols := make([]entity.Symbol, 0, count)
	for i := 0; i < count; i++ {
		off := (i + 1) * masterSlotSize
		if off+masterSlotUsed > len(data) {
			return nil, fmt.Errorf("%w: MASTER record %d is truncated", ErrMalformedIndex, i)
		}
		s, err := parseMasterSlot(data[off:off+masterSlotUsed], dec)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, s)
	}
	return symbols, nil
}

// parseMasterSlot は53バイトスロットの固定オフセットから1銘柄を組み立てます。
func parseMasterSlot(rec []byte, dec *TextDecoder) (entity.Symbol, error) {
	name, err := dec.paddedString(rec[7:23])
	if err != nil {
		return entity.Symbol{}, err
	}
	// 銘柄コードは常にASCII
	code, err := asciiDecoder.paddedString(rec[36:50])
	if err != nil {
		return entity.Symbol{}, err
	}
	firstDate := floatToDate(mbfToIEEE(rec[25:29]))
	lastDate := floatToDate(mbfToIEEE(rec[29:33]))

	return entity.Symbol{
		FileNumber:   uint16(rec[0]),
		RecordLength: rec[3],
		Fields:       rec[4],
		Name:         name,
		Code:         code,
		FirstDate:    firstDate.Time(),
		LastDate:     lastDate.Time(),
		TimeFrame:    rec[33],
		Ext:          ".DAT",
	}, nil
}
