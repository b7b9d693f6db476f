package metastock

import (
	"os"
	"strconv"
)

// Config はMetastockディレクトリ読み取りの設定です。
type Config struct {
	DataDir        string // MASTER/EMASTER/XMASTERを含むディレクトリ
	Encoding       string // 銘柄名のコードページ（空ならASCII）
	IncludeXMaster bool   // XMASTERの銘柄もカタログに含めるか
	Precision      int    // テキスト出力の小数点以下桁数
}

// LoadConfig は環境変数からMetastock設定を読み込みます。
func LoadConfig() Config {
	cfg := Config{
		DataDir:   os.Getenv("MS_DATA_DIR"),
		Encoding:  os.Getenv("MS_ENCODING"),
		Precision: DefaultPrecision,
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
	if v := os.Getenv("MS_INCLUDE_XMASTER"); v == "1" || v == "true" {
		cfg.IncludeXMaster = true
	}
	if v := os.Getenv("MS_PRECISION"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p >= 0 {
			cfg.Precision = p
		}
	}
	return cfg
}
