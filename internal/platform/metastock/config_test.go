package metastock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("MS_DATA_DIR", "")
	t.Setenv("MS_ENCODING", "")
	t.Setenv("MS_INCLUDE_XMASTER", "")
	t.Setenv("MS_PRECISION", "")

	cfg := LoadConfig()
	assert.Equal(t, ".", cfg.DataDir)
	assert.Empty(t, cfg.Encoding)
	assert.False(t, cfg.IncludeXMaster)
	assert.Equal(t, DefaultPrecision, cfg.Precision)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("MS_DATA_DIR", "/data/metastock")
	t.Setenv("MS_ENCODING", "cp1250")
	t.Setenv("MS_INCLUDE_XMASTER", "1")
	t.Setenv("MS_PRECISION", "4")

	cfg := LoadConfig()
	assert.Equal(t, "/data/metastock", cfg.DataDir)
	assert.Equal(t, "cp1250", cfg.Encoding)
	assert.True(t, cfg.IncludeXMaster)
	assert.Equal(t, 4, cfg.Precision)
}
