package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ":8000", cfg.Server.Address)
	assert.Equal(t, int64(10*1024*1024), cfg.Server.MaxUploadBytes, "默认上传上限应为10MB")
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 10, cfg.Document.MaxPages)
	assert.Equal(t, 50, cfg.Document.MinTextLen)
	assert.Equal(t, 0.3, cfg.Analyzer.MinInstitutionConfidence)
	assert.Equal(t, 0.5, cfg.Analyzer.MinContextScore)
	assert.Equal(t, 0.4, cfg.Analyzer.InstitutionMinConfidence)
	assert.Equal(t, 20, cfg.Analyzer.MaxSkills)
	assert.Equal(t, 40, cfg.Matcher.MinMatchScore)
	assert.Equal(t, 15, cfg.Matcher.MaxMatches)
}

func TestLoadConfigFromFile(t *testing.T) {
	cfg, err := LoadConfig("config.yaml")
	require.NoError(t, err, "随包提供的配置文件应能加载")

	assert.Equal(t, ":8000", cfg.Server.Address)
	assert.Equal(t, "pretty", cfg.Logger.Format)
	assert.Equal(t, 0.4, cfg.Analyzer.InstitutionMinConfidence)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("RESUME_SERVER_ADDRESS", ":9999")
	t.Setenv("RESUME_LOG_LEVEL", "debug")

	cfg, err := LoadConfig("config.yaml")
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Address, "环境变量应覆盖文件中的监听地址")
	assert.Equal(t, "debug", cfg.Logger.Level, "环境变量应覆盖文件中的日志级别")
}

func TestLoadConfigMissingFileInTests(t *testing.T) {
	cfg, err := LoadConfig("does-not-exist.yaml")
	require.NoError(t, err, "测试环境中缺失配置文件应回退到默认配置")
	assert.Equal(t, ":8000", cfg.Server.Address)
}

func TestApplyDefaultsPreservesExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Address = ":7777"
	cfg.Analyzer.MaxSkills = 5
	applyDefaults(cfg)

	assert.Equal(t, ":7777", cfg.Server.Address, "已设置的字段不应被默认值覆盖")
	assert.Equal(t, 5, cfg.Analyzer.MaxSkills)
	assert.Equal(t, 40, cfg.Matcher.MinMatchScore, "缺失字段应被补默认值")
}
