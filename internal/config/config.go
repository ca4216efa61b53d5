package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"resume-analyzer-go/internal/constants"
)

// Config 应用程序配置
type Config struct {
	// 服务器配置
	Server ServerConfig `yaml:"server"`

	// 日志配置
	Logger LoggerConfig `yaml:"logger"`

	// 文档解码配置
	Document DocumentConfig `yaml:"document"`

	// 分析器启发式阈值配置
	Analyzer AnalyzerConfig `yaml:"analyzer"`

	// 岗位匹配配置
	Matcher MatcherConfig `yaml:"matcher"`
}

// ServerConfig 服务器配置结构
type ServerConfig struct {
	Address        string `yaml:"address"`          // 监听地址，例如 ":8000"
	MaxUploadBytes int64  `yaml:"max_upload_bytes"` // 上传文件大小上限(字节)
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json, pretty
	TimeFormat   string `yaml:"time_format"`   // 时间格式
	ReportCaller bool   `yaml:"report_caller"` // 是否报告调用位置
}

// DocumentConfig 文档解码配置
type DocumentConfig struct {
	MaxPages   int `yaml:"max_pages"`    // PDF解码的最大页数
	MinTextLen int `yaml:"min_text_len"` // 解码结果的最小有效长度(字符)
}

// AnalyzerConfig 分析器阈值配置
// 所有数值都是经验值，保持与原始调参结果一致，仅允许通过配置替换
type AnalyzerConfig struct {
	MinInstitutionConfidence float64 `yaml:"min_institution_confidence"` // 机构候选保留阈值
	MinContextScore          float64 `yaml:"min_context_score"`          // 专有名词策略触发阈值
	InstitutionMinConfidence float64 `yaml:"institution_min_confidence"` // AllInstitutions 过滤阈值
	MaxSkills                int     `yaml:"max_skills"`                 // 技能数量上限
}

// MatcherConfig 岗位匹配配置
type MatcherConfig struct {
	MinMatchScore int `yaml:"min_match_score"` // 匹配结果的最低分数
	MaxMatches    int `yaml:"max_matches"`     // 匹配结果数量上限
}

// LoadConfig 从文件加载配置
// 未指定路径时在常见位置查找；文件不存在时（例如测试环境）回退到默认配置
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			filepath.Join(os.Getenv("HOME"), ".resume-analyzer", "config.yaml"),
		}
		if execPath, err := os.Executable(); err == nil {
			searchPaths = append(searchPaths, filepath.Join(filepath.Dir(execPath), "config.yaml"))
		}
		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}
		if configPath == "" {
			if inTestEnv() {
				return DefaultConfig(), nil
			}
			configPath = "config.yaml"
		}
	}

	if _, err := os.Stat(configPath); err != nil {
		if inTestEnv() {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("配置文件不存在: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 从环境变量覆盖配置（如果存在）
	if envAddr := os.Getenv("RESUME_SERVER_ADDRESS"); envAddr != "" {
		config.Server.Address = envAddr
	}
	if envLevel := os.Getenv("RESUME_LOG_LEVEL"); envLevel != "" {
		config.Logger.Level = envLevel
	}

	applyDefaults(&config)
	return &config, nil
}

// DefaultConfig 返回内置默认配置
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults 为缺失字段填充默认值
func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8000"
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = constants.MaxUploadBytes
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
	if cfg.Logger.Format == "" {
		cfg.Logger.Format = "json"
	}
	if cfg.Document.MaxPages == 0 {
		cfg.Document.MaxPages = constants.MaxDocumentPages
	}
	if cfg.Document.MinTextLen == 0 {
		cfg.Document.MinTextLen = constants.MinResumeTextLen
	}
	if cfg.Analyzer.MinInstitutionConfidence == 0 {
		cfg.Analyzer.MinInstitutionConfidence = constants.MinInstitutionConfidence
	}
	if cfg.Analyzer.MinContextScore == 0 {
		cfg.Analyzer.MinContextScore = constants.MinContextScore
	}
	if cfg.Analyzer.InstitutionMinConfidence == 0 {
		cfg.Analyzer.InstitutionMinConfidence = constants.AnalyzerInstitutionConfidence
	}
	if cfg.Analyzer.MaxSkills == 0 {
		cfg.Analyzer.MaxSkills = constants.MaxSkills
	}
	if cfg.Matcher.MinMatchScore == 0 {
		cfg.Matcher.MinMatchScore = constants.MinMatchScore
	}
	if cfg.Matcher.MaxMatches == 0 {
		cfg.Matcher.MaxMatches = constants.MaxJobMatches
	}
}

// inTestEnv 粗略判断是否在 go test 环境中运行
func inTestEnv() bool {
	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			return true
		}
	}
	return false
}
