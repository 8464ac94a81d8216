package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"resume-data-go/internal/constants"
)

// ValidationConfig 校验行为配置
type ValidationConfig struct {
	// Strict 严格模式下文档中出现未知键会被视为错误
	Strict bool `yaml:"strict"`
	// WarningsAsErrors 把警告级别的发现也计入退出码
	WarningsAsErrors bool `yaml:"warnings_as_errors"`
	// DefaultPhoneRegion 当 phone_prefix 缺失时用于解析电话号码的地区码，例如 "US"
	DefaultPhoneRegion string `yaml:"default_phone_region"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json, pretty
	TimeFormat   string `yaml:"time_format"`   // 时间格式
	ReportCaller bool   `yaml:"report_caller"` // 是否报告调用位置
}

// Config 应用程序配置
type Config struct {
	// DataFolder 简历数据目录，包含三份YAML文档
	DataFolder string `yaml:"data_folder"`

	// Validation 校验行为配置
	Validation ValidationConfig `yaml:"validation"`

	// Logger 日志配置
	Logger LoggerConfig `yaml:"logger"`
}

// LoadConfig 从文件加载配置。configPath 为空时依次尝试常见位置，
// 都找不到则返回默认配置而不报错（工具在无配置文件时也应可用）。
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			filepath.Join(os.Getenv("HOME"), ".resume-data", "config.yaml"),
		}
		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}
		if configPath == "" {
			return createDefaultConfig(), nil
		}
	}

	if _, err := os.Stat(configPath); err != nil {
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

	applyDefaults(&config)

	// 从环境变量覆盖配置（如果存在）
	if envFolder := os.Getenv("RESUME_DATA_FOLDER"); envFolder != "" {
		config.DataFolder = envFolder
	}

	return &config, nil
}

// 补齐缺省值
func applyDefaults(config *Config) {
	if config.DataFolder == "" {
		config.DataFolder = constants.DefaultDataFolder
	}
	if config.Validation.DefaultPhoneRegion == "" {
		config.Validation.DefaultPhoneRegion = "US"
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
	if config.Logger.Format == "" {
		config.Logger.Format = "pretty"
	}
	if config.Logger.TimeFormat == "" {
		config.Logger.TimeFormat = "2006-01-02 15:04:05"
	}
}

// 创建一个默认配置
func createDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)

	if envFolder := os.Getenv("RESUME_DATA_FOLDER"); envFolder != "" {
		config.DataFolder = envFolder
	}

	return config
}

// CreateSampleConfig 创建一个示例配置文件
func CreateSampleConfig(filePath string) error {
	if _, err := os.Stat(filePath); err == nil {
		return fmt.Errorf("文件 '%s' 已存在，不会覆盖", filePath)
	}

	config := createDefaultConfig()

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("写入示例配置文件 '%s' 失败: %w", filePath, err)
	}

	return nil
}
