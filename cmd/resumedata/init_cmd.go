package main

import (
	"resume-data-go/internal/config"
	"resume-data-go/internal/loader"
	"resume-data-go/internal/logger"
)

// handleInitCommand 在数据目录下生成一套示例文档，已存在的文件不覆盖
func handleInitCommand(cfg *config.Config) {
	if err := loader.CreateSampleDataFolder(cfg.DataFolder); err != nil {
		logger.Fatal().Err(err).Str("data_folder", cfg.DataFolder).Msg("生成示例数据目录失败")
	}
	logger.Info().Str("data_folder", cfg.DataFolder).Msg("示例数据目录已生成")
}

// handleSampleConfigCommand 生成工具自身的示例配置文件
func handleSampleConfigCommand() {
	const path = "config.yaml"
	if err := config.CreateSampleConfig(path); err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("生成示例配置文件失败")
	}
	logger.Info().Str("path", path).Msg("示例配置文件已生成")
}
