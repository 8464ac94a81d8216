package main

import (
	"os"

	"github.com/rs/zerolog"

	"resume-data-go/internal/config"
	"resume-data-go/internal/loader"
	"resume-data-go/internal/logger"
	"resume-data-go/internal/validate"
)

// handleCheckCommand 校验数据目录及其中的三份文档。
// 有错误级别的发现时以退出码1结束。
func handleCheckCommand(cfg *config.Config) {
	folder, err := loader.ValidateDataFolder(cfg.DataFolder)
	if err != nil {
		logger.Fatal().Err(err).Str("data_folder", cfg.DataFolder).Msg("数据目录校验失败")
	}
	logger.Info().Str("data_folder", folder.Root).Msg("数据目录校验通过")

	failed := false

	// 简历文档
	resume, err := loader.LoadResume(folder.ResumePath, loader.WithStrict(cfg.Validation.Strict))
	if err != nil {
		logger.Fatal().Err(err).Msg("加载简历文档失败")
	}
	resumeReport := validate.ValidateResume(resume,
		validate.WithDefaultPhoneRegion(cfg.Validation.DefaultPhoneRegion))
	logReport(resumeReport)
	failed = failed || reportFailed(cfg, resumeReport)

	// 搜索偏好文档
	prefs, err := loader.LoadPreferences(folder.PreferencesPath, loader.WithStrict(cfg.Validation.Strict))
	if err != nil {
		logger.Fatal().Err(err).Msg("加载搜索偏好文档失败")
	}
	prefsReport := validate.ValidatePreferences(prefs)
	logReport(prefsReport)
	failed = failed || reportFailed(cfg, prefsReport)

	// 密钥文档
	secrets, err := loader.LoadSecrets(folder.SecretsPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("加载密钥文档失败")
	}
	secretsReport := validate.ValidateSecrets(secrets)
	logReport(secretsReport)
	failed = failed || reportFailed(cfg, secretsReport)

	if failed {
		logger.Error().Msg("数据目录校验未通过")
		os.Exit(1)
	}
	logger.Info().Msg("全部文档校验通过")
}

// logReport 把报告中的每条发现按级别写入日志
func logReport(report *validate.Report) {
	for _, f := range report.Findings {
		var event *zerolog.Event
		if f.Severity == validate.SeverityError {
			event = logger.Error()
		} else {
			event = logger.Warn()
		}
		event.
			Str("report_id", report.ReportID).
			Str("document", report.Document).
			Str("field", f.Field).
			Str("rule", f.Rule).
			Msg(f.Message)
	}
	logger.Info().
		Str("report_id", report.ReportID).
		Str("document", report.Document).
		Int("errors", report.ErrorCount()).
		Int("warnings", report.WarningCount()).
		Msg("文档校验完成")
}

// reportFailed 根据配置决定报告是否算作失败
func reportFailed(cfg *config.Config, report *validate.Report) bool {
	if report.HasErrors() {
		return true
	}
	return cfg.Validation.WarningsAsErrors && report.WarningCount() > 0
}
