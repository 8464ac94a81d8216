package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"resume-data-go/internal/config"
	"resume-data-go/internal/logger"
)

// 命令行参数定义
var (
	configPath = pflag.StringP("config", "c", "", "Path to config file")
	dataFolder = pflag.StringP("data-folder", "d", "", "Path to the resume data folder (overrides config)")
	strict     = pflag.Bool("strict", false, "Reject unknown keys in the documents")
	command    = pflag.String("cmd", "check", "执行的命令: check=校验数据目录, init=生成示例数据目录, sample-config=生成示例配置文件")
)

func main() {
	pflag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	// 命令行覆盖配置
	if *dataFolder != "" {
		cfg.DataFolder = *dataFolder
	}
	if *strict {
		cfg.Validation.Strict = true
	}

	switch *command {
	case "check":
		handleCheckCommand(cfg)
	case "init":
		handleInitCommand(cfg)
	case "sample-config":
		handleSampleConfigCommand()
	default:
		fmt.Fprintf(os.Stderr, "错误: 未知命令 '%s'。支持的命令: check, init, sample-config\n", *command)
		pflag.Usage()
		os.Exit(1)
	}
}
