package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"resume-data-go/internal/constants"
)

var (
	ErrDataFolderNotFound   = errors.New("数据目录不存在")
	ErrRequiredFileMissing  = errors.New("数据目录缺少必需文件")
	ErrOutputDirUnavailable = errors.New("无法创建输出目录")
)

// DataFolder 校验通过的数据目录及其中各文档的路径
type DataFolder struct {
	Root            string
	SecretsPath     string
	PreferencesPath string
	ResumePath      string
	OutputDir       string
}

// requiredFiles 数据目录必须包含的文件
var requiredFiles = []string{
	constants.SecretsYAML,
	constants.WorkPreferencesYAML,
	constants.PlainTextResumeYAML,
}

// ValidateDataFolder 校验数据目录：目录必须存在，三份文档必须齐全，
// 同时确保 output/ 子目录可用。缺失的文件一次性全部报出。
func ValidateDataFolder(root string) (*DataFolder, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, &DocumentError{Path: root, BaseErr: ErrDataFolderNotFound}
	}

	var missing []string
	for _, name := range requiredFiles {
		if _, err := os.Stat(filepath.Join(root, name)); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &DocumentError{
			Path:    root,
			BaseErr: ErrRequiredFileMissing,
			Detail:  strings.Join(missing, ", "),
		}
	}

	outputDir := filepath.Join(root, constants.OutputDirName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, &DocumentError{
			Path:    outputDir,
			BaseErr: ErrOutputDirUnavailable,
			Detail:  err.Error(),
		}
	}

	return &DataFolder{
		Root:            root,
		SecretsPath:     filepath.Join(root, constants.SecretsYAML),
		PreferencesPath: filepath.Join(root, constants.WorkPreferencesYAML),
		ResumePath:      filepath.Join(root, constants.PlainTextResumeYAML),
		OutputDir:       outputDir,
	}, nil
}

// MissingFiles 返回数据目录中缺失的必需文件列表，目录不存在时返回全部
func MissingFiles(root string) []string {
	var missing []string
	for _, name := range requiredFiles {
		if _, err := os.Stat(filepath.Join(root, name)); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}
