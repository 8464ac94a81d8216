package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-data-go/internal/constants"
)

// TestValidateDataFolder 验证齐全的数据目录校验通过并创建输出目录
func TestValidateDataFolder(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		constants.SecretsYAML,
		constants.WorkPreferencesYAML,
		constants.PlainTextResumeYAML,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("{}\n"), 0644))
	}

	folder, err := ValidateDataFolder(root)
	require.NoError(t, err, "齐全的数据目录不应报错")

	assert.Equal(t, filepath.Join(root, constants.PlainTextResumeYAML), folder.ResumePath)
	assert.Equal(t, filepath.Join(root, constants.WorkPreferencesYAML), folder.PreferencesPath)
	assert.Equal(t, filepath.Join(root, constants.SecretsYAML), folder.SecretsPath)

	info, err := os.Stat(folder.OutputDir)
	require.NoError(t, err, "输出目录应已创建")
	assert.True(t, info.IsDir())
}

// TestValidateDataFolderMissingFiles 验证缺失文件被一次性全部报出
func TestValidateDataFolderMissingFiles(t *testing.T) {
	root := t.TempDir()
	// 只放一份文档
	require.NoError(t, os.WriteFile(filepath.Join(root, constants.SecretsYAML), []byte(""), 0644))

	_, err := ValidateDataFolder(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequiredFileMissing)
	assert.Contains(t, err.Error(), constants.WorkPreferencesYAML, "错误信息应列出缺失的文件")
	assert.Contains(t, err.Error(), constants.PlainTextResumeYAML)
	assert.NotContains(t, err.Error(), constants.SecretsYAML+",", "已存在的文件不应出现在缺失列表中")

	missing := MissingFiles(root)
	assert.ElementsMatch(t, []string{constants.WorkPreferencesYAML, constants.PlainTextResumeYAML}, missing)
}

// TestValidateDataFolderNotADirectory 验证目录不存在时命中ErrDataFolderNotFound
func TestValidateDataFolderNotADirectory(t *testing.T) {
	_, err := ValidateDataFolder(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataFolderNotFound)
}
