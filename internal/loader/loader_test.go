package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "无法写入临时YAML文件")
	return path
}

// TestLoadResume 验证一份典型的简历文档能被完整解析
func TestLoadResume(t *testing.T) {
	content := `
personal_information:
  name: "Jane"
  surname: "Doe"
  email: "jane.doe@example.com"
  phone_prefix: "+49"
  phone: "15112345678"

education_details:
  - institution: "TU Berlin"
    year_of_completion: "2019"
    exam:
      Algorithms: "1.0"

experience_details:
  - position: "Backend Engineer"
    company: "Acme GmbH"
    employment_period: "06/2019 - Present"
    key_responsibilities:
      - "Operate order services"
    skills_acquired:
      - "Go"

languages:
  - language: "German"
    proficiency: "Native"

interests:
  - "Trail running"
`
	path := writeTempYAML(t, "plain_text_resume.yaml", content)

	resume, err := LoadResume(path)
	require.NoError(t, err, "加载合法的简历文档不应报错")

	assert.Equal(t, "Jane", resume.PersonalInformation.Name)
	assert.Equal(t, "jane.doe@example.com", resume.PersonalInformation.Email)

	require.Len(t, resume.EducationDetails, 1)
	assert.Equal(t, "2019", resume.EducationDetails[0].YearOfCompletion)
	assert.Equal(t, "1.0", resume.EducationDetails[0].Exam["Algorithms"])

	require.Len(t, resume.ExperienceDetails, 1)
	assert.Equal(t, "Backend Engineer", resume.ExperienceDetails[0].Position)
	assert.Equal(t, []string{"Operate order services"}, resume.ExperienceDetails[0].KeyResponsibilities)

	assert.Equal(t, []string{"Trail running"}, resume.Interests)
}

// TestLoadResumeEmptyDocument 验证空文档加载为零值而不报错(所有字段可选)
func TestLoadResumeEmptyDocument(t *testing.T) {
	path := writeTempYAML(t, "plain_text_resume.yaml", "")

	resume, err := LoadResume(path)
	require.NoError(t, err, "空文档不应报错")
	assert.Empty(t, resume.PersonalInformation.Name)
	assert.Nil(t, resume.ExperienceDetails)
}

// TestLoadResumeSyntaxError 验证YAML语法错误被包装为ErrDocumentSyntax
func TestLoadResumeSyntaxError(t *testing.T) {
	path := writeTempYAML(t, "plain_text_resume.yaml", "personal_information: [unclosed")

	_, err := LoadResume(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocumentSyntax, "语法错误应命中 ErrDocumentSyntax")
}

// TestLoadResumeNotFound 验证文件不存在时命中ErrDocumentNotFound
func TestLoadResumeNotFound(t *testing.T) {
	_, err := LoadResume(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

// TestLoadResumeStrictUnknownKey 验证严格模式拒绝未知键，宽松模式忽略
func TestLoadResumeStrictUnknownKey(t *testing.T) {
	content := `
personal_information:
  name: "Jane"
favorite_color: "green"
`
	path := writeTempYAML(t, "plain_text_resume.yaml", content)

	// 宽松模式(默认)：未知键被忽略
	resume, err := LoadResume(path)
	require.NoError(t, err, "宽松模式下未知键不应报错")
	assert.Equal(t, "Jane", resume.PersonalInformation.Name)

	// 严格模式：未知键报语法错误
	_, err = LoadResume(path, WithStrict(true))
	require.Error(t, err, "严格模式下未知键应报错")
	assert.ErrorIs(t, err, ErrDocumentSyntax)
}

// TestLoadPreferencesNormalizesBlacklists 验证null黑名单被规范化为空列表
func TestLoadPreferencesNormalizesBlacklists(t *testing.T) {
	content := `
remote: true
distance: 25
positions:
  - "Backend Engineer"
locations:
  - "Remote"
company_blacklist:
title_blacklist:
`
	path := writeTempYAML(t, "work_preferences.yaml", content)

	prefs, err := LoadPreferences(path)
	require.NoError(t, err)

	require.NotNil(t, prefs.Remote)
	assert.True(t, *prefs.Remote)
	require.NotNil(t, prefs.Distance)
	assert.Equal(t, 25, *prefs.Distance)

	assert.NotNil(t, prefs.CompanyBlacklist, "null黑名单应规范化为空列表")
	assert.Empty(t, prefs.CompanyBlacklist)
	assert.NotNil(t, prefs.LocationBlacklist, "缺失的黑名单也应规范化为空列表")
}

// TestLoadSecretsKeepsUnknownKeys 验证未建模的密钥保留在Raw中
func TestLoadSecretsKeepsUnknownKeys(t *testing.T) {
	content := `
llm_api_key: "sk-test"
other_token: "abc"
`
	path := writeTempYAML(t, "secrets.yaml", content)

	secrets, err := LoadSecrets(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", secrets.Get("llm_api_key"))
	assert.Equal(t, "abc", secrets.Get("other_token"), "未建模的密钥应保留在Raw中")
}
