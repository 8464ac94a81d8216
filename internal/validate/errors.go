package validate

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrResumeInvalid      = errors.New("简历文档校验失败")
	ErrPreferencesInvalid = errors.New("搜索偏好文档校验失败")
	ErrSecretsInvalid     = errors.New("密钥文档校验失败")
	ErrDocumentInvalid    = errors.New("文档校验失败")
)

// ValidationError 携带完整报告的校验错误
type ValidationError struct {
	Document string
	BaseErr  error
	Report   *Report
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (文档:%s, 错误:%d, 警告:%d)",
		e.BaseErr, e.Document, e.Report.ErrorCount(), e.Report.WarningCount())
}

func (e *ValidationError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ValidationError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// NewValidationError 根据报告构造校验错误，按文档名选择基础错误
func NewValidationError(report *Report) error {
	base := ErrDocumentInvalid
	switch report.Document {
	case DocumentResume:
		base = ErrResumeInvalid
	case DocumentPreferences:
		base = ErrPreferencesInvalid
	case DocumentSecrets:
		base = ErrSecretsInvalid
	}
	return &ValidationError{
		Document: report.Document,
		BaseErr:  base,
		Report:   report,
	}
}
