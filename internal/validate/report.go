package validate

import (
	"time"

	"github.com/google/uuid"
)

// Severity 发现的严重级别
type Severity string

const (
	// SeverityError 违反了消费方依赖的模式约束
	SeverityError Severity = "error"
	// SeverityWarning 不影响解析，但值得人工确认
	SeverityWarning Severity = "warning"
)

// Finding 一条校验发现
type Finding struct {
	Severity Severity `json:"severity"`
	Field    string   `json:"field"`   // 字段路径，例如 "experience_details[2].company"
	Rule     string   `json:"rule"`    // 规则标识，例如 "required"
	Message  string   `json:"message"` // 人类可读的说明
}

// Report 一次文档校验的结果
type Report struct {
	ReportID    string    `json:"report_id"`
	Document    string    `json:"document"` // 被校验的文档名
	Findings    []Finding `json:"findings"`
	ValidatedAt time.Time `json:"validated_at"`
}

// NewReport 创建一份空报告
func NewReport(document string) *Report {
	return &Report{
		ReportID:    uuid.NewString(),
		Document:    document,
		Findings:    []Finding{},
		ValidatedAt: time.Now(),
	}
}

func (r *Report) addError(field, rule, message string) {
	r.Findings = append(r.Findings, Finding{
		Severity: SeverityError,
		Field:    field,
		Rule:     rule,
		Message:  message,
	})
}

func (r *Report) addWarning(field, rule, message string) {
	r.Findings = append(r.Findings, Finding{
		Severity: SeverityWarning,
		Field:    field,
		Rule:     rule,
		Message:  message,
	})
}

// ErrorCount 错误级别发现的数量
func (r *Report) ErrorCount() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount 警告级别发现的数量
func (r *Report) WarningCount() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// HasErrors 报告中是否存在错误级别的发现
func (r *Report) HasErrors() bool {
	return r.ErrorCount() > 0
}

// Err 把报告折叠成error：有错误级别发现时返回ValidationError，否则返回nil
func (r *Report) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return NewValidationError(r)
}
