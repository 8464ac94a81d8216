// Package validate 实现消费方对数据目录三份YAML文档施加的模式级检查。
// 文档本身没有任何内建约束，这里的规则是外部消费者的视角：
// 错误级别的发现表示下游工具无法可靠使用该字段，
// 警告级别的发现只是提示人工确认。
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// 文档名，用于报告与错误分类
const (
	DocumentResume      = "plain_text_resume"
	DocumentPreferences = "work_preferences"
	DocumentSecrets     = "secrets"
)

// fieldValidator 复用的字段格式校验器(email、url等)
var fieldValidator = validator.New()

// Option 校验行为选项
type Option func(*options)

type options struct {
	defaultPhoneRegion string
}

// WithDefaultPhoneRegion 设置 phone_prefix 缺失时解析电话号码使用的地区码
func WithDefaultPhoneRegion(region string) Option {
	return func(o *options) {
		o.defaultPhoneRegion = region
	}
}

func newOptions(opts []Option) options {
	o := options{
		defaultPhoneRegion: "US",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// yesNo 把 "Yes"/"No" 风格的自由文本解析为三态布尔。
// 无法识别的取值返回 ok=false，调用方应跳过该字段。
func yesNo(value string) (val bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "y":
		return true, true
	case "no", "false", "n":
		return false, true
	default:
		return false, false
	}
}
