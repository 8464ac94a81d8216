package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"resume-data-go/internal/types"
)

// 定义基础错误类型
var (
	ErrDocumentNotFound = errors.New("YAML文档不存在")
	ErrDocumentRead     = errors.New("读取YAML文档失败")
	ErrDocumentSyntax   = errors.New("YAML文档语法错误")
)

// DocumentError 带文件路径的加载错误
type DocumentError struct {
	Path    string
	BaseErr error
	Detail  string
}

func (e *DocumentError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (文件:%s): %s", e.BaseErr, e.Path, e.Detail)
	}
	return fmt.Sprintf("%s (文件:%s)", e.BaseErr, e.Path)
}

func (e *DocumentError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *DocumentError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// Option 加载行为选项
type Option func(*options)

type options struct {
	strict bool
}

// WithStrict 严格模式：文档中出现目标结构未声明的键时报错。
// 简历文档默认宽松加载（每个字段都是可选的，未知键被忽略）。
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// LoadYAML 读取并解码一个YAML文件到out。空文件视为空文档，不报错。
func LoadYAML(path string, out interface{}, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &DocumentError{Path: path, BaseErr: ErrDocumentNotFound}
		}
		return &DocumentError{Path: path, BaseErr: ErrDocumentRead, Detail: err.Error()}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(o.strict)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			// 空文档：保持out为零值
			return nil
		}
		return &DocumentError{Path: path, BaseErr: ErrDocumentSyntax, Detail: err.Error()}
	}

	return nil
}

// LoadResume 加载简历文档
func LoadResume(path string, opts ...Option) (*types.Resume, error) {
	var resume types.Resume
	if err := LoadYAML(path, &resume, opts...); err != nil {
		return nil, err
	}
	return &resume, nil
}

// LoadPreferences 加载搜索偏好文档，并把null黑名单规范化为空列表
func LoadPreferences(path string, opts ...Option) (*types.SearchPreferences, error) {
	var prefs types.SearchPreferences
	if err := LoadYAML(path, &prefs, opts...); err != nil {
		return nil, err
	}
	prefs.Normalize()
	return &prefs, nil
}

// LoadSecrets 加载密钥文档。密钥文档永远宽松加载，未知键保留在Raw中。
func LoadSecrets(path string) (*types.Secrets, error) {
	var secrets types.Secrets
	if err := LoadYAML(path, &secrets); err != nil {
		return nil, err
	}
	return &secrets, nil
}
