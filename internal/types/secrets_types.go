package types

// Secrets 表示 secrets.yaml。除了结构化字段外保留原始键值，
// 方便按 constants.MandatorySecrets 检查必填项。
type Secrets struct {
	LLMAPIKey string `yaml:"llm_api_key"`

	// Raw 完整的键值对，inline 捕获未建模的密钥
	Raw map[string]string `yaml:",inline"`
}

// Get 按键名取密钥值，优先返回结构化字段
func (s *Secrets) Get(key string) string {
	if key == "llm_api_key" && s.LLMAPIKey != "" {
		return s.LLMAPIKey
	}
	if s.Raw == nil {
		return ""
	}
	return s.Raw[key]
}
