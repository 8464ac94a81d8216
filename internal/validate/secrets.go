package validate

import (
	"fmt"
	"strings"

	"resume-data-go/internal/constants"
	"resume-data-go/internal/types"
)

// ValidateSecrets 校验密钥文档：每个必需密钥都必须存在且非空
func ValidateSecrets(secrets *types.Secrets) *Report {
	report := NewReport(DocumentSecrets)

	for _, key := range constants.MandatorySecrets {
		if strings.TrimSpace(secrets.Get(key)) == "" {
			report.addError(key, "required", fmt.Sprintf("缺少密钥 '%s' 或其值为空", key))
		}
	}

	return report
}
