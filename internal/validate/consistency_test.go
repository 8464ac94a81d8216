package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-data-go/internal/types"
)

// TestAuthorizationConflictVisaDespiteAuthorization 已有许可却需要签证 → 警告
func TestAuthorizationConflictVisaDespiteAuthorization(t *testing.T) {
	resume := &types.Resume{
		LegalAuthorization: types.LegalAuthorization{
			EUWorkAuthorization: "Yes",
			RequiresEUVisa:      "Yes",
		},
	}

	report := ValidateResume(resume)

	findings := findingsFor(report, "legal_authorization.requires_eu_visa")
	assert.NotEmpty(t, findings, "已有许可却需要签证应产生警告")
	for _, f := range findings {
		assert.Equal(t, SeverityWarning, f.Severity, "一致性问题只能是警告级别")
		assert.Equal(t, "authorization_conflict", f.Rule)
	}
	assert.False(t, report.HasErrors(), "一致性警告不应让校验失败")
}

// TestAuthorizationConflictSponsorship 已有许可却需要担保 → 警告
func TestAuthorizationConflictSponsorship(t *testing.T) {
	resume := &types.Resume{
		LegalAuthorization: types.LegalAuthorization{
			USWorkAuthorization:   "Yes",
			RequiresUSSponsorship: "Yes",
		},
	}

	report := ValidateResume(resume)
	assert.NotEmpty(t, findingsFor(report, "legal_authorization.requires_us_sponsorship"))
}

// TestAuthorizationConflictMismatch 许可与合法工作资格取值矛盾 → 警告
func TestAuthorizationConflictMismatch(t *testing.T) {
	resume := &types.Resume{
		LegalAuthorization: types.LegalAuthorization{
			UKWorkAuthorization:      "Yes",
			LegallyAllowedToWorkInUK: "No",
		},
	}

	report := ValidateResume(resume)
	assert.NotEmpty(t, findingsFor(report, "legal_authorization.legally_allowed_to_work_in_uk"))
}

// TestAuthorizationConsistentFlags 自洽的组合不产生任何发现
func TestAuthorizationConsistentFlags(t *testing.T) {
	resume := &types.Resume{
		LegalAuthorization: types.LegalAuthorization{
			// EU：已有许可，无需签证和担保
			EUWorkAuthorization:      "Yes",
			RequiresEUVisa:           "No",
			LegallyAllowedToWorkInEU: "Yes",
			RequiresEUSponsorship:    "No",
			// US：没有许可，需要签证和担保
			USWorkAuthorization:      "No",
			RequiresUSVisa:           "Yes",
			LegallyAllowedToWorkInUS: "No",
			RequiresUSSponsorship:    "Yes",
		},
	}

	report := ValidateResume(resume)
	assert.Empty(t, report.Findings, "自洽的许可标志不应产生发现")
}

// TestAuthorizationUnrecognizedValuesSkipped 无法识别的取值被跳过而不是报错
func TestAuthorizationUnrecognizedValuesSkipped(t *testing.T) {
	resume := &types.Resume{
		LegalAuthorization: types.LegalAuthorization{
			EUWorkAuthorization: "Maybe",
			RequiresEUVisa:      "Yes",
		},
	}

	report := ValidateResume(resume)
	assert.Empty(t, report.Findings, "无法识别的标志取值应被跳过")
}

// TestYesNoParsing yes/no解析接受常见写法
func TestYesNoParsing(t *testing.T) {
	for _, s := range []string{"Yes", "yes", " YES ", "true", "y"} {
		v, ok := yesNo(s)
		assert.True(t, ok, "应能识别 %q", s)
		assert.True(t, v)
	}
	for _, s := range []string{"No", "no", "false", "n"} {
		v, ok := yesNo(s)
		assert.True(t, ok, "应能识别 %q", s)
		assert.False(t, v)
	}
	for _, s := range []string{"", "Maybe", "1"} {
		_, ok := yesNo(s)
		assert.False(t, ok, "不应识别 %q", s)
	}
}
