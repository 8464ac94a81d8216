package validate

import (
	"fmt"
	"regexp"

	"github.com/nyaruka/phonenumbers"

	"resume-data-go/internal/types"
)

// yearPattern year_of_completion 要求的4位年份
var yearPattern = regexp.MustCompile(`^\d{4}$`)

// ValidateResume 对简历文档执行模式级检查。
// 空文档或缺失的段落不产生任何发现：每个字段都是可选的。
func ValidateResume(resume *types.Resume, opts ...Option) *Report {
	o := newOptions(opts)
	report := NewReport(DocumentResume)

	checkPersonalInformation(report, &resume.PersonalInformation, o)

	// 工作经历：position 和 company 必须非空
	for i, exp := range resume.ExperienceDetails {
		if exp.Position == "" {
			report.addError(
				fmt.Sprintf("experience_details[%d].position", i),
				"required",
				"工作经历缺少 position")
		}
		if exp.Company == "" {
			report.addError(
				fmt.Sprintf("experience_details[%d].company", i),
				"required",
				"工作经历缺少 company")
		}
	}

	// 教育经历：year_of_completion 必须是4位年份
	for i, edu := range resume.EducationDetails {
		if !yearPattern.MatchString(edu.YearOfCompletion) {
			report.addError(
				fmt.Sprintf("education_details[%d].year_of_completion", i),
				"year_format",
				fmt.Sprintf("year_of_completion 应为4位年份，实际为 %q", edu.YearOfCompletion))
		}
	}

	checkAuthorizationConsistency(report, &resume.LegalAuthorization)

	return report
}

// checkPersonalInformation 联系方式的格式检查。这些不是文档的硬约束，
// 全部以警告形式报出。
func checkPersonalInformation(report *Report, info *types.PersonalInformation, o options) {
	if info.Email != "" {
		if err := fieldValidator.Var(info.Email, "email"); err != nil {
			report.addWarning("personal_information.email", "email_format",
				fmt.Sprintf("email 格式不正确: %q", info.Email))
		}
	}

	for field, link := range map[string]string{
		"personal_information.github":   info.GitHub,
		"personal_information.linkedin": info.LinkedIn,
	} {
		if link == "" {
			continue
		}
		if err := fieldValidator.Var(link, "url"); err != nil {
			report.addWarning(field, "url_format",
				fmt.Sprintf("链接不是合法URL: %q", link))
		}
	}

	if info.Phone != "" {
		checkPhone(report, info, o)
	}
}

// checkPhone 用 phone_prefix 解析电话号码；没有前缀时退回默认地区
func checkPhone(report *Report, info *types.PersonalInformation, o options) {
	var (
		num *phonenumbers.PhoneNumber
		err error
	)
	if info.PhonePrefix != "" {
		num, err = phonenumbers.Parse(info.PhonePrefix+info.Phone, "")
	} else {
		num, err = phonenumbers.Parse(info.Phone, o.defaultPhoneRegion)
	}
	if err != nil {
		report.addWarning("personal_information.phone", "phone_format",
			fmt.Sprintf("电话号码无法解析: %q (前缀 %q)", info.Phone, info.PhonePrefix))
		return
	}
	if !phonenumbers.IsValidNumber(num) {
		report.addWarning("personal_information.phone", "phone_format",
			fmt.Sprintf("电话号码不是有效号码: %q (前缀 %q)", info.Phone, info.PhonePrefix))
	}
}
