package validate

import (
	"fmt"
	"sort"
	"strings"

	"resume-data-go/internal/constants"
	"resume-data-go/internal/types"
)

// ValidatePreferences 校验搜索偏好文档。与简历文档不同，
// 这份文档有必填键：投递工具在缺键时无法工作。
func ValidatePreferences(prefs *types.SearchPreferences) *Report {
	report := NewReport(DocumentPreferences)

	if prefs.Remote == nil {
		report.addError("remote", "required", "缺少必需键 remote")
	}

	checkBoolSection(report, "experience_level", prefs.ExperienceLevel, constants.ExperienceLevels)
	checkBoolSection(report, "job_types", prefs.JobTypes, constants.JobTypes)
	checkBoolSection(report, "date", prefs.Date, constants.DateFilters)

	checkStringList(report, "positions", prefs.Positions)
	checkStringList(report, "locations", prefs.Locations)

	if prefs.Distance == nil {
		report.addError("distance", "required", "缺少必需键 distance")
	} else if _, ok := constants.ApprovedDistances[*prefs.Distance]; !ok {
		report.addError("distance", "approved_value",
			fmt.Sprintf("distance 取值 %d 不在允许范围 %s 内", *prefs.Distance, approvedDistanceList()))
	}

	// 黑名单在加载阶段已规范化为空列表，这里无需检查

	return report
}

// checkBoolSection 检查一个由固定布尔键组成的段：段必须存在，
// 每个命名键都必须出现且为布尔值
func checkBoolSection(report *Report, section string, values map[string]*bool, keys []string) {
	if values == nil {
		report.addError(section, "required", fmt.Sprintf("缺少必需键 %s", section))
		return
	}
	for _, key := range keys {
		v, present := values[key]
		if !present || v == nil {
			report.addError(
				fmt.Sprintf("%s.%s", section, key),
				"bool_required",
				fmt.Sprintf("%s 段中 %s 必须是布尔值", section, key))
		}
	}
}

// checkStringList 检查一个必填的非空字符串列表
func checkStringList(report *Report, field string, values []string) {
	if values == nil {
		report.addError(field, "required", fmt.Sprintf("缺少必需键 %s", field))
		return
	}
	if len(values) == 0 {
		report.addError(field, "non_empty_list", fmt.Sprintf("%s 不能是空列表", field))
		return
	}
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			report.addError(
				fmt.Sprintf("%s[%d]", field, i),
				"non_empty_string",
				fmt.Sprintf("%s 中存在空白条目", field))
		}
	}
}

func approvedDistanceList() string {
	distances := make([]int, 0, len(constants.ApprovedDistances))
	for d := range constants.ApprovedDistances {
		distances = append(distances, d)
	}
	sort.Ints(distances)
	parts := make([]string, len(distances))
	for i, d := range distances {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
