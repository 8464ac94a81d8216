package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"resume-data-go/internal/constants"
)

// sampleResumeYAML 示例简历文档。保留 `#` 行注释，
// 与真实数据目录中手工维护的文档形态一致。
const sampleResumeYAML = `# 简历主文档。所有字段均为可选的自由文本，
# 列表字段保持书写顺序。
personal_information:
  name: "Jane"
  surname: "Doe"
  date_of_birth: "1995-04-12"
  country: "Germany"
  city: "Berlin"
  address: "Musterstrasse 1"
  zip_code: "10115"
  phone_prefix: "+49"
  phone: "15112345678"
  email: "jane.doe@example.com"
  github: "https://github.com/janedoe"
  linkedin: "https://www.linkedin.com/in/janedoe/"

education_details:
  - education_level: "Master's Degree"
    institution: "Technical University of Berlin"
    field_of_study: "Computer Science"
    final_evaluation_grade: "1.3"
    start_date: "2017"
    year_of_completion: "2019"
    exam:
      Distributed Systems: "1.0"
      Machine Learning: "1.7"

experience_details:
  - position: "Backend Engineer"
    company: "Acme GmbH"
    employment_period: "06/2019 - Present"  # 自由文本区间
    location: "Berlin, Germany"
    industry: "E-commerce"
    key_responsibilities:
      - "Designed and operated order processing services"
      - "Led migration from monolith to services"
    skills_acquired:
      - "Go"
      - "Kubernetes"
      - "MySQL"

projects:
  - name: "resume-data-go"
    description: "Schema and validation tooling for resume data folders"
    link: "https://github.com/janedoe/resume-data-go"

achievements:
  - name: "Hackathon Winner"
    description: "First place, Berlin Open Data Hackathon 2021"

certifications:
  - name: "CKA"
    description: "Certified Kubernetes Administrator"

languages:
  - language: "English"
    proficiency: "Professional"
  - language: "German"
    proficiency: "Native"

interests:
  - "Distributed systems"
  - "Trail running"

availability:
  notice_period: "3 months"

salary_expectations:
  salary_range_usd: "90000-110000"

self_identification:
  gender: "Female"
  pronouns: "She/Her"
  veteran: "No"
  disability: "No"
  ethnicity: "Prefer not to say"

legal_authorization:
  eu_work_authorization: "Yes"
  us_work_authorization: "No"
  requires_us_visa: "Yes"
  requires_us_sponsorship: "Yes"
  requires_eu_visa: "No"
  legally_allowed_to_work_in_eu: "Yes"
  legally_allowed_to_work_in_us: "No"
  requires_eu_sponsorship: "No"
  canada_work_authorization: "No"
  requires_canada_visa: "Yes"
  legally_allowed_to_work_in_canada: "No"
  requires_canada_sponsorship: "Yes"
  uk_work_authorization: "No"
  requires_uk_visa: "Yes"
  legally_allowed_to_work_in_uk: "No"
  requires_uk_sponsorship: "Yes"

work_preferences:
  remote_work: "Yes"
  in_person_work: "Yes"
  open_to_relocation: "Yes"
  willing_to_complete_assessments: "Yes"
  willing_to_undergo_drug_tests: "Yes"
  willing_to_undergo_background_checks: "Yes"
`

// samplePreferencesYAML 示例搜索偏好文档
const samplePreferencesYAML = `# 投递工具的搜索配置
remote: true

experience_level:
  internship: false
  entry: false
  associate: true
  mid_senior_level: true
  director: false
  executive: false

job_types:
  full_time: true
  contract: false
  part_time: false
  temporary: false
  internship: false
  other: false
  volunteer: false

date:
  all_time: false
  month: false
  week: true
  24_hours: false

positions:
  - "Backend Engineer"
  - "Site Reliability Engineer"

locations:
  - "Germany"
  - "Remote"

distance: 25  # 英里，允许值: 0, 5, 10, 25, 50, 100

# 黑名单可以留空
company_blacklist:
title_blacklist:
location_blacklist:
`

// sampleSecretsYAML 示例密钥文档
const sampleSecretsYAML = `# 真实密钥不要提交到版本库
llm_api_key: "sk-replace-me"
`

// CreateSampleDataFolder 在指定目录下生成一套示例数据文档。
// 已存在的文件不会被覆盖。
func CreateSampleDataFolder(root string) error {
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("创建数据目录 '%s' 失败: %w", root, err)
	}

	samples := map[string]string{
		constants.PlainTextResumeYAML: sampleResumeYAML,
		constants.WorkPreferencesYAML: samplePreferencesYAML,
		constants.SecretsYAML:         sampleSecretsYAML,
	}

	for name, content := range samples {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("文件 '%s' 已存在，不会覆盖", path)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("写入示例文件 '%s' 失败: %w", path, err)
		}
	}

	return nil
}
