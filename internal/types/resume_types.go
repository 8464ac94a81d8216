package types

// Resume 表示整份简历文档 (plain_text_resume.yaml) 的结构化数据。
// 文档中的每个字段都是可选的自由文本，解析时不做任何类型强制，
// 约束统一由 validate 包在加载之后检查。
type Resume struct {
	PersonalInformation PersonalInformation   `yaml:"personal_information"`
	EducationDetails    []EducationEntry      `yaml:"education_details"`
	ExperienceDetails   []ExperienceEntry     `yaml:"experience_details"`
	Projects            []Project             `yaml:"projects"`
	Achievements        []Achievement         `yaml:"achievements"`
	Certifications      []Certification       `yaml:"certifications"`
	Languages           []LanguageProficiency `yaml:"languages"`
	Interests           []string              `yaml:"interests"`
	Availability        Availability          `yaml:"availability"`
	SalaryExpectations  SalaryExpectations    `yaml:"salary_expectations"`
	SelfIdentification  SelfIdentification    `yaml:"self_identification"`
	LegalAuthorization  LegalAuthorization    `yaml:"legal_authorization"`
	WorkPreferences     WorkPreferences       `yaml:"work_preferences"`
}

// PersonalInformation 个人身份与联系方式
type PersonalInformation struct {
	Name        string `yaml:"name,omitempty"`
	Surname     string `yaml:"surname,omitempty"`
	DateOfBirth string `yaml:"date_of_birth,omitempty"` // 自由文本，不解析为日期类型
	Country     string `yaml:"country,omitempty"`
	City        string `yaml:"city,omitempty"`
	Address     string `yaml:"address,omitempty"`
	ZipCode     string `yaml:"zip_code,omitempty"`
	PhonePrefix string `yaml:"phone_prefix,omitempty"` // 例如 "+86"、"+1"
	Phone       string `yaml:"phone,omitempty"`
	Email       string `yaml:"email,omitempty"`
	GitHub      string `yaml:"github,omitempty"`
	LinkedIn    string `yaml:"linkedin,omitempty"`
}

// EducationEntry 一条教育经历。条目之间不保证时间顺序。
type EducationEntry struct {
	EducationLevel       string            `yaml:"education_level,omitempty"`
	Institution          string            `yaml:"institution,omitempty"`
	FieldOfStudy         string            `yaml:"field_of_study,omitempty"`
	FinalEvaluationGrade string            `yaml:"final_evaluation_grade,omitempty"`
	StartDate            string            `yaml:"start_date,omitempty"`
	YearOfCompletion     string            `yaml:"year_of_completion,omitempty"` // 期望为4位年份，由validate检查
	Exam                 map[string]string `yaml:"exam,omitempty"`               // 课程 -> 成绩
}

// ExperienceEntry 一条工作经历。employment_period 是自由文本区间，
// 不是经过校验的日期类型。
type ExperienceEntry struct {
	Position            string   `yaml:"position,omitempty"`
	Company             string   `yaml:"company,omitempty"`
	EmploymentPeriod    string   `yaml:"employment_period,omitempty"` // 例如 "06/2019 - Present"
	Location            string   `yaml:"location,omitempty"`
	Industry            string   `yaml:"industry,omitempty"`
	KeyResponsibilities []string `yaml:"key_responsibilities,omitempty"` // 有序列表
	SkillsAcquired      []string `yaml:"skills_acquired,omitempty"`      // 集合语义的列表
}

// Project 项目经历
type Project struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	Link        string `yaml:"link,omitempty"`
}

// Achievement 获奖/成就
type Achievement struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Certification 证书
type Certification struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// LanguageProficiency 语言能力
type LanguageProficiency struct {
	Language    string `yaml:"language,omitempty"`
	Proficiency string `yaml:"proficiency,omitempty"` // 例如 "Native"、"Professional"
}

// Availability 到岗信息
type Availability struct {
	NoticePeriod string `yaml:"notice_period,omitempty"`
}

// SalaryExpectations 薪资期望
type SalaryExpectations struct {
	SalaryRangeUSD string `yaml:"salary_range_usd,omitempty"`
}

// SelfIdentification 自我认同信息，均为自由文本
type SelfIdentification struct {
	Gender     string `yaml:"gender,omitempty"`
	Pronouns   string `yaml:"pronouns,omitempty"`
	Veteran    string `yaml:"veteran,omitempty"`
	Disability string `yaml:"disability,omitempty"`
	Ethnicity  string `yaml:"ethnicity,omitempty"`
}

// LegalAuthorization 工作许可相关的标志位。取值为 "Yes"/"No" 风格的自由文本，
// 文档本身不保证各标志之间的逻辑一致性(例如 requires_eu_visa 与
// legally_allowed_to_work_in_eu 可能互相矛盾)，validate 包只以警告形式提示。
type LegalAuthorization struct {
	EUWorkAuthorization          string `yaml:"eu_work_authorization,omitempty"`
	USWorkAuthorization          string `yaml:"us_work_authorization,omitempty"`
	RequiresUSVisa               string `yaml:"requires_us_visa,omitempty"`
	RequiresUSSponsorship        string `yaml:"requires_us_sponsorship,omitempty"`
	RequiresEUVisa               string `yaml:"requires_eu_visa,omitempty"`
	LegallyAllowedToWorkInEU     string `yaml:"legally_allowed_to_work_in_eu,omitempty"`
	LegallyAllowedToWorkInUS     string `yaml:"legally_allowed_to_work_in_us,omitempty"`
	RequiresEUSponsorship        string `yaml:"requires_eu_sponsorship,omitempty"`
	CanadaWorkAuthorization      string `yaml:"canada_work_authorization,omitempty"`
	RequiresCanadaVisa           string `yaml:"requires_canada_visa,omitempty"`
	LegallyAllowedToWorkInCanada string `yaml:"legally_allowed_to_work_in_canada,omitempty"`
	RequiresCanadaSponsorship    string `yaml:"requires_canada_sponsorship,omitempty"`
	UKWorkAuthorization          string `yaml:"uk_work_authorization,omitempty"`
	RequiresUKVisa               string `yaml:"requires_uk_visa,omitempty"`
	LegallyAllowedToWorkInUK     string `yaml:"legally_allowed_to_work_in_uk,omitempty"`
	RequiresUKSponsorship        string `yaml:"requires_uk_sponsorship,omitempty"`
}

// WorkPreferences 简历文档内的工作偏好段(与 work_preferences.yaml 的
// 搜索偏好是两个不同的东西)。取值同样为 "Yes"/"No" 风格自由文本。
type WorkPreferences struct {
	RemoteWork                       string `yaml:"remote_work,omitempty"`
	InPersonWork                     string `yaml:"in_person_work,omitempty"`
	OpenToRelocation                 string `yaml:"open_to_relocation,omitempty"`
	WillingToCompleteAssessments     string `yaml:"willing_to_complete_assessments,omitempty"`
	WillingToUndergoDrugTests        string `yaml:"willing_to_undergo_drug_tests,omitempty"`
	WillingToUndergoBackgroundChecks string `yaml:"willing_to_undergo_background_checks,omitempty"`
}
