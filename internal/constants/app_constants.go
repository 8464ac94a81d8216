package constants

const (
	// 数据目录中必须存在的三个文档
	PlainTextResumeYAML = "plain_text_resume.yaml"
	WorkPreferencesYAML = "work_preferences.yaml"
	SecretsYAML         = "secrets.yaml"

	// OutputDirName 生成结果的输出子目录名
	OutputDirName = "output"

	// DefaultDataFolder 默认数据目录
	DefaultDataFolder = "data_folder"
)

// ExperienceLevels work_preferences.yaml 中 experience_level 段必须包含的键
var ExperienceLevels = []string{
	"internship",
	"entry",
	"associate",
	"mid_senior_level",
	"director",
	"executive",
}

// JobTypes work_preferences.yaml 中 job_types 段必须包含的键
var JobTypes = []string{
	"full_time",
	"contract",
	"part_time",
	"temporary",
	"internship",
	"other",
	"volunteer",
}

// DateFilters work_preferences.yaml 中 date 段必须包含的键
var DateFilters = []string{
	"all_time",
	"month",
	"week",
	"24_hours",
}

// ApprovedDistances distance 字段允许的取值(英里)
var ApprovedDistances = map[int]struct{}{
	0:   {},
	5:   {},
	10:  {},
	25:  {},
	50:  {},
	100: {},
}

// MandatorySecrets secrets.yaml 中必须存在且非空的键
var MandatorySecrets = []string{
	"llm_api_key",
}
