package types

// SearchPreferences 表示 work_preferences.yaml：投递工具的搜索配置。
// 与简历文档不同，这份文档有必填键，因此对"键是否出现"敏感的字段
// 使用指针类型，缺键解码后为 nil，由 validate 包区分"缺失"与"零值"。
type SearchPreferences struct {
	Remote          *bool            `yaml:"remote"`
	ExperienceLevel map[string]*bool `yaml:"experience_level"` // 键集合见 constants.ExperienceLevels
	JobTypes        map[string]*bool `yaml:"job_types"`        // 键集合见 constants.JobTypes
	Date            map[string]*bool `yaml:"date"`             // 键集合见 constants.DateFilters
	Positions       []string         `yaml:"positions"`
	Locations       []string         `yaml:"locations"`
	Distance        *int             `yaml:"distance"` // 英里，取值见 constants.ApprovedDistances

	// 三个黑名单允许缺失或显式为 null，规范化后都视为空列表
	CompanyBlacklist  []string `yaml:"company_blacklist"`
	TitleBlacklist    []string `yaml:"title_blacklist"`
	LocationBlacklist []string `yaml:"location_blacklist"`
}

// Normalize 把 null 黑名单统一为空列表，消费方不必再判 nil
func (p *SearchPreferences) Normalize() {
	if p.CompanyBlacklist == nil {
		p.CompanyBlacklist = []string{}
	}
	if p.TitleBlacklist == nil {
		p.TitleBlacklist = []string{}
	}
	if p.LocationBlacklist == nil {
		p.LocationBlacklist = []string{}
	}
}
