package types

import "time"

// ExperienceLevel 经验级别（由工作年限、头衔和上下文关键词推导的粗粒度分级）
type ExperienceLevel string

const (
	// LevelStudent 在校学生
	LevelStudent ExperienceLevel = "Student"
	// LevelEntry 入门级
	LevelEntry ExperienceLevel = "Entry Level"
	// LevelJunior 初级
	LevelJunior ExperienceLevel = "Junior"
	// LevelMid 中级
	LevelMid ExperienceLevel = "Mid-Level"
	// LevelSenior 高级
	LevelSenior ExperienceLevel = "Senior"
)

// ContactInfo 联系方式，每个字段抽取失败时独立为空
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// ExperienceInfo 工作经历汇总
type ExperienceInfo struct {
	Years     int             `json:"years"` // 始终 >= 0
	JobTitles []string        `json:"job_titles"`
	Companies []string        `json:"companies"`
	Level     ExperienceLevel `json:"level"`
}

// EducationInfo 教育背景汇总
// GraduationYear 为0表示未识别；非0时必然落在 [1950, 当前年+5] 区间内
type EducationInfo struct {
	HighestDegree   string   `json:"highest_degree,omitempty"`
	FieldOfStudy    string   `json:"field_of_study,omitempty"`
	Institution     string   `json:"institution,omitempty"`
	AllInstitutions []string `json:"all_institutions"`
	GraduationYear  int      `json:"graduation_year,omitempty"`
}

// InstitutionCandidate 机构识别候选项
// Confidence 永远在 [0,1] 之间，不是校准过的概率，仅表示启发式置信度
type InstitutionCandidate struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	SourceLine int     `json:"source_line"` // 候选项所在的行号
	Line       string  `json:"line"`        // 原始行文本
	Context    string  `json:"context"`     // 附近行拼接的上下文
}

// DetectionAnalysis 机构识别的整体上下文分析
type DetectionAnalysis struct {
	HasDegreeContext         bool    `json:"has_degree_context"`
	EducationContextStrength float64 `json:"education_context_strength"` // 上下文关键词命中率，上限1.0
	ProperNounsFound         int     `json:"proper_nouns_found"`
}

// DetectionDetails 机构识别的完整结果，含按置信度分档的统计
type DetectionDetails struct {
	Institutions     []InstitutionCandidate `json:"institutions"`
	BestMatch        string                 `json:"best_match,omitempty"`
	TotalFound       int                    `json:"total_found"`
	HighConfidence   []InstitutionCandidate `json:"high_confidence"`   // confidence > 0.7
	MediumConfidence []InstitutionCandidate `json:"medium_confidence"` // 0.4 <= confidence <= 0.7
	Analysis         DetectionAnalysis      `json:"analysis"`
}

// ResumeAnalysis 一次分析请求的聚合结果，构造后不可变，请求结束即失效
type ResumeAnalysis struct {
	AnalysisID string         `json:"analysis_id"`
	Contact    ContactInfo    `json:"contact"`
	Skills     []string       `json:"skills"`
	Experience ExperienceInfo `json:"experience"`
	Education  EducationInfo  `json:"education"`
	Summary    string         `json:"summary"`
	Score      int            `json:"score"` // 0-100
	AnalyzedAt time.Time      `json:"analyzed_at"`
}

// JobPosting 静态岗位目录中的一条岗位
type JobPosting struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	SalaryMin       int       `json:"salary_min"`
	SalaryMax       int       `json:"salary_max"`
	RequiredSkills  []string  `json:"required_skills"`
	PreferredSkills []string  `json:"preferred_skills"`
	ExperienceYears int       `json:"experience_years"`
	JobType         string    `json:"job_type"`
	Remote          bool      `json:"remote"`
	Description     string    `json:"description"`
	PostedAt        time.Time `json:"posted_at"`
}

// JobMatch 岗位匹配结果，生命周期仅限单次请求，不跨请求缓存
type JobMatch struct {
	JobID              int      `json:"job_id"`
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	Location           string   `json:"location"`
	SalaryRange        string   `json:"salary_range"`
	RequiredSkills     []string `json:"required_skills"`
	ExperienceRequired string   `json:"experience_required"`
	MatchPercentage    int      `json:"match_percentage"` // 0-100
	Description        string   `json:"description"`
	JobType            string   `json:"job_type"`
	Remote             bool     `json:"remote"`
	PostedAt           string   `json:"posted_at"`
	SkillsMatched      []string `json:"skills_matched"`
	SkillsMissing      []string `json:"skills_missing"`
	ExperienceMatch    bool     `json:"experience_match"`
}

// SkillGap 技能缺口：目录中有需求但候选人未掌握的技能
type SkillGap struct {
	Skill    string `json:"skill"`
	JobCount int    `json:"job_count"`
	Priority string `json:"priority"` // high / medium
}

// SalaryEstimate 基于静态目录的薪资区间估算
type SalaryEstimate struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SkillDemand 单项技能在目录中的需求度
type SkillDemand struct {
	JobCount    int    `json:"job_count"`
	DemandLevel string `json:"demand_level"` // High / Medium / Low
}

// MarketDemand 候选人技能组合的市场需求汇总
type MarketDemand struct {
	SkillDemand        map[string]SkillDemand `json:"skill_demand"`
	MarketStrength     string                 `json:"market_strength"` // Strong / Moderate / Developing
	TotalOpportunities int                    `json:"total_opportunities"`
}

// JobRecommendations 岗位推荐汇总（top匹配 + 技能缺口 + 薪资估算 + 市场需求）
type JobRecommendations struct {
	TopMatches             []JobMatch      `json:"top_matches"`
	TotalMatches           int             `json:"total_matches"`
	SkillGaps              []SkillGap      `json:"skill_gaps"`
	CareerLevel            ExperienceLevel `json:"career_level"`
	RecommendedSalaryRange SalaryEstimate  `json:"recommended_salary_range"`
	MarketDemand           MarketDemand    `json:"market_demand"`
}

// SkillCategory 技能分类（用于 /skills 接口展示所支持的技能词表）
type SkillCategory struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
	Count    int      `json:"count"`
}
