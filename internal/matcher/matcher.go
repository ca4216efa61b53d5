package matcher

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/types"
)

// JobMatcher 基于静态岗位目录的匹配器
// 目录在构造时初始化一次，之后只读，可被多个请求并发调用
type JobMatcher struct {
	catalog       []types.JobPosting
	minMatchScore int
	maxMatches    int
	titleCaser    cases.Caser
}

// MatcherOption 定义匹配器配置选项函数
type MatcherOption func(*JobMatcher)

// WithCatalog 配置自定义岗位目录
func WithCatalog(catalog []types.JobPosting) MatcherOption {
	return func(m *JobMatcher) {
		if len(catalog) > 0 {
			m.catalog = catalog
		}
	}
}

// WithMinMatchScore 配置匹配结果的最低收录分数
func WithMinMatchScore(score int) MatcherOption {
	return func(m *JobMatcher) {
		if score > 0 {
			m.minMatchScore = score
		}
	}
}

// WithMaxMatches 配置匹配结果的数量上限
func WithMaxMatches(n int) MatcherOption {
	return func(m *JobMatcher) {
		if n > 0 {
			m.maxMatches = n
		}
	}
}

// NewJobMatcher 创建一个新的岗位匹配器
func NewJobMatcher(options ...MatcherOption) *JobMatcher {
	m := &JobMatcher{
		catalog:       defaultCatalog(time.Now()),
		minMatchScore: constants.MinMatchScore,
		maxMatches:    constants.MaxJobMatches,
		titleCaser:    cases.Title(language.English),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Catalog 返回目录中的全部岗位
func (m *JobMatcher) Catalog() []types.JobPosting {
	return m.catalog
}

// matchResult 单个岗位的打分明细
type matchResult struct {
	score           int
	skillsMatched   []string
	skillsMissing   []string
	experienceMatch bool
}

// FindMatches 对整个目录打分并返回排序后的匹配结果
// 低于最低收录分数的岗位被剔除，结果按分数降序，数量受上限截断
func (m *JobMatcher) FindMatches(analysis *types.ResumeAnalysis) []types.JobMatch {
	userSkills := lowerAll(analysis.Skills)
	matches := make([]types.JobMatch, 0, len(m.catalog))

	for _, job := range m.catalog {
		result := m.scoreJob(userSkills, analysis.Experience.Years, analysis.Experience.Level, job)
		if result.score < m.minMatchScore {
			continue
		}
		match := m.toJobMatch(job, result.score)
		match.SkillsMatched = result.skillsMatched
		match.SkillsMissing = result.skillsMissing
		match.ExperienceMatch = result.experienceMatch
		matches = append(matches, match)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})
	if len(matches) > m.maxMatches {
		matches = matches[:m.maxMatches]
	}
	return matches
}

// SearchFilter 岗位搜索过滤条件，零值字段不参与过滤
type SearchFilter struct {
	Skills     []string
	Location   string
	JobType    string
	RemoteOnly bool
}

// SearchJobs 按过滤条件筛选目录后给出搜索结果
// 未提供技能时使用固定的基线分数；结果按分数和发布时间降序
func (m *JobMatcher) SearchJobs(filter SearchFilter) []types.JobMatch {
	skills := lowerAll(filter.Skills)

	var filtered []types.JobPosting
	for _, job := range m.catalog {
		if len(skills) > 0 && !jobHasAnySkill(job, skills) {
			continue
		}
		if filter.Location != "" {
			locLower := strings.ToLower(filter.Location)
			if !strings.Contains(strings.ToLower(job.Location), locLower) && !job.Remote {
				continue
			}
		}
		if filter.RemoteOnly && !job.Remote {
			continue
		}
		if filter.JobType != "" && !strings.EqualFold(job.JobType, filter.JobType) {
			continue
		}
		filtered = append(filtered, job)
	}

	matches := make([]types.JobMatch, 0, len(filtered))
	for _, job := range filtered {
		score := 75
		if len(skills) > 0 {
			matched := 0
			for _, jobSkill := range lowerAll(job.RequiredSkills) {
				for _, userSkill := range skills {
					if strings.Contains(jobSkill, userSkill) {
						matched++
						break
					}
				}
			}
			score = matched * 100 / len(job.RequiredSkills)
			if score > 95 {
				score = 95
			}
		}
		match := m.toJobMatch(job, score)
		match.SkillsMatched = filter.Skills
		if match.SkillsMatched == nil {
			match.SkillsMatched = []string{}
		}
		match.SkillsMissing = []string{}
		match.ExperienceMatch = true
		matches = append(matches, match)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchPercentage != matches[j].MatchPercentage {
			return matches[i].MatchPercentage > matches[j].MatchPercentage
		}
		return matches[i].PostedAt > matches[j].PostedAt
	})
	return matches
}

// scoreJob 对单个岗位计算加权总分：
// 技能分 = (必备命中率×0.8 + 加分项命中率×0.2)×60
// 经验分 = 按年限与岗位要求的比值分档（25/20/15/10）
// 级别分 = 级别兼容系数×15，总分上限100
func (m *JobMatcher) scoreJob(userSkills []string, userYears int, userLevel types.ExperienceLevel, job types.JobPosting) matchResult {
	requiredSkills := lowerAll(job.RequiredSkills)
	preferredSkills := lowerAll(job.PreferredSkills)

	var skillsMatched, skillsMissing []string
	requiredMatched := 0
	for _, skill := range requiredSkills {
		if skillMatchesAny(skill, userSkills) {
			skillsMatched = append(skillsMatched, m.titleCaser.String(skill))
			requiredMatched++
		} else {
			skillsMissing = append(skillsMissing, m.titleCaser.String(skill))
		}
	}
	preferredMatched := 0
	for _, skill := range preferredSkills {
		if skillMatchesAny(skill, userSkills) {
			preferredMatched++
			titled := m.titleCaser.String(skill)
			if !containsString(skillsMatched, titled) {
				skillsMatched = append(skillsMatched, titled)
			}
		}
	}

	requiredRatio := 0.0
	if len(requiredSkills) > 0 {
		requiredRatio = float64(requiredMatched) / float64(len(requiredSkills))
	}
	preferredRatio := 0.0
	if len(preferredSkills) > 0 {
		preferredRatio = float64(preferredMatched) / float64(len(preferredSkills))
	}
	skillScore := (requiredRatio*0.8 + preferredRatio*0.2) * 60

	expScore := 10
	experienceMatch := false
	required := float64(job.ExperienceYears)
	switch {
	case float64(userYears) >= required:
		expScore = 25
		experienceMatch = true
	case float64(userYears) >= required*0.8:
		expScore = 20
		experienceMatch = true
	case float64(userYears) >= required*0.6:
		expScore = 15
	}

	levelScore := levelCompatibility(userLevel, job.ExperienceYears) * 15

	total := int(skillScore) + expScore + int(levelScore)
	if total > 100 {
		total = 100
	}

	if skillsMatched == nil {
		skillsMatched = []string{}
	}
	if skillsMissing == nil {
		skillsMissing = []string{}
	}
	return matchResult{
		score:           total,
		skillsMatched:   skillsMatched,
		skillsMissing:   skillsMissing,
		experienceMatch: experienceMatch,
	}
}

// levelCompatibility 级别兼容系数
// 岗位级别由年限要求推出（>=7高级、>=3中级、否则初级）；
// 精确匹配1.0、高于要求0.9、低一级0.7、再低0.4
func levelCompatibility(userLevel types.ExperienceLevel, jobExperienceYears int) float64 {
	userRank := 1
	switch userLevel {
	case types.LevelMid:
		userRank = 2
	case types.LevelSenior:
		userRank = 3
	}

	jobRank := 1
	switch {
	case jobExperienceYears >= 7:
		jobRank = 3
	case jobExperienceYears >= 3:
		jobRank = 2
	}

	switch {
	case userRank == jobRank:
		return 1.0
	case userRank > jobRank:
		return 0.9
	case userRank == jobRank-1:
		return 0.7
	}
	return 0.4
}

// toJobMatch 把岗位和分数组装成匹配结果条目
func (m *JobMatcher) toJobMatch(job types.JobPosting, score int) types.JobMatch {
	return types.JobMatch{
		JobID:              job.ID,
		Title:              job.Title,
		Company:            job.Company,
		Location:           job.Location,
		SalaryRange:        fmt.Sprintf("$%dk - $%dk", job.SalaryMin/1000, job.SalaryMax/1000),
		RequiredSkills:     job.RequiredSkills,
		ExperienceRequired: fmt.Sprintf("%d+ years", job.ExperienceYears),
		MatchPercentage:    score,
		Description:        job.Description,
		JobType:            job.JobType,
		Remote:             job.Remote,
		PostedAt:           job.PostedAt.Format(time.RFC3339),
	}
}

// skillMatchesAny 双向子串包含判定：任一方向包含即视为命中
func skillMatchesAny(jobSkill string, userSkills []string) bool {
	for _, userSkill := range userSkills {
		if strings.Contains(jobSkill, userSkill) || strings.Contains(userSkill, jobSkill) {
			return true
		}
	}
	return false
}

// jobHasAnySkill 岗位的必备或加分技能中是否出现任一给定技能
func jobHasAnySkill(job types.JobPosting, skills []string) bool {
	jobSkills := lowerAll(append(append([]string{}, job.RequiredSkills...), job.PreferredSkills...))
	for _, skill := range skills {
		for _, jobSkill := range jobSkills {
			if skill == jobSkill {
				return true
			}
		}
	}
	return false
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(strings.TrimSpace(v))
	}
	return out
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
