package matcher

import (
	"sort"
	"strings"

	"resume-analyzer-go/internal/types"
)

// Recommendations 汇总岗位推荐：top匹配、技能缺口、薪资估算和市场需求
func (m *JobMatcher) Recommendations(analysis *types.ResumeAnalysis) types.JobRecommendations {
	matches := m.FindMatches(analysis)

	top := matches
	if len(top) > 5 {
		top = top[:5]
	}

	return types.JobRecommendations{
		TopMatches:             top,
		TotalMatches:           len(matches),
		SkillGaps:              m.skillGaps(analysis.Skills),
		CareerLevel:            analysis.Experience.Level,
		RecommendedSalaryRange: m.EstimateSalary(analysis.Skills, analysis.Experience.Years),
		MarketDemand:           m.MarketDemand(analysis.Skills),
	}
}

// skillGaps 找出目录中有需求但候选人未掌握的必备技能
// 只收录至少2个岗位要求的技能；4个及以上标为高优先级，结果按岗位数降序，上限10个
func (m *JobMatcher) skillGaps(userSkills []string) []types.SkillGap {
	userLower := lowerAll(userSkills)

	demanded := make(map[string]int)
	var order []string
	for _, job := range m.catalog {
		for _, skill := range job.RequiredSkills {
			if _, ok := demanded[skill]; !ok {
				order = append(order, skill)
			}
			demanded[skill]++
		}
	}

	var gaps []types.SkillGap
	for _, skill := range order {
		if skillMatchesAny(strings.ToLower(skill), userLower) {
			continue
		}
		count := demanded[skill]
		if count < 2 {
			continue
		}
		priority := "medium"
		if count >= 4 {
			priority = "high"
		}
		gaps = append(gaps, types.SkillGap{Skill: skill, JobCount: count, Priority: priority})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].JobCount > gaps[j].JobCount
	})
	if len(gaps) > 10 {
		gaps = gaps[:10]
	}
	if gaps == nil {
		gaps = []types.SkillGap{}
	}
	return gaps
}

// EstimateSalary 基于技能重合度筛选相关岗位并按年限调整薪资区间
// 没有任何相关岗位时退回固定的保守区间
func (m *JobMatcher) EstimateSalary(userSkills []string, experienceYears int) types.SalaryEstimate {
	userLower := lowerAll(userSkills)

	var relevant []types.JobPosting
	for _, job := range m.catalog {
		jobSkills := lowerAll(job.RequiredSkills)
		overlap := 0
		for _, jobSkill := range jobSkills {
			for _, userSkill := range userLower {
				if strings.Contains(jobSkill, userSkill) {
					overlap++
					break
				}
			}
		}
		if float64(overlap) >= float64(len(jobSkills))*0.3 {
			relevant = append(relevant, job)
		}
	}
	if len(relevant) == 0 {
		return types.SalaryEstimate{Min: 50000, Max: 80000}
	}

	var salaries []int
	for _, job := range relevant {
		expFactor := 1.0
		if job.ExperienceYears > 0 {
			expFactor = float64(experienceYears) / float64(job.ExperienceYears)
			if expFactor > 1.2 {
				expFactor = 1.2
			}
		}
		salaries = append(salaries, int(float64(job.SalaryMin)*expFactor), int(float64(job.SalaryMax)*expFactor))
	}

	sum := 0
	for _, s := range salaries {
		sum += s
	}
	return types.SalaryEstimate{
		Min: int(float64(sum) * 0.25 / float64(len(salaries))),
		Max: int(float64(sum) * 0.75 / float64(len(salaries))),
	}
}

// MarketDemand 统计候选人每项技能在目录必备技能中的出现岗位数并给出需求档位
func (m *JobMatcher) MarketDemand(userSkills []string) types.MarketDemand {
	demand := make(map[string]types.SkillDemand)

	for _, skill := range lowerAll(userSkills) {
		jobCount := 0
		for _, job := range m.catalog {
			for _, reqSkill := range job.RequiredSkills {
				if strings.Contains(strings.ToLower(reqSkill), skill) {
					jobCount++
					break
				}
			}
		}
		if jobCount == 0 {
			continue
		}
		level := "Low"
		switch {
		case jobCount >= 4:
			level = "High"
		case jobCount >= 2:
			level = "Medium"
		}
		demand[m.titleCaser.String(skill)] = types.SkillDemand{JobCount: jobCount, DemandLevel: level}
	}

	total := 0
	for _, d := range demand {
		total += d.JobCount
	}

	strength := "Developing"
	if len(demand) > 0 {
		avg := float64(total) / float64(len(demand))
		switch {
		case avg >= 3:
			strength = "Strong"
		case avg >= 2:
			strength = "Moderate"
		}
	}

	return types.MarketDemand{
		SkillDemand:        demand,
		MarketStrength:     strength,
		TotalOpportunities: total,
	}
}
