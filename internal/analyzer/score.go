package analyzer

import (
	"regexp"
	"strings"

	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/types"
)

var (
	phoneShapeRegex    = regexp.MustCompile(`\d{3,5}\s?\d{3}\s?\d{3}`)
	locationShapeRegex = regexp.MustCompile(`[A-Z][a-zA-Z\s]+,\s*[A-Z]`)
)

var (
	summaryKeywords    = []string{"objective", "summary", "skills"}
	experienceKeywords = []string{"experience", "work", "volunteer"}
)

// CalculateScore 计算简历完整度得分
// 各加分项相互独立、逐项累加，最终上限100：
//   - 联系方式形状（邮箱@、电话数字串、地点形状、姓名）
//   - 文本体量（词数阈值）与章节关键词
//   - 技能数量档位和经历档位，阈值按经验级别区分（学生使用更宽松的档位）
//   - 最高学位档位
func CalculateScore(text string, skills []string, experience types.ExperienceInfo, education types.EducationInfo) int {
	score := 0
	textLower := strings.ToLower(text)

	if strings.Contains(text, "@") {
		score += 8
	}
	if phoneShapeRegex.MatchString(text) {
		score += 8
	}
	if locationShapeRegex.MatchString(text) {
		score += 4
	}
	if parser.ExtractName(text) != "" {
		score += 5
	}

	wordCount := len(strings.Fields(text))
	if wordCount > 200 {
		score += 8
	}
	if wordCount > 400 {
		score += 4
	}

	if containsAnyKeyword(textLower, summaryKeywords) {
		score += 4
	}
	if containsAnyKeyword(textLower, experienceKeywords) {
		score += 4
	}

	score += skillCountBonus(len(skills), experience.Level)
	score += experienceBonus(experience)
	score += degreeBonus(education.HighestDegree)

	if score > 100 {
		score = 100
	}
	return score
}

// skillCountBonus 技能数量档位加分，学生档位更宽松
func skillCountBonus(count int, level types.ExperienceLevel) int {
	if level == types.LevelStudent {
		switch {
		case count >= 5:
			return 25
		case count >= 3:
			return 20
		case count >= 1:
			return 15
		}
		return 0
	}
	switch {
	case count >= 10:
		return 25
	case count >= 5:
		return 20
	case count >= 2:
		return 15
	}
	return 0
}

// experienceBonus 工作经历加分，学生以头衔为主，其余以年限档位为主
func experienceBonus(experience types.ExperienceInfo) int {
	bonus := 0
	if experience.Level == types.LevelStudent {
		if len(experience.JobTitles) > 0 {
			bonus += 15
		}
		if experience.Years >= 1 {
			bonus += 5
		}
		return bonus
	}
	switch {
	case experience.Years >= 5:
		bonus += 15
	case experience.Years >= 2:
		bonus += 12
	case experience.Years >= 1:
		bonus += 8
	}
	if len(experience.JobTitles) > 0 {
		bonus += 5
	}
	return bonus
}

// degreeBonus 最高学位档位加分，未识别学位不加分
func degreeBonus(degree string) int {
	switch {
	case degree == "":
		return 0
	case strings.Contains(degree, parser.DegreePhD):
		return 10
	case strings.Contains(degree, parser.DegreeMasters):
		return 9
	case strings.Contains(degree, parser.DegreeBachelors):
		return 8
	case strings.Contains(degree, parser.DegreeHighSchool) || strings.Contains(degree, "Year"):
		return 6
	}
	return 5
}

func containsAnyKeyword(textLower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(textLower, kw) {
			return true
		}
	}
	return false
}
