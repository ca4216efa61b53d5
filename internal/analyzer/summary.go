package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/types"
)

// 移除简历模板中残留的提示性括号内容
var tipRegex = regexp.MustCompile(`(?s)\(Tip:.*?\)`)

// extractSummarySection 提取显式的个人总结章节，未找到返回空串
func extractSummarySection(text string) string {
	section, ok := parser.ExtractSection(text, parser.SectionSummary)
	if !ok {
		return ""
	}
	summary := strings.Join(strings.Fields(section), " ")
	summary = tipRegex.ReplaceAllString(summary, "")
	return strings.TrimSpace(summary)
}

// synthesizeSummary 在没有可用显式总结时，根据抽取结果拼装一段总结
// 开头句按经验级别选择，随后依次追加头衔、技能子句和级别对应的结尾句
func synthesizeSummary(skills []string, experience types.ExperienceInfo, education types.EducationInfo) string {
	var parts []string

	switch experience.Level {
	case types.LevelStudent:
		parts = append(parts, fmt.Sprintf("Motivated %s student", education.HighestDegree))
		if len(skills) > 0 {
			top := skills
			if len(top) > 3 {
				top = top[:3]
			}
			parts = append(parts, fmt.Sprintf("with demonstrated skills in %s", strings.Join(top, ", ")))
		}
	case types.LevelEntry:
		parts = append(parts, "Enthusiastic entry-level professional")
		if experience.Years > 0 {
			parts = append(parts, fmt.Sprintf("with %d year(s) of experience", experience.Years))
		}
	default:
		if experience.Years > 0 {
			parts = append(parts, fmt.Sprintf("Experienced professional with %d years", experience.Years))
		} else {
			parts = append(parts, "Dedicated professional")
		}
	}

	if len(experience.JobTitles) > 0 {
		parts = append(parts, fmt.Sprintf("in %s", strings.ToLower(experience.JobTitles[0])))
	}

	if len(skills) > 0 {
		if len(skills) > 3 {
			parts = append(parts, fmt.Sprintf("Strong background in %s, and %s", strings.Join(skills[:2], ", "), skills[2]))
		} else {
			parts = append(parts, fmt.Sprintf("Skilled in %s", strings.Join(skills, ", ")))
		}
	}

	summary := strings.Join(parts, " ")
	if experience.Level == types.LevelStudent {
		summary += ". Seeking opportunities to apply academic knowledge and develop professional skills."
	} else {
		summary += ". Committed to delivering high-quality results and continuous professional development."
	}
	return summary
}
