package parser

import "strings"

// SectionCategory 简历章节类别
type SectionCategory string

const (
	// SectionSummary 个人总结/求职目标章节
	SectionSummary SectionCategory = "summary"
	// SectionExperience 工作经历章节
	SectionExperience SectionCategory = "experience"
	// SectionSkills 技能章节
	SectionSkills SectionCategory = "skills"
	// SectionEducation 教育背景章节
	SectionEducation SectionCategory = "education"
)

// 各类别的已知标题短语（全部小写）
var sectionHeaders = map[SectionCategory][]string{
	SectionSummary: {
		"professional summary", "summary", "profile", "objective", "career objective",
		"professional profile", "about me", "overview", "executive summary",
		"career summary", "personal statement", "professional overview",
	},
	SectionExperience: {
		"work experience", "professional experience", "employment history",
		"experience", "career history", "work history", "employment",
		"work background", "professional background",
	},
	SectionSkills: {
		"technical skills", "skills", "core competencies", "technical competencies",
		"programming skills", "technologies", "expertise", "proficiencies",
		"technical proficiencies", "core skills", "key skills", "abilities",
	},
	SectionEducation: {
		"education", "academic background", "qualifications", "academic qualifications",
		"educational background", "degrees", "certifications", "academic history",
	},
}

// 各类别切片的行数上限
var sectionLineCaps = map[SectionCategory]int{
	SectionSummary:    25,
	SectionExperience: 20,
	SectionSkills:     15,
	SectionEducation:  20,
}

// 跨类别的标题指示词，用于判断切片何时终止
var sectionIndicators = []string{
	"education", "experience", "work", "skills", "objective", "summary",
	"employment", "career", "background", "qualifications", "achievements",
	"projects", "certifications", "awards", "interests", "hobbies",
	"references", "leadership", "volunteer", "activities", "availability",
}

// ExtractSection 切出指定类别的章节内容
// 找到该类别第一个标题行后收集后续行，直到遇到任意类别的标题行或达到行数上限；
// 标题行本身不计入切片，"(tip"开头的提示行被丢弃。
// 没有匹配的标题或内容为空时返回 ("", false)。
func ExtractSection(text string, category SectionCategory) (string, bool) {
	headers, ok := sectionHeaders[category]
	if !ok {
		return "", false
	}
	lineCap := sectionLineCaps[category]
	lines := NewLineIndex(text).Lines()

	for i, line := range lines {
		lineLower := strings.ToLower(strings.TrimSpace(line))
		if !matchesHeader(lineLower, headers) {
			continue
		}
		var content []string
		for j := i + 1; j < len(lines); j++ {
			next := strings.TrimSpace(lines[j])
			if IsSectionHeader(next) {
				break
			}
			if next == "" || strings.HasPrefix(strings.ToLower(next), "(tip") {
				continue
			}
			content = append(content, next)
			if len(content) >= lineCap {
				break
			}
		}
		if len(content) == 0 {
			return "", false
		}
		// 仅使用第一个匹配的标题
		return strings.Join(content, "\n"), true
	}
	return "", false
}

// matchesHeader 判断一行是否为给定类别的标题
// 形式：与标题完全一致、"标题:"前缀、或包含标题且行足够短（不超过标题长+15）
func matchesHeader(lineLower string, headers []string) bool {
	for _, header := range headers {
		if lineLower == header || strings.HasPrefix(lineLower, header+":") {
			return true
		}
		if strings.Contains(lineLower, header) && len(lineLower) < len(header)+15 {
			return true
		}
	}
	return false
}

// IsSectionHeader 判断一行是否是任意类别的章节标题
func IsSectionHeader(line string) bool {
	lineClean := strings.ToLower(strings.TrimSpace(line))
	if lineClean == "" {
		return false
	}
	for _, indicator := range sectionIndicators {
		if lineClean == indicator ||
			strings.HasPrefix(lineClean, indicator+":") ||
			strings.HasPrefix(lineClean, indicator+" ") ||
			strings.HasSuffix(lineClean, indicator) {
			return true
		}
	}
	return false
}
