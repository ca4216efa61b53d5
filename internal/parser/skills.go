package parser

import "strings"

// ExtractSkills 基于共享技能词表抽取技能
// 先在全文匹配，再单独切出技能章节重扫一遍（捕获只在列表里出现的技能），
// 结果按词表固定顺序去重并截断到 maxSkills。
func ExtractSkills(text string, taxonomy *SkillTaxonomy, maxSkills int) []string {
	seen := make(map[string]struct{})
	var skills []string

	add := func(matched []string) {
		for _, skill := range matched {
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			skills = append(skills, skill)
		}
	}

	add(taxonomy.MatchesIn(strings.ToLower(text)))

	if section, ok := ExtractSection(text, SectionSkills); ok {
		add(taxonomy.MatchesIn(strings.ToLower(section)))
	}

	if maxSkills > 0 && len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	if skills == nil {
		skills = []string{}
	}
	return skills
}
