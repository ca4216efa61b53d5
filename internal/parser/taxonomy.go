package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-analyzer-go/internal/types"
)

// SkillTaxonomy 技能词表：按分类组织的不可变技能字典
// 技能抽取器与岗位匹配器共享同一份实例，避免两份字面量各自漂移。
// 构造一次后只读，可安全地被并发请求共享。
type SkillTaxonomy struct {
	categories map[string][]string
	order      []string // 分类的固定遍历顺序，保证抽取结果可复现

	// 每个技能预编译的词边界正则，键为小写技能名
	patterns map[string]*regexp.Regexp

	// 标准大小写覆盖表，未命中时退回标题式大小写
	canonical map[string]string

	titleCaser cases.Caser
}

// 默认技能分类词表。来自对大量简历样本的归纳，全部小写。
var defaultSkillCategories = map[string][]string{
	"programming_languages": {
		"python", "javascript", "java", "c++", "c#", "ruby", "php", "go", "rust",
		"typescript", "kotlin", "swift", "scala", "r", "matlab", "perl", "c",
		"objective-c", "dart", "elixir", "haskell", "lua", "shell", "bash",
	},
	"web_technologies": {
		"html", "css", "react", "angular", "vue.js", "vue", "node.js", "nodejs",
		"express", "django", "flask", "spring", "laravel", "rails", "asp.net",
		"jquery", "bootstrap", "sass", "less", "webpack",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra",
		"oracle", "sqlite", "dynamodb", "firebase", "sql",
	},
	"cloud_platforms": {
		"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean",
		"docker", "kubernetes", "terraform", "ansible", "jenkins",
	},
	"data_science": {
		"machine learning", "deep learning", "tensorflow", "pytorch", "scikit-learn",
		"pandas", "numpy", "matplotlib", "tableau", "power bi", "excel", "statistics",
	},
	"mobile_development": {
		"android", "ios", "react native", "flutter", "xamarin", "ionic",
		"unity", "unreal engine",
	},
	"soft_skills": {
		"customer service", "communication", "leadership", "teamwork", "problem solving",
		"time management", "organization", "project management", "public speaking",
		"negotiation", "sales", "marketing", "training", "mentoring", "coaching",
		"cash handling", "numeracy", "responsibility",
	},
	"business_skills": {
		"accounting", "finance", "economics", "operations", "consulting", "strategy",
		"business analysis", "reporting", "budgeting", "management", "administration",
	},
	"tools_and_platforms": {
		"git", "github", "gitlab", "jira", "confluence", "slack", "trello",
		"figma", "photoshop", "illustrator", "vs code", "microsoft office",
		"cash register", "pos system",
	},
}

// 分类的固定顺序
var defaultCategoryOrder = []string{
	"programming_languages",
	"web_technologies",
	"databases",
	"cloud_platforms",
	"data_science",
	"mobile_development",
	"soft_skills",
	"business_skills",
	"tools_and_platforms",
}

// 标准大小写覆盖表（标题式大小写处理不好的多词软技能）
var canonicalSkillCasing = map[string]string{
	"customer service": "Customer Service",
	"communication":    "Communication",
	"teamwork":         "Teamwork",
	"leadership":       "Leadership",
	"cash handling":    "Cash Handling",
	"problem solving":  "Problem Solving",
	"time management":  "Time Management",
	"organization":     "Organization",
}

// NewDefaultSkillTaxonomy 构造默认技能词表，进程启动时创建一次
func NewDefaultSkillTaxonomy() *SkillTaxonomy {
	t := &SkillTaxonomy{
		categories: defaultSkillCategories,
		order:      defaultCategoryOrder,
		patterns:   make(map[string]*regexp.Regexp),
		canonical:  canonicalSkillCasing,
		titleCaser: cases.Title(language.English),
	}
	for _, skills := range t.categories {
		for _, skill := range skills {
			t.patterns[skill] = compileSkillPattern(skill)
		}
	}
	return t
}

// compileSkillPattern 为单个技能构造词边界正则
// 以符号开头/结尾的技能（c++、c#）不能用 \b，改用显式的非字母数字边界
func compileSkillPattern(skill string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(skill)
	prefix := `\b`
	if !isWordChar(skill[0]) {
		prefix = `(?:^|[^a-z0-9])`
	}
	suffix := `\b`
	if !isWordChar(skill[len(skill)-1]) {
		suffix = `(?:$|[^a-z0-9+#])`
	}
	return regexp.MustCompile(prefix + quoted + suffix)
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}

// MatchesIn 返回在小写文本中命中的全部技能（按固定分类顺序，已做标准化大小写）
func (t *SkillTaxonomy) MatchesIn(lowerText string) []string {
	var matched []string
	seen := make(map[string]struct{})
	padded := " " + lowerText + " "
	for _, category := range t.order {
		for _, skill := range t.categories[category] {
			if _, ok := seen[skill]; ok {
				continue
			}
			hit := t.patterns[skill].MatchString(lowerText)
			if !hit && strings.Contains(skill, " ") {
				// 多词技能退回空白填充的子串检查
				hit = strings.Contains(padded, " "+skill+" ")
			}
			if hit {
				seen[skill] = struct{}{}
				matched = append(matched, t.Format(skill))
			}
		}
	}
	return matched
}

// Format 返回技能的展示形式：优先覆盖表，否则标题式大小写
func (t *SkillTaxonomy) Format(skill string) string {
	if canonical, ok := t.canonical[strings.ToLower(skill)]; ok {
		return canonical
	}
	return t.titleCaser.String(skill)
}

// Categories 返回全部分类及其技能，用于词表展示接口
func (t *SkillTaxonomy) Categories() []types.SkillCategory {
	result := make([]types.SkillCategory, 0, len(t.order))
	for _, category := range t.order {
		skills := t.categories[category]
		result = append(result, types.SkillCategory{
			Category: formatCategoryName(category),
			Skills:   append([]string(nil), skills...),
			Count:    len(skills),
		})
	}
	return result
}

// CategoryOf 返回技能所属的分类名，未知技能返回空
func (t *SkillTaxonomy) CategoryOf(skill string) string {
	lower := strings.ToLower(skill)
	for _, category := range t.order {
		for _, s := range t.categories[category] {
			if s == lower {
				return formatCategoryName(category)
			}
		}
	}
	return ""
}

// TotalSkills 返回词表中的技能总数
func (t *SkillTaxonomy) TotalSkills() int {
	total := 0
	for _, skills := range t.categories {
		total += len(skills)
	}
	return total
}

// formatCategoryName 把 snake_case 分类名转为展示名，例如 "soft_skills" -> "Soft Skills"
func formatCategoryName(category string) string {
	words := strings.Split(category, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
