package parser

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/types"
)

// EducationDetector 教育机构识别器
// 在无标注数据的前提下，通过三种独立策略（显式后缀、学位上下文、专有名词）
// 在逐行扫描中定位机构名称，并用一组有序的置信度规则累加打分。
// 所有词表与正则在包加载时构建一次，之后只读，可被并发请求共享。
type EducationDetector struct {
	minConfidence   float64 // 候选保留的最低置信度
	minContextScore float64 // 触发专有名词策略的上下文分数
}

// DetectorOption 识别器配置选项
type DetectorOption func(*EducationDetector)

// WithMinConfidence 覆盖候选保留阈值
func WithMinConfidence(v float64) DetectorOption {
	return func(d *EducationDetector) {
		d.minConfidence = v
	}
}

// WithMinContextScore 覆盖专有名词策略的触发阈值
func WithMinContextScore(v float64) DetectorOption {
	return func(d *EducationDetector) {
		d.minContextScore = v
	}
}

// NewEducationDetector 创建机构识别器
func NewEducationDetector(options ...DetectorOption) *EducationDetector {
	d := &EducationDetector{
		minConfidence:   constants.MinInstitutionConfidence,
		minContextScore: constants.MinContextScore,
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

// 机构后缀词表，按类别组织，含多语言变体
var institutionSuffixes = map[string][]string{
	"university":  {"university", "univ", "università", "université", "universidad", "universität", "universidade", "uniwersytet"},
	"college":     {"college", "coll", "colegio", "collège"},
	"institute":   {"institute", "institut", "instituto", "istituto", "instytut"},
	"school":      {"school", "école", "escuela", "scuola", "schule", "szkola"},
	"academy":     {"academy", "académie", "academia", "accademia", "akademie"},
	"polytechnic": {"polytechnic", "poly", "politécnico", "politecnico"},
	"technology":  {"technology", "tech", "tecnología", "technologie", "tecnologia"},
}

// 机构前缀线索：知名校名、"university of" 式开头、国别形容词等
var institutionPrefixes = []string{
	"iit", "mit", "stanford", "harvard", "oxford", "cambridge",
	"university of", "college of", "institute of", "school of",
	"national", "international", "indian", "american", "british",
	"royal", "imperial", "federal", "state", "public", "private",
}

// 学位关键词的正则主体，固定顺序，均为非捕获形式
var degreeBodies = []string{
	`b\.?tech\.?|bachelor.*?technology|btech`,
	`b\.?e\.?|bachelor.*?engineering|be`,
	`b\.?sc\.?|bachelor.*?science|bsc`,
	`b\.?a\.?|bachelor.*?arts|ba`,
	`b\.?com\.?|bachelor.*?commerce|bcom`,
	`m\.?tech\.?|master.*?technology|mtech`,
	`m\.?sc\.?|master.*?science|msc`,
	`m\.?a\.?|master.*?arts|ma`,
	`mba|master.*?business`,
	`phd|ph\.?d\.?|doctorate`,
	`diploma|certificate`,
}

// 教育上下文关键词，用于窗口化的上下文打分
var educationContextWords = []string{
	"graduated", "degree", "major", "minor", "gpa", "cgpa", "grade",
	"semester", "year", "batch", "class", "alumni", "student",
	"education", "academic", "study", "studied", "pursuing",
}

// 排除词：出现在候选名里说明这是公司/场所而不是学校
var institutionExcludeWords = []string{
	"company", "corporation", "corp", "inc", "ltd", "llc",
	"hospital", "clinic", "bank", "shop", "store", "restaurant",
	"hotel", "club", "gym", "sports", "football", "soccer", "cricket",
}

// 常见的非机构词：简历结构词混入候选名时直接否决
var commonNonInstitutionWords = []string{
	"resume", "curriculum", "experience", "skills", "projects",
	"contact", "phone", "email", "address", "objective",
}

var (
	// 编译后的学位正则（用于行内与邻近行的学位检测）
	degreeRegexes []*regexp.Regexp
	// 学位 + from/at/@ + 大写开头短语 的组合正则（策略二）
	degreeContextRegexes []*regexp.Regexp
	// 显式后缀匹配（策略一）：大写开头短语 + 任意已知后缀
	explicitSuffixRegex *regexp.Regexp
	// 2-5个大写开头单词构成的专有名词短语（策略三）
	properNounRegex = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+){1,4})\b`)
	// 全部后缀的扁平列表
	allSuffixes []string

	whitespaceRegex = regexp.MustCompile(`\s+`)
)

func init() {
	for _, variants := range institutionSuffixes {
		allSuffixes = append(allSuffixes, variants...)
	}
	sort.Strings(allSuffixes)

	escaped := make([]string, len(allSuffixes))
	for i, s := range allSuffixes {
		escaped[i] = regexp.QuoteMeta(s)
	}
	// 后缀部分不区分大小写，但短语必须以大写字母开头
	explicitSuffixRegex = regexp.MustCompile(
		`\b([A-Z][a-zA-Z\s&\-.]+(?i:` + strings.Join(escaped, "|") + `))\b`)

	for _, body := range degreeBodies {
		degreeRegexes = append(degreeRegexes,
			regexp.MustCompile(`(?i)\b(?:`+body+`)\b`))
		degreeContextRegexes = append(degreeContextRegexes,
			regexp.MustCompile(`(?i:\b(?:`+body+`)\b.*?(?:from|at|@)\s+)([A-Z][a-zA-Z\s&\-.]+)`))
	}
}

// confidenceRule 置信度规则：名称 + 对候选项的加减分函数
// 规则按固定顺序独立求值后求和，再截断到 [0,1]，便于逐条审计和测试
type confidenceRule struct {
	name  string
	score func(in ruleInput) float64
}

// ruleInput 规则输入：候选名、所在行及其上下文
type ruleInput struct {
	name      string // 候选机构名（原始大小写）
	nameLower string
	lineLower string
	lineIndex int
	index     *LineIndex
}

// confidenceRules 有序规则表。权重为经验值，保持原状。
var confidenceRules = []confidenceRule{
	{
		name: "known_suffix",
		score: func(in ruleInput) float64 {
			for _, suffix := range allSuffixes {
				if strings.Contains(in.nameLower, suffix) {
					return 0.4
				}
			}
			return 0
		},
	},
	{
		name: "known_prefix",
		score: func(in ruleInput) float64 {
			for _, prefix := range institutionPrefixes {
				if strings.Contains(in.nameLower, prefix) {
					return 0.2
				}
			}
			return 0
		},
	},
	{
		name: "context_words_in_line",
		score: func(in ruleInput) float64 {
			found := 0
			for _, word := range educationContextWords {
				if strings.Contains(in.lineLower, word) {
					found++
				}
			}
			if found > 3 {
				found = 3
			}
			return float64(found) * 0.1
		},
	},
	{
		name: "degree_nearby",
		score: func(in ruleInput) float64 {
			for _, line := range in.index.Window(in.lineIndex, 2) {
				for _, re := range degreeRegexes {
					if re.MatchString(line) {
						return 0.15
					}
				}
			}
			return 0
		},
	},
	{
		name: "exclude_word",
		score: func(in ruleInput) float64 {
			for _, word := range institutionExcludeWords {
				if strings.Contains(in.nameLower, word) {
					return -0.5
				}
			}
			return 0
		},
	},
	{
		name: "capitalized_words",
		score: func(in ruleInput) float64 {
			words := strings.Fields(in.name)
			if len(words) < 2 {
				return 0
			}
			for _, w := range words {
				if len(w) > 2 && (w[0] < 'A' || w[0] > 'Z') {
					return 0
				}
			}
			return 0.1
		},
	},
	{
		name: "reasonable_length",
		score: func(in ruleInput) float64 {
			if n := len(in.name); n >= 10 && n <= 80 {
				return 0.1
			}
			return 0
		},
	},
}

// DetectInstitutions 在文本中识别教育机构候选项
// 返回按置信度降序排列、按名称（大小写无关）去重后的候选列表；
// 文本为空或无任何线索时返回空列表，绝不凭空构造机构。
func (d *EducationDetector) DetectInstitutions(text string) []types.InstitutionCandidate {
	index := NewLineIndex(text)
	var candidates []types.InstitutionCandidate
	for i, line := range index.Lines() {
		candidates = append(candidates, d.detectInLine(line, i, index)...)
	}
	unique := dedupeCandidates(candidates)
	// 去重保留首次出现的上下文，最终顺序按置信度降序
	sort.SliceStable(unique, func(a, b int) bool {
		return unique[a].Confidence > unique[b].Confidence
	})
	return unique
}

// BestInstitution 返回置信度最高的机构名，没有则返回空
func (d *EducationDetector) BestInstitution(text string) string {
	institutions := d.DetectInstitutions(text)
	if len(institutions) == 0 {
		return ""
	}
	return institutions[0].Name
}

// AllInstitutions 返回置信度不低于 minConfidence 的全部机构名
func (d *EducationDetector) AllInstitutions(text string, minConfidence float64) []string {
	var names []string
	for _, inst := range d.DetectInstitutions(text) {
		if inst.Confidence >= minConfidence {
			names = append(names, inst.Name)
		}
	}
	return names
}

// DetectWithDetails 返回完整候选列表和按置信度分档的统计信息
func (d *EducationDetector) DetectWithDetails(text string) *types.DetectionDetails {
	institutions := d.DetectInstitutions(text)
	details := &types.DetectionDetails{
		Institutions:     institutions,
		TotalFound:       len(institutions),
		HighConfidence:   []types.InstitutionCandidate{},
		MediumConfidence: []types.InstitutionCandidate{},
		Analysis: types.DetectionAnalysis{
			HasDegreeContext:         hasDegreeContext(text),
			EducationContextStrength: overallEducationContext(text),
			ProperNounsFound:         len(extractProperNouns(text)),
		},
	}
	if len(institutions) > 0 {
		details.BestMatch = institutions[0].Name
	}
	for _, inst := range institutions {
		switch {
		case inst.Confidence > 0.7:
			details.HighConfidence = append(details.HighConfidence, inst)
		case inst.Confidence >= 0.4:
			details.MediumConfidence = append(details.MediumConfidence, inst)
		}
	}
	return details
}

// detectInLine 对单行依次运行三种策略并打分
func (d *EducationDetector) detectInLine(line string, lineIndex int, index *LineIndex) []types.InstitutionCandidate {
	cleaned := cleanLine(line)
	if len(cleaned) < 3 {
		return nil
	}

	var detected []string
	detected = append(detected, findExplicitInstitutions(cleaned)...)
	detected = append(detected, findDegreeContextInstitutions(cleaned)...)
	detected = append(detected, d.findContextInstitutions(cleaned, lineIndex, index)...)

	var candidates []types.InstitutionCandidate
	for _, name := range detected {
		confidence := calculateConfidence(name, cleaned, lineIndex, index)
		if confidence > d.minConfidence {
			candidates = append(candidates, types.InstitutionCandidate{
				Name:       name,
				Confidence: confidence,
				SourceLine: lineIndex,
				Line:       strings.TrimSpace(line),
				Context:    index.Context(lineIndex, 2),
			})
		}
	}
	return candidates
}

// findExplicitInstitutions 策略一：大写开头短语 + 已知机构后缀
func findExplicitInstitutions(line string) []string {
	var institutions []string
	for _, match := range explicitSuffixRegex.FindAllStringSubmatch(line, -1) {
		name := strings.TrimSpace(match[1])
		if isValidInstitutionName(name) {
			institutions = append(institutions, name)
		}
	}
	return institutions
}

// findDegreeContextInstitutions 策略二：学位关键词 + from/at/@ + 大写开头短语
func findDegreeContextInstitutions(line string) []string {
	var institutions []string
	for _, re := range degreeContextRegexes {
		for _, match := range re.FindAllStringSubmatch(line, -1) {
			name := strings.TrimSpace(match[1])
			if len(name) > 3 && isValidInstitutionName(name) {
				institutions = append(institutions, name)
			}
		}
	}
	return institutions
}

// findContextInstitutions 策略三：仅当教育上下文足够强时，提取专有名词短语
func (d *EducationDetector) findContextInstitutions(line string, lineIndex int, index *LineIndex) []string {
	if educationContextScore(line, lineIndex, index) <= d.minContextScore {
		return nil
	}
	var institutions []string
	for _, noun := range extractProperNouns(line) {
		if len(noun) > 5 && len(strings.Fields(noun)) >= 2 && isValidInstitutionName(noun) {
			institutions = append(institutions, noun)
		}
	}
	return institutions
}

// calculateConfidence 按规则表累加置信度并截断到 [0,1]
func calculateConfidence(name, line string, lineIndex int, index *LineIndex) float64 {
	in := ruleInput{
		name:      name,
		nameLower: strings.ToLower(name),
		lineLower: strings.ToLower(line),
		lineIndex: lineIndex,
		index:     index,
	}
	confidence := 0.0
	for _, rule := range confidenceRules {
		confidence += rule.score(in)
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	if confidence < 0 {
		confidence = 0
	}
	return confidence
}

// educationContextScore 计算某行的窗口化教育上下文得分（±3行），上限1.0
func educationContextScore(line string, lineIndex int, index *LineIndex) float64 {
	score := 0.0
	lineLower := strings.ToLower(line)
	for _, word := range educationContextWords {
		if strings.Contains(lineLower, word) {
			score += 0.2
		}
	}
	for _, nearby := range index.Window(lineIndex, 3) {
		nearbyLower := strings.ToLower(nearby)
		for _, word := range educationContextWords {
			if strings.Contains(nearbyLower, word) {
				score += 0.1
			}
		}
		for _, re := range degreeRegexes {
			if re.MatchString(nearbyLower) {
				score += 0.3
				break
			}
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// extractProperNouns 提取2-5个大写开头单词构成的短语，长度限制(5,100)
func extractProperNouns(text string) []string {
	var nouns []string
	for _, match := range properNounRegex.FindAllStringSubmatch(text, -1) {
		if n := len(match[1]); n > 5 && n < 100 {
			nouns = append(nouns, match[1])
		}
	}
	return nouns
}

// isValidInstitutionName 机构名有效性校验
// 拒绝：长度超出[5,150]、字母+空格占比低于70%、含排除词或简历结构词
func isValidInstitutionName(name string) bool {
	if name == "" {
		return false
	}
	nameLower := strings.ToLower(strings.TrimSpace(name))
	for _, word := range institutionExcludeWords {
		if strings.Contains(nameLower, word) {
			return false
		}
	}
	if len(name) < 5 || len(name) > 150 {
		return false
	}
	letters := 0
	for _, c := range name {
		if isAlpha(c) || c == ' ' {
			letters++
		}
	}
	if float64(letters)/float64(len([]rune(name))) < 0.7 {
		return false
	}
	for _, word := range commonNonInstitutionWords {
		if strings.Contains(nameLower, word) {
			return false
		}
	}
	return true
}

// hasDegreeContext 文本中是否出现任意学位关键词
func hasDegreeContext(text string) bool {
	for _, re := range degreeRegexes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// overallEducationContext 整体教育上下文强度 = 上下文关键词命中率，上限1.0
func overallEducationContext(text string) float64 {
	textLower := strings.ToLower(text)
	found := 0
	for _, word := range educationContextWords {
		if strings.Contains(textLower, word) {
			found++
		}
	}
	ratio := float64(found) / float64(len(educationContextWords))
	if ratio > 1.0 {
		ratio = 1.0
	}
	return ratio
}

// dedupeCandidates 按归一化名称去重
// 首次出现的候选保留其上下文字段，但置信度取同名候选中的最大值
func dedupeCandidates(candidates []types.InstitutionCandidate) []types.InstitutionCandidate {
	seen := make(map[string]int)
	var unique []types.InstitutionCandidate
	for _, cand := range candidates {
		key := strings.ToLower(strings.TrimSpace(cand.Name))
		if idx, ok := seen[key]; ok {
			if cand.Confidence > unique[idx].Confidence {
				unique[idx].Confidence = cand.Confidence
			}
			continue
		}
		seen[key] = len(unique)
		unique = append(unique, cand)
	}
	return unique
}

// cleanLine Unicode规范化(NFKD)并压缩空白
func cleanLine(text string) string {
	text = norm.NFKD.String(text)
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}

// isAlpha 仅ASCII字母视为字母，和名称占比校验的口径保持一致
func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
