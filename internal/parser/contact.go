package parser

import (
	"regexp"
	"strings"

	"resume-analyzer-go/internal/types"
)

// ExtractContactInfo 从简历文本抽取联系方式
// 四个字段相互独立，任何一项抽取失败只会留空，不会影响其他字段
func ExtractContactInfo(text string) types.ContactInfo {
	return types.ContactInfo{
		Name:     ExtractName(text),
		Email:    ExtractEmail(text),
		Phone:    ExtractPhone(text),
		Location: ExtractLocation(text),
	}
}

// 姓名行的跳过指示词：包含这些内容的行不可能是姓名
var nameSkipIndicators = []string{
	"page", "tip:", "@", "phone", "mobile", "email",
	"address", "resume", "curriculum", "cv",
}

// 姓名中不允许出现的结构词
var nameExclusions = []string{
	"resume", "curriculum vitae", "cv", "email", "phone", "address",
	"page", "tip", "career", "objective", "education", "experience",
	"skills", "work", "contact", "details", "information",
}

// 姓名的兜底正则，按优先级排列（带标签的在前，宽泛的在后）
var nameFallbackPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([A-Z][a-z]+ [A-Z][a-z]+(?:\s[A-Z][a-z]+)?)\s*$`),
	regexp.MustCompile(`^([A-Z][a-z]+\s[A-Z]\.\s[A-Z][a-z]+)\s*$`),
	regexp.MustCompile(`Name:\s*([A-Z][a-z\s]+)`),
	regexp.MustCompile(`RESUME OF\s+([A-Z][a-z\s]+)`),
	regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+)`),
}

var alphaWordRegex = regexp.MustCompile(`^[A-Za-z]+$`)

// ExtractName 从前8行中识别姓名
// 先用"2-4个首字母大写的纯字母单词"规则逐行匹配，失败后退回兜底正则；
// 全部失败时返回空字符串（抽取缺失不是错误）。
func ExtractName(text string) string {
	lines := NewLineIndex(text).Lines()
	limit := 8
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, raw := range lines[:limit] {
		line := strings.TrimSpace(raw)
		if len(line) < 3 {
			continue
		}
		if containsAny(strings.ToLower(line), nameSkipIndicators) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		allShaped := true
		for _, w := range words {
			if w[0] < 'A' || w[0] > 'Z' || !alphaWordRegex.MatchString(w) {
				allShaped = false
				break
			}
		}
		if allShaped {
			candidate := strings.Join(words, " ")
			if isValidName(candidate) {
				return candidate
			}
		}
	}
	// 兜底：带标签或宽泛形状的正则
	for _, re := range nameFallbackPatterns {
		for _, raw := range lines[:limit] {
			match := re.FindStringSubmatch(raw)
			if match == nil {
				continue
			}
			candidate := strings.TrimSpace(match[1])
			if isValidName(candidate) {
				return candidate
			}
		}
	}
	return ""
}

// isValidName 姓名有效性校验：2-4个单词、单词长度2-20、不含结构词
func isValidName(name string) bool {
	if len(name) < 3 {
		return false
	}
	nameLower := strings.ToLower(name)
	for _, exclusion := range nameExclusions {
		if strings.Contains(nameLower, exclusion) {
			return false
		}
	}
	words := strings.Fields(name)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if len(w) < 2 || len(w) > 20 {
			return false
		}
	}
	return true
}

// 邮箱模式，带标签的优先于裸匹配
var emailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Email:\s*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
	regexp.MustCompile(`(?i)E-mail:\s*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
	regexp.MustCompile(`(?i)Contact:\s*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
	regexp.MustCompile(`\b([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})\b`),
}

// ExtractEmail 抽取第一个通过校验的邮箱地址，统一转小写
func ExtractEmail(text string) string {
	for _, re := range emailPatterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			if isValidEmail(match[1]) {
				return strings.ToLower(match[1])
			}
		}
	}
	return ""
}

// isValidEmail 轻量校验：local和domain非空、domain含点且长度>=3
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	local, domain := parts[0], parts[1]
	if local == "" || domain == "" {
		return false
	}
	if !strings.Contains(domain, ".") || len(domain) < 3 {
		return false
	}
	return true
}

// 地址模式，按"城市, 地区[, 邮编]"的形状从具体到宽泛排列
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+\s+[A-Z][a-zA-Z\s]+,\s*[A-Z][a-zA-Z\s]+,\s*[\dA-Z]{2,10})`),
	regexp.MustCompile(`([A-Z][a-zA-Z\s]+,\s*[A-Z][a-zA-Z\s]+,\s*[\dA-Z]{2,10})`),
	regexp.MustCompile(`([A-Z][a-zA-Z\s]+,\s*[A-Z]{2,3})`),
	regexp.MustCompile(`([A-Z][a-zA-Z\s]+,\s*[A-Z][a-zA-Z\s]{2,})`),
	regexp.MustCompile(`(?i:location|address|based in|city)[:.]?\s*([A-Z][a-zA-Z\s,.-]+)`),
}

// 地址中不允许出现的结构词
var locationExcludeWords = []string{
	"email", "phone", "mobile", "resume", "page", "tip", "skills",
	"experience", "education", "objective", "summary", "references",
}

// ExtractLocation 在前8行中按模式识别所在地
func ExtractLocation(text string) string {
	lines := NewLineIndex(text).Lines()
	limit := 8
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		for _, re := range locationPatterns {
			for _, match := range re.FindAllStringSubmatch(line, -1) {
				candidate := strings.TrimSpace(match[len(match)-1])
				if isValidLocation(candidate) {
					return candidate
				}
			}
		}
	}
	return ""
}

// isValidLocation 地址有效性校验：长度[3,150]、不含结构词、字母/空格/标点占比>=70%
func isValidLocation(location string) bool {
	if len(location) < 3 || len(location) > 150 {
		return false
	}
	if containsAny(strings.ToLower(location), locationExcludeWords) {
		return false
	}
	valid := 0
	for _, c := range location {
		if isAlpha(c) || c == ' ' || c == ',' || c == '-' || c == '.' {
			valid++
		}
	}
	return float64(valid)/float64(len([]rune(location))) >= 0.7
}

// containsAny 判断s中是否包含任一子串
func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
