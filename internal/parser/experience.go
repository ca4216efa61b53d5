package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/types"
)

// 显式工作年限表述，例如 "5 years experience"
var explicitYearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(?i)experience[:\s]*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*yrs?\s*(?:of\s*)?experience`),
}

var (
	// 年份区间，例如 "2019 - 2023" 或 "2019 - present"
	yearRangeRegex = regexp.MustCompile(`(?i)(20\d{2})\s*[-–]\s*(20\d{2}|current|present)`)
	// 月份+年份，例如 "Jan 2020"
	monthYearRegex = regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s*(20\d{2})`)
)

// 常见职位头衔关键词，按类别分组
var jobTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(customer service|canteen|newspaper deliverer|assistant coach|umpire)`),
	regexp.MustCompile(`(?i)(volunteer|intern|trainee|assistant|coordinator)`),
	regexp.MustCompile(`(?i)(cashier|server|clerk|attendant|representative)`),
	regexp.MustCompile(`(?i)(junior|senior|lead|manager|supervisor)`),
	regexp.MustCompile(`(?i)(developer|engineer|analyst|designer|specialist)`),
}

// 机构后缀形状的公司名
var companyRegex = regexp.MustCompile(`([A-Z][a-zA-Z\s]+(?:Club|College|School|Newsagency|Company|Inc|Ltd))`)

// 学生身份指示词
var studentIndicators = []string{"year 11", "year 12", "student", "school", "college"}

// 入门级指示词
var entryLevelIndicators = []string{"seeking", "looking for", "casual", "part-time", "volunteer"}

// ExtractExperience 抽取工作经历汇总（年限、头衔、公司、级别）
func ExtractExperience(text string) types.ExperienceInfo {
	years := ExtractExperienceYears(text)
	titles := extractJobTitles(text)
	companies := extractCompanies(text)
	return types.ExperienceInfo{
		Years:     years,
		JobTitles: titles,
		Companies: companies,
		Level:     ClassifyExperienceLevel(text, years),
	}
}

// ExtractExperienceYears 推算工作年限
// 优先取显式 "N years experience" 表述的最大值；没有时退回时间线推断：
// 取所有年份区间/月份年份中最早的年份，返回 当前年-最早年（下限0）。
func ExtractExperienceYears(text string) int {
	maxYears := -1
	for _, re := range explicitYearsPatterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			if n, err := strconv.Atoi(match[1]); err == nil && n > maxYears {
				maxYears = n
			}
		}
	}
	if maxYears >= 0 {
		return maxYears
	}

	earliest := 0
	for _, match := range yearRangeRegex.FindAllStringSubmatch(text, -1) {
		if y, err := strconv.Atoi(match[1]); err == nil && (earliest == 0 || y < earliest) {
			earliest = y
		}
	}
	for _, match := range monthYearRegex.FindAllStringSubmatch(text, -1) {
		if y, err := strconv.Atoi(match[2]); err == nil && (earliest == 0 || y < earliest) {
			earliest = y
		}
	}
	if earliest == 0 {
		return 0
	}
	years := time.Now().Year() - earliest
	if years < 0 {
		years = 0
	}
	return years
}

// extractJobTitles 按关键词模式收集头衔，并从经历章节中补充，上限5个
func extractJobTitles(text string) []string {
	seen := make(map[string]struct{})
	var titles []string

	add := func(title string) {
		formatted := titleCaseWords(title)
		if _, ok := seen[formatted]; ok {
			return
		}
		seen[formatted] = struct{}{}
		titles = append(titles, formatted)
	}

	for _, re := range jobTitlePatterns {
		for _, match := range re.FindAllStringSubmatch(strings.ToLower(text), -1) {
			add(match[1])
		}
	}

	if section, ok := ExtractSection(text, SectionExperience); ok {
		for _, line := range strings.Split(section, "\n") {
			lineLower := strings.ToLower(line)
			if !containsAny(lineLower, []string{"club", "newsagency", "service", "coach", "umpire"}) {
				continue
			}
			words := strings.Fields(line)
			if len(words) < 2 {
				continue
			}
			if len(words) > 3 {
				words = words[:3]
			}
			candidate := strings.Join(words, " ")
			if len(candidate) > 5 && len(candidate) < 50 {
				add(candidate)
			}
		}
	}

	if len(titles) > constants.MaxJobTitles {
		titles = titles[:constants.MaxJobTitles]
	}
	if titles == nil {
		titles = []string{}
	}
	return titles
}

// extractCompanies 按机构后缀形状收集公司名，上限5个
func extractCompanies(text string) []string {
	seen := make(map[string]struct{})
	var companies []string
	for _, match := range companyRegex.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(match[1])
		if len(name) <= 3 || len(name) >= 50 {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		companies = append(companies, name)
	}
	sort.Strings(companies)
	if len(companies) > constants.MaxCompanies {
		companies = companies[:constants.MaxCompanies]
	}
	if companies == nil {
		companies = []string{}
	}
	return companies
}

// ClassifyExperienceLevel 经验级别分类，规则按优先级排列：
// 学生指示词 > 入门级指示词 > 年限阈值（>=7高级、>=3中级、>=1初级、否则入门级）
func ClassifyExperienceLevel(text string, years int) types.ExperienceLevel {
	textLower := strings.ToLower(text)
	if containsAny(textLower, studentIndicators) {
		return types.LevelStudent
	}
	if containsAny(textLower, entryLevelIndicators) {
		return types.LevelEntry
	}
	switch {
	case years >= 7:
		return types.LevelSenior
	case years >= 3:
		return types.LevelMid
	case years >= 1:
		return types.LevelJunior
	}
	return types.LevelEntry
}

// titleCaseWords 把短语的每个单词转为首字母大写
func titleCaseWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
