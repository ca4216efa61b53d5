package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/types"
)

// 学位显示名称
const (
	DegreePhD        = "PhD"
	DegreeMasters    = "Masters"
	DegreeBachelors  = "Bachelors"
	DegreeDiploma    = "Diploma"
	DegreeHighSchool = "High School"
)

// degreeLevel 学位类别及其关键词列表
type degreeLevel struct {
	name     string
	keywords []string
	regex    *regexp.Regexp
}

// 按优先级从高到低排列，命中即停
var degreeLevels = []degreeLevel{
	{name: DegreePhD, keywords: []string{"phd", "ph.d", "doctorate", "doctoral", "doctor of philosophy"}},
	{name: DegreeMasters, keywords: []string{"master", "msc", "m.sc", "mba", "m.b.a", "ms", "m.s", "ma", "m.a"}},
	{name: DegreeBachelors, keywords: []string{"bachelor", "bsc", "b.sc", "ba", "b.a", "bs", "b.s", "be", "b.e"}},
	{name: DegreeDiploma, keywords: []string{"diploma", "associate degree", "certificate"}},
	{name: DegreeHighSchool, keywords: []string{"year 12", "year 11", "high school", "secondary school", "hsc", "vce", "atar"}},
}

// 专业领域识别模式，按优先级排列
var fieldOfStudyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)B\.?Tech\.?\s+in\s+([^.\n]+)`),
	regexp.MustCompile(`(?i)Bachelor.*?in\s+([^.\n]+)`),
	regexp.MustCompile(`(?i)Master.*?in\s+([^.\n]+)`),
	regexp.MustCompile(`(?i)PhD.*?in\s+([^.\n]+)`),
	regexp.MustCompile(`(?i)(?:bachelor|master|phd|doctorate).*?(?:in|of)\s+([a-zA-Z\s&]+)(?:from|at|\n|,)`),
	regexp.MustCompile(`(?i)subjects include:\s*([^.]+)`),
	regexp.MustCompile(`(?i)studying\s+([^.]+)`),
	regexp.MustCompile(`(?i)(computer science.*?engineering|computer science|engineering|business|mathematics|science)`),
}

// 毕业年份识别模式，按优先级排列；区间命中时取最大年份
var graduationYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(20\d{2})\s*[-–]\s*(20\d{2})`),
	regexp.MustCompile(`(?i)graduating.*?(20\d{2})`),
	regexp.MustCompile(`(?i)batch.*?(20\d{2})`),
}

func init() {
	for i := range degreeLevels {
		quoted := make([]string, len(degreeLevels[i].keywords))
		for j, kw := range degreeLevels[i].keywords {
			quoted[j] = regexp.QuoteMeta(kw)
		}
		// 词边界匹配，避免 "ms" 之类的短缩写在普通单词内误命中
		degreeLevels[i].regex = regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
}

// ExtractEducation 抽取教育背景汇总
// 机构识别委托给 EducationDetector，minConfidence 控制 AllInstitutions 的收录门槛
func ExtractEducation(text string, detector *EducationDetector, minConfidence float64) types.EducationInfo {
	info := types.EducationInfo{
		HighestDegree:   extractHighestDegree(text),
		FieldOfStudy:    extractFieldOfStudy(text),
		GraduationYear:  ExtractGraduationYear(text),
		AllInstitutions: detector.AllInstitutions(text, minConfidence),
	}
	info.Institution = detector.BestInstitution(text)
	if info.AllInstitutions == nil {
		info.AllInstitutions = []string{}
	}
	return info
}

// extractHighestDegree 按优先级返回第一个命中的学位类别，未命中返回空串
func extractHighestDegree(text string) string {
	for _, level := range degreeLevels {
		if level.regex.MatchString(text) {
			return level.name
		}
	}
	return ""
}

// extractFieldOfStudy 按模式优先级返回第一个有效的专业领域
func extractFieldOfStudy(text string) string {
	for _, re := range fieldOfStudyPatterns {
		match := re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		field := strings.TrimSpace(match[1])
		if len(field) <= 3 {
			continue
		}
		field = whitespaceRegex.ReplaceAllString(field, " ")
		field = strings.ReplaceAll(field, "&", "and")
		return titleCaseWords(field)
	}
	return ""
}

// ExtractGraduationYear 识别毕业年份，返回0表示未识别或超出合法区间
func ExtractGraduationYear(text string) int {
	year := 0
	for _, re := range graduationYearPatterns {
		match := re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if len(match) > 2 && match[2] != "" {
			// 年份区间取较大者
			a, _ := strconv.Atoi(match[1])
			b, _ := strconv.Atoi(match[2])
			year = a
			if b > a {
				year = b
			}
		} else {
			year, _ = strconv.Atoi(match[1])
		}
		break
	}
	if !isValidGraduationYear(year) {
		return 0
	}
	return year
}

// isValidGraduationYear 年份合法区间为 [1950, 当前年+5]
func isValidGraduationYear(year int) bool {
	if year == 0 {
		return false
	}
	return year >= constants.MinGraduationYear && year <= time.Now().Year()+constants.GraduationYearSlack
}
