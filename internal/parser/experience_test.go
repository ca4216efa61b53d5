package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer-go/internal/types"
)

func TestExtractExperienceYearsExplicit(t *testing.T) {
	assert.Equal(t, 5, ExtractExperienceYears("5 years of experience in backend work"),
		"显式年限表述应被直接采用")
	assert.Equal(t, 8, ExtractExperienceYears("3 years experience in Java, 8+ years experience overall"),
		"多个显式表述应取最大值")
	assert.Equal(t, 4, ExtractExperienceYears("Experience: 4 years"),
		"冒号标签形式应被识别")
}

func TestExtractExperienceYearsTimeline(t *testing.T) {
	now := time.Now().Year()
	got := ExtractExperienceYears("Software Developer 2019 - 2021\nSenior Developer 2021 - present")
	assert.Equal(t, now-2019, got, "无显式表述时应按最早年份推断")

	got = ExtractExperienceYears("Jan 2020 - Dec 2022 at some company")
	assert.Equal(t, now-2020, got, "月份+年份形式也应参与推断")
}

func TestExtractExperienceYearsNone(t *testing.T) {
	assert.Equal(t, 0, ExtractExperienceYears("no dates mentioned at all"),
		"无任何线索时年限应为0")
}

func TestExtractJobTitles(t *testing.T) {
	text := "Senior Developer at TechCorp\nPreviously a junior analyst and volunteer"
	titles := extractJobTitles(text)
	assert.Contains(t, titles, "Senior", "头衔关键词应被收集")
	assert.Contains(t, titles, "Developer")
	assert.Contains(t, titles, "Volunteer")
	assert.LessOrEqual(t, len(titles), 5, "头衔数量应有上限")
}

func TestExtractJobTitlesEmpty(t *testing.T) {
	titles := extractJobTitles("plain text without roles")
	require.NotNil(t, titles, "无命中时应返回空切片而非nil")
	assert.Empty(t, titles)
}

func TestExtractCompanies(t *testing.T) {
	text := "worked at Riverside Tennis Club and later at Brighton Newsagency"
	companies := extractCompanies(text)
	assert.Contains(t, companies, "Riverside Tennis Club", "机构后缀形状的公司名应被识别")
	assert.Contains(t, companies, "Brighton Newsagency")
	assert.True(t, sortStringsSorted(companies), "公司列表应按字典序排列")
}

func sortStringsSorted(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestClassifyExperienceLevel(t *testing.T) {
	assert.Equal(t, types.LevelStudent, ClassifyExperienceLevel("Year 12 at Melbourne High", 0),
		"学生指示词优先级最高")
	assert.Equal(t, types.LevelStudent, ClassifyExperienceLevel("final year student, 8 years of hobbies", 8),
		"学生指示词应压过年限")
	assert.Equal(t, types.LevelEntry, ClassifyExperienceLevel("seeking a casual role", 0),
		"入门级指示词应被识别")
	assert.Equal(t, types.LevelSenior, ClassifyExperienceLevel("backend work", 7), "7年以上为高级")
	assert.Equal(t, types.LevelMid, ClassifyExperienceLevel("backend work", 4), "3-6年为中级")
	assert.Equal(t, types.LevelJunior, ClassifyExperienceLevel("backend work", 1), "1-2年为初级")
	assert.Equal(t, types.LevelEntry, ClassifyExperienceLevel("backend work", 0), "无年限为入门级")
}

func TestExtractExperienceAggregate(t *testing.T) {
	text := "Senior Engineer with 6 years of experience at Acme Company"
	info := ExtractExperience(text)
	assert.Equal(t, 6, info.Years)
	assert.Equal(t, types.LevelMid, info.Level, "6年且无指示词应为中级")
	assert.Contains(t, info.Companies, "Acme Company")
	assert.NotEmpty(t, info.JobTitles)
}
