package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/types"
)

func TestExtractSummarySection(t *testing.T) {
	text := "Career Objective\nMotivated developer looking\nfor new challenges.\n\nEducation\nsome school"
	got := extractSummarySection(text)
	assert.Equal(t, "Motivated developer looking for new challenges.", got, "章节内容应合并为单行")
}

func TestExtractSummarySectionStripsTips(t *testing.T) {
	text := "Summary\nExperienced engineer. (Tip: tailor this to the role)\n"
	got := extractSummarySection(text)
	assert.Equal(t, "Experienced engineer.", got, "模板提示括号应被移除")
}

func TestExtractSummarySectionMissing(t *testing.T) {
	assert.Equal(t, "", extractSummarySection("no sections at all"), "无总结章节应返回空串")
}

func TestSynthesizeSummaryStudent(t *testing.T) {
	experience := types.ExperienceInfo{
		Level:     types.LevelStudent,
		JobTitles: []string{"Volunteer"},
	}
	education := types.EducationInfo{HighestDegree: parser.DegreeHighSchool}
	skills := []string{"Customer Service", "Teamwork", "Communication", "Excel"}

	got := synthesizeSummary(skills, experience, education)
	assert.Contains(t, got, "Motivated High School student", "学生开头句应包含学位")
	assert.Contains(t, got, "with demonstrated skills in Customer Service, Teamwork, Communication",
		"学生技能子句应只取前3项")
	assert.Contains(t, got, "in volunteer", "首个头衔应转为小写")
	assert.Contains(t, got, "Strong background in Customer Service, Teamwork, and Communication",
		"技能超过3项时应使用Strong background句式")
	assert.Contains(t, got, "Seeking opportunities to apply academic knowledge", "学生应使用学业导向的结尾句")
}

func TestSynthesizeSummaryExperienced(t *testing.T) {
	experience := types.ExperienceInfo{
		Level:     types.LevelSenior,
		Years:     8,
		JobTitles: []string{"Senior Engineer"},
	}
	got := synthesizeSummary([]string{"Python", "Go"}, experience, types.EducationInfo{})
	assert.Contains(t, got, "Experienced professional with 8 years")
	assert.Contains(t, got, "in senior engineer")
	assert.Contains(t, got, "Skilled in Python, Go", "技能不超过3项时应使用Skilled in句式")
	assert.Contains(t, got, "Committed to delivering high-quality results")
}

func TestSynthesizeSummaryEntry(t *testing.T) {
	experience := types.ExperienceInfo{Level: types.LevelEntry, Years: 1}
	got := synthesizeSummary(nil, experience, types.EducationInfo{})
	assert.Contains(t, got, "Enthusiastic entry-level professional")
	assert.Contains(t, got, "with 1 year(s) of experience")
}

func TestSynthesizeSummaryBare(t *testing.T) {
	got := synthesizeSummary(nil, types.ExperienceInfo{Level: types.LevelMid}, types.EducationInfo{})
	assert.Contains(t, got, "Dedicated professional", "无年限的非入门级应使用兜底开头")
}
