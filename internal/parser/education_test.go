package parser

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHighestDegreePriority(t *testing.T) {
	text := "PhD in Physics, previously Bachelor of Science"
	assert.Equal(t, DegreePhD, extractHighestDegree(text), "多个学位时应返回优先级最高的")

	assert.Equal(t, DegreeMasters, extractHighestDegree("Master of Business Administration"))
	assert.Equal(t, DegreeBachelors, extractHighestDegree("completed a bachelor degree"))
	assert.Equal(t, DegreeHighSchool, extractHighestDegree("Year 12, VCE"), "中学指示词应被识别")
	assert.Equal(t, "", extractHighestDegree("no education mentioned"))
}

func TestExtractHighestDegreeWordBoundary(t *testing.T) {
	assert.Equal(t, "", extractHighestDegree("worked on distributed systems platforms"),
		"短缩写不应在普通单词内部误命中")
	assert.Equal(t, DegreeMasters, extractHighestDegree("MS in Computer Science"),
		"独立出现的缩写应命中")
}

func TestExtractFieldOfStudy(t *testing.T) {
	assert.Equal(t, "Computer Science", extractFieldOfStudy("Bachelor of Technology in Computer Science"),
		"in后的专业应被抽取并转为标题式大小写")

	got := extractFieldOfStudy("studying business & economics this year")
	assert.Equal(t, "Business And Economics This Year", got, "&应被替换为and")

	assert.Equal(t, "", extractFieldOfStudy("no field mentioned here"))
}

func TestExtractGraduationYear(t *testing.T) {
	assert.Equal(t, 2023, ExtractGraduationYear("2019 - 2023 University of Somewhere"),
		"年份区间应取较大的年份")
	assert.Equal(t, 2022, ExtractGraduationYear("graduating in 2022"))
	assert.Equal(t, 0, ExtractGraduationYear("started long ago"), "无年份时应返回0")
}

func TestExtractGraduationYearBounds(t *testing.T) {
	future := time.Now().Year() + 3
	assert.Equal(t, future, ExtractGraduationYear(fmt.Sprintf("graduating in %d", future)),
		"近期未来年份应被接受")
	tooFar := time.Now().Year() + 20
	assert.Equal(t, 0, ExtractGraduationYear(fmt.Sprintf("graduating in %d", tooFar)),
		"过远的未来年份应被拒绝")
}

func TestExtractEducationAggregate(t *testing.T) {
	detector := NewEducationDetector()
	text := "Bachelor of Science in Computer Science\nMelbourne University\ngraduating in 2024"
	info := ExtractEducation(text, detector, 0.4)
	assert.Equal(t, DegreeBachelors, info.HighestDegree)
	assert.Equal(t, "Computer Science", info.FieldOfStudy)
	assert.Equal(t, 2024, info.GraduationYear)
	assert.Equal(t, "Melbourne University", info.Institution)
	require.NotNil(t, info.AllInstitutions, "机构列表不应为nil")
	assert.Contains(t, info.AllInstitutions, "Melbourne University")
}

func TestExtractEducationEmpty(t *testing.T) {
	detector := NewEducationDetector()
	info := ExtractEducation("plain text", detector, 0.4)
	assert.Equal(t, "", info.HighestDegree)
	assert.Equal(t, "", info.Institution)
	assert.NotNil(t, info.AllInstitutions)
	assert.Empty(t, info.AllInstitutions)
}
