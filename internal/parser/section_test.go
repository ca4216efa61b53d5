package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSectionSkills(t *testing.T) {
	text := "John Smith\n\nSkills\n- Python\n- React\n- Docker\n\nExperience\nSoftware Developer at TechCorp"
	content, found := ExtractSection(text, SectionSkills)
	require.True(t, found, "应找到Skills章节")
	assert.Equal(t, "- Python\n- React\n- Docker", content, "切片应恰好包含标题与下一个标题之间的内容行")
}

func TestExtractSectionSummaryHeaderVariants(t *testing.T) {
	text := "Career Objective\nSeeking a challenging role in software development.\n\nEducation\nBachelor of Science"
	content, found := ExtractSection(text, SectionSummary)
	require.True(t, found, "Career Objective应被识别为总结类标题")
	assert.Contains(t, content, "Seeking a challenging role", "切片应包含标题后的内容")
	assert.NotContains(t, content, "Bachelor", "切片不应越过下一个章节标题")
}

func TestExtractSectionColonHeader(t *testing.T) {
	text := "Skills: \nPython, JavaScript\n"
	content, found := ExtractSection(text, SectionSkills)
	require.True(t, found, "带冒号的标题应被识别")
	assert.Equal(t, "Python, JavaScript", content)
}

func TestExtractSectionSkipsTipLines(t *testing.T) {
	text := "Summary\n(Tip: keep this short)\nExperienced developer with strong fundamentals.\n"
	content, found := ExtractSection(text, SectionSummary)
	require.True(t, found)
	assert.Equal(t, "Experienced developer with strong fundamentals.", content, "(Tip开头的提示行应被丢弃")
}

func TestExtractSectionMissing(t *testing.T) {
	_, found := ExtractSection("just a plain paragraph of text", SectionEducation)
	assert.False(t, found, "无标题时应返回未找到")

	_, found = ExtractSection("Skills\n\nExperience\nwork stuff", SectionSkills)
	assert.False(t, found, "标题后无内容时应返回未找到")
}

func TestIsSectionHeader(t *testing.T) {
	assert.True(t, IsSectionHeader("Work Experience"), "章节标题应被识别")
	assert.True(t, IsSectionHeader("EDUCATION"), "大写标题应被识别")
	assert.False(t, IsSectionHeader(""), "空行不是标题")
	assert.False(t, IsSectionHeader("- Python"), "内容行不是标题")
}
