package handler

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer-go/internal/analyzer"
	"resume-analyzer-go/internal/config"
	"resume-analyzer-go/internal/matcher"
	"resume-analyzer-go/internal/parser"
)

const sampleText = `John Smith
john.smith@example.com
0412 345 678
Melbourne, VIC

Career Objective
Seeking a challenging software engineering role where I can apply my skills.

Skills
- Python
- React
- Docker
- AWS

Experience
Software Developer 2019 - present
Built backend services in Python.

Education
Bachelor of Science in Computer Science
Melbourne University
`

func newTestHandler() *ResumeHandler {
	cfg := config.DefaultConfig()
	return NewResumeHandler(
		cfg,
		parser.NewDocumentDecoder(),
		analyzer.NewAnalyzer(),
		matcher.NewJobMatcher(),
	)
}

func TestHandleAnalyzeText(t *testing.T) {
	h := newTestHandler()
	resp, err := h.HandleAnalyzeText(context.Background(), sampleText)
	require.NoError(t, err, "文本分析不应出错")

	assert.True(t, resp.Success)
	require.NotNil(t, resp.Analysis)
	assert.Equal(t, "John Smith", resp.Analysis.Contact.Name)
	assert.NotEmpty(t, resp.JobMatches, "Python/React/Docker候选人应有岗位匹配")
	assert.Equal(t, ParserVersion, resp.Metadata.ParserVersion)
	assert.Equal(t, len(sampleText), resp.Metadata.TextLength)
	assert.True(t, resp.Metadata.FeaturesDetected.HasContactInfo)
	assert.True(t, resp.Metadata.FeaturesDetected.HasSummary)
	assert.Equal(t, len(resp.Analysis.Skills), resp.Metadata.FeaturesDetected.SkillsCount)
}

func TestHandleAnalyzeTextPreviewTruncation(t *testing.T) {
	h := newTestHandler()
	long := sampleText + strings.Repeat("filler words here ", 50)
	resp, err := h.HandleAnalyzeText(context.Background(), long)
	require.NoError(t, err)
	assert.Len(t, resp.TextPreview, 303, "超长文本的预览应截断到300字符加省略号")
	assert.True(t, strings.HasSuffix(resp.TextPreview, "..."))

	resp, err = h.HandleAnalyzeText(context.Background(), sampleText)
	require.NoError(t, err)
	assert.Equal(t, sampleText, resp.TextPreview, "短文本应完整返回")
}

func TestHandleExtractContact(t *testing.T) {
	h := newTestHandler()
	resp, err := h.HandleExtractContact(context.Background(), sampleText)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "John Smith", resp.Contact.Name)
	assert.Equal(t, "john.smith@example.com", resp.Contact.Email)
	assert.Equal(t, len(sampleText), resp.TextLength)
	assert.NotEmpty(t, resp.ExtractedAt)
}

func TestHandleExtractSkills(t *testing.T) {
	h := newTestHandler()
	resp, err := h.HandleExtractSkills(context.Background(), sampleText)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Skills, "Python")
	assert.Equal(t, len(resp.Skills), resp.SkillCount)
	assert.Contains(t, resp.CategorizedSkills["Programming Languages"], "Python",
		"技能应按分类分组")
}

func TestValidateUpload(t *testing.T) {
	h := newTestHandler()

	assert.NoError(t, h.ValidateUpload(parser.ContentTypePDF, 1024), "正常大小的PDF应通过校验")
	assert.NoError(t, h.ValidateUpload(parser.ContentTypeDocx, 1024))

	err := h.ValidateUpload("text/plain", 1024)
	assert.Error(t, err, "不支持的类型应被拒绝")

	err = h.ValidateUpload(parser.ContentTypePDF, 11*1024*1024)
	assert.Error(t, err, "超过大小上限的文件应被拒绝")
}

func TestValidateText(t *testing.T) {
	h := newTestHandler()

	assert.Error(t, h.ValidateText(""), "空文本应被拒绝")
	assert.Error(t, h.ValidateText("   \n  "), "纯空白应被拒绝")
	assert.Error(t, h.ValidateText("too short"), "低于最小长度的文本应被拒绝")
	assert.NoError(t, h.ValidateText(sampleText))
}

func TestHandleResumeUploadBadDocument(t *testing.T) {
	h := newTestHandler()
	_, err := h.HandleResumeUpload(context.Background(), []byte("not a real pdf"), parser.ContentTypePDF, "resume.pdf")
	assert.Error(t, err, "损坏的PDF应返回错误")
}
