package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer-go/internal/analyzer"
	"resume-analyzer-go/internal/api/handler"
	"resume-analyzer-go/internal/api/router"
	"resume-analyzer-go/internal/config"
	"resume-analyzer-go/internal/matcher"
	"resume-analyzer-go/internal/parser"
)

const sampleResumeText = `John Smith
john.smith@example.com
0412 345 678
Melbourne, VIC

Career Objective
Seeking a challenging software engineering role where I can apply my skills.

Skills
- Python
- React
- Docker

Experience
Software Developer 2019 - present
Built backend services in Python.
`

func newTestEngine(t *testing.T) *server.Hertz {
	t.Helper()
	cfg := config.DefaultConfig()
	a := analyzer.NewAnalyzer()
	m := matcher.NewJobMatcher()
	resumeHandler := handler.NewResumeHandler(cfg, parser.NewDocumentDecoder(), a, m)
	jobHandler := handler.NewJobHandler(m, a.Taxonomy())

	h := server.Default()
	router.RegisterRoutes(h, resumeHandler, jobHandler)
	return h
}

func performJSON(h *server.Hertz, method, path string, payload any) *ut.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}
	return ut.PerformRequest(h.Engine, method, path,
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
}

func TestHealthRoute(t *testing.T) {
	h := newTestEngine(t)
	resp := ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "ok", payload["status"])
}

func TestAnalyzeTextRoute(t *testing.T) {
	h := newTestEngine(t)
	resp := performJSON(h, "POST", "/api/v1/resume/analyze", map[string]string{"text": sampleResumeText})
	require.Equal(t, http.StatusOK, resp.Code)

	var payload handler.AnalysisResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	require.NotNil(t, payload.Analysis)
	assert.Equal(t, "John Smith", payload.Analysis.Contact.Name)
	assert.NotEmpty(t, payload.JobMatches)
}

func TestAnalyzeTextRouteRejectsShortText(t *testing.T) {
	h := newTestEngine(t)
	resp := performJSON(h, "POST", "/api/v1/resume/analyze", map[string]string{"text": "too short"})
	assert.Equal(t, http.StatusBadRequest, resp.Code, "过短的文本应返回400")
}

func TestContactRoute(t *testing.T) {
	h := newTestEngine(t)
	resp := performJSON(h, "POST", "/api/v1/resume/contact", map[string]string{"text": sampleResumeText})
	require.Equal(t, http.StatusOK, resp.Code)

	var payload handler.ContactResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "john.smith@example.com", payload.Contact.Email)
}

func TestContactRouteEmptyText(t *testing.T) {
	h := newTestEngine(t)
	resp := performJSON(h, "POST", "/api/v1/resume/contact", map[string]string{"text": ""})
	assert.Equal(t, http.StatusBadRequest, resp.Code, "空文本应返回400")
}

func TestSkillsExtractionRoute(t *testing.T) {
	h := newTestEngine(t)
	resp := performJSON(h, "POST", "/api/v1/resume/skills", map[string]string{"text": sampleResumeText})
	require.Equal(t, http.StatusOK, resp.Code)

	var payload handler.SkillsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Contains(t, payload.Skills, "Python")
	assert.Equal(t, len(payload.Skills), payload.SkillCount)
}

func TestJobSearchRoute(t *testing.T) {
	h := newTestEngine(t)
	resp := ut.PerformRequest(h.Engine, "GET", "/api/v1/jobs/search?skills=React,Python&remote_only=true", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Success    bool `json:"success"`
		TotalFound int  `json:"total_found"`
		Jobs       []struct {
			Remote bool `json:"remote"`
		} `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, len(payload.Jobs), payload.TotalFound)
	for _, job := range payload.Jobs {
		assert.True(t, job.Remote, "remote_only=true时不应返回非远程岗位")
	}
}

func TestSupportedSkillsRoute(t *testing.T) {
	h := newTestEngine(t)
	resp := ut.PerformRequest(h.Engine, "GET", "/api/v1/skills", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		SkillCategories []struct {
			Category string   `json:"category"`
			Skills   []string `json:"skills"`
		} `json:"skill_categories"`
		TotalSkills     int `json:"total_skills"`
		CategoriesCount int `json:"categories_count"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, len(payload.SkillCategories), payload.CategoriesCount)
	assert.Greater(t, payload.TotalSkills, 0)
}

func TestUploadRouteMissingFile(t *testing.T) {
	h := newTestEngine(t)
	resp := performJSON(h, "POST", "/api/v1/resume/upload", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code, "缺少文件字段应返回400")
}
