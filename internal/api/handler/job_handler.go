package handler

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"resume-analyzer-go/internal/logger"
	"resume-analyzer-go/internal/matcher"
	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/types"
)

// JobHandler 负责处理岗位搜索和技能词表相关的请求
type JobHandler struct {
	matcher  *matcher.JobMatcher
	taxonomy *parser.SkillTaxonomy
}

// NewJobHandler 创建一个新的岗位处理器
func NewJobHandler(m *matcher.JobMatcher, taxonomy *parser.SkillTaxonomy) *JobHandler {
	return &JobHandler{
		matcher:  m,
		taxonomy: taxonomy,
	}
}

// searchCriteria 搜索响应中回显的查询条件
type searchCriteria struct {
	Skills   []string `json:"skills"`
	Location string   `json:"location"`
	JobType  string   `json:"job_type"`
	Remote   bool     `json:"remote_only"`
}

// jobSearchResponse 岗位搜索响应
type jobSearchResponse struct {
	Success    bool             `json:"success"`
	Jobs       []types.JobMatch `json:"jobs"`
	TotalFound int              `json:"total_found"`
	Criteria   searchCriteria   `json:"search_criteria"`
	Timestamp  string           `json:"timestamp"`
}

// HandleSearchJobs 处理岗位搜索请求
// GET /api/v1/jobs/search?skills=a,b&location=x&job_type=Full-time&remote_only=true
func (h *JobHandler) HandleSearchJobs(ctx context.Context, c *app.RequestContext) {
	var skills []string
	if raw := c.Query("skills"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
	}

	filter := matcher.SearchFilter{
		Skills:     skills,
		Location:   strings.TrimSpace(c.Query("location")),
		JobType:    strings.TrimSpace(c.Query("job_type")),
		RemoteOnly: c.Query("remote_only") == "true",
	}

	jobs := h.matcher.SearchJobs(filter)
	logger.Debug().
		Strs("skills", skills).
		Str("location", filter.Location).
		Int("found", len(jobs)).
		Msg("岗位搜索完成")

	if skills == nil {
		skills = []string{}
	}
	c.JSON(consts.StatusOK, jobSearchResponse{
		Success:    true,
		Jobs:       jobs,
		TotalFound: len(jobs),
		Criteria: searchCriteria{
			Skills:   skills,
			Location: filter.Location,
			JobType:  filter.JobType,
			Remote:   filter.RemoteOnly,
		},
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// supportedSkillsResponse 技能词表响应
type supportedSkillsResponse struct {
	SkillCategories []types.SkillCategory `json:"skill_categories"`
	TotalSkills     int                   `json:"total_skills"`
	CategoriesCount int                   `json:"categories_count"`
}

// HandleSupportedSkills 返回支持识别的完整技能词表
// GET /api/v1/skills
func (h *JobHandler) HandleSupportedSkills(ctx context.Context, c *app.RequestContext) {
	categories := h.taxonomy.Categories()
	c.JSON(consts.StatusOK, supportedSkillsResponse{
		SkillCategories: categories,
		TotalSkills:     h.taxonomy.TotalSkills(),
		CategoriesCount: len(categories),
	})
}
