package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/logger"
	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/types"
)

// Analyzer 简历分析流水线
// 所有字典和检测器在构造时初始化一次，之后只读，可被多个请求并发调用
type Analyzer struct {
	taxonomy *parser.SkillTaxonomy
	detector *parser.EducationDetector

	maxSkills                int
	institutionMinConfidence float64
}

// Option 定义分析器配置选项函数
type Option func(*Analyzer)

// WithTaxonomy 配置自定义技能分类表
func WithTaxonomy(t *parser.SkillTaxonomy) Option {
	return func(a *Analyzer) {
		if t != nil {
			a.taxonomy = t
		}
	}
}

// WithDetector 配置自定义机构识别器
func WithDetector(d *parser.EducationDetector) Option {
	return func(a *Analyzer) {
		if d != nil {
			a.detector = d
		}
	}
}

// WithMaxSkills 配置技能数量上限
func WithMaxSkills(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxSkills = n
		}
	}
}

// WithInstitutionMinConfidence 配置机构列表的收录门槛
func WithInstitutionMinConfidence(c float64) Option {
	return func(a *Analyzer) {
		if c > 0 {
			a.institutionMinConfidence = c
		}
	}
}

// NewAnalyzer 创建一个新的简历分析器
func NewAnalyzer(options ...Option) *Analyzer {
	a := &Analyzer{
		taxonomy:                 parser.NewDefaultSkillTaxonomy(),
		detector:                 parser.NewEducationDetector(),
		maxSkills:                constants.MaxSkills,
		institutionMinConfidence: constants.AnalyzerInstitutionConfidence,
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Taxonomy 返回分析器使用的技能分类表
func (a *Analyzer) Taxonomy() *parser.SkillTaxonomy {
	return a.taxonomy
}

// Detector 返回分析器使用的机构识别器
func (a *Analyzer) Detector() *parser.EducationDetector {
	return a.detector
}

// Analyze 对简历文本执行完整分析
// contact 为非nil时跳过联系方式抽取，直接使用调用方预解析的结果
func (a *Analyzer) Analyze(ctx context.Context, text string, contact *types.ContactInfo) (*types.ResumeAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("简历文本为空")
	}

	analysisID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成分析ID失败: %w", err)
	}

	start := time.Now()

	var contactInfo types.ContactInfo
	if contact != nil {
		contactInfo = *contact
	} else {
		contactInfo = parser.ExtractContactInfo(text)
	}

	skills := parser.ExtractSkills(text, a.taxonomy, a.maxSkills)
	experience := parser.ExtractExperience(text)
	education := parser.ExtractEducation(text, a.detector, a.institutionMinConfidence)

	summary := extractSummarySection(text)
	if len(summary) < constants.MinSummaryLen {
		summary = synthesizeSummary(skills, experience, education)
	}

	score := CalculateScore(text, skills, experience, education)

	logger.Debug().
		Str("analysis_id", analysisID.String()).
		Int("skills", len(skills)).
		Int("score", score).
		Dur("elapsed", time.Since(start)).
		Msg("简历分析完成")

	return &types.ResumeAnalysis{
		AnalysisID: analysisID.String(),
		Contact:    contactInfo,
		Skills:     skills,
		Experience: experience,
		Education:  education,
		Summary:    summary,
		Score:      score,
		AnalyzedAt: time.Now(),
	}, nil
}
